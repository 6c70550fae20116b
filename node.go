package huffman

// Node is a node of a Huffman tree: either a *Leaf or an *Internal.  A nil
// Node is the empty tree.
type Node interface {
	// Weight returns the total weight of the leaves below this node.
	Weight() float64

	isNode()
}

// Leaf is a Node that holds one Symbol of the alphabet.
type Leaf struct {
	Symbol Symbol
	Freq   float64
}

// Internal is a Node with exactly two children.  Freq is the sum of the
// children's weights.
type Internal struct {
	Left  Node
	Right Node
	Freq  float64
}

// Weight fulfills Node.
func (leaf *Leaf) Weight() float64 { return leaf.Freq }

// Weight fulfills Node.
func (in *Internal) Weight() float64 { return in.Freq }

func (*Leaf) isNode()     {}
func (*Internal) isNode() {}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)

// Walk visits every node of the tree rooted at root in depth-first order,
// left before right.  path is the sequence of branches from the root to the
// node.  Walk does nothing if root is nil.
func Walk(root Node, fn func(node Node, path Code)) {
	if root == nil {
		return
	}
	var walk func(node Node, path Code)
	walk = func(node Node, path Code) {
		fn(node, path)
		if in, ok := node.(*Internal); ok {
			walk(in.Left, childPath(path, bitZero))
			walk(in.Right, childPath(path, bitOne))
		}
	}
	walk(root, "")
}

// Depth returns the length of the longest root-to-leaf path in the tree.
func Depth(root Node) int {
	var depth int
	Walk(root, func(node Node, path Code) {
		if _, ok := node.(*Leaf); ok && len(path) > depth {
			depth = len(path)
		}
	})
	return depth
}
