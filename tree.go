package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// buildTree runs the Huffman merge over the entries of table and returns the
// root of the resulting tree, or nil if table is empty.
//
// Ties are broken by insertion order into the minheap: the leaves are pushed
// in table order, and each merged node is pushed after both of its children
// were popped.  Node contents are never compared.
//
func buildTree(table FrequencyTable) Node {
	// Step 1: build a minheap with one leaf per entry.

	h := nodeHeap{list: make([]heapItem, 0, len(table))}
	for _, f := range table {
		h.list = append(h.list, heapItem{
			node:   &Leaf{Symbol: f.Symbol, Freq: f.Weight},
			weight: f.Weight,
			seq:    h.nextSeq,
		})
		h.nextSeq++
	}
	h.Init()

	if h.Len() == 0 {
		return nil
	}

	// Step 2: pop the two lightest nodes, join them under a new internal
	// node, and push that node back, until one node remains.  The first
	// node popped becomes the left child.

	for h.Len() > 1 {
		a := heap.Pop(&h).(heapItem)
		b := heap.Pop(&h).(heapItem)

		sum := a.weight + b.weight
		heap.Push(&h, heapItem{
			node:   &Internal{Left: a.node, Right: b.node, Freq: sum},
			weight: sum,
			seq:    h.nextSeq,
		})
		h.nextSeq++
	}

	root := heap.Pop(&h).(heapItem)
	assert.Assertf(root.node != nil, "Huffman merge produced a nil root from %d entries", len(table))
	return root.node
}

// type heapItem + type nodeHeap {{{

type heapItem struct {
	node   Node
	weight float64
	seq    uint64
}

type nodeHeap struct {
	list    []heapItem
	nextSeq uint64
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(heapItem))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = heapItem{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
