package huffman

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/exp/slices"
)

// CodeEntry pairs a Symbol with its Code.
type CodeEntry struct {
	Symbol Symbol
	Code   Code
}

// CodeTable maps each Symbol of the alphabet to its Code.  Iteration order is
// the depth-first order of the leaves, left before right.
//
// A CodeTable is immutable, and the zero value is an empty table.
type CodeTable struct {
	entries []CodeEntry
	index   map[Symbol]int
	minSize int
	maxSize int
}

// generateCodes walks the tree rooted at root and assigns each leaf the path
// leading to it.  A lone leaf at the root is given the Code "0", so that every
// Code holds at least one bit.
func generateCodes(root Node) CodeTable {
	var t CodeTable
	Walk(root, func(node Node, path Code) {
		leaf, ok := node.(*Leaf)
		if !ok {
			return
		}
		if len(path) == 0 {
			path = "0"
		}
		if t.index == nil {
			t.index = make(map[Symbol]int)
			t.minSize = len(path)
			t.maxSize = len(path)
		} else if t.minSize > len(path) {
			t.minSize = len(path)
		} else if t.maxSize < len(path) {
			t.maxSize = len(path)
		}
		t.index[leaf.Symbol] = len(t.entries)
		t.entries = append(t.entries, CodeEntry{Symbol: leaf.Symbol, Code: path})
	})
	return t
}

// Len returns the number of Symbols in the table.
func (t CodeTable) Len() int {
	return len(t.entries)
}

// Lookup returns the Code for sym.
func (t CodeTable) Lookup(sym Symbol) (Code, bool) {
	i, found := t.index[sym]
	if !found {
		return "", false
	}
	return t.entries[i].Code, true
}

// Entries returns a copy of the table's entries, in iteration order.
func (t CodeTable) Entries() []CodeEntry {
	return slices.Clone(t.entries)
}

// Map returns the table as a freshly allocated map.
func (t CodeTable) Map() map[Symbol]Code {
	out := make(map[Symbol]Code, len(t.entries))
	for _, e := range t.entries {
		out[e.Symbol] = e.Code
	}
	return out
}

// MinSize is the bit length of the shortest Code, or 0 for an empty table.
func (t CodeTable) MinSize() int {
	return t.minSize
}

// MaxSize is the bit length of the longest Code, or 0 for an empty table.
func (t CodeTable) MaxSize() int {
	return t.maxSize
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.  Entries are listed by Code size, then by Code.
func (t CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.maxSize)
	sorted := slices.Clone(t.entries)
	slices.SortFunc(sorted, func(a, b CodeEntry) int {
		return compareCodes(a.Code, b.Code)
	})
	for _, e := range sorted {
		fmt.Fprintf(&buf, "\tLookup(%v) = %s\n", e.Symbol, e.Code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns the table in iteration order, e.g. {'o':"0", 'a':"1"}.
func (t CodeTable) String() string {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range t.entries {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%v:%s", e.Symbol, e.Code)
	}
	buf.WriteByte('}')
	return buf.String()
}

var _ fmt.Stringer = CodeTable{}
