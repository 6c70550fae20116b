package huffman

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Engine translates between symbol sequences and bit strings using a Huffman
// code built from a FrequencyTable.
//
// An Engine is immutable once constructed, so it may be used concurrently by
// any number of goroutines.  The zero value is an Engine over the empty
// alphabet.
type Engine struct {
	freqs FrequencyTable
	root  Node
	table CodeTable
}

// New builds the Huffman tree and CodeTable for the given FrequencyTable.  The
// table must pass Validate.  An empty table yields an Engine which only
// accepts empty input.
func New(table FrequencyTable) (*Engine, error) {
	e := new(Engine)
	if err := e.Init(table); err != nil {
		return nil, err
	}
	return e, nil
}

// MustNew is like New, but panics if the table is not valid.
func MustNew(table FrequencyTable) *Engine {
	e, err := New(table)
	assert.Assertf(err == nil, "invalid Huffman frequency table: %v", err)
	return e
}

// Init initializes this Engine.  See New.
func (e *Engine) Init(table FrequencyTable) error {
	if err := table.Validate(); err != nil {
		return err
	}
	freqs := table.Clone()
	root := buildTree(freqs)
	*e = Engine{
		freqs: freqs,
		root:  root,
		table: generateCodes(root),
	}
	return nil
}

// CodeTable returns the Code assigned to each Symbol.
func (e *Engine) CodeTable() CodeTable {
	return e.table
}

// Root returns the root of the Huffman tree, or nil for the empty alphabet.
// The tree must not be modified.
func (e *Engine) Root() Node {
	return e.root
}

// Frequencies returns a copy of the FrequencyTable this Engine was built
// from.
func (e *Engine) Frequencies() FrequencyTable {
	return e.freqs.Clone()
}

// Dump writes a programmer-readable debugging dump of the Engine's tree to
// the given writer.
func (e *Engine) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Engine{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", e.table.Len())
	fmt.Fprintf(&buf, "\tDepth() = %d\n", Depth(e.root))
	Walk(e.root, func(node Node, path Code) {
		switch x := node.(type) {
		case *Leaf:
			fmt.Fprintf(&buf, "\tLeaf(%s) = {%v, %s}\n", path, x.Symbol, formatWeight(x.Freq))
		case *Internal:
			fmt.Fprintf(&buf, "\tInternal(%s) = {%s}\n", path, formatWeight(x.Freq))
		}
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the output of Dump as a string.
func (e *Engine) DebugString() string {
	var buf strings.Builder
	_, _ = e.Dump(&buf)
	return buf.String()
}

// GoString returns a Go expression that rebuilds this Engine.
func (e *Engine) GoString() string {
	var buf strings.Builder
	buf.WriteString("MustNew(FrequencyTable{")
	for i, f := range e.freqs {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "{%s,%s}", strconv.QuoteRune(rune(f.Symbol)), formatWeight(f.Weight))
	}
	buf.WriteString("})")
	return buf.String()
}

// String returns a brief description of this Engine.
func (e *Engine) String() string {
	return fmt.Sprintf("(Huffman engine with %d symbols, with coded lengths of %d .. %d bits)",
		e.table.Len(), e.table.MinSize(), e.table.MaxSize())
}

// MarshalJSON encodes the Engine as its FrequencyTable.
func (e *Engine) MarshalJSON() ([]byte, error) {
	freqs := e.freqs
	if freqs == nil {
		freqs = FrequencyTable{}
	}
	return json.Marshal(freqs)
}

// UnmarshalJSON rebuilds the Engine from a FrequencyTable.
func (e *Engine) UnmarshalJSON(raw []byte) error {
	var freqs FrequencyTable
	if err := json.Unmarshal(raw, &freqs); err != nil {
		return err
	}
	return e.Init(freqs)
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}

var (
	_ fmt.Stringer     = (*Engine)(nil)
	_ fmt.GoStringer   = (*Engine)(nil)
	_ json.Marshaler   = (*Engine)(nil)
	_ json.Unmarshaler = (*Engine)(nil)
)
