package huffman

import (
	"strconv"
)

// Symbol represents a symbol in the code's alphabet.  Each rune of a string
// is one Symbol.  Negative symbols are not valid.
type Symbol rune

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// String returns the Go-quoted rune for this Symbol.
func (sym Symbol) String() string {
	if sym < 0 {
		return "InvalidSymbol"
	}
	return strconv.QuoteRune(rune(sym))
}

// SymbolsOf splits a string into its Symbols, one per rune.
func SymbolsOf(s string) []Symbol {
	out := make([]Symbol, 0, len(s))
	for _, r := range s {
		out = append(out, Symbol(r))
	}
	return out
}

// StringOf joins Symbols back into a string.
func StringOf(symbols []Symbol) string {
	buf := make([]rune, len(symbols))
	for i, sym := range symbols {
		buf[i] = rune(sym)
	}
	return string(buf)
}
