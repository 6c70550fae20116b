package huffman

import (
	"fmt"
	"strconv"
	"strings"
)

// Code represents a sequence of bits, written as the characters '0' and '1'.
// The first character is the first bit, i.e. the branch taken at the root.
type Code string

const (
	bitZero = '0'
	bitOne  = '1'
)

// Size returns the number of bits in this Code.
func (hc Code) Size() int {
	return len(hc)
}

// IsPrefixOf returns true iff hc is a prefix of other.  A Code is a prefix
// of itself.
func (hc Code) IsPrefixOf(other Code) bool {
	return strings.HasPrefix(string(other), string(hc))
}

// IsValid returns true iff hc is non-empty and consists only of '0' and '1'.
func (hc Code) IsValid() bool {
	if len(hc) == 0 {
		return false
	}
	for i := 0; i < len(hc); i++ {
		if !isBit(hc[i]) {
			return false
		}
	}
	return true
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if len(hc) == 0 {
		return "\"\""
	}
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")

// compareCodes orders Codes by size first, then lexically.
func compareCodes(a, b Code) int {
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	return strings.Compare(string(a), string(b))
}
