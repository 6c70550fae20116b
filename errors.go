package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSymbol is matched by every *UnknownSymbolError.
	ErrUnknownSymbol = errors.New("symbol not in Huffman code table")

	// ErrMalformedBitString is matched by every *MalformedBitStringError.
	ErrMalformedBitString = errors.New("malformed Huffman bit string")

	// ErrDuplicateSymbol is returned when a FrequencyTable lists the same
	// Symbol twice.
	ErrDuplicateSymbol = errors.New("duplicate symbol in frequency table")

	// ErrInvalidSymbol is returned when a FrequencyTable holds a negative
	// Symbol.
	ErrInvalidSymbol = errors.New("invalid symbol in frequency table")

	// ErrInvalidWeight is returned when a FrequencyTable holds a negative,
	// NaN, or infinite weight.
	ErrInvalidWeight = errors.New("invalid weight in frequency table")
)

// UnknownSymbolError is returned by Encode when the input holds a Symbol that
// was not present in the FrequencyTable.
type UnknownSymbolError struct {
	Symbol Symbol

	// Offset is the index of the offending Symbol in the input.
	Offset int
}

// Error fulfills the error interface.
func (err *UnknownSymbolError) Error() string {
	return fmt.Sprintf("cannot encode symbol %v at offset %d: %v", err.Symbol, err.Offset, ErrUnknownSymbol)
}

// Is returns true for ErrUnknownSymbol.
func (err *UnknownSymbolError) Is(target error) bool {
	return target == ErrUnknownSymbol
}

// Reason enumerates the ways a bit string can be malformed.
type Reason byte

const (
	// ReasonEmptyTree means that bits were supplied to an engine with an
	// empty alphabet.
	ReasonEmptyTree Reason = iota + 1

	// ReasonInvalidBit means that a character other than '0' or '1' was
	// found.
	ReasonInvalidBit

	// ReasonPastLeaf means that the bit string tried to descend below a
	// leaf.
	ReasonPastLeaf

	// ReasonTruncated means that the bit string ended in the middle of a
	// code.
	ReasonTruncated
)

var reasonNames = [...]string{
	ReasonEmptyTree:  "no codes in an empty alphabet",
	ReasonInvalidBit: "character is not a bit",
	ReasonPastLeaf:   "no code continues past this leaf",
	ReasonTruncated:  "input ends in the middle of a code",
}

// String returns a description of this Reason.
func (r Reason) String() string {
	if r == 0 || int(r) >= len(reasonNames) {
		return fmt.Sprintf("Reason(%d)", byte(r))
	}
	return reasonNames[r]
}

// MalformedBitStringError is returned by Decode when its input is not an
// exact concatenation of codes from the CodeTable.
type MalformedBitStringError struct {
	Reason Reason

	// Offset is the byte offset in the input where decoding failed.  For
	// ReasonTruncated it is the offset of the first bit of the unfinished
	// code.
	Offset int
}

// Error fulfills the error interface.
func (err *MalformedBitStringError) Error() string {
	return fmt.Sprintf("%v: at offset %d: %v", ErrMalformedBitString, err.Offset, err.Reason)
}

// Is returns true for ErrMalformedBitString.
func (err *MalformedBitStringError) Is(target error) bool {
	return target == ErrMalformedBitString
}

var (
	_ error = (*UnknownSymbolError)(nil)
	_ error = (*MalformedBitStringError)(nil)
)
