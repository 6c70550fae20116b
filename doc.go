// Package huffman builds Huffman codes from a table of symbol frequencies and
// uses them to translate between symbol sequences and textual bit strings.
//
// Bit strings are ordinary Go strings made of the characters '0' and '1',
// one character per bit; no packing into bytes is performed.
//
// Ties between equal weights are broken by insertion order, so the same
// FrequencyTable always yields the same CodeTable.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     D. A. Huffman, "A Method for the Construction of Minimum-Redundancy
//     Codes", Proceedings of the IRE, 1952
//
package huffman
