package huffman

import (
	"fmt"
	"math"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Frequency pairs a Symbol with its relative weight.  Only the relative order
// of weights matters; the scale is irrelevant.
type Frequency struct {
	Symbol Symbol  `json:"symbol"`
	Weight float64 `json:"weight"`
}

// FrequencyTable lists the alphabet of a Huffman code.  The order of the
// entries is significant: when two subtrees have the same weight, the one
// whose first entry appears earlier is merged first.
type FrequencyTable []Frequency

// FrequencyTableFromMap builds a FrequencyTable from a map.  Since maps are
// unordered, the entries are sorted by ascending Symbol.
func FrequencyTableFromMap(m map[Symbol]float64) FrequencyTable {
	keys := maps.Keys(m)
	slices.Sort(keys)
	out := make(FrequencyTable, len(keys))
	for i, sym := range keys {
		out[i] = Frequency{Symbol: sym, Weight: m[sym]}
	}
	return out
}

// CountFrequencies estimates a FrequencyTable from a sample text.  Each rune
// is weighted by its number of occurrences, and runes appear in the order of
// their first occurrence.
func CountFrequencies(sample string) FrequencyTable {
	var out FrequencyTable
	index := make(map[Symbol]int)
	for _, r := range sample {
		sym := Symbol(r)
		if i, found := index[sym]; found {
			out[i].Weight++
			continue
		}
		index[sym] = len(out)
		out = append(out, Frequency{Symbol: sym, Weight: 1})
	}
	return out
}

// Validate checks that every Symbol is listed once and that every weight is a
// finite, non-negative number.
func (table FrequencyTable) Validate() error {
	seen := make(map[Symbol]struct{}, len(table))
	for i, f := range table {
		if f.Symbol < 0 {
			return fmt.Errorf("entry %d: symbol %d: %w", i, int32(f.Symbol), ErrInvalidSymbol)
		}
		if _, found := seen[f.Symbol]; found {
			return fmt.Errorf("entry %d: symbol %v: %w", i, f.Symbol, ErrDuplicateSymbol)
		}
		seen[f.Symbol] = struct{}{}
		if f.Weight < 0 || math.IsNaN(f.Weight) || math.IsInf(f.Weight, 0) {
			return fmt.Errorf("entry %d: symbol %v: weight %v: %w", i, f.Symbol, f.Weight, ErrInvalidWeight)
		}
	}
	return nil
}

// Clone returns a copy of this FrequencyTable.
func (table FrequencyTable) Clone() FrequencyTable {
	if table == nil {
		return nil
	}
	out := make(FrequencyTable, len(table))
	copy(out, table)
	return out
}
