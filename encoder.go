package huffman

// Encode translates a sequence of Symbols into a bit string.  Every Symbol
// must be part of the alphabet; otherwise an *UnknownSymbolError is returned
// together with an empty string.
func (e *Engine) Encode(symbols []Symbol) (string, error) {
	out, err := e.AppendEncode(nil, symbols)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// EncodeString is like Encode, taking each rune of s as one Symbol.
func (e *Engine) EncodeString(s string) (string, error) {
	return e.Encode(SymbolsOf(s))
}

// AppendEncode appends the bit string for symbols to dst.  On error, dst is
// returned unchanged.
func (e *Engine) AppendEncode(dst []byte, symbols []Symbol) ([]byte, error) {
	n := len(dst)
	for i, sym := range symbols {
		hc, found := e.table.Lookup(sym)
		if !found {
			return dst[:n], &UnknownSymbolError{Symbol: sym, Offset: i}
		}
		dst = append(dst, string(hc)...)
	}
	return dst, nil
}
