package huffman

// Decode translates a bit string back into Symbols.  The bit string must be
// an exact concatenation of Codes from the CodeTable; otherwise a
// *MalformedBitStringError is returned and the result is nil.
//
// Decoding an empty bit string always succeeds with no Symbols.
//
func (e *Engine) Decode(bits string) ([]Symbol, error) {
	var out []Symbol
	err := e.decode(bits, func(sym Symbol) {
		out = append(out, sym)
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []Symbol{}
	}
	return out, nil
}

// DecodeString is like Decode, but returns the Symbols as a string.
func (e *Engine) DecodeString(bits string) (string, error) {
	buf := make([]rune, 0, len(bits)/max(e.table.MaxSize(), 1))
	err := e.decode(bits, func(sym Symbol) {
		buf = append(buf, rune(sym))
	})
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

func (e *Engine) decode(bits string, emit func(Symbol)) error {
	if len(bits) == 0 {
		return nil
	}
	if e.root == nil {
		return &MalformedBitStringError{Reason: ReasonEmptyTree, Offset: 0}
	}

	// A lone leaf at the root has the one-bit code "0".
	if leaf, ok := e.root.(*Leaf); ok {
		for i := 0; i < len(bits); i++ {
			switch bits[i] {
			case bitZero:
				emit(leaf.Symbol)
			case bitOne:
				return &MalformedBitStringError{Reason: ReasonPastLeaf, Offset: i}
			default:
				return &MalformedBitStringError{Reason: ReasonInvalidBit, Offset: i}
			}
		}
		return nil
	}

	cursor := e.root
	start := 0
	for i := 0; i < len(bits); i++ {
		in, ok := cursor.(*Internal)
		if !ok {
			return &MalformedBitStringError{Reason: ReasonPastLeaf, Offset: i}
		}
		switch bits[i] {
		case bitZero:
			cursor = in.Left
		case bitOne:
			cursor = in.Right
		default:
			return &MalformedBitStringError{Reason: ReasonInvalidBit, Offset: i}
		}
		if leaf, ok := cursor.(*Leaf); ok {
			emit(leaf.Symbol)
			cursor = e.root
			start = i + 1
		}
	}
	if cursor != e.root {
		return &MalformedBitStringError{Reason: ReasonTruncated, Offset: start}
	}
	return nil
}
