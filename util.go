package huffman

func isBit(ch byte) bool {
	return ch == bitZero || ch == bitOne
}

func childPath(path Code, bit byte) Code {
	buf := make([]byte, len(path)+1)
	copy(buf, path)
	buf[len(path)] = bit
	return Code(buf)
}
