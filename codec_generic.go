package rapidhex

// encodeGeneric is the scalar encoder: two table characters per input byte.
// dst must hold at least 2*len(src) bytes.
func encodeGeneric(dst, src []byte) {
	if len(src) == 0 {
		return
	}
	_ = dst[2*len(src)-1] // BCE hint.

	for i, c := range src {
		dst[2*i] = hexEncode[2*int(c)]
		dst[2*i+1] = hexEncode[2*int(c)+1]
	}
}

// decodeGeneric is the scalar decoder and the reference every other kernel
// must match. src must have even length and dst at least len(src)/2 bytes.
// It returns -1 on success, otherwise the offset of the first invalid
// character.
//
// dst may overlap src as long as dst starts before src: each output byte is
// written only after both of its input characters were read.
func decodeGeneric(dst, src []byte) int {
	if len(src) == 0 {
		return -1
	}
	_ = dst[len(src)/2-1] // BCE hint.

	for i, j := 0, 0; i+1 < len(src); i, j = i+2, j+1 {
		hi := hexNibbleDecode[src[i]]
		if hi == invalidNibble {
			return i
		}
		lo := hexNibbleDecode[src[i+1]]
		if lo == invalidNibble {
			return i + 1
		}
		dst[j] = hi<<4 | lo
	}
	return -1
}
