// Package rapidhex encodes bytes as lowercase hexadecimal text and decodes
// hexadecimal text back to bytes.
//
// Every call picks the fastest kernel the CPU supports: 256-bit AVX2, then
// 128-bit AVX, then a scalar loop. The vector kernels are written with
// simd/archsimd and are only built for amd64 with GOEXPERIMENT=simd. All
// kernels produce identical output and reject exactly the same input. Decoding accepts 0-9, A-F and a-f in
// any mix of case, and nothing else: no whitespace, prefixes or separators.
package rapidhex

import (
	"unsafe"
)

// Encode returns the lowercase hex encoding of src.
func Encode(src []byte) string {
	dst := EncodeToBytes(src)
	if len(dst) == 0 {
		return ""
	}
	// dst is not referenced anywhere else.
	return unsafe.String(&dst[0], len(dst))
}

// EncodeToBytes is like Encode but returns the text as a byte slice.
func EncodeToBytes(src []byte) []byte {
	dst := make([]byte, EncodedLen(len(src)))
	selectKernel().encode(dst, src)
	return dst
}

// EncodeInto writes the hex encoding of src into the first EncodedLen(len(src))
// bytes of dst without allocating. It panics if dst is too small.
func EncodeInto(dst, src []byte) {
	n := EncodedLen(len(src))
	if len(dst) < n {
		panic("rapidhex: dst buffer is too small")
	}
	selectKernel().encode(dst[:n], src)
}

// Decode returns the bytes represented by the hex string text.
//
// It fails with ErrOddLength or an InvalidCharError naming the first byte
// outside the hex alphabet.
func Decode(text string) ([]byte, error) {
	return DecodeBytes(stringBytes(text))
}

// DecodeBytes is like Decode but takes the text as a byte slice.
func DecodeBytes(text []byte) ([]byte, error) {
	if len(text)%2 != 0 {
		return nil, ErrOddLength
	}

	dst := make([]byte, DecodedLen(len(text)))
	if err := decodeInto(selectKernel(), dst, text); err != nil {
		return nil, err
	}
	return dst, nil
}

// DecodeNoDetail is like Decode, but every failure is reported as ErrInvalid.
// It skips locating the offending character, which is the cheapest path for
// callers that only need to know whether text was valid.
func DecodeNoDetail(text string) ([]byte, error) {
	src := stringBytes(text)
	if len(src)%2 != 0 {
		return nil, ErrInvalid
	}

	dst := make([]byte, DecodedLen(len(src)))
	if selectKernel().decode(dst, src) >= 0 {
		return nil, ErrInvalid
	}
	return dst, nil
}

// DecodeInto decodes text into the first DecodedLen(len(text)) bytes of dst
// without allocating. It panics if dst is too small. On error the contents of
// dst are unspecified.
func DecodeInto(dst []byte, text string) error {
	src := stringBytes(text)
	if len(src)%2 != 0 {
		return ErrOddLength
	}

	n := DecodedLen(len(src))
	if len(dst) < n {
		panic("rapidhex: dst buffer is too small")
	}
	return decodeInto(selectKernel(), dst[:n], src)
}

// decodeInto runs k and turns a failure into an exact InvalidCharError.
// Vector kernels only report the block a bad character is in, so the block
// is rescanned with the scalar table.
func decodeInto(k *kernel, dst, src []byte) error {
	bad := k.decode(dst, src)
	if bad < 0 {
		return nil
	}

	for i := bad; i < len(src); i++ {
		if hexNibbleDecode[src[i]] == invalidNibble {
			return InvalidCharError{Offset: i, Char: src[i]}
		}
	}
	return ErrInvalid
}

// stringBytes views s as a byte slice without copying. The kernels only read
// their source, so the string is never modified.
func stringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
