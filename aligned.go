package rapidhex

import (
	"unsafe"
)

// DecodeAligned decodes the hex text in buf[offset:] in place, so that the
// decoded bytes start at an address that is a multiple of align.
//
// The caller reserves at least align bytes of padding in front of the text
// (offset >= align when align > 1). The decoded bytes are written over the
// front of buf, starting at the first aligned address, and returned as a
// slice aliasing buf. Because the output is half the size of the text and
// starts before it, writing never overtakes text that is still unread.
//
// After the call buf no longer holds the text, and the returned slice is only
// valid for as long as buf is. The caller must not use any other view of buf
// while the returned slice is live. On error the contents of buf are
// unspecified; an InvalidCharError offset is relative to buf[offset:].
func DecodeAligned(buf []byte, offset, align int) ([]byte, error) {
	if align < 1 || align&(align-1) != 0 {
		return nil, ErrBadAlignment
	}
	if offset < 0 || offset > len(buf) || (align > 1 && offset < align) {
		return nil, ErrBadOffset
	}

	text := buf[offset:]
	if len(text)%2 != 0 {
		return nil, ErrOddLength
	}

	a := alignOffset(unsafe.Pointer(unsafe.SliceData(buf)), align)
	n := DecodedLen(len(text))
	dst := buf[a : a+n : a+n]

	if err := decodeInto(selectKernel(), dst, text); err != nil {
		return nil, err
	}
	return dst, nil
}

// alignOffset returns how many bytes p must advance to be a multiple of
// align, which must be a power of two.
func alignOffset(p unsafe.Pointer, align int) int {
	return int(-uintptr(p) & uintptr(align-1))
}

// Fixed is the set of element types View can alias.
type Fixed interface {
	~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 | ~float32 | ~float64
}

// View reinterprets b as a slice of T without copying, typically the result
// of DecodeAligned. Values are read in the machine's native byte order.
//
// It fails with ErrMisaligned if b does not start at an address aligned for T
// or its length is not a multiple of the size of T. The returned slice
// aliases b.
func View[T Fixed](b []byte) ([]T, error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if len(b)%size != 0 {
		return nil, ErrMisaligned
	}
	if len(b) == 0 {
		return []T{}, nil
	}

	p := unsafe.Pointer(unsafe.SliceData(b))
	if uintptr(p)%unsafe.Alignof(zero) != 0 {
		return nil, ErrMisaligned
	}
	return unsafe.Slice((*T)(p), len(b)/size), nil
}
