package rapidhex

import (
	"errors"
	"fmt"
)

var (
	// ErrOddLength is returned when hex text does not hold a whole number of bytes.
	ErrOddLength = errors.New("rapidhex: odd length hex string")

	// ErrInvalid is the only error DecodeNoDetail returns. Every
	// InvalidCharError also matches it with errors.Is.
	ErrInvalid = errors.New("rapidhex: invalid hex string")

	// ErrBadOffset is returned by DecodeAligned when the padding before the
	// text is shorter than the requested alignment, or lies outside the buffer.
	ErrBadOffset = errors.New("rapidhex: offset must be at least the alignment")

	// ErrBadAlignment is returned by DecodeAligned for an alignment that is
	// not a positive power of two.
	ErrBadAlignment = errors.New("rapidhex: alignment must be a positive power of two")

	// ErrMisaligned is returned by View when a span cannot be reinterpreted
	// as the requested element type without copying.
	ErrMisaligned = errors.New("rapidhex: span is not aligned for the element type")
)

// InvalidCharError reports a byte outside 0-9, A-F, a-f.
type InvalidCharError struct {
	Offset int  // offset of the character within the hex text
	Char   byte // the offending byte
}

func (e InvalidCharError) Error() string {
	return fmt.Sprintf("rapidhex: invalid hex char %#U at offset %d", rune(e.Char), e.Offset)
}

// Is lets callers match any malformed character with ErrInvalid.
func (e InvalidCharError) Is(target error) bool {
	return target == ErrInvalid
}
