package rapidhex

// EncodedLen returns the length of the hex encoding of n bytes.
func EncodedLen(n int) int {
	return n * 2
}

// DecodedLen returns the number of bytes encoded by n hex characters.
// n is expected to be even.
func DecodedLen(n int) int {
	return n / 2
}
