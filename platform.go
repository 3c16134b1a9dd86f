package rapidhex

// Kernel returns the name of the implementation being used for encode and
// decode operations: "avx2", "avx" or "generic".
func Kernel() string {
	return selectKernel().name
}
