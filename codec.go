package rapidhex

import (
	"github.com/mnightingale/rapidhex/internal/cpu"
)

// kernel is one encode/decode implementation together with the instruction
// set it needs. Kernels are stateless.
type kernel struct {
	name  string
	level cpu.SIMDLevel

	// encode writes 2*len(src) characters to dst.
	encode func(dst, src []byte)

	// decode writes len(src)/2 bytes to dst; len(src) is even. It returns -1
	// on success, otherwise an offset at or before the first invalid
	// character.
	decode func(dst, src []byte) int
}

// kernels is ordered by preference; the generic kernel is always last.
var kernels = append(vectorKernels[:len(vectorKernels):len(vectorKernels)], kernel{
	name:   "generic",
	level:  cpu.SIMDNone,
	encode: encodeGeneric,
	decode: decodeGeneric,
})

// meetsRequirements reports whether the host described by f can run k.
func (k *kernel) meetsRequirements(f cpu.Features) bool {
	return cpu.Supports(f, k.level)
}

// selectKernel returns the most capable kernel for the current CPU. It runs
// on every public call; the probe itself is cached by the cpu package.
func selectKernel() *kernel {
	f := cpu.DetectFeatures()
	for i := range kernels {
		if kernels[i].meetsRequirements(f) {
			return &kernels[i]
		}
	}
	return &kernels[len(kernels)-1]
}
