//go:build !(goexperiment.simd && amd64)

package rapidhex

// Without archsimd only the generic kernel is available.
var vectorKernels []kernel
