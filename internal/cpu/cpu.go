// Package cpu detects the vector instruction sets the hex kernels can use.
//
// Detection runs once and is cached. Tests may replace the detected features
// with SetForcedFeatures to drive the dispatcher down a specific kernel.
package cpu

import (
	"os"
	"sync"
	"sync/atomic"
)

// NoSIMDEnv is the environment variable that, when non-empty, restricts
// dispatch to the generic kernel.
const NoSIMDEnv = "RAPIDHEX_NOSIMD"

// SIMDLevel names the instruction set a kernel requires.
type SIMDLevel int

const (
	// SIMDNone is the pure Go scalar kernel, always available.
	SIMDNone SIMDLevel = iota

	// SIMDAVX is x86-64 AVX: VEX-encoded byte shuffles on 128-bit registers.
	SIMDAVX

	// SIMDAVX2 is x86-64 AVX2 (VPSHUFB on 256-bit registers).
	SIMDAVX2
)

func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDAVX:
		return "AVX"
	case SIMDAVX2:
		return "AVX2"
	default:
		return "Unknown"
	}
}

// Features describes the CPU capabilities relevant to kernel selection.
type Features struct {
	HasAVX  bool
	HasAVX2 bool

	// ForceGeneric disables every vector kernel.
	ForceGeneric bool

	Architecture string // runtime.GOARCH
}

var (
	detected = sync.OnceValue(func() Features { return probe(os.Getenv) })

	forced atomic.Pointer[Features]
)

func probe(getenv func(string) string) Features {
	f := detectFeaturesImpl()
	if getenv(NoSIMDEnv) != "" {
		f.ForceGeneric = true
	}
	return f
}

// DetectFeatures returns the features of the current CPU, or the forced
// features if SetForcedFeatures was called.
func DetectFeatures() Features {
	if f := forced.Load(); f != nil {
		return *f
	}
	return detected()
}

// HostFeatures returns the probed features of the current CPU, ignoring any
// forced features.
func HostFeatures() Features {
	return detected()
}

// SetForcedFeatures overrides detection. Intended for tests.
func SetForcedFeatures(f Features) {
	forced.Store(&f)
}

// ResetDetection drops any forced features.
func ResetDetection() {
	forced.Store(nil)
}

// Supports reports whether features allow running code built for level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDAVX:
		return features.HasAVX
	case SIMDAVX2:
		return features.HasAVX2
	default:
		return false
	}
}
