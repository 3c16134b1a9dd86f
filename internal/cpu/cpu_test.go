package cpu

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectFeatures(t *testing.T) {
	f := DetectFeatures()
	require.Equal(t, runtime.GOARCH, f.Architecture)
	require.Equal(t, f, DetectFeatures(), "detection must be stable")

	if runtime.GOARCH != "amd64" {
		require.False(t, f.HasAVX)
		require.False(t, f.HasAVX2)
	}
}

func TestForcedFeatures(t *testing.T) {
	t.Cleanup(ResetDetection)

	SetForcedFeatures(Features{HasAVX2: true, Architecture: "test"})
	f := DetectFeatures()
	require.True(t, f.HasAVX2)
	require.False(t, f.HasAVX)
	require.Equal(t, "test", f.Architecture)

	// Host detection is not affected by forcing.
	require.Equal(t, runtime.GOARCH, HostFeatures().Architecture)

	ResetDetection()
	require.Equal(t, runtime.GOARCH, DetectFeatures().Architecture)
	require.Equal(t, HostFeatures(), DetectFeatures())
}

func TestSupports(t *testing.T) {
	all := Features{HasAVX: true, HasAVX2: true}

	cases := []struct {
		name     string
		features Features
		level    SIMDLevel
		want     bool
	}{
		{"none always", Features{}, SIMDNone, true},
		{"avx missing", Features{}, SIMDAVX, false},
		{"avx", Features{HasAVX: true}, SIMDAVX, true},
		{"avx2 missing", Features{HasAVX: true}, SIMDAVX2, false},
		{"avx2", Features{HasAVX2: true}, SIMDAVX2, true},
		{"forced generic avx2", Features{HasAVX2: true, ForceGeneric: true}, SIMDAVX2, false},
		{"forced generic avx", Features{HasAVX: true, ForceGeneric: true}, SIMDAVX, false},
		{"forced generic none", Features{ForceGeneric: true}, SIMDNone, true},
		{"unknown level", all, SIMDLevel(99), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Supports(tc.features, tc.level))
		})
	}
}

func TestSIMDLevelString(t *testing.T) {
	require.Equal(t, "None", SIMDNone.String())
	require.Equal(t, "AVX", SIMDAVX.String())
	require.Equal(t, "AVX2", SIMDAVX2.String())
	require.Equal(t, "Unknown", SIMDLevel(-1).String())
}

func TestNoSIMDEnvOverride(t *testing.T) {
	env := map[string]string{NoSIMDEnv: "1"}
	f := probe(func(k string) string { return env[k] })
	require.True(t, f.ForceGeneric)
	require.False(t, Supports(f, SIMDAVX2))
	require.False(t, Supports(f, SIMDAVX))
	require.True(t, Supports(f, SIMDNone))

	f = probe(func(string) string { return "" })
	require.False(t, f.ForceGeneric)
}
