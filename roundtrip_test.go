package rapidhex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip1MB(t *testing.T) {
	raw := randomBytes(t, 1024*1024, 0x1b)

	forEachFeatureSet(t, func(t *testing.T) {
		text := Encode(raw)
		require.Len(t, text, 2*len(raw))

		decoded, err := Decode(text)
		t.Logf("Decoded %d bytes, expected %d", len(decoded), len(raw))
		require.NoError(t, err)
		require.Equal(t, raw, decoded)
	})
}

// Text produced by one kernel must decode with every other kernel.
func TestEncodeDecodeRoundTripMixedKernels(t *testing.T) {
	raw := randomBytes(t, 64*1024+9, 0x2c)

	for _, enc := range runnableKernels() {
		text := make([]byte, EncodedLen(len(raw)))
		enc.encode(text, raw)

		for _, dec := range runnableKernels() {
			t.Run(enc.name+"->"+dec.name, func(t *testing.T) {
				decoded := make([]byte, len(raw))
				require.NoError(t, decodeInto(dec, decoded, text))
				require.Equal(t, raw, decoded)
			})
		}
	}
}
