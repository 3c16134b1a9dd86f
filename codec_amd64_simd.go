//go:build goexperiment.simd && amd64

package rapidhex

import (
	"simd/archsimd"

	"github.com/mnightingale/rapidhex/internal/cpu"
)

// vectorKernels are the archsimd kernels, most capable first. archsimd emits
// VEX encodings, so even the 128-bit kernel needs AVX.
var vectorKernels = []kernel{
	{name: "avx2", level: cpu.SIMDAVX2, encode: encodeAVX2, decode: decodeAVX2},
	{name: "avx", level: cpu.SIMDAVX, encode: encodeAVX, decode: decodeAVX},
}

// Shuffle tables for one 128-bit lane group. VPSHUFB never crosses a
// 128-bit half, so the 256-bit kernels use each table twice (see dup).
// They are loaded inside the kernels so that nothing runs AVX instructions
// before the capability check.
var (
	// digitLUT is indexed by c-'0'.
	digitLUT = [16]int8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	// letterLUT is indexed by c-'@' and c-'`'.
	letterLUT = [16]int8{0, 10, 11, 12, 13, 14, 15}
	// encodeLUT is the output alphabet indexed by nibble.
	encodeLUT = [16]int8{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}

	// packLo gathers the odd lanes into lanes 0..7, packHi into lanes 8..15.
	// Every other lane becomes zero.
	packLo = [16]int8{1, 3, 5, 7, 9, 11, 13, 15, -1, -1, -1, -1, -1, -1, -1, -1}
	packHi = [16]int8{-1, -1, -1, -1, -1, -1, -1, -1, 1, 3, 5, 7, 9, 11, 13, 15}

	// spreadLo and spreadHi copy input byte k into lanes 2k and 2k+1, for
	// the first and the second eight bytes.
	spreadLo = [16]int8{0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7}
	spreadHi = [16]int8{8, 8, 9, 9, 10, 10, 11, 11, 12, 12, 13, 13, 14, 14, 15, 15}

	// evenNibble and oddNibble keep the low nibble of even and odd lanes.
	evenNibble = [16]int8{0x0f, 0, 0x0f, 0, 0x0f, 0, 0x0f, 0, 0x0f, 0, 0x0f, 0, 0x0f, 0, 0x0f, 0}
	oddNibble  = [16]int8{0, 0x0f, 0, 0x0f, 0, 0x0f, 0, 0x0f, 0, 0x0f, 0, 0x0f, 0, 0x0f, 0, 0x0f}
)

// 256-bit forms of the tables above.
var (
	digitLUT2   = dup(digitLUT)
	letterLUT2  = dup(letterLUT)
	encodeLUT2  = dup(encodeLUT)
	packOdd2    = join(packLo, packHi)
	spreadLo2   = dup(spreadLo)
	spreadHi2   = dup(spreadHi)
	evenNibble2 = dup(evenNibble)
	oddNibble2  = dup(oddNibble)
)

func dup(t [16]int8) [32]int8 {
	return join(t, t)
}

func join(lo, hi [16]int8) (r [32]int8) {
	copy(r[:16], lo[:])
	copy(r[16:], hi[:])
	return r
}

// encodeAVX2 encodes 32 input bytes per block into 64 characters.
func encodeAVX2(dst, src []byte) {
	var (
		lut    = archsimd.LoadInt8x32(&encodeLUT2)
		lo     = archsimd.LoadInt8x32(&spreadLo2)
		hi     = archsimd.LoadInt8x32(&spreadHi2)
		evenNb = archsimd.LoadInt8x32(&evenNibble2)
		oddNb  = archsimd.LoadInt8x32(&oddNibble2)
	)

	i, j := 0, 0
	for ; i+32 <= len(src); i, j = i+32, j+64 {
		v := archsimd.LoadUint8x32Slice(src[i:]).AsInt8x32()

		// Bytes 0..7 and 16..23, then 8..15 and 24..31, one per lane pair.
		a := v.PermuteOrZeroGrouped(lo)
		b := v.PermuteOrZeroGrouped(hi)

		// The 16-bit shift brings each high nibble down into the even lane.
		ca := lut.PermuteOrZeroGrouped(a.AsInt16x16().ShiftAllRight(4).AsInt8x32().And(evenNb).Add(a.And(oddNb)))
		cb := lut.PermuteOrZeroGrouped(b.AsInt16x16().ShiftAllRight(4).AsInt8x32().And(evenNb).Add(b.And(oddNb)))

		ca.GetLo().AsUint8x16().StoreSlice(dst[j:])
		cb.GetLo().AsUint8x16().StoreSlice(dst[j+16:])
		ca.GetHi().AsUint8x16().StoreSlice(dst[j+32:])
		cb.GetHi().AsUint8x16().StoreSlice(dst[j+48:])
	}
	archsimd.ClearAVXUpperBits()

	encodeGeneric(dst[j:], src[i:])
}

// decodeAVX2 decodes 32 characters per block into 16 bytes. It returns -1 on
// success; on failure it returns the start of the first block holding an
// invalid character, or the exact offset when the failure is in the tail.
//
// Each block is loaded before anything is stored, so dst may overlap src as
// long as it starts at or before src.
func decodeAVX2(dst, src []byte) int {
	var (
		digits  = archsimd.LoadInt8x32(&digitLUT2)
		letters = archsimd.LoadInt8x32(&letterLUT2)
		pack    = archsimd.LoadInt8x32(&packOdd2)

		c0 = archsimd.BroadcastUint8x32('0')
		c9 = archsimd.BroadcastUint8x32('9')
		cA = archsimd.BroadcastUint8x32('A')
		cF = archsimd.BroadcastUint8x32('F')
		ca = archsimd.BroadcastUint8x32('a')
		cf = archsimd.BroadcastUint8x32('f')

		baseUpper = archsimd.BroadcastUint8x32('A' - 1)
		baseLower = archsimd.BroadcastUint8x32('a' - 1)
	)

	i, j := 0, 0
	for ; i+32 <= len(src); i, j = i+32, j+16 {
		v := archsimd.LoadUint8x32Slice(src[i:])

		// Unsigned range masks, bounded on both sides.
		mDigit := v.GreaterEqual(c0).And(v.LessEqual(c9))
		mUpper := v.GreaterEqual(cA).And(v.LessEqual(cF))
		mLower := v.GreaterEqual(ca).And(v.LessEqual(cf))

		if mDigit.Or(mUpper).Or(mLower).ToBits() != 0xffffffff {
			archsimd.ClearAVXUpperBits()
			return i
		}

		// The masks are disjoint, so adding the masked lookups merges them.
		nib := digits.PermuteOrZeroGrouped(v.Sub(c0).AsInt8x32()).AsUint8x32().Masked(mDigit).
			Add(letters.PermuteOrZeroGrouped(v.Sub(baseUpper).AsInt8x32()).AsUint8x32().Masked(mUpper)).
			Add(letters.PermuteOrZeroGrouped(v.Sub(baseLower).AsInt8x32()).AsUint8x32().Masked(mLower)).
			AsInt8x32()

		// Shift each high nibble under its low nibble: the odd lanes now
		// hold the decoded bytes.
		pairs := nib.Add(nib.AsInt16x16().ShiftAllLeft(12).AsInt8x32())
		packed := pairs.PermuteOrZeroGrouped(pack)

		packed.GetLo().AsUint8x16().Add(packed.GetHi().AsUint8x16()).StoreSlice(dst[j:])
	}
	archsimd.ClearAVXUpperBits()

	if bad := decodeGeneric(dst[j:], src[i:]); bad >= 0 {
		return i + bad
	}
	return -1
}

// encodeAVX encodes 16 input bytes per block into 32 characters.
func encodeAVX(dst, src []byte) {
	var (
		lut    = archsimd.LoadInt8x16(&encodeLUT)
		lo     = archsimd.LoadInt8x16(&spreadLo)
		hi     = archsimd.LoadInt8x16(&spreadHi)
		evenNb = archsimd.LoadInt8x16(&evenNibble)
		oddNb  = archsimd.LoadInt8x16(&oddNibble)
	)

	i, j := 0, 0
	for ; i+16 <= len(src); i, j = i+16, j+32 {
		v := archsimd.LoadUint8x16Slice(src[i:]).AsInt8x16()

		a := v.PermuteOrZero(lo)
		b := v.PermuteOrZero(hi)

		ca := lut.PermuteOrZero(a.AsInt16x8().ShiftAllRight(4).AsInt8x16().And(evenNb).Add(a.And(oddNb)))
		cb := lut.PermuteOrZero(b.AsInt16x8().ShiftAllRight(4).AsInt8x16().And(evenNb).Add(b.And(oddNb)))

		ca.AsUint8x16().StoreSlice(dst[j:])
		cb.AsUint8x16().StoreSlice(dst[j+16:])
	}

	encodeGeneric(dst[j:], src[i:])
}

// decodeAVX decodes 32 characters per block, as two 16-lane registers, into
// 16 bytes. Its contract is the same as decodeAVX2's.
func decodeAVX(dst, src []byte) int {
	var (
		digits  = archsimd.LoadInt8x16(&digitLUT)
		letters = archsimd.LoadInt8x16(&letterLUT)
		lo      = archsimd.LoadInt8x16(&packLo)
		hi      = archsimd.LoadInt8x16(&packHi)
	)

	i, j := 0, 0
	for ; i+32 <= len(src); i, j = i+32, j+16 {
		a, okA := pairsAVX(archsimd.LoadUint8x16Slice(src[i:]), digits, letters)
		b, okB := pairsAVX(archsimd.LoadUint8x16Slice(src[i+16:]), digits, letters)
		if !okA || !okB {
			return i
		}

		a.PermuteOrZero(lo).AsUint8x16().Add(b.PermuteOrZero(hi).AsUint8x16()).StoreSlice(dst[j:])
	}

	if bad := decodeGeneric(dst[j:], src[i:]); bad >= 0 {
		return i + bad
	}
	return -1
}

// pairsAVX validates 16 characters and returns them as nibble pairs with
// each decoded byte in the odd lane of its pair.
func pairsAVX(v archsimd.Uint8x16, digits, letters archsimd.Int8x16) (pairs archsimd.Int8x16, ok bool) {
	var (
		c0 = archsimd.BroadcastUint8x16('0')
		c9 = archsimd.BroadcastUint8x16('9')
		cA = archsimd.BroadcastUint8x16('A')
		cF = archsimd.BroadcastUint8x16('F')
		ca = archsimd.BroadcastUint8x16('a')
		cf = archsimd.BroadcastUint8x16('f')
	)

	mDigit := v.GreaterEqual(c0).And(v.LessEqual(c9))
	mUpper := v.GreaterEqual(cA).And(v.LessEqual(cF))
	mLower := v.GreaterEqual(ca).And(v.LessEqual(cf))
	if mDigit.Or(mUpper).Or(mLower).ToBits() != 0xffff {
		return pairs, false
	}

	nib := digits.PermuteOrZero(v.Sub(c0).AsInt8x16()).AsUint8x16().Masked(mDigit).
		Add(letters.PermuteOrZero(v.Sub(archsimd.BroadcastUint8x16('A' - 1)).AsInt8x16()).AsUint8x16().Masked(mUpper)).
		Add(letters.PermuteOrZero(v.Sub(archsimd.BroadcastUint8x16('a' - 1)).AsInt8x16()).AsUint8x16().Masked(mLower)).
		AsInt8x16()

	return nib.Add(nib.AsInt16x8().ShiftAllLeft(12).AsInt8x16()), true
}
