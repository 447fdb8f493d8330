package bitops

import "math/bits"

// GrayEncode returns the binary-reflected Gray code of n.
func GrayEncode(n uint64) uint64 {
	return n ^ (n >> 1)
}

// GrayDecode is the exact inverse of GrayEncode for all uint64 inputs.
func GrayDecode(n uint64) uint64 {
	p := n
	for n >>= 1; n != 0; n >>= 1 {
		p ^= n
	}
	return p
}

// RotL rotates the low width bits of x left by k. Bits at or above width must
// be zero on input and are zero on output.
func RotL(x uint64, k, width uint) uint64 {
	k %= width
	if k == 0 {
		return x
	}
	mask := uint64(1)<<width - 1
	return ((x << k) | (x >> (width - k))) & mask
}

// RotR rotates the low width bits of x right by k.
func RotR(x uint64, k, width uint) uint64 {
	k %= width
	if k == 0 {
		return x
	}
	mask := uint64(1)<<width - 1
	return ((x >> k) | (x << (width - k))) & mask
}

// EntryStep returns the Gray code of the entry point of the sub-cube selected
// by digit x, used to reorient the next, finer level of the curve.
func EntryStep(x uint64) uint64 {
	if x == 0 {
		return 0
	}
	return GrayEncode(2 * ((x - 1) / 2))
}

// DirectionStep returns the axis of rotation introduced by digit x: the number
// of trailing set bits of (x-1)|1, reduced modulo dims.
func DirectionStep(x uint64, dims uint) uint {
	if x == 0 {
		return 0
	}
	return uint(bits.TrailingZeros64(^((x - 1) | 1))) % dims
}

// Transform maps a point digit to its raw curve digit for the level with
// state (entry, direction). TransformInverse undoes it.
func Transform(entry uint64, direction, width uint, x uint64) uint64 {
	return RotR(x^entry, direction+1, width)
}

// TransformInverse maps a raw curve digit back to its point digit.
func TransformInverse(entry uint64, direction, width uint, x uint64) uint64 {
	return RotL(x, direction+1, width) ^ entry
}
