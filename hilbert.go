package sfcgo

import (
	"math/bits"

	"github.com/hupe1980/sfcgo/internal/bitops"
)

// TotalBitBudget bounds bits-per-axis times dimensions so that every distance
// fits a non-negative int64. 62 rather than 63: a full 63-bit volume would
// make MaxDistance itself overflow whenever bits*dims lands exactly on 63.
const TotalBitBudget = 62

// hilbertEngine is the generic n-dimensional Hilbert curve over a
// power-of-two side, 2^bits units per axis. Distances are processed
// most-significant-first in digits of dims bits, one digit per recursion
// level, carrying an entry Gray code and a rotation axis across levels.
type hilbertEngine struct {
	dims int
	bits int
}

// NewHilbert constructs a Hilbert curve with the requested dimension count
// and side length. The side is rounded up to the next power of two; if
// log2(side) * dims would exceed TotalBitBudget, the per-axis bit width is
// narrowed to floor(TotalBitBudget/dims). Both adjustments are silent policy,
// not errors.
func NewHilbert(dims, side int, opts ...Option) (Curve, error) {
	if dims < 2 || dims > 31 {
		return nil, &ErrInvalidDimensions{Dimensions: dims}
	}
	if side < 2 {
		return nil, &ErrInvalidSide{Side: side}
	}
	return newHilbert(dims, side, applyOptions(opts)), nil
}

func newHilbert(dims, side int, o *options) *curve {
	b := bits.Len(uint(side - 1))
	if b*dims > TotalBitBudget {
		b = TotalBitBudget / dims
	}
	side = 1 << b
	max := int64(1) << (uint(b) * uint(dims))
	eng := &hilbertEngine{dims: dims, bits: b}
	return newCurve(geometry{dims: dims, side: side, max: max}, eng, b, o)
}

func (h *hilbertEngine) pointInto(d int64, p []int) {
	dims := uint(h.dims)
	mask := uint64(1)<<dims - 1
	var entry uint64
	var dir uint
	for i := h.bits - 1; i >= 0; i-- {
		w := (uint64(d) >> (uint(i) * dims)) & mask
		l := bitops.TransformInverse(entry, dir, dims, bitops.GrayEncode(w))
		for a := 0; a < h.dims; a++ {
			p[a] |= int((l>>uint(a))&1) << uint(i)
		}
		entry ^= bitops.RotL(bitops.EntryStep(w), dir+1, dims)
		dir = (dir + bitops.DirectionStep(w, dims) + 1) % dims
	}
}

func (h *hilbertEngine) distanceOf(p []int) int64 {
	dims := uint(h.dims)
	var entry, d uint64
	var dir uint
	for i := h.bits - 1; i >= 0; i-- {
		var l uint64
		for a := 0; a < h.dims; a++ {
			l |= uint64((p[a]>>uint(i))&1) << uint(a)
		}
		w := bitops.GrayDecode(bitops.Transform(entry, dir, dims, l))
		d = d<<dims | w
		entry ^= bitops.RotL(bitops.EntryStep(w), dir+1, dims)
		dir = (dir + bitops.DirectionStep(w, dims) + 1) % dims
	}
	return int64(d)
}
