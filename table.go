package sfcgo

import "github.com/hupe1980/sfcgo/packed"

// tables holds the precomputed forward (distance -> coordinates) and inverse
// (flattened point index -> distance) lookups of a stored curve. Both are
// frozen packed sequences, built once at construction and immutable after.
type tables struct {
	width    packed.Width
	forward  *packed.Frozen // MaxDistance * dims entries, one per axis
	inverse  *packed.Frozen // 1 << (axisBits*dims) entries
	axisBits uint
}

// buildTables materializes lookup tables when the width policy allows:
// 1-byte elements up to 2^8 points, 2-byte up to 2^16, 4-byte up to the
// configured budget, nothing beyond that. The inverse table is indexed by the
// fixed-radix encoding sum(coord[a] << (axisBits*a)), which requires every
// axis to share the same bit width; callers that cannot guarantee that pass
// axisBits 0 through newCurve and never reach here.
func buildTables(raw rawCurve, g geometry, axisBits uint, budget int64) *tables {
	var w packed.Width
	switch {
	case g.max <= 1<<8:
		w = packed.W1
	case g.max <= 1<<16:
		w = packed.W2
	case g.max <= budget && g.max <= 1<<32:
		w = packed.W4
	default:
		return nil
	}

	fwd := packed.NewSequenceLen(w, int(g.max)*g.dims)
	inv := packed.NewSequenceLen(w, 1<<(axisBits*uint(g.dims)))

	p := make([]int, g.dims)
	for d := int64(0); d < g.max; d++ {
		for a := range p {
			p[a] = 0
		}
		raw.pointInto(d, p)

		idx := 0
		base := int(d) * g.dims
		for a, c := range p {
			fwd.Set(base+a, uint64(c))
			idx |= c << (axisBits * uint(a))
		}
		inv.Set(idx, uint64(d))
	}

	return &tables{
		width:    w,
		forward:  fwd.Freeze(),
		inverse:  inv.Freeze(),
		axisBits: axisBits,
	}
}
