// Package sfcgo provides bijective, locality-preserving mappings between a
// linear distance and a point on an n-dimensional integer grid, along
// space-filling curves.
//
// Two curve families are supported: a generic n-dimensional Hilbert curve for
// power-of-two side lengths and any dimension count in [2,31], and the
// composite Puka-Hilbert curves, which stitch a fixed 5x5x5 base curve into
// the cells of a coarser Hilbert curve to reach the 3-dimensional side lengths
// 40 and 1280.
//
// # Quick Start
//
//	c, _ := sfcgo.NewHilbert(2, 4)
//	p := c.Point(5)          // point on the curve at distance 5
//	d := c.Distance(p)       // 5 again
//
//	ph, _ := sfcgo.NewPukaHilbert40()
//	ph.Point(0)              // (0,0,0)
//
// Distances wrap: Point(d) == Point(d + k*MaxDistance()) for any integer k,
// including negative d. Distance returns -1 when handed a point of the wrong
// dimension count.
//
// # Precomputed Tables
//
// Small curves materialize forward and inverse lookup tables at construction,
// stored as frozen packed sequences; larger curves answer every query through
// the O(bits) bit algorithm. The memory ceiling of the 4-byte table tier is
// configurable:
//
//	c, _ := sfcgo.NewHilbert(3, 64, sfcgo.WithTableBudget(1<<24))
//
// After construction a curve is immutable and all queries are safe for
// unsynchronized concurrent use. Produced distances pack densely into the
// containers of the packed subpackage:
//
//	s := packed.NewSequence(c.Width())
//	for _, p := range points {
//	    s.Append(uint64(c.Distance(p)))
//	}
package sfcgo
