package sfcgo

// Composite Puka-Hilbert curves reach 3-dimensional side lengths that are not
// powers of two by nesting a fine curve (the 5x5x5 base, or a smaller
// composite) inside every cell of a coarser Hilbert curve.
//
// The coarse curve runs at twice the cell resolution: each fine cell
// corresponds to a group of 2^3 consecutive coarse visits covering one
// aligned 2x2x2 block. The group's entry and exit corners differ along
// exactly one axis; that axis and its sign orient the fine curve inside the
// cell (direction), and the entry corner's parities on the two remaining axes
// select the reflections (rotation). Getting both right is what keeps the
// curve continuous across cell seams.

const groupSize = 1 << 3 // coarse visits per fine cell

// fineCurve is what the stitching nests into a cell: a raw engine whose
// canonical path enters at the all-zero corner and exits at (side-1, 0, 0).
type fineCurve interface {
	rawCurve
	fineSide() int
}

func otherAxes(axis int) (int, int) {
	switch axis {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}

// groupDirection encodes which axis changes between the group's entry and
// exit corner, and its sign, in fixed priority order: axis 0 increasing,
// axis 0 decreasing, axis 1 increasing, and so on.
func groupDirection(s, e []int) int {
	for a := 0; a < 3; a++ {
		if e[a] > s[a] {
			return a << 1
		}
		if e[a] < s[a] {
			return a<<1 | 1
		}
	}
	return 0
}

// groupRotation derives the reflection bits for the two non-direction axes
// from the parity of the group entry corner on those axes. With a base curve
// whose entry and exit both sit at zero on the non-travel axes, the parities
// are used directly: an odd entry coordinate means the coarse curve enters
// this cell from the high side of that axis, so the fine curve must be
// reflected there.
func groupRotation(s []int, dir int) int {
	o1, o2 := otherAxes(dir >> 1)
	return (s[o1] & 1) | (s[o2]&1)<<1
}

// orientedPoint maps a fine offset to cell-local coordinates under the given
// direction and rotation: the canonical travel axis lands on the direction
// axis (flipped when decreasing), and the remaining two canonical axes land
// on the lower/higher non-direction axes with their rotation reflections.
func orientedPoint(f fineCurve, off int64, dir, rot int, out []int) {
	var q [3]int
	f.pointInto(off, q[:])

	n := f.fineSide() - 1
	axis := dir >> 1
	o1, o2 := otherAxes(axis)

	out[axis] = q[0]
	if dir&1 == 1 {
		out[axis] = n - q[0]
	}
	out[o1] = q[1]
	if rot&1 == 1 {
		out[o1] = n - q[1]
	}
	out[o2] = q[2]
	if rot&2 != 0 {
		out[o2] = n - q[2]
	}
}

// orientedDistance is the exact inverse of orientedPoint.
func orientedDistance(f fineCurve, p []int, dir, rot int) int64 {
	n := f.fineSide() - 1
	axis := dir >> 1
	o1, o2 := otherAxes(axis)

	var q [3]int
	q[0] = p[axis]
	if dir&1 == 1 {
		q[0] = n - p[axis]
	}
	q[1] = p[o1]
	if rot&1 == 1 {
		q[1] = n - p[o1]
	}
	q[2] = p[o2]
	if rot&2 != 0 {
		q[2] = n - p[o2]
	}
	return f.distanceOf(q[:])
}

// compositeEngine stitches pointsPerCell-sized copies of the fine curve into
// the cells of a double-resolution coarse Hilbert curve.
type compositeEngine struct {
	side     int
	cellSide int
	ppc      int64 // cellSide^3, fine points per cell
	coarse   Curve // Hilbert curve of side 2*(side/cellSide), table-backed when the budget allows
	fine     fineCurve
}

func newCompositeEngine(side, cellSide int, fine fineCurve, o *options) *compositeEngine {
	cells := side / cellSide
	cs := int64(cellSide)
	return &compositeEngine{
		side:     side,
		cellSide: cellSide,
		ppc:      cs * cs * cs,
		coarse:   newHilbert(3, 2*cells, o),
		fine:     fine,
	}
}

func (c *compositeEngine) fineSide() int { return c.side }

// cellOrientation reads the coarse group's entry and exit corners and derives
// the cell origin (the entry corner halved, since groups span two coarse
// cells per axis), direction and rotation.
func (c *compositeEngine) cellOrientation(group int64) (s [3]int, dir, rot int) {
	var e [3]int
	c.coarse.Alter(s[:], group)
	c.coarse.Alter(e[:], group+groupSize-1)
	dir = groupDirection(s[:], e[:])
	rot = groupRotation(s[:], dir)
	return s, dir, rot
}

func (c *compositeEngine) pointInto(d int64, p []int) {
	cell := d / c.ppc
	off := d % c.ppc
	group := cell * groupSize

	s, dir, rot := c.cellOrientation(group)
	orientedPoint(c.fine, off, dir, rot, p)
	for a := 0; a < 3; a++ {
		p[a] += (s[a] >> 1) * c.cellSide
	}
}

func (c *compositeEngine) distanceOf(p []int) int64 {
	var dbl, f [3]int
	for a := 0; a < 3; a++ {
		dbl[a] = p[a] / c.cellSide * 2
		f[a] = p[a] % c.cellSide
	}

	// Any visit of the doubled coarse point belongs to the right group;
	// normalizing to the group start recovers the shared orientation.
	group := c.coarse.Distance(dbl[:]) &^ (groupSize - 1)

	_, dir, rot := c.cellOrientation(group)
	return group/groupSize*c.ppc + orientedDistance(c.fine, f[:], dir, rot)
}

// NewPukaHilbert40 constructs the first-level composite curve: 8 cells of the
// 5x5x5 base curve per axis, oriented by a Hilbert curve of side 16, for 40
// units per axis and 64000 points.
func NewPukaHilbert40(opts ...Option) (Curve, error) {
	o := applyOptions(opts)
	eng := newCompositeEngine(40, baseSide, newPukaBase(), o)
	side := int64(40)
	g := geometry{dims: 3, side: 40, max: side * side * side}
	return newCurve(g, eng, 0, o), nil
}

// NewPukaHilbert1280 constructs the second-level composite curve: 32 cells of
// the 40-unit composite per axis, oriented by a Hilbert curve of side 64, for
// 1280 units per axis and 1280^3 points.
func NewPukaHilbert1280(opts ...Option) (Curve, error) {
	o := applyOptions(opts)
	inner := newCompositeEngine(40, baseSide, newPukaBase(), o)
	eng := newCompositeEngine(1280, 40, inner, o)
	side := int64(1280)
	g := geometry{dims: 3, side: 1280, max: side * side * side}
	return newCurve(g, eng, 0, o), nil
}
