package sfcgo

import (
	"github.com/hupe1980/sfcgo/packed"
)

// Curve is a bijection between distances in [0, MaxDistance()) and the points
// of a Dimensions()-dimensional grid with Side() units per axis. Consecutive
// distances map to geometrically adjacent or near points.
//
// All query operations are pure functions of immutable state and safe for
// unsynchronized concurrent use.
type Curve interface {
	// Dimensions returns the dimension count D.
	Dimensions() int

	// Side returns the units per axis.
	Side() int

	// MaxDistance returns Side()^D, the number of points on the curve.
	MaxDistance() int64

	// Width returns the smallest packed storage width able to index
	// MaxDistance, whether or not tables are stored.
	Width() packed.Width

	// Stored reports whether forward/inverse lookup tables were materialized
	// at construction.
	Stored() bool

	// Point returns the point at the given distance. The distance is
	// normalized into [0, MaxDistance()) by wrapping, so negative and
	// out-of-range inputs are valid.
	Point(distance int64) []int

	// Alter is Point writing into a caller-supplied buffer of length
	// Dimensions(), avoiding the allocation. It returns the buffer.
	Alter(buf []int, distance int64) []int

	// Coordinate returns one axis of Point(distance). The axis is normalized
	// modulo Dimensions().
	Coordinate(distance int64, axis int) int

	// Distance returns the unique distance whose point equals the argument,
	// or -1 if the point's dimension count does not match Dimensions().
	// Coordinates are normalized modulo Side(), wrapping like distances do.
	Distance(point []int) int64
}

// rawCurve is the uncached engine behind a Curve: the pure bit/stitch
// algorithms without normalization or table lookup.
type rawCurve interface {
	// pointInto writes the point for a normalized distance into p, which has
	// length Dimensions and is zeroed by the caller.
	pointInto(d int64, p []int)

	// distanceOf returns the distance of a valid, normalized point. It must
	// not retain or mutate p.
	distanceOf(p []int) int64
}

type geometry struct {
	dims int
	side int
	max  int64
}

func (g geometry) Dimensions() int    { return g.dims }
func (g geometry) Side() int          { return g.side }
func (g geometry) MaxDistance() int64 { return g.max }

func (g geometry) normalize(d int64) int64 {
	d %= g.max
	if d < 0 {
		d += g.max
	}
	return d
}

func (g geometry) wrapCoord(c int) int {
	c %= g.side
	if c < 0 {
		c += g.side
	}
	return c
}

// curve wires a rawCurve to the uniform query contract: wrap-around
// normalization, the -1 sentinel, and table-backed lookups when stored.
type curve struct {
	geometry
	raw rawCurve
	tab *tables
}

// newCurve builds the cached wrapper. axisBits > 0 marks the curve as
// tabulable with that per-axis radix width; composites pass 0 and stay
// unstored at their own level.
func newCurve(g geometry, raw rawCurve, axisBits int, o *options) *curve {
	c := &curve{geometry: g, raw: raw}
	if axisBits > 0 {
		c.tab = buildTables(raw, g, uint(axisBits), o.tableBudget)
	}
	return c
}

func (c *curve) Width() packed.Width {
	return packed.Fit(uint64(c.max - 1))
}

func (c *curve) Stored() bool {
	return c.tab != nil
}

func (c *curve) Point(distance int64) []int {
	return c.Alter(make([]int, c.dims), distance)
}

func (c *curve) Alter(buf []int, distance int64) []int {
	d := c.normalize(distance)
	if c.tab != nil {
		base := int(d) * c.dims
		for a := 0; a < c.dims; a++ {
			buf[a] = int(c.tab.forward.Get(base + a))
		}
		return buf
	}
	for a := 0; a < c.dims; a++ {
		buf[a] = 0
	}
	c.raw.pointInto(d, buf)
	return buf
}

func (c *curve) Coordinate(distance int64, axis int) int {
	axis = ((axis % c.dims) + c.dims) % c.dims
	d := c.normalize(distance)
	if c.tab != nil {
		return int(c.tab.forward.Get(int(d)*c.dims + axis))
	}
	buf := make([]int, c.dims)
	c.raw.pointInto(d, buf)
	return buf[axis]
}

func (c *curve) Distance(point []int) int64 {
	if len(point) != c.dims {
		return -1
	}
	p := make([]int, c.dims)
	for i, v := range point {
		p[i] = c.wrapCoord(v)
	}
	if c.tab != nil {
		idx := 0
		for a, v := range p {
			idx |= v << (c.tab.axisBits * uint(a))
		}
		return int64(c.tab.inverse.Get(idx))
	}
	return c.raw.distanceOf(p)
}

// New constructs the curve for the requested shape. The two composite
// Puka-Hilbert shapes (3 dimensions, side 40 or 1280) and the 3-dimensional
// base curve of side 5 dispatch to their dedicated constructors; every other
// shape goes to the generic Hilbert engine, which rounds the side up to a
// power of two and narrows it to the total-bit budget.
func New(dims, side int, opts ...Option) (Curve, error) {
	if dims == 3 {
		switch side {
		case baseSide:
			return NewPukaHilbert5(opts...)
		case 40:
			return NewPukaHilbert40(opts...)
		case 1280:
			return NewPukaHilbert1280(opts...)
		}
	}
	return NewHilbert(dims, side, opts...)
}
