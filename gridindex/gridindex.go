package gridindex

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNoBounds is returned when New is called without bounds.
	ErrNoBounds = errors.New("gridindex: at least one bound required")

	// ErrVolumeOverflow is returned when the total volume exceeds int64.
	ErrVolumeOverflow = errors.New("gridindex: total volume exceeds int64")
)

// Grid is a bijection between [0, Volume()) and the points of a box with the
// given per-axis bounds. Axis 0 has the lowest stride, matching the
// fixed-radix inverse-table encoding of the curve package.
type Grid struct {
	bounds []int
	volume int64
}

// New creates a grid with one bound per axis, each at least 1.
func New(bounds ...int) (*Grid, error) {
	if len(bounds) == 0 {
		return nil, ErrNoBounds
	}
	volume := int64(1)
	for _, b := range bounds {
		if b < 1 {
			return nil, fmt.Errorf("gridindex: invalid bound %d", b)
		}
		if volume > math.MaxInt64/int64(b) {
			return nil, ErrVolumeOverflow
		}
		volume *= int64(b)
	}
	g := &Grid{bounds: make([]int, len(bounds)), volume: volume}
	copy(g.bounds, bounds)
	return g, nil
}

// BoolCube creates the rank-dimensional boolean hypercube, every bound 2.
// It replaces the per-arity constructors a fixed-rank design would need.
func BoolCube(rank int) (*Grid, error) {
	if rank < 1 || rank > 62 {
		return nil, fmt.Errorf("gridindex: invalid bool cube rank %d", rank)
	}
	bounds := make([]int, rank)
	for i := range bounds {
		bounds[i] = 2
	}
	return New(bounds...)
}

// Rank returns the number of axes.
func (g *Grid) Rank() int { return len(g.bounds) }

// Volume returns the number of points.
func (g *Grid) Volume() int64 { return g.volume }

// Bounds returns a copy of the per-axis bounds.
func (g *Grid) Bounds() []int {
	out := make([]int, len(g.bounds))
	copy(out, g.bounds)
	return out
}

// Index returns the flattened index of the point, or -1 if the point's rank
// does not match. Coordinates wrap modulo their bound, negatives included.
func (g *Grid) Index(point []int) int64 {
	if len(point) != len(g.bounds) {
		return -1
	}
	var idx int64
	stride := int64(1)
	for a, c := range point {
		b := g.bounds[a]
		c %= b
		if c < 0 {
			c += b
		}
		idx += int64(c) * stride
		stride *= int64(b)
	}
	return idx
}

// Point returns the point at the flattened index, normalized into
// [0, Volume()) by wrapping.
func (g *Grid) Point(index int64) []int {
	return g.Alter(make([]int, len(g.bounds)), index)
}

// Alter is Point writing into a caller-supplied buffer of length Rank().
func (g *Grid) Alter(buf []int, index int64) []int {
	index %= g.volume
	if index < 0 {
		index += g.volume
	}
	for a, b := range g.bounds {
		buf[a] = int(index % int64(b))
		index /= int64(b)
	}
	return buf
}

// IndexBools flattens a boolean point of a BoolCube-shaped grid. It returns
// -1 when the rank does not match or any bound is not 2.
func (g *Grid) IndexBools(point []bool) int64 {
	if len(point) != len(g.bounds) {
		return -1
	}
	var idx int64
	for a, set := range point {
		if g.bounds[a] != 2 {
			return -1
		}
		if set {
			idx |= 1 << uint(a)
		}
	}
	return idx
}

// PointBools is the inverse of IndexBools, wrapping the index like Point.
func (g *Grid) PointBools(index int64) []bool {
	index %= g.volume
	if index < 0 {
		index += g.volume
	}
	out := make([]bool, len(g.bounds))
	for a := range out {
		out[a] = index&(1<<uint(a)) != 0
	}
	return out
}
