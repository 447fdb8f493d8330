package sfcgo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sfcgo/packed"
	"github.com/hupe1980/sfcgo/testutil"
)

// testCurves builds one curve per engine kind, stored and unstored where the
// distinction exists.
func testCurves(t *testing.T) map[string]Curve {
	t.Helper()

	curves := make(map[string]Curve)
	add := func(name string, c Curve, err error) {
		require.NoError(t, err)
		curves[name] = c
	}

	c, err := NewHilbert(2, 16)
	add("hilbert-2-16", c, err)
	c, err = NewHilbert(4, 8)
	add("hilbert-4-8", c, err)
	c, err = NewHilbert(3, 64, WithTableBudget(0))
	add("hilbert-3-64-unstored", c, err)
	c, err = NewPukaHilbert5()
	add("puka-5", c, err)
	c, err = NewPukaHilbert40()
	add("puka-40", c, err)
	return curves
}

func TestCurveContract(t *testing.T) {
	for name, c := range testCurves(t) {
		t.Run(name, func(t *testing.T) {
			rng := testutil.NewRNG(7)
			max := c.MaxDistance()
			buf := make([]int, c.Dimensions())

			for i := 0; i < 500; i++ {
				d := rng.Int63n(max)

				// Alter agrees with Point and returns its buffer.
				p := c.Point(d)
				got := c.Alter(buf, d)
				require.Equal(t, p, got)
				require.Same(t, &buf[0], &got[0])

				// Coordinate agrees axis by axis, including wrapped axes.
				for a := 0; a < c.Dimensions(); a++ {
					require.Equal(t, p[a], c.Coordinate(d, a))
					require.Equal(t, p[a], c.Coordinate(d, a+c.Dimensions()))
				}

				// Distances wrap.
				require.Equal(t, p, c.Point(d+max))
				require.Equal(t, p, c.Point(d-max))

				// Coordinates wrap the same way.
				shifted := make([]int, len(p))
				for a := range p {
					shifted[a] = p[a] + c.Side()
				}
				require.Equal(t, d, c.Distance(shifted))
				for a := range p {
					shifted[a] = p[a] - c.Side()
				}
				require.Equal(t, d, c.Distance(shifted))
			}

			// Dimension mismatches yield the sentinel.
			assert.Equal(t, int64(-1), c.Distance(nil))
			assert.Equal(t, int64(-1), c.Distance(make([]int, c.Dimensions()+1)))
		})
	}
}

func TestCurveDistanceDoesNotMutate(t *testing.T) {
	c, err := NewPukaHilbert40()
	require.NoError(t, err)

	p := []int{-3, 47, 12}
	want := append([]int(nil), p...)
	c.Distance(p)
	assert.Equal(t, want, p)
}

func TestCurveWidthPackedStorage(t *testing.T) {
	// A curve's Width is the packed width its distances need, so a sequence of
	// that width can carry any distance losslessly.
	for name, c := range testCurves(t) {
		t.Run(name, func(t *testing.T) {
			seq := packed.NewSequence(c.Width())
			rng := testutil.NewRNG(11)

			dists := make([]int64, 64)
			for i := range dists {
				dists[i] = rng.Int63n(c.MaxDistance())
				seq.Append(uint64(dists[i]))
			}

			frozen := seq.Freeze()
			for i, d := range dists {
				require.Equal(t, uint64(d), frozen.Get(i))
			}
		})
	}
}

func ExampleNewHilbert() {
	c, _ := NewHilbert(2, 4)

	fmt.Println(c.Point(5))
	fmt.Println(c.Distance([]int{3, 3}))
	// Output:
	// [0 3]
	// 10
}

func ExampleNew() {
	c, _ := New(3, 40)

	fmt.Println(c.Side(), c.MaxDistance())
	fmt.Println(c.Point(0))
	// Output:
	// 40 64000
	// [0 0 0]
}
