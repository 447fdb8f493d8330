package gridindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	g, err := New(3, 5, 7)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rank())
	assert.Equal(t, int64(105), g.Volume())

	for i := int64(0); i < g.Volume(); i++ {
		p := g.Point(i)
		assert.Equal(t, i, g.Index(p))
	}
}

func TestIndexLayout(t *testing.T) {
	g, err := New(4, 4)
	require.NoError(t, err)

	// Axis 0 has the lowest stride.
	assert.Equal(t, int64(1), g.Index([]int{1, 0}))
	assert.Equal(t, int64(4), g.Index([]int{0, 1}))
	assert.Equal(t, []int{3, 2}, g.Point(11))
}

func TestWrapping(t *testing.T) {
	g, err := New(3, 3)
	require.NoError(t, err)

	assert.Equal(t, g.Point(2), g.Point(2+9))
	assert.Equal(t, g.Point(7), g.Point(7-2*9))
	assert.Equal(t, g.Index([]int{1, 1}), g.Index([]int{4, -2}))
}

func TestSentinelAndErrors(t *testing.T) {
	g, err := New(2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), g.Index([]int{1, 1, 1}))

	_, err = New()
	assert.ErrorIs(t, err, ErrNoBounds)

	_, err = New(4, 0)
	assert.Error(t, err)

	big := int64(1) << 32
	_, err = New(int(big), int(big))
	assert.ErrorIs(t, err, ErrVolumeOverflow)
}

func TestBoolCube(t *testing.T) {
	for rank := 2; rank <= 8; rank++ {
		g, err := BoolCube(rank)
		require.NoError(t, err)
		assert.Equal(t, int64(1)<<uint(rank), g.Volume())

		for i := int64(0); i < g.Volume(); i++ {
			bits := g.PointBools(i)
			assert.Equal(t, i, g.IndexBools(bits))
		}
	}

	_, err := BoolCube(0)
	assert.Error(t, err)
}
