package metric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManhattan(t *testing.T) {
	d, err := Manhattan([]int{0, 0, 0}, []int{1, -2, 3})
	require.NoError(t, err)
	assert.Equal(t, int64(6), d)

	_, err = Manhattan([]int{1}, []int{1, 2})
	assert.ErrorIs(t, err, ErrSizeMismatch)
}

func TestEuclidean(t *testing.T) {
	d, err := Euclidean([]int{0, 0}, []int{3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, d, 1e-12)

	sq, err := SquaredEuclidean([]int{0, 0}, []int{3, 4})
	require.NoError(t, err)
	assert.Equal(t, int64(25), sq)
}

func TestChebyshev(t *testing.T) {
	d, err := Chebyshev([]int{1, 5, -2}, []int{2, 2, -2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), d)
}

func TestProvider(t *testing.T) {
	for _, m := range []Metric{MetricManhattan, MetricEuclidean, MetricChebyshev} {
		f, err := Provider(m)
		require.NoError(t, err, m.String())

		d, err := f([]int{0, 0}, []int{0, 0})
		require.NoError(t, err)
		assert.Equal(t, 0.0, d)
	}

	_, err := Provider(Metric(99))
	assert.Error(t, err)
}
