package metric

import (
	"errors"
	"fmt"
	"math"
)

// ErrSizeMismatch is returned when the two vectors differ in length.
var ErrSizeMismatch = errors.New("vector sizes do not match")

// Manhattan calculates the L1 distance between two integer vectors.
func Manhattan(a, b []int) (int64, error) {
	if len(a) != len(b) {
		return 0, ErrSizeMismatch
	}
	var sum int64
	for i := range a {
		d := int64(a[i]) - int64(b[i])
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum, nil
}

// SquaredEuclidean calculates the squared L2 distance between two integer
// vectors.
func SquaredEuclidean(a, b []int) (int64, error) {
	if len(a) != len(b) {
		return 0, ErrSizeMismatch
	}
	var sum int64
	for i := range a {
		d := int64(a[i]) - int64(b[i])
		sum += d * d
	}
	return sum, nil
}

// Euclidean calculates the L2 distance between two integer vectors.
func Euclidean(a, b []int) (float64, error) {
	sq, err := SquaredEuclidean(a, b)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(float64(sq)), nil
}

// Chebyshev calculates the L-infinity distance between two integer vectors.
func Chebyshev(a, b []int) (int64, error) {
	if len(a) != len(b) {
		return 0, ErrSizeMismatch
	}
	var max int64
	for i := range a {
		d := int64(a[i]) - int64(b[i])
		if d < 0 {
			d = -d
		}
		if d > max {
			max = d
		}
	}
	return max, nil
}

// Metric identifies a distance metric.
type Metric int

const (
	MetricManhattan Metric = iota
	MetricEuclidean
	MetricChebyshev
)

func (m Metric) String() string {
	switch m {
	case MetricManhattan:
		return "Manhattan"
	case MetricEuclidean:
		return "Euclidean"
	case MetricChebyshev:
		return "Chebyshev"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// Func is a function type for distance calculation.
type Func func(a, b []int) (float64, error)

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricManhattan:
		return func(a, b []int) (float64, error) {
			d, err := Manhattan(a, b)
			return float64(d), err
		}, nil
	case MetricEuclidean:
		return Euclidean, nil
	case MetricChebyshev:
		return func(a, b []int) (float64, error) {
			d, err := Chebyshev(a, b)
			return float64(d), err
		}, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
