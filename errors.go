package sfcgo

import "fmt"

// ErrInvalidDimensions indicates a dimension count outside the supported
// range [2,31].
type ErrInvalidDimensions struct {
	Dimensions int
}

func (e *ErrInvalidDimensions) Error() string {
	return fmt.Sprintf("invalid dimension count: %d (supported range is 2..31)", e.Dimensions)
}

// ErrInvalidSide indicates a requested side length below 2.
type ErrInvalidSide struct {
	Side int
}

func (e *ErrInvalidSide) Error() string {
	return fmt.Sprintf("invalid side length: %d (must be at least 2)", e.Side)
}
