// Package timeseries declares the TimeSeries container and its sentinel
// errors.
package timeseries

import "errors"

// Sentinel errors for series construction and access.
var (
	// ErrNonPositiveStep indicates a sampling step that is zero or negative.
	ErrNonPositiveStep = errors.New("timeseries: sampling step must be positive")
	// ErrNegativeLength indicates a requested sample count below zero.
	ErrNegativeLength = errors.New("timeseries: sample count must be non-negative")
	// ErrIndexOutOfRange indicates an At() index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("timeseries: sample index out of range")
)

// TimeSeries is an ordered sequence of real-valued samples on a fixed
// sampling grid. step is the grid spacing in seconds per sample; data
// holds one value per grid point. Both are fixed at construction and
// never mutated afterwards.
type TimeSeries struct {
	step float64
	data []float64
}
