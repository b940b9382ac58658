package timeseries

import "math"

// New constructs a TimeSeries with the given sampling step (seconds per
// sample) and sample values. The input slice is deep-copied so the caller
// keeps sole ownership of its buffer; a nil slice yields an empty series.
// Returns ErrNonPositiveStep when step <= 0.
// Complexity: O(n) time and memory.
func New(step float64, data []float64) (*TimeSeries, error) {
	if step <= 0 {
		return nil, ErrNonPositiveStep
	}
	samples := make([]float64, len(data))
	copy(samples, data)

	return &TimeSeries{step: step, data: samples}, nil
}

// Zeros constructs an all-zero TimeSeries of n samples at the given step.
// Returns ErrNonPositiveStep when step <= 0 and ErrNegativeLength when
// n < 0. Zeros(step, 0) and New(step, nil) are equivalent.
// Complexity: O(n) time and memory.
func Zeros(step float64, n int) (*TimeSeries, error) {
	if step <= 0 {
		return nil, ErrNonPositiveStep
	}
	if n < 0 {
		return nil, ErrNegativeLength
	}

	return &TimeSeries{step: step, data: make([]float64, n)}, nil
}

// SampleCount converts a duration in seconds to a sample count on the
// grid defined by step (seconds per sample), rounding half to even.
// Every duration→length conversion in this module goes through here;
// deriving counts any other way breaks length agreement between phases,
// gaps, and envelopes.
// Returns ErrNonPositiveStep when step <= 0.
// Complexity: O(1).
func SampleCount(step, duration float64) (int, error) {
	if step <= 0 {
		return 0, ErrNonPositiveStep
	}

	return int(math.RoundToEven(duration / step)), nil
}
