package timeseries

// Step returns the sampling step in seconds per sample.
// Complexity: O(1).
func (ts *TimeSeries) Step() float64 { return ts.step }

// Len returns the number of samples.
// Complexity: O(1).
func (ts *TimeSeries) Len() int { return len(ts.data) }

// Duration returns the total series duration in seconds,
// always equal to Step() * float64(Len()).
// Complexity: O(1).
func (ts *TimeSeries) Duration() float64 {
	return ts.step * float64(len(ts.data))
}

// At returns the sample at index i, or ErrIndexOutOfRange when i lies
// outside [0, Len()).
// Complexity: O(1).
func (ts *TimeSeries) At(i int) (float64, error) {
	if i < 0 || i >= len(ts.data) {
		return 0, ErrIndexOutOfRange
	}

	return ts.data[i], nil
}

// Data returns a fresh copy of the sample sequence. Mutating the returned
// slice never affects the series.
// Complexity: O(n).
func (ts *TimeSeries) Data() []float64 {
	out := make([]float64, len(ts.data))
	copy(out, ts.data)

	return out
}

// Clone returns an independent deep copy of the series.
// Complexity: O(n).
func (ts *TimeSeries) Clone() *TimeSeries {
	return &TimeSeries{step: ts.step, data: ts.Data()}
}

// Scaled returns a new series with every sample multiplied by f; the
// receiver is left untouched.
// Complexity: O(n).
func (ts *TimeSeries) Scaled(f float64) *TimeSeries {
	out := make([]float64, len(ts.data))
	for i, v := range ts.data {
		out[i] = v * f
	}

	return &TimeSeries{step: ts.step, data: out}
}

// Equal reports whether other has the identical sampling step and
// bit-identical sample sequence. A nil other is never equal.
// Complexity: O(n).
func (ts *TimeSeries) Equal(other *TimeSeries) bool {
	if other == nil || ts.step != other.step || len(ts.data) != len(other.data) {
		return false
	}
	for i, v := range ts.data {
		if v != other.data[i] {
			return false
		}
	}

	return true
}
