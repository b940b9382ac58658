package pulse

import (
	"fmt"

	"gonum.org/v1/gonum/interp"

	"github.com/katalvlaran/stimwave/timeseries"
)

// Carrier produces a waveform of the requested duration in seconds.
// TrainCarrier is the standard implementation; any generator with the
// same shape (for example a test stub) satisfies the contract.
type Carrier func(duration float64) (*timeseries.TimeSeries, error)

// TrainCarrier adapts Train into a Carrier: the returned generator
// reuses opts for every call and only overrides Duration.
func TrainCarrier(step float64, opts TrainOptions) Carrier {
	return func(duration float64) (*timeseries.TimeSeries, error) {
		o := opts
		o.Duration = duration
		return Train(step, o)
	}
}

// Modulate multiplies a carrier waveform by a slow envelope.
//
// envelope is sampled at rate Hz, so it spans len(envelope)/rate
// seconds; the carrier is generated for exactly that duration. The
// envelope is then resampled by piecewise-linear interpolation onto the
// carrier's (usually much finer) sample grid, and each carrier sample
// is multiplied by the interpolated envelope value times gain.
//
// A single-sample envelope acts as a constant. Returns
// ErrEmptyEnvelope, ErrNonPositiveRate, ErrNilCarrier, or any error of
// the carrier generator.
//
// Complexity: O(n + m) where n is the carrier length and m the
// envelope length.
func Modulate(envelope []float64, rate float64, carrier Carrier, gain float64) (*timeseries.TimeSeries, error) {
	if len(envelope) == 0 {
		return nil, ErrEmptyEnvelope
	}
	if rate <= 0 {
		return nil, fmt.Errorf("%w: got %v Hz", ErrNonPositiveRate, rate)
	}
	if carrier == nil {
		return nil, ErrNilCarrier
	}

	duration := float64(len(envelope)) / rate
	base, err := carrier(duration)
	if err != nil {
		return nil, fmt.Errorf("pulse: carrier generation failed: %w", err)
	}
	n := base.Len()
	if n == 0 {
		return base.Clone(), nil
	}

	env, err := resampleLinear(envelope, n)
	if err != nil {
		return nil, err
	}
	data := base.Data()
	for i := range data {
		data[i] *= env[i] * gain
	}
	return timeseries.New(base.Step(), data)
}

// resampleLinear stretches src onto n samples with piecewise-linear
// interpolation over a shared unit parameter, keeping both endpoints
// aligned. A single-source sample fans out as a constant.
func resampleLinear(src []float64, n int) ([]float64, error) {
	out := make([]float64, n)
	if len(src) == 1 {
		for i := range out {
			out[i] = src[0]
		}
		return out, nil
	}

	xs := make([]float64, len(src))
	for i := range xs {
		xs[i] = float64(i) / float64(len(src)-1)
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, src); err != nil {
		return nil, fmt.Errorf("pulse: envelope interpolation failed: %w", err)
	}

	if n == 1 {
		out[0] = pl.Predict(0)
		return out, nil
	}
	for j := range out {
		out[j] = pl.Predict(float64(j) / float64(n-1))
	}
	return out, nil
}
