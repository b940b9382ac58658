package pulse

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/stimwave/timeseries"
)

// Train builds a periodic pulse train on the sample grid defined by
// step (seconds per sample).
//
// One envelope lasts 1/Frequency seconds and holds, in Packing order,
// the onset delay, one biphasic pulse scaled by Amplitude, and the
// remaining gap. ceil(Duration*Frequency) envelopes are concatenated,
// zero-padded or truncated so the output holds exactly
// timeseries.SampleCount(step, Duration) samples. A truncated trailing
// envelope is kept as-is, so the final pulse may be cut mid-phase.
//
// |Frequency| <= 1e-8 or |Amplitude| <= 1e-8 switches the train off:
// the result is all zeros of the full duration and no further parameter
// validation takes place.
//
// Returns timeseries.ErrNonPositiveStep, ErrNegativeDelay,
// ErrNegativePhase, ErrNegativeGap, ErrUnknownPhaseOrder,
// ErrUnknownPacking, or ErrEnvelopeOverflow when the delay plus pulse
// cannot fit inside one envelope.
//
// Complexity: O(n) where n is the number of output samples.
func Train(step float64, opts TrainOptions) (*timeseries.TimeSeries, error) {
	stimN, err := timeseries.SampleCount(step, opts.Duration)
	if err != nil {
		return nil, err
	}

	// A switched-off train is all zeros; nothing else is validated.
	if math.Abs(opts.Frequency) <= zeroTol || math.Abs(opts.Amplitude) <= zeroTol {
		return timeseries.Zeros(step, stimN)
	}

	if err := opts.Packing.valid(); err != nil {
		return nil, err
	}

	envN, err := timeseries.SampleCount(step, 1/opts.Frequency)
	if err != nil {
		return nil, err
	}
	delayN, err := timeseries.SampleCount(step, opts.Delay)
	if err != nil {
		return nil, err
	}
	if delayN < 0 {
		return nil, fmt.Errorf("%w: got %v s", ErrNegativeDelay, opts.Delay)
	}

	bip, err := Biphasic(opts.Order, opts.PhaseDuration, step, opts.InterphaseDuration)
	if err != nil {
		return nil, err
	}
	carrier := bip.Data()
	floats.Scale(opts.Amplitude, carrier)
	pulseN := len(carrier)

	gapN := envN - delayN - pulseN
	if gapN < 0 {
		return nil, fmt.Errorf("%w: delay %d + pulse %d samples exceed %d-sample envelope",
			ErrEnvelopeOverflow, delayN, pulseN, envN)
	}

	envelope := make([]float64, envN)
	at := delayN
	if opts.Packing == GapFirst {
		at = delayN + gapN
	}
	copy(envelope[at:], carrier)

	repeats := int(math.Ceil(opts.Duration * opts.Frequency))
	if repeats < 0 {
		repeats = 0
	}
	if stimN < 0 {
		stimN = 0
	}

	buf := make([]float64, 0, repeats*envN)
	for j := 0; j < repeats; j++ {
		buf = append(buf, envelope...)
	}
	if len(buf) < stimN {
		buf = append(buf, make([]float64, stimN-len(buf))...)
	}
	return timeseries.New(step, buf[:stimN])
}
