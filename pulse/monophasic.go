package pulse

import (
	"fmt"

	"github.com/katalvlaran/stimwave/timeseries"
)

// Monophasic builds a single rectangular phase of unit height on the
// sample grid defined by step (seconds per sample).
//
// The output layout is [delay zeros | ±1 phase | trailing zeros],
// truncated to the total duration. The phase sign follows pol: +1 for
// Anodic, -1 for Cathodic. opts.StimDur <= 0 selects the natural total
// duration phaseDur + opts.Delay; an explicit shorter StimDur silently
// truncates the phase (or even the delay) rather than failing.
//
// Durations are mapped to sample counts by timeseries.SampleCount, so a
// duration that rounds to zero samples occupies no grid cells.
//
// Returns ErrUnknownPolarity, timeseries.ErrNonPositiveStep,
// ErrNegativePhase, or ErrNegativeDelay on invalid input.
//
// Complexity: O(n) where n is the number of output samples.
func Monophasic(pol Polarity, phaseDur, step float64, opts MonoOptions) (*timeseries.TimeSeries, error) {
	sign, err := pol.sign()
	if err != nil {
		return nil, err
	}

	phaseN, err := timeseries.SampleCount(step, phaseDur)
	if err != nil {
		return nil, err
	}
	if phaseN < 0 {
		return nil, fmt.Errorf("%w: got %v s", ErrNegativePhase, phaseDur)
	}

	delayN, err := timeseries.SampleCount(step, opts.Delay)
	if err != nil {
		return nil, err
	}
	if delayN < 0 {
		return nil, fmt.Errorf("%w: got %v s", ErrNegativeDelay, opts.Delay)
	}

	stimDur := opts.StimDur
	if stimDur <= 0 {
		stimDur = phaseDur + opts.Delay
	}
	stimN, err := timeseries.SampleCount(step, stimDur)
	if err != nil {
		return nil, err
	}

	out := make([]float64, stimN)
	end := delayN + phaseN
	if end > stimN {
		end = stimN
	}
	for i := delayN; i < end; i++ {
		out[i] = sign
	}
	return timeseries.New(step, out)
}
