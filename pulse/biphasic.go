package pulse

import (
	"fmt"

	"github.com/katalvlaran/stimwave/timeseries"
)

// Biphasic builds a charge-balanced pulse: two monophasic phases of
// opposite sign and equal duration phaseDur, separated by a zero gap of
// interphaseDur seconds. order decides whether the cathodic or the
// anodic phase leads. Because both phases land on the same sample grid,
// the output sums to exactly zero.
//
// Returns ErrUnknownPhaseOrder, timeseries.ErrNonPositiveStep,
// ErrNegativePhase, or ErrNegativeGap on invalid input.
//
// Complexity: O(n) where n is the number of output samples.
func Biphasic(order PhaseOrder, phaseDur, step, interphaseDur float64) (*timeseries.TimeSeries, error) {
	if err := order.valid(); err != nil {
		return nil, err
	}

	on, err := Monophasic(Anodic, phaseDur, step, MonoOptions{})
	if err != nil {
		return nil, err
	}
	off, err := Monophasic(Cathodic, phaseDur, step, MonoOptions{})
	if err != nil {
		return nil, err
	}

	gapN, err := timeseries.SampleCount(step, interphaseDur)
	if err != nil {
		return nil, err
	}
	if gapN < 0 {
		return nil, fmt.Errorf("%w: got %v s", ErrNegativeGap, interphaseDur)
	}

	first, second := off, on
	if order == AnodicFirst {
		first, second = on, off
	}

	buf := make([]float64, 0, first.Len()+gapN+second.Len())
	buf = append(buf, first.Data()...)
	buf = append(buf, make([]float64, gapN)...)
	buf = append(buf, second.Data()...)
	return timeseries.New(step, buf)
}
