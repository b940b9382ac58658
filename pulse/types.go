// Package pulse defines the closed parameter enumerations, sentinel
// errors, and option bundles shared by the waveform builders.
package pulse

import (
	"errors"
	"fmt"
)

// Sentinel errors for waveform construction. Builders validate eagerly,
// before any buffer allocation, and return exactly these sentinels
// (optionally wrapped with context); callers match with errors.Is.
var (
	// ErrUnknownPolarity indicates a Polarity value outside the closed set.
	ErrUnknownPolarity = errors.New("pulse: unknown polarity")
	// ErrUnknownPhaseOrder indicates a PhaseOrder value outside the closed set.
	ErrUnknownPhaseOrder = errors.New("pulse: unknown phase order")
	// ErrUnknownPacking indicates a Packing value outside the closed set.
	ErrUnknownPacking = errors.New("pulse: unknown envelope packing")
	// ErrNegativeDelay indicates a delay that maps below the sample grid origin.
	ErrNegativeDelay = errors.New("pulse: delay must be non-negative")
	// ErrNegativePhase indicates a negative phase duration.
	ErrNegativePhase = errors.New("pulse: phase duration must be non-negative")
	// ErrNegativeGap indicates a negative interphase gap duration.
	ErrNegativeGap = errors.New("pulse: interphase gap must be non-negative")
	// ErrEnvelopeOverflow indicates that one pulse plus its onset delay
	// does not fit inside a single 1/frequency envelope.
	ErrEnvelopeOverflow = errors.New("pulse: pulse and delay must fit within one period")
	// ErrEmptyEnvelope indicates a modulation envelope with no samples.
	ErrEmptyEnvelope = errors.New("pulse: modulation envelope must not be empty")
	// ErrNonPositiveRate indicates an envelope sample rate that is zero or negative.
	ErrNonPositiveRate = errors.New("pulse: envelope sample rate must be positive")
	// ErrNilCarrier indicates a nil carrier generator.
	ErrNilCarrier = errors.New("pulse: carrier generator must not be nil")
)

// zeroTol is the absolute tolerance under which a train frequency or
// amplitude counts as switched off, selecting the all-zero degenerate
// output instead of pulse assembly.
const zeroTol = 1e-8

// Polarity selects the sign of a monophasic phase.
type Polarity int

const (
	// Anodic phases carry positive current (+1 before amplitude scaling).
	Anodic Polarity = iota
	// Cathodic phases carry negative current (-1 before amplitude scaling).
	Cathodic
)

// String returns the conventional token for the polarity.
func (p Polarity) String() string {
	switch p {
	case Anodic:
		return "anodic"
	case Cathodic:
		return "cathodic"
	default:
		return fmt.Sprintf("Polarity(%d)", int(p))
	}
}

// sign maps the polarity onto its unit sample value, rejecting values
// outside the closed set.
func (p Polarity) sign() (float64, error) {
	switch p {
	case Anodic:
		return 1, nil
	case Cathodic:
		return -1, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownPolarity, p)
	}
}

// PhaseOrder selects which phase of a biphasic pulse comes first.
// The zero value is CathodicFirst, the conventional safe ordering.
type PhaseOrder int

const (
	// CathodicFirst puts the negative phase before the positive one.
	CathodicFirst PhaseOrder = iota
	// AnodicFirst puts the positive phase before the negative one.
	AnodicFirst
)

// String returns the conventional token for the ordering.
func (o PhaseOrder) String() string {
	switch o {
	case CathodicFirst:
		return "cathodic-first"
	case AnodicFirst:
		return "anodic-first"
	default:
		return fmt.Sprintf("PhaseOrder(%d)", int(o))
	}
}

// valid rejects orderings outside the closed set.
func (o PhaseOrder) valid() error {
	switch o {
	case CathodicFirst, AnodicFirst:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownPhaseOrder, o)
	}
}

// Packing selects where the inter-pulse gap sits inside one train
// envelope. The zero value is PulseFirst.
type Packing int

const (
	// PulseFirst emits [delay, pulse, gap] per envelope.
	PulseFirst Packing = iota
	// GapFirst emits [delay, gap, pulse] per envelope.
	GapFirst
)

// String returns the conventional token for the packing.
func (k Packing) String() string {
	switch k {
	case PulseFirst:
		return "pulse-first"
	case GapFirst:
		return "gap-first"
	default:
		return fmt.Sprintf("Packing(%d)", int(k))
	}
}

// valid rejects packings outside the closed set.
func (k Packing) valid() error {
	switch k {
	case PulseFirst, GapFirst:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownPacking, k)
	}
}

// MonoOptions carries the optional knobs of Monophasic.
//   - Delay: leading zero-padding in seconds (default 0).
//   - StimDur: total output duration in seconds; values <= 0 select the
//     default phase duration + delay.
type MonoOptions struct {
	Delay   float64
	StimDur float64
}

// DefaultMonoOptions returns MonoOptions with no delay and the default
// total duration.
func DefaultMonoOptions() MonoOptions {
	return MonoOptions{}
}

// TrainOptions configures Train.
//   - Frequency: pulse repetition rate in Hz.
//   - Amplitude: scaling applied to the unit biphasic pulse (µA).
//   - Duration: total stimulus duration in seconds.
//   - Delay: onset delay inside every envelope, in seconds.
//   - PhaseDuration: single-phase duration in seconds.
//   - InterphaseDuration: gap between the two phases, in seconds.
//   - Order: biphasic phase ordering.
//   - Packing: position of the inter-pulse gap inside each envelope.
type TrainOptions struct {
	Frequency          float64
	Amplitude          float64
	Duration           float64
	Delay              float64
	PhaseDuration      float64
	InterphaseDuration float64
	Order              PhaseOrder
	Packing            Packing
}

// DefaultTrainOptions returns the conventional stimulation parameters:
// 20 Hz, amplitude 20, 0.5 s duration, no delay, 0.45 ms phases and
// interphase gap, cathodic-first, pulse-first.
func DefaultTrainOptions() TrainOptions {
	return TrainOptions{
		Frequency:          20,
		Amplitude:          20,
		Duration:           0.5,
		Delay:              0,
		PhaseDuration:      0.45e-3,
		InterphaseDuration: 0.45e-3,
		Order:              CathodicFirst,
		Packing:            PulseFirst,
	}
}
