package encode

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stimwave/implant"
	"github.com/katalvlaran/stimwave/pulse"
)

// Sentinel errors for stimulus encoding.
var (
	// ErrNilArray indicates a nil electrode array.
	ErrNilArray = errors.New("encode: electrode array must not be nil")
	// ErrCardinalityMismatch indicates a descriptor whose waveform count
	// cannot cover the array.
	ErrCardinalityMismatch = errors.New("encode: descriptor cardinality does not match array")
	// ErrEmptyDescriptor indicates a descriptor holding no waveforms.
	ErrEmptyDescriptor = errors.New("encode: descriptor holds no waveforms")
	// ErrNilWaveform indicates a nil waveform inside a descriptor.
	ErrNilWaveform = errors.New("encode: descriptor waveform must not be nil")
	// ErrNilImage indicates a nil image matrix.
	ErrNilImage = errors.New("encode: image must not be nil")
	// ErrEmptyImage indicates an image with no rows or no columns.
	ErrEmptyImage = errors.New("encode: image must not be empty")
	// ErrUnknownCoding indicates a Coding value outside the closed set.
	ErrUnknownCoding = errors.New("encode: unknown coding strategy")
	// ErrBadValueRange indicates a value range whose maximum does not
	// exceed its minimum.
	ErrBadValueRange = errors.New("encode: value range maximum must exceed minimum")
	// ErrNoWeights indicates nil or empty luminance weights.
	ErrNoWeights = errors.New("encode: weights must hold at least one cell")
	// ErrNoFrames indicates a movie with no frames.
	ErrNoFrames = errors.New("encode: movie must hold at least one frame")
	// ErrShapeMismatch indicates a frame whose shape differs from the
	// weight mask.
	ErrShapeMismatch = errors.New("encode: frame shape does not match weights")
)

// Coding selects which train parameter carries the image magnitude.
// The zero value is AmplitudeCoding.
type Coding int

const (
	// AmplitudeCoding drives the pulse amplitude; frequency stays constant.
	AmplitudeCoding Coding = iota
	// FrequencyCoding drives the pulse frequency; amplitude stays constant.
	FrequencyCoding
)

// String returns the conventional token for the coding strategy.
func (c Coding) String() string {
	switch c {
	case AmplitudeCoding:
		return "amplitude"
	case FrequencyCoding:
		return "frequency"
	default:
		return fmt.Sprintf("Coding(%d)", int(c))
	}
}

// valid rejects codings outside the closed set.
func (c Coding) valid() error {
	switch c {
	case AmplitudeCoding, FrequencyCoding:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCoding, c)
	}
}

// ImageOptions configures ImageToTrains.
//   - Coding: magnitude target (amplitude or frequency).
//   - ValueRange: [min, max] the magnitudes are mapped onto (µA or Hz,
//     depending on Coding); max must exceed min.
//   - MaxContrast: min-max stretch the magnitudes before mapping, when
//     they are not all equal.
//   - ConstAmp / ConstFreq: the parameter not driven by the image.
//   - Field / FieldSize: receptive field profile; FieldSize <= 0 selects
//     twice the electrode radius.
//   - Invert: flip the image (v -> 1-v) before sampling.
//   - Step: sampling step of the generated trains, seconds.
//   - Duration, PhaseDur, InterphaseDur, Order: train geometry.
//
// Trains are packed pulse-first.
type ImageOptions struct {
	Coding        Coding
	ValueRange    [2]float64
	MaxContrast   bool
	ConstAmp      float64
	ConstFreq     float64
	Field         implant.FieldKind
	FieldSize     float64
	Invert        bool
	Step          float64
	Duration      float64
	PhaseDur      float64
	InterphaseDur float64
	Order         pulse.PhaseOrder
}

// DefaultImageOptions returns the conventional encoding parameters:
// amplitude coding onto [0, 50] µA with contrast stretching, 20 Hz / 20
// µA constants, gaussian fields, 5 µs sampling, half-second trains with
// 0.5 ms cathodic-first phases.
func DefaultImageOptions() ImageOptions {
	return ImageOptions{
		Coding:        AmplitudeCoding,
		ValueRange:    [2]float64{0, 50},
		MaxContrast:   true,
		ConstAmp:      20,
		ConstFreq:     20,
		Field:         implant.GaussianField,
		FieldSize:     0,
		Invert:        false,
		Step:          5e-6,
		Duration:      0.5,
		PhaseDur:      0.5e-3,
		InterphaseDur: 0.5e-3,
		Order:         pulse.CathodicFirst,
	}
}
