package encode

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/stimwave/implant"
	"github.com/katalvlaran/stimwave/timeseries"
)

// descriptorKind tags the Descriptor variant. The zero value is an
// empty descriptor, rejected by ParseStimulus.
type descriptorKind int

const (
	kindNone descriptorKind = iota
	kindSingle
	kindSequence
	kindByName
)

// Descriptor names the waveforms a stimulus assigns to an array. Build
// one with Single, Sequence, or ByName; the zero value holds nothing.
// Descriptors keep references to the caller's waveforms; ParseStimulus
// deep-copies on resolution, so later mutation of a descriptor's input
// map or slice does not corrupt parsed output.
type Descriptor struct {
	kind   descriptorKind
	single *timeseries.TimeSeries
	seq    []*timeseries.TimeSeries
	named  map[string]*timeseries.TimeSeries
}

// Single describes one waveform for a one-electrode array.
func Single(ts *timeseries.TimeSeries) Descriptor {
	return Descriptor{kind: kindSingle, single: ts}
}

// Sequence describes one waveform per electrode, in array order.
func Sequence(ts ...*timeseries.TimeSeries) Descriptor {
	return Descriptor{kind: kindSequence, seq: ts}
}

// ByName describes waveforms for a subset of electrodes, addressed by
// electrode name; electrodes absent from the map resolve to silence.
func ByName(named map[string]*timeseries.TimeSeries) Descriptor {
	return Descriptor{kind: kindByName, named: named}
}

// ParseStimulus resolves a descriptor against an array into exactly one
// waveform per electrode, in array order.
//
//   - Single requires a one-electrode array.
//   - Sequence requires exactly Count waveforms.
//   - ByName requires every key to name an array electrode; electrodes
//     without an entry receive a fresh all-zero waveform shaped like the
//     entry under the lexicographically smallest key.
//
// Every returned waveform is independent: named and sequenced entries
// are deep copies, and each zero-fill is its own instance.
//
// Returns ErrNilArray, ErrEmptyDescriptor, ErrCardinalityMismatch,
// ErrNilWaveform, or a wrapped implant.ErrUnknownElectrode.
//
// Complexity: O(e*n) for e electrodes of n samples.
func ParseStimulus(arr *implant.Array, d Descriptor) ([]*timeseries.TimeSeries, error) {
	if arr == nil {
		return nil, ErrNilArray
	}
	switch d.kind {
	case kindSingle:
		return parseSingle(arr, d.single)
	case kindSequence:
		return parseSequence(arr, d.seq)
	case kindByName:
		return parseByName(arr, d.named)
	default:
		return nil, ErrEmptyDescriptor
	}
}

func parseSingle(arr *implant.Array, ts *timeseries.TimeSeries) ([]*timeseries.TimeSeries, error) {
	if arr.Count() != 1 {
		return nil, fmt.Errorf("%w: one waveform for %d electrodes", ErrCardinalityMismatch, arr.Count())
	}
	if ts == nil {
		return nil, ErrNilWaveform
	}
	return []*timeseries.TimeSeries{ts.Clone()}, nil
}

func parseSequence(arr *implant.Array, seq []*timeseries.TimeSeries) ([]*timeseries.TimeSeries, error) {
	if len(seq) != arr.Count() {
		return nil, fmt.Errorf("%w: %d waveforms for %d electrodes", ErrCardinalityMismatch, len(seq), arr.Count())
	}
	out := make([]*timeseries.TimeSeries, len(seq))
	for i, ts := range seq {
		if ts == nil {
			return nil, fmt.Errorf("%w: position %d", ErrNilWaveform, i)
		}
		out[i] = ts.Clone()
	}
	return out, nil
}

func parseByName(arr *implant.Array, named map[string]*timeseries.TimeSeries) ([]*timeseries.TimeSeries, error) {
	if len(named) == 0 {
		return nil, ErrEmptyDescriptor
	}

	keys := make([]string, 0, len(named))
	for k := range named {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if named[k] == nil {
			return nil, fmt.Errorf("%w: %q", ErrNilWaveform, k)
		}
		if _, err := arr.IndexOf(k); err != nil {
			return nil, fmt.Errorf("encode: descriptor: %w", err)
		}
	}

	// Silent electrodes inherit the grid of the smallest-named entry, so
	// resolution is deterministic regardless of map iteration order.
	donor := named[keys[0]]
	out := make([]*timeseries.TimeSeries, arr.Count())
	for i, e := range arr.Electrodes() {
		if ts, ok := named[e.Name]; ok {
			out[i] = ts.Clone()
			continue
		}
		z, err := timeseries.Zeros(donor.Step(), donor.Len())
		if err != nil {
			return nil, err
		}
		out[i] = z
	}
	return out, nil
}
