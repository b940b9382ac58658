// Package encode turns user intent into per-electrode stimulation
// waveforms.
//
// What: two encoders and one normalizer.
//
//   - ParseStimulus resolves a Descriptor (one shared waveform, an
//     ordered sequence, or a by-name map) into exactly one waveform per
//     electrode of an implant.Array, in array order, zero-filling
//     unnamed electrodes.
//   - ImageToTrains converts a normalized grayscale image into one
//     pulse train per electrode: each electrode's receptive field
//     samples the image into a magnitude, magnitudes are optionally
//     contrast-stretched and mapped onto a value range, and the result
//     drives either the train amplitude or its frequency.
//   - FieldLuminance reduces movie frames to a per-frame scalar through
//     a weight mask, producing envelopes for pulse.Modulate.
//
// Why: downstream consumers address stimuli positionally, so every
// entry point here ends in the same shape: a slice of waveforms aligned
// with the array. Outputs are always freshly built or deep-copied; a
// returned waveform never aliases descriptor input, and each zero-fill
// is its own instance.
//
// Errors are sentinels (ErrCardinalityMismatch, ErrEmptyDescriptor,
// ErrUnknownCoding, ...) and compose with errors.Is; name lookups wrap
// implant.ErrUnknownElectrode.
package encode
