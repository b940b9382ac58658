// Package stimwave synthesizes retinal-implant stimulation waveforms —
// from single rectangular phases to full per-electrode stimulus sets
// encoded straight from an image.
//
// 🚀 What is stimwave?
//
//	A deterministic, single-threaded waveform toolkit that brings together:
//		• Sample grids: one rounding rule from seconds to sample counts
//		• Pulse builders: monophasic, charge-balanced biphasic, periodic trains
//		• Envelope modulation: slow brightness envelopes over fast carriers
//		• Implant geometry: named electrode arrays, coordinate grids,
//		  square & gaussian receptive fields
//		• Stimulus encoding: descriptors (single/sequence/by-name) and
//		  image-to-train mapping with amplitude or frequency coding
//		• Image preparation: PNG/JPEG/GIF loading, grayscale, rescaling
//
// ✨ Why choose stimwave?
//
//   - Predictable numerics – every duration lands on the same grid,
//     ties round to even, output lengths are exact contracts
//   - Eager validation – sentinel errors before any buffer is built,
//     all composable with errors.Is
//   - Safe ownership – constructors deep-copy, getters never alias
//
// Everything is organized under five subpackages:
//
//	timeseries/ — the immutable sampled-signal container + SampleCount
//	pulse/      — Monophasic, Biphasic, Train, Modulate
//	implant/    — Electrode, Array, Grid, receptive fields
//	encode/     — ParseStimulus, ImageToTrains, FieldLuminance
//	imgproc/    — Load, FromImage, FromGray
//
// Quick ASCII example (one cathodic-first envelope):
//
//	 +amp ┤         ┌───┐
//	    0 ┼─┐   ┌───┘   └──────────
//	 -amp ┤ └───┘
//	        phase gap phase   rest of the 1/freq period
//
// Start with pulse.Train and DefaultTrainOptions, then feed an array and
// an image to encode.ImageToTrains for a full stimulus set.
//
//	go get github.com/katalvlaran/stimwave
package stimwave
