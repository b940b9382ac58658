// Package timeseries defines the sampled-signal container shared by every
// stimulus builder, together with the single duration→sample-count rule
// used across the module.
//
// What:
//
//   - TimeSeries wraps an ordered []float64 sample sequence plus a fixed
//     sampling step in seconds per sample.
//   - Invariant: Duration() == Step() * float64(Len()), Step() > 0.
//   - Values are immutable once constructed: constructors deep-copy their
//     input, Data() returns a fresh copy, Clone() an independent series.
//   - SampleCount converts a duration in seconds to a sample count with
//     round-half-to-even; it is the only place such a conversion happens.
//
// Why:
//
//   - Pulse builders, train synthesis, and stimulus encoding all need to
//     agree on one quantization rule; mixed rounding causes off-by-one
//     length mismatches between phases, gaps, and envelopes.
//   - Ownership discipline: a series handed to a consumer can never be
//     mutated behind its back.
//
// Complexity:
//
//   - New/Zeros/Clone/Data/Scaled: O(n) time and memory.
//   - SampleCount, Step, Len, Duration, At: O(1).
//
// Errors:
//
//   - ErrNonPositiveStep: sampling step is zero or negative.
//   - ErrNegativeLength: requested sample count below zero.
//   - ErrIndexOutOfRange: At() index outside [0, Len()).
package timeseries
