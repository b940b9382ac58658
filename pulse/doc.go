// Package pulse synthesizes electrical stimulation waveforms on a fixed
// sample grid: single monophasic phases, charge-balanced biphasic
// pulses, periodic pulse trains, and envelope-modulated carriers.
//
// 🚀 What is a stimulation waveform?
//
// A waveform is a timeseries.TimeSeries of current samples spaced step
// seconds apart. Builders compose three bricks:
//
//   - Monophasic: one rectangular phase of unit height (±1), optionally
//     delayed and padded to a total duration.
//   - Biphasic: two monophasic phases of opposite sign separated by an
//     interphase gap; the signed samples cancel exactly.
//   - Train: a biphasic pulse scaled by an amplitude and repeated at a
//     fixed frequency until the requested duration is filled.
//
// All durations are converted to sample counts through
// timeseries.SampleCount, so every builder truncates or pads on the
// same grid and concatenation never drifts.
//
// ✨ Key properties
//
//   - Charge balance: Biphasic output sums to exactly zero.
//   - Exact length: Train returns precisely SampleCount(step, Duration)
//     samples, padding with zeros or truncating mid-envelope as needed.
//   - Degenerate trains: |Frequency| <= 1e-8 or |Amplitude| <= 1e-8
//     short-circuits to an all-zero series of the full duration.
//   - Envelope feasibility: delay + pulse must fit within 1/Frequency,
//     otherwise Train fails with ErrEnvelopeOverflow.
//
// ⚙️ Usage
//
//	ts, err := pulse.Train(1e-4, pulse.DefaultTrainOptions())
//	if err != nil {
//	    // handle ErrEnvelopeOverflow, ErrNegativeDelay, ...
//	}
//	_ = ts.Duration() // 0.5 s
//
// Modulate resamples an arbitrary envelope onto a carrier built by a
// Carrier generator (usually TrainCarrier), multiplying sample-wise.
//
// Complexity: every builder is O(n) in the number of output samples
// with a single assembly buffer.
//
// Errors are sentinel values (ErrUnknownPolarity, ErrNegativeDelay,
// ErrEnvelopeOverflow, ...) and compose with errors.Is.
package pulse
