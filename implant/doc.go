// Package implant models electrode arrays and their spatial footprint.
//
// What: an Electrode is a named disc (center + radius, µm) on the
// retinal plane. An Array is a validated, immutable collection of
// electrodes addressable by position or by name. A Grid is a pair of
// dense coordinate planes (meshgrid) spanning a rectangular extent, and
// Electrode.ReceptiveField renders an electrode's spatial sensitivity
// (square or gaussian) over such a grid.
//
// Why: stimulus encoders need two spatial queries: "which electrodes
// exist and where" (Array, Extent) and "how strongly does a pixel at
// (x, y) couple to electrode e" (ReceptiveField). Keeping both here
// lets encoders stay purely about waveforms.
//
// Construction validates eagerly: NewArray rejects empty arrays,
// non-positive radii, empty and duplicate names; NewGrid rejects
// degenerate shapes and inverted extents. All getters hand out copies
// or read-only views, so an Array or Grid never changes after New.
//
// Errors are sentinels (ErrUnknownElectrode, ErrNonPositiveRadius, ...)
// and compose with errors.Is.
package implant
