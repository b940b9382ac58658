package implant

import "errors"

// Sentinel errors for array and grid construction and lookup.
var (
	// ErrNoElectrodes indicates an attempt to build an empty array.
	ErrNoElectrodes = errors.New("implant: array needs at least one electrode")
	// ErrNonPositiveRadius indicates an electrode with radius <= 0.
	ErrNonPositiveRadius = errors.New("implant: electrode radius must be positive")
	// ErrEmptyName indicates an electrode with an empty name.
	ErrEmptyName = errors.New("implant: electrode name must not be empty")
	// ErrDuplicateName indicates two electrodes sharing a name.
	ErrDuplicateName = errors.New("implant: duplicate electrode name")
	// ErrUnknownElectrode indicates a name lookup that matched nothing.
	ErrUnknownElectrode = errors.New("implant: unknown electrode")
	// ErrElectrodeIndex indicates a positional lookup out of range.
	ErrElectrodeIndex = errors.New("implant: electrode index out of range")
	// ErrBadGeometry indicates invalid rectangular-array parameters.
	ErrBadGeometry = errors.New("implant: invalid array geometry")
	// ErrBadGridShape indicates a grid with no rows or no columns.
	ErrBadGridShape = errors.New("implant: grid needs at least one row and column")
	// ErrBadExtent indicates an extent whose maximum lies below its minimum.
	ErrBadExtent = errors.New("implant: extent maximum must not be below minimum")
	// ErrNilGrid indicates a nil *Grid passed to a field renderer.
	ErrNilGrid = errors.New("implant: grid must not be nil")
	// ErrUnknownFieldKind indicates a FieldKind outside the closed set.
	ErrUnknownFieldKind = errors.New("implant: unknown receptive field kind")
	// ErrBadFieldSize indicates a receptive field of non-positive size.
	ErrBadFieldSize = errors.New("implant: receptive field size must be positive")
)

// Electrode is one stimulation site: a disc of Radius µm centered at
// (X, Y) µm on the retinal plane, addressed by Name.
type Electrode struct {
	Name   string
	X, Y   float64
	Radius float64
}
