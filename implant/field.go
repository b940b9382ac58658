package implant

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// FieldKind selects the spatial profile of a receptive field.
// The zero value is SquareField.
type FieldKind int

const (
	// SquareField is a box indicator: 1 strictly inside a size-wide
	// square centered on the electrode, 0 elsewhere.
	SquareField FieldKind = iota
	// GaussianField is an isotropic gaussian, exp(-d²/(2·size²)) for
	// distance d from the electrode center.
	GaussianField
)

// String returns the conventional token for the field kind.
func (k FieldKind) String() string {
	switch k {
	case SquareField:
		return "square"
	case GaussianField:
		return "gaussian"
	default:
		return fmt.Sprintf("FieldKind(%d)", int(k))
	}
}

// valid rejects kinds outside the closed set.
func (k FieldKind) valid() error {
	switch k {
	case SquareField, GaussianField:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFieldKind, k)
	}
}

// ReceptiveField renders the electrode's spatial sensitivity over every
// cell of g. size sets the profile scale in grid units: the square's
// full edge length, or the gaussian's standard deviation. size <= 0
// selects the default of twice the electrode radius.
//
// Weights are not normalized; consumers that need unit mass divide by
// the sum themselves.
//
// Returns ErrNilGrid, ErrUnknownFieldKind, or ErrBadFieldSize when both
// size and the radius-derived default are non-positive.
//
// Complexity: O(rows*cols).
func (e Electrode) ReceptiveField(g *Grid, kind FieldKind, size float64) (*mat.Dense, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := kind.valid(); err != nil {
		return nil, err
	}
	if size <= 0 {
		size = 2 * e.Radius
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: size %v with radius %v", ErrBadFieldSize, size, e.Radius)
	}

	rows, cols := g.Dims()
	rf := mat.NewDense(rows, cols, nil)
	switch kind {
	case SquareField:
		half := size / 2
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				dx := g.x.At(i, j) - e.X
				dy := g.y.At(i, j) - e.Y
				if math.Abs(dx) < half && math.Abs(dy) < half {
					rf.Set(i, j, 1)
				}
			}
		}
	case GaussianField:
		den := 2 * size * size
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				dx := g.x.At(i, j) - e.X
				dy := g.y.At(i, j) - e.Y
				rf.Set(i, j, math.Exp(-(dx*dx+dy*dy)/den))
			}
		}
	}
	return rf, nil
}
