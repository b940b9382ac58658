package implant

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Grid is a pair of dense coordinate planes covering a rectangular
// extent: X holds the x-coordinate of every cell, Y the y-coordinate.
// Rows run along y, columns along x, so cell (i, j) sits at
// (X.At(i,j), Y.At(i,j)). Build one with NewGrid.
type Grid struct {
	x, y *mat.Dense
}

// NewGrid spans rows x cols coordinate planes over the closed extent
// [minX, maxX] x [minY, maxY]. Coordinates are linearly spaced with the
// extent edges included; a single row (or column) collapses onto the
// minimum edge.
//
// Returns ErrBadGridShape when rows or cols < 1 and ErrBadExtent when a
// maximum lies below its minimum.
func NewGrid(minX, maxX, minY, maxY float64, rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadGridShape, rows, cols)
	}
	if maxX < minX || maxY < minY {
		return nil, fmt.Errorf("%w: x [%v, %v], y [%v, %v]", ErrBadExtent, minX, maxX, minY, maxY)
	}

	xs := linspace(cols, minX, maxX)
	ys := linspace(rows, minY, maxY)

	x := mat.NewDense(rows, cols, nil)
	y := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			x.Set(i, j, xs[j])
			y.Set(i, j, ys[i])
		}
	}
	return &Grid{x: x, y: y}, nil
}

// Dims returns the grid shape as (rows, cols).
func (g *Grid) Dims() (rows, cols int) { return g.x.Dims() }

// X returns a read-only view of the x-coordinate plane.
func (g *Grid) X() mat.Matrix { return g.x }

// Y returns a read-only view of the y-coordinate plane.
func (g *Grid) Y() mat.Matrix { return g.y }

// linspace fills n points from lo to hi inclusive; a single point
// degenerates to lo.
func linspace(n int, lo, hi float64) []float64 {
	dst := make([]float64, n)
	if n == 1 {
		dst[0] = lo
		return dst
	}
	floats.Span(dst, lo, hi)
	return dst
}
