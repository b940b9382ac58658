package imgproc

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/mat"
)

// FromGray adopts a raw pixel grid. Rows must share one length and
// values must lie in [0, 255]: a grid already within [0, 1] passes
// through unchanged, anything brighter is treated as 8-bit and divided
// by 255. The grid is then resampled to rows x cols with separable
// piecewise-linear interpolation.
//
// Returns ErrEmptySource, ErrBadShape, ErrNonRectangular, or
// ErrValueRange.
//
// Complexity: O(sr*sc + rows*cols) for an sr x sc source.
func FromGray(px [][]float64, rows, cols int) (*mat.Dense, error) {
	if len(px) == 0 || len(px[0]) == 0 {
		return nil, ErrEmptySource
	}
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadShape, rows, cols)
	}

	width := len(px[0])
	maxV := 0.0
	for i, row := range px {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d pixels, row 0 has %d", ErrNonRectangular, i, len(row), width)
		}
		for j, v := range row {
			if v < 0 || v > 255 {
				return nil, fmt.Errorf("%w: %v at (%d, %d)", ErrValueRange, v, i, j)
			}
			if v > maxV {
				maxV = v
			}
		}
	}

	src := mat.NewDense(len(px), width, nil)
	for i, row := range px {
		for j, v := range row {
			if maxV > 1 {
				v /= 255
			}
			src.Set(i, j, v)
		}
	}
	return resampleGrid(src, rows, cols)
}

// resampleGrid stretches src onto rows x cols separably: every source
// row is widened to cols samples, then every widened column is
// stretched to rows samples.
func resampleGrid(src *mat.Dense, rows, cols int) (*mat.Dense, error) {
	sr, sc := src.Dims()
	if sr == rows && sc == cols {
		return mat.DenseCopyOf(src), nil
	}

	wide := mat.NewDense(sr, cols, nil)
	for i := 0; i < sr; i++ {
		row, err := resampleAxis(src.RawRowView(i), cols)
		if err != nil {
			return nil, err
		}
		wide.SetRow(i, row)
	}

	out := mat.NewDense(rows, cols, nil)
	colBuf := make([]float64, sr)
	for j := 0; j < cols; j++ {
		mat.Col(colBuf, j, wide)
		col, err := resampleAxis(colBuf, rows)
		if err != nil {
			return nil, err
		}
		out.SetCol(j, col)
	}
	return out, nil
}

// resampleAxis interpolates src piecewise-linearly onto n samples over
// a unit parameter with both endpoints aligned; a single source sample
// fans out as a constant.
func resampleAxis(src []float64, n int) ([]float64, error) {
	out := make([]float64, n)
	if len(src) == 1 {
		for i := range out {
			out[i] = src[0]
		}
		return out, nil
	}

	xs := make([]float64, len(src))
	for i := range xs {
		xs[i] = float64(i) / float64(len(src)-1)
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, src); err != nil {
		return nil, fmt.Errorf("imgproc: resampling failed: %w", err)
	}

	if n == 1 {
		out[0] = pl.Predict(0)
		return out, nil
	}
	for j := range out {
		out[j] = pl.Predict(float64(j) / float64(n-1))
	}
	return out, nil
}
