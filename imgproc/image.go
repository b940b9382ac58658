package imgproc

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"
	"gonum.org/v1/gonum/mat"
)

// Load reads and decodes an image file (PNG, JPEG, or GIF) and converts
// it with FromImage. Open and decode failures are wrapped in
// ErrImageLoad together with the path.
func Load(path string, rows, cols int) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrImageLoad, path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrImageLoad, path, err)
	}
	return FromImage(src, rows, cols)
}

// FromImage converts any image into a rows x cols luminance matrix with
// values in [0, 1]. Color images collapse to gray through the standard
// luminance weights, and the pixel grid is rescaled with a Catmull-Rom
// kernel, so the matrix shape never depends on the source resolution.
//
// Returns ErrNilSource, ErrEmptySource, or ErrBadShape.
//
// Complexity: O(rows*cols) plus the kernel's resampling cost.
func FromImage(src image.Image, rows, cols int) (*mat.Dense, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if src.Bounds().Empty() {
		return nil, ErrEmptySource
	}
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadShape, rows, cols)
	}

	gray := image.NewGray16(image.Rect(0, 0, cols, rows))
	draw.CatmullRom.Scale(gray, gray.Bounds(), src, src.Bounds(), draw.Src, nil)

	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, float64(gray.Gray16At(j, i).Y)/65535)
		}
	}
	return out, nil
}
