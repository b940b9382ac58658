package imgproc_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stimwave/imgproc"
)

// checkerGray returns a 2x2 gray image with an anti-diagonal of white.
func checkerGray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	img.SetGray(0, 0, color.Gray{Y: 0})
	img.SetGray(1, 0, color.Gray{Y: 255})
	img.SetGray(0, 1, color.Gray{Y: 255})
	img.SetGray(1, 1, color.Gray{Y: 0})
	return img
}

// TestFromImage_GrayPassthrough checks the unit mapping: black to 0,
// white to 1, with rows along y and columns along x.
func TestFromImage_GrayPassthrough(t *testing.T) {
	m, err := imgproc.FromImage(checkerGray(), 2, 2)
	require.NoError(t, err)

	rows, cols := m.Dims()
	require.Equal(t, 2, rows)
	require.Equal(t, 2, cols)
	assert.Equal(t, 0.0, m.At(0, 0))
	assert.Equal(t, 1.0, m.At(0, 1))
	assert.Equal(t, 1.0, m.At(1, 0))
	assert.Equal(t, 0.0, m.At(1, 1))
}

// TestFromImage_DownscaleUniform checks that rescaling preserves a
// uniform brightness level.
func TestFromImage_DownscaleUniform(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.SetGray(x, y, color.Gray{Y: 255})
		}
	}

	m, err := imgproc.FromImage(src, 3, 5)
	require.NoError(t, err)

	rows, cols := m.Dims()
	require.Equal(t, 3, rows)
	require.Equal(t, 5, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			assert.InDelta(t, 1.0, m.At(i, j), 1e-9, "pixel (%d,%d)", i, j)
		}
	}
}

// TestFromImage_ColorCollapsesToLuminance checks the standard luminance
// weights on a pure red image.
func TestFromImage_ColorCollapsesToLuminance(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			src.SetRGBA(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	m, err := imgproc.FromImage(src, 2, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.299, m.At(0, 0), 1e-3)
}

func TestFromImage_Errors(t *testing.T) {
	t.Run("nil source", func(t *testing.T) {
		_, err := imgproc.FromImage(nil, 2, 2)
		assert.ErrorIs(t, err, imgproc.ErrNilSource)
	})
	t.Run("empty source", func(t *testing.T) {
		_, err := imgproc.FromImage(image.NewGray(image.Rect(0, 0, 0, 0)), 2, 2)
		assert.ErrorIs(t, err, imgproc.ErrEmptySource)
	})
	t.Run("bad shape", func(t *testing.T) {
		_, err := imgproc.FromImage(checkerGray(), 0, 2)
		assert.ErrorIs(t, err, imgproc.ErrBadShape)
	})
}

func TestLoad_RoundTripPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checker.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, checkerGray()))
	require.NoError(t, f.Close())

	m, err := imgproc.Load(path, 2, 2)
	require.NoError(t, err)

	assert.Equal(t, 0.0, m.At(0, 0))
	assert.Equal(t, 1.0, m.At(0, 1))
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := imgproc.Load(filepath.Join(t.TempDir(), "nope.png"), 2, 2)
		assert.ErrorIs(t, err, imgproc.ErrImageLoad)
	})
	t.Run("undecodable file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "junk.png")
		require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))
		_, err := imgproc.Load(path, 2, 2)
		assert.ErrorIs(t, err, imgproc.ErrImageLoad)
	})
}
