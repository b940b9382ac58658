package imgproc

import "errors"

// Sentinel errors for image preparation.
var (
	// ErrImageLoad indicates that a file could not be read or decoded.
	ErrImageLoad = errors.New("imgproc: cannot load image")
	// ErrNilSource indicates a nil source image.
	ErrNilSource = errors.New("imgproc: source image must not be nil")
	// ErrEmptySource indicates a source with no pixels.
	ErrEmptySource = errors.New("imgproc: source image must not be empty")
	// ErrBadShape indicates a non-positive target shape.
	ErrBadShape = errors.New("imgproc: target shape must be positive")
	// ErrNonRectangular indicates pixel rows of differing lengths.
	ErrNonRectangular = errors.New("imgproc: pixel rows must share one length")
	// ErrValueRange indicates pixel values outside [0, 255].
	ErrValueRange = errors.New("imgproc: pixel values must lie in [0, 255]")
)
