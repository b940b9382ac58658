// Package imgproc prepares images for stimulus encoding.
//
// What: decoders and normalizers that all land on the same shape, a
// rows x cols gonum matrix of luminance values in [0, 1], row i running
// along the image's y axis. Load reads PNG/JPEG/GIF from disk, FromImage
// converts and rescales any in-memory image.Image, and FromGray adopts
// a raw [][]float64 pixel grid (0..1 or 0..255).
//
// Why: encode.ImageToTrains wants one well-defined input contract;
// centralizing decoding, grayscale conversion, Catmull-Rom resizing and
// range normalization here keeps the encoder purely spatial.
//
// Errors are sentinels (ErrImageLoad, ErrNonRectangular, ...) and
// compose with errors.Is.
package imgproc
