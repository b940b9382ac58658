package encode

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FieldLuminance reduces each movie frame to a scalar: the plain mean
// of the frame masked by weights (usually a receptive field from
// implant.Electrode.ReceptiveField). The result is one sample per
// frame, ready to drive pulse.Modulate as a brightness envelope.
//
// Returns ErrNoWeights, ErrNoFrames, or ErrShapeMismatch when a frame
// is nil or shaped differently from the weights.
//
// Complexity: O(f*p) for f frames of p pixels.
func FieldLuminance(weights *mat.Dense, frames []*mat.Dense) ([]float64, error) {
	if weights == nil {
		return nil, ErrNoWeights
	}
	wr, wc := weights.Dims()
	if wr == 0 || wc == 0 {
		return nil, ErrNoWeights
	}
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}

	masked := mat.NewDense(wr, wc, nil)
	cells := float64(wr * wc)
	out := make([]float64, len(frames))
	for i, frame := range frames {
		if frame == nil {
			return nil, fmt.Errorf("%w: frame %d is nil", ErrShapeMismatch, i)
		}
		fr, fc := frame.Dims()
		if fr != wr || fc != wc {
			return nil, fmt.Errorf("%w: frame %d is %dx%d, weights are %dx%d", ErrShapeMismatch, i, fr, fc, wr, wc)
		}
		masked.MulElem(weights, frame)
		out[i] = mat.Sum(masked) / cells
	}
	return out, nil
}
