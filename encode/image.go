package encode

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/stimwave/implant"
	"github.com/katalvlaran/stimwave/pulse"
	"github.com/katalvlaran/stimwave/timeseries"
)

// ImageToTrains encodes a normalized grayscale image (values in [0, 1],
// see package imgproc) into one pulse train per electrode, in array
// order.
//
// The image is stretched over the array's radius-inclusive extent, so
// pixel (i, j) acquires retinal coordinates. Each electrode samples the
// image through its receptive field: magnitude = sum(field*image) /
// sum(field), or 0 for a field with no mass. With opts.MaxContrast the
// magnitudes are min-max stretched (skipped when all are equal), then
// mapped affinely onto opts.ValueRange. Under AmplitudeCoding each
// magnitude becomes its train's amplitude at ConstFreq Hz; under
// FrequencyCoding it becomes the frequency at ConstAmp µA.
//
// A uniform image therefore lands every electrode on the same point of
// ValueRange, and with MaxContrast the darkest/brightest electrodes pin
// its two ends.
//
// Returns ErrNilArray, ErrNilImage, ErrEmptyImage, ErrUnknownCoding,
// ErrBadValueRange, or any receptive-field or train-synthesis error,
// wrapped with the electrode name where one is involved.
//
// Complexity: O(e*p + e*n) for e electrodes, p pixels, and n train
// samples.
func ImageToTrains(arr *implant.Array, img *mat.Dense, opts ImageOptions) ([]*timeseries.TimeSeries, error) {
	if arr == nil {
		return nil, ErrNilArray
	}
	if img == nil {
		return nil, ErrNilImage
	}
	rows, cols := img.Dims()
	if rows == 0 || cols == 0 {
		return nil, ErrEmptyImage
	}
	if err := opts.Coding.valid(); err != nil {
		return nil, err
	}
	if opts.ValueRange[1] <= opts.ValueRange[0] {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrBadValueRange, opts.ValueRange[0], opts.ValueRange[1])
	}

	work := mat.DenseCopyOf(img)
	if opts.Invert {
		work.Apply(func(_, _ int, v float64) float64 { return 1 - v }, work)
	}

	minX, maxX, minY, maxY := arr.Extent()
	grid, err := implant.NewGrid(minX, maxX, minY, maxY, rows, cols)
	if err != nil {
		return nil, err
	}

	electrodes := arr.Electrodes()
	magn := make([]float64, len(electrodes))
	masked := mat.NewDense(rows, cols, nil)
	for i, e := range electrodes {
		field, err := e.ReceptiveField(grid, opts.Field, opts.FieldSize)
		if err != nil {
			return nil, fmt.Errorf("encode: electrode %q: %w", e.Name, err)
		}
		masked.MulElem(field, work)
		if mass := mat.Sum(field); mass != 0 {
			magn[i] = mat.Sum(masked) / mass
		}
	}

	if opts.MaxContrast {
		lo, hi := floats.Min(magn), floats.Max(magn)
		if hi > lo {
			for i := range magn {
				magn[i] = (magn[i] - lo) / (hi - lo)
			}
		}
	}
	floats.Scale(opts.ValueRange[1]-opts.ValueRange[0], magn)
	floats.AddConst(opts.ValueRange[0], magn)

	out := make([]*timeseries.TimeSeries, len(electrodes))
	for i, e := range electrodes {
		topts := pulse.TrainOptions{
			Duration:           opts.Duration,
			PhaseDuration:      opts.PhaseDur,
			InterphaseDuration: opts.InterphaseDur,
			Order:              opts.Order,
			Packing:            pulse.PulseFirst,
		}
		switch opts.Coding {
		case AmplitudeCoding:
			topts.Amplitude, topts.Frequency = magn[i], opts.ConstFreq
		case FrequencyCoding:
			topts.Amplitude, topts.Frequency = opts.ConstAmp, magn[i]
		}
		ts, err := pulse.Train(opts.Step, topts)
		if err != nil {
			return nil, fmt.Errorf("encode: electrode %q: %w", e.Name, err)
		}
		out[i] = ts
	}
	return out, nil
}
