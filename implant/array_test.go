package implant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stimwave/implant"
)

func sampleElectrodes() []implant.Electrode {
	return []implant.Electrode{
		{Name: "A1", X: -100, Y: 0, Radius: 40},
		{Name: "A2", X: 0, Y: 0, Radius: 40},
		{Name: "A3", X: 100, Y: 0, Radius: 40},
	}
}

func TestNewArray_PreservesOrderAndLookup(t *testing.T) {
	arr, err := implant.NewArray(sampleElectrodes())
	require.NoError(t, err)

	require.Equal(t, 3, arr.Count())
	assert.Equal(t, []string{"A1", "A2", "A3"}, arr.Names())

	e, err := arr.At(1)
	require.NoError(t, err)
	assert.Equal(t, "A2", e.Name)

	i, err := arr.IndexOf("A3")
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	found, err := arr.Find("A1")
	require.NoError(t, err)
	assert.Equal(t, -100.0, found.X)
}

// TestNewArray_CopiesInput checks that the array is detached from the
// caller's slice in both directions.
func TestNewArray_CopiesInput(t *testing.T) {
	in := sampleElectrodes()
	arr, err := implant.NewArray(in)
	require.NoError(t, err)

	in[0].Name = "mutated"
	e, err := arr.At(0)
	require.NoError(t, err)
	assert.Equal(t, "A1", e.Name)

	out := arr.Electrodes()
	out[1].X = 9999
	e, err = arr.At(1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, e.X)
}

func TestNewArray_Errors(t *testing.T) {
	t.Run("no electrodes", func(t *testing.T) {
		_, err := implant.NewArray(nil)
		assert.ErrorIs(t, err, implant.ErrNoElectrodes)
	})
	t.Run("non-positive radius", func(t *testing.T) {
		_, err := implant.NewArray([]implant.Electrode{{Name: "A1", Radius: 0}})
		assert.ErrorIs(t, err, implant.ErrNonPositiveRadius)
	})
	t.Run("empty name", func(t *testing.T) {
		_, err := implant.NewArray([]implant.Electrode{{Radius: 10}})
		assert.ErrorIs(t, err, implant.ErrEmptyName)
	})
	t.Run("duplicate name", func(t *testing.T) {
		in := []implant.Electrode{{Name: "A1", Radius: 10}, {Name: "A1", X: 50, Radius: 10}}
		_, err := implant.NewArray(in)
		assert.ErrorIs(t, err, implant.ErrDuplicateName)
	})
}

func TestArray_LookupErrors(t *testing.T) {
	arr, err := implant.NewArray(sampleElectrodes())
	require.NoError(t, err)

	_, err = arr.At(-1)
	assert.ErrorIs(t, err, implant.ErrElectrodeIndex)
	_, err = arr.At(3)
	assert.ErrorIs(t, err, implant.ErrElectrodeIndex)
	_, err = arr.IndexOf("Z9")
	assert.ErrorIs(t, err, implant.ErrUnknownElectrode)
	_, err = arr.Find("Z9")
	assert.ErrorIs(t, err, implant.ErrUnknownElectrode)
}

// TestNewRectArray_Geometry checks the letter-row/number-column naming
// and the centered coordinate layout.
func TestNewRectArray_Geometry(t *testing.T) {
	arr, err := implant.NewRectArray(2, 3, 100, 30)
	require.NoError(t, err)

	require.Equal(t, 6, arr.Count())
	assert.Equal(t, []string{"A1", "A2", "A3", "B1", "B2", "B3"}, arr.Names())

	a1, err := arr.Find("A1")
	require.NoError(t, err)
	assert.Equal(t, -100.0, a1.X)
	assert.Equal(t, -50.0, a1.Y)

	b3, err := arr.Find("B3")
	require.NoError(t, err)
	assert.Equal(t, 100.0, b3.X)
	assert.Equal(t, 50.0, b3.Y)
}

func TestNewRectArray_Errors(t *testing.T) {
	cases := []struct {
		name            string
		rows, cols      int
		spacing, radius float64
	}{
		{"zero rows", 0, 3, 100, 30},
		{"too many rows", 27, 3, 100, 30},
		{"zero cols", 2, 0, 100, 30},
		{"zero spacing", 2, 3, 0, 30},
		{"negative radius", 2, 3, 100, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := implant.NewRectArray(tc.rows, tc.cols, tc.spacing, tc.radius)
			assert.ErrorIs(t, err, implant.ErrBadGeometry)
		})
	}
}

// TestArray_Extent checks the radius-inclusive bounding box.
func TestArray_Extent(t *testing.T) {
	arr, err := implant.NewRectArray(2, 3, 100, 30)
	require.NoError(t, err)

	minX, maxX, minY, maxY := arr.Extent()
	assert.Equal(t, -130.0, minX)
	assert.Equal(t, 130.0, maxX)
	assert.Equal(t, -80.0, minY)
	assert.Equal(t, 80.0, maxY)
}

func TestArray_ExtentSingleElectrode(t *testing.T) {
	arr, err := implant.NewArray([]implant.Electrode{{Name: "A1", X: 10, Y: -5, Radius: 2}})
	require.NoError(t, err)

	minX, maxX, minY, maxY := arr.Extent()
	assert.Equal(t, 8.0, minX)
	assert.Equal(t, 12.0, maxX)
	assert.Equal(t, -7.0, minY)
	assert.Equal(t, -3.0, maxY)
}
