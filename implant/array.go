package implant

import "fmt"

// Array is an immutable, ordered collection of electrodes with O(1)
// lookup by name. Build one with NewArray or NewRectArray.
type Array struct {
	electrodes []Electrode
	index      map[string]int
}

// NewArray validates and copies electrodes into an Array. Order is
// preserved and becomes the positional addressing of the array.
//
// Returns ErrNoElectrodes, ErrNonPositiveRadius, ErrEmptyName, or
// ErrDuplicateName (wrapped with the offending electrode) on invalid
// input.
func NewArray(electrodes []Electrode) (*Array, error) {
	if len(electrodes) == 0 {
		return nil, ErrNoElectrodes
	}
	index := make(map[string]int, len(electrodes))
	for i, e := range electrodes {
		if e.Radius <= 0 {
			return nil, fmt.Errorf("%w: electrode %d (%q) has radius %v", ErrNonPositiveRadius, i, e.Name, e.Radius)
		}
		if e.Name == "" {
			return nil, fmt.Errorf("%w: electrode %d", ErrEmptyName, i)
		}
		if prev, ok := index[e.Name]; ok {
			return nil, fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateName, e.Name, prev, i)
		}
		index[e.Name] = i
	}
	copied := make([]Electrode, len(electrodes))
	copy(copied, electrodes)
	return &Array{electrodes: copied, index: index}, nil
}

// NewRectArray builds a centered rows x cols array with the given
// center-to-center spacing and per-electrode radius (both µm). Names
// follow the conventional letter-row, number-column scheme: "A1" is the
// top-left electrode, "B3" sits in the second row, third column.
//
// Returns ErrBadGeometry for non-positive rows, cols, spacing, or
// radius. Rows are letter-named, so at most 26 fit.
func NewRectArray(rows, cols int, spacing, radius float64) (*Array, error) {
	if rows < 1 || rows > 26 {
		return nil, fmt.Errorf("%w: rows must be in 1..26, got %d", ErrBadGeometry, rows)
	}
	if cols < 1 {
		return nil, fmt.Errorf("%w: cols must be positive, got %d", ErrBadGeometry, cols)
	}
	if spacing <= 0 {
		return nil, fmt.Errorf("%w: spacing must be positive, got %v", ErrBadGeometry, spacing)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("%w: radius must be positive, got %v", ErrBadGeometry, radius)
	}

	electrodes := make([]Electrode, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			electrodes = append(electrodes, Electrode{
				Name:   fmt.Sprintf("%c%d", 'A'+r, c+1),
				X:      (float64(c) - float64(cols-1)/2) * spacing,
				Y:      (float64(r) - float64(rows-1)/2) * spacing,
				Radius: radius,
			})
		}
	}
	return NewArray(electrodes)
}

// Count returns the number of electrodes.
func (a *Array) Count() int { return len(a.electrodes) }

// At returns the electrode at position i, or ErrElectrodeIndex.
func (a *Array) At(i int) (Electrode, error) {
	if i < 0 || i >= len(a.electrodes) {
		return Electrode{}, fmt.Errorf("%w: %d with %d electrodes", ErrElectrodeIndex, i, len(a.electrodes))
	}
	return a.electrodes[i], nil
}

// IndexOf returns the position of the named electrode, or
// ErrUnknownElectrode.
func (a *Array) IndexOf(name string) (int, error) {
	i, ok := a.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownElectrode, name)
	}
	return i, nil
}

// Find returns the named electrode, or ErrUnknownElectrode.
func (a *Array) Find(name string) (Electrode, error) {
	i, err := a.IndexOf(name)
	if err != nil {
		return Electrode{}, err
	}
	return a.electrodes[i], nil
}

// Electrodes returns a copy of the electrodes in array order.
func (a *Array) Electrodes() []Electrode {
	out := make([]Electrode, len(a.electrodes))
	copy(out, a.electrodes)
	return out
}

// Names returns the electrode names in array order.
func (a *Array) Names() []string {
	out := make([]string, len(a.electrodes))
	for i, e := range a.electrodes {
		out[i] = e.Name
	}
	return out
}

// Extent returns the bounding box of the array on the retinal plane,
// including each electrode's radius: minX, maxX, minY, maxY.
func (a *Array) Extent() (minX, maxX, minY, maxY float64) {
	first := a.electrodes[0]
	minX, maxX = first.X-first.Radius, first.X+first.Radius
	minY, maxY = first.Y-first.Radius, first.Y+first.Radius
	for _, e := range a.electrodes[1:] {
		if e.X-e.Radius < minX {
			minX = e.X - e.Radius
		}
		if e.X+e.Radius > maxX {
			maxX = e.X + e.Radius
		}
		if e.Y-e.Radius < minY {
			minY = e.Y - e.Radius
		}
		if e.Y+e.Radius > maxY {
			maxY = e.Y + e.Radius
		}
	}
	return minX, maxX, minY, maxY
}
