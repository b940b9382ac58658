package implant_test

import (
	"fmt"

	"github.com/katalvlaran/stimwave/implant"
)

// ExampleNewRectArray lays out a 2x3 array with 100 µm pitch and shows
// the naming scheme and the radius-inclusive footprint.
func ExampleNewRectArray() {
	arr, err := implant.NewRectArray(2, 3, 100, 30)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(arr.Names())
	minX, maxX, _, _ := arr.Extent()
	fmt.Printf("x footprint: [%g, %g]\n", minX, maxX)
	// Output:
	// [A1 A2 A3 B1 B2 B3]
	// x footprint: [-130, 130]
}

// ExampleElectrode_ReceptiveField renders a square field over a small
// coordinate grid.
func ExampleElectrode_ReceptiveField() {
	g, err := implant.NewGrid(-1, 1, -1, 1, 3, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	e := implant.Electrode{Name: "A1", X: 0, Y: 0, Radius: 0.5}
	rf, err := e.ReceptiveField(g, implant.SquareField, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i := 0; i < 3; i++ {
		fmt.Println(rf.RawRowView(i))
	}
	// Output:
	// [0 0 0]
	// [0 1 0]
	// [0 0 0]
}
