package ledmap_test

import (
	"fmt"

	"github.com/fkcurrie/led-animator/pkg/ledmap"
	"github.com/fkcurrie/led-animator/pkg/pixel"
)

func Example() {
	w, err := ledmap.ParseWiring("serpentine rows top-left")
	if err != nil {
		fmt.Printf("Failed to parse wiring: %v\n", err)
		return
	}

	m, err := ledmap.New(2, 3, w)
	if err != nil {
		fmt.Printf("Failed to create map: %v\n", err)
		return
	}

	for row := 0; row < m.Rows(); row++ {
		line := make([]int, m.Cols())
		for col := range line {
			line[col] = m.Index(row, col)
		}
		fmt.Println(line)
	}
	// Output:
	// [0 1 2]
	// [5 4 3]
}

func ExampleMap_Project() {
	// A single strip fed from the right hand end
	m, err := ledmap.New(1, 3, ledmap.Wiring{Layout: ledmap.Progressive, Axis: ledmap.Rows, Start: ledmap.TopRight})
	if err != nil {
		fmt.Printf("Failed to create map: %v\n", err)
		return
	}

	frame := pixel.NewFrame(1, 3)
	frame[0][0] = pixel.RGB{R: 1}
	frame[0][1] = pixel.RGB{R: 2}
	frame[0][2] = pixel.RGB{R: 3}

	leds := make([]pixel.RGB, m.Len())
	m.Project(frame, leds)
	for _, c := range leds {
		fmt.Print(c.R, " ")
	}
	fmt.Println()
	// Output: 3 2 1
}

func ExampleParseWiring() {
	w, err := ledmap.ParseWiring("bottom-right columns")
	if err != nil {
		fmt.Printf("Failed to parse wiring: %v\n", err)
		return
	}
	fmt.Println(w)

	_, err = ledmap.ParseWiring("diagonal")
	fmt.Println(err)
	// Output:
	// serpentine columns bottom-right
	// invalid wiring: unknown wiring word "diagonal"
}
