package tilemap_test

import (
	"fmt"

	"github.com/katalvlaran/dungeonpath/tilemap"
)

// ExampleGrid_Point shows the row-major conversion between a linear
// position and its (x,y) coordinate.
func ExampleGrid_Point() {
	g, _ := tilemap.New(5, 5)
	p := g.Index(3, 2)
	fmt.Println(p, g.Point(p))

	// Output:
	// 13 (3,2)
}

// ExampleGrid_Regions counts separate open areas in a small map.
func ExampleGrid_Regions() {
	g, _ := tilemap.Parse(
		"..#..",
		"..#..",
	)
	for i, r := range g.Regions() {
		fmt.Printf("region %d: %d cells\n", i, len(r))
	}

	// Output:
	// region 0: 4 cells
	// region 1: 4 cells
}
