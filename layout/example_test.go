package layout_test

import (
	"fmt"

	"github.com/runfalk/burrow/grid"
	"github.com/runfalk/burrow/layout"
)

// ExampleLayout_RoomCells shows the innermost-first ordering used to
// locate a room's entry cell.
func ExampleLayout_RoomCells() {
	lay, _ := layout.New(4)

	for _, c := range lay.RoomCells(grid.Amber) {
		fmt.Printf("(%d,%d) ", c.X, c.Y)
	}
	fmt.Println()

	// Output:
	// (3,5) (3,4) (3,3) (3,2)
}

// ExampleForGrid infers the topology from a parsed arrangement.
func ExampleForGrid() {
	g, _ := grid.ParseGrid("#############\n" +
		"#...........#\n" +
		"###B#C#B#D###\n" +
		"  #A#D#C#A#\n" +
		"  #########\n")

	lay, err := layout.ForGrid(g)
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println("depth:", lay.Depth())
	fmt.Println("stop above a room mouth:", lay.IsHallwayStop(3, 1))
	fmt.Println("ordinary hallway stop:", lay.IsHallwayStop(4, 1))

	// Output:
	// depth: 2
	// stop above a room mouth: false
	// ordinary hallway stop: true
}
