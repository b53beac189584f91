package grid_test

import (
	"fmt"

	"github.com/runfalk/burrow/grid"
)

// ExampleParseGrid parses the canonical two-row-deep arrangement and
// inspects a few cells.
func ExampleParseGrid() {
	input := "#############\n" +
		"#...........#\n" +
		"###B#C#B#D###\n" +
		"  #A#D#C#A#\n" +
		"  #########\n"

	g, err := grid.ParseGrid(input)
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println("pieces:", len(g.Occupied()))
	c, _ := g.CellAt(3, 2)
	fmt.Printf("cell (3,2): %c\n", c.Rune())
	fmt.Println("round trip:", g.String() == input)

	// Output:
	// pieces: 8
	// cell (3,2): B
	// round trip: true
}

// ExampleGrid_Unfold expands a two-row-deep arrangement into the
// four-row-deep variant of the same puzzle.
func ExampleGrid_Unfold() {
	g, _ := grid.ParseGrid("#############\n" +
		"#...........#\n" +
		"###B#C#B#D###\n" +
		"  #A#D#C#A#\n" +
		"  #########\n")

	u, err := g.Unfold()
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println("rows:", u.Height())
	fmt.Println("pieces:", len(u.Occupied()))

	// Output:
	// rows: 7
	// pieces: 16
}
