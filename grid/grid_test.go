package grid_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/runfalk/burrow/grid"
)

// exampleInput is the canonical two-row-deep arrangement.
const exampleInput = "#############\n" +
	"#...........#\n" +
	"###B#C#B#D###\n" +
	"  #A#D#C#A#\n" +
	"  #########\n"

// mustParse parses input or aborts the test.
func mustParse(t *testing.T, input string) *grid.Grid {
	t.Helper()
	g, err := grid.ParseGrid(input)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}

	return g
}

// TestPieceType_Energy pins the fixed per-step costs.
func TestPieceType_Energy(t *testing.T) {
	want := map[grid.PieceType]int64{
		grid.Amber:  1,
		grid.Bronze: 10,
		grid.Copper: 100,
		grid.Desert: 1000,
	}
	for p, e := range want {
		if got := p.Energy(); got != e {
			t.Errorf("%v.Energy() = %d; want %d", p, got, e)
		}
	}
}

// TestCell_Piece verifies the occupied/unoccupied split of cell values.
func TestCell_Piece(t *testing.T) {
	for _, c := range []grid.Cell{grid.Wall, grid.Space, grid.Empty} {
		if _, ok := c.Piece(); ok {
			t.Errorf("cell %q unexpectedly holds a piece", c.Rune())
		}
	}
	for p := grid.Amber; p <= grid.Desert; p++ {
		got, ok := grid.CellOf(p).Piece()
		if !ok || got != p {
			t.Errorf("CellOf(%v).Piece() = %v, %v; want %v, true", p, got, ok, p)
		}
	}
	if grid.Empty.IsEmpty() != true || grid.CellOf(grid.Amber).IsEmpty() {
		t.Error("IsEmpty misclassifies cells")
	}
}

// TestParseGrid_RoundTrip checks that parsing and rendering are inverse,
// including the short, space-padded room rows.
func TestParseGrid_RoundTrip(t *testing.T) {
	g := mustParse(t, exampleInput)
	if got := g.String(); got != exampleInput {
		t.Errorf("round trip mismatch:\ngot:\n%swant:\n%s", got, exampleInput)
	}
	if g.Width() != 13 || g.Height() != 5 {
		t.Errorf("dimensions = %dx%d; want 13x5", g.Width(), g.Height())
	}
}

// TestParseGrid_BadRune verifies an unmapped character is a parse error,
// never a silent coercion.
func TestParseGrid_BadRune(t *testing.T) {
	_, err := grid.ParseGrid("#############\n#....X......#\n")
	if !errors.Is(err, grid.ErrBadRune) {
		t.Fatalf("want ErrBadRune, got %v", err)
	}
}

// TestParseGrid_Empty rejects inputs without rows or columns.
func TestParseGrid_Empty(t *testing.T) {
	for _, input := range []string{"", "\n", "\n\n"} {
		if _, err := grid.ParseGrid(input); !errors.Is(err, grid.ErrEmptyGrid) {
			t.Errorf("ParseGrid(%q): want ErrEmptyGrid, got %v", input, err)
		}
	}
}

// TestCellAt_OutOfBounds must report absence, never panic.
func TestCellAt_OutOfBounds(t *testing.T) {
	g := mustParse(t, exampleInput)
	for _, c := range []grid.Coord{{X: -1, Y: 0}, {X: 13, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 5}} {
		if _, ok := g.CellAt(c.X, c.Y); ok {
			t.Errorf("CellAt(%d,%d) in bounds; want absent", c.X, c.Y)
		}
	}
}

// TestTakeCell reads the cell and resets it to Empty.
func TestTakeCell(t *testing.T) {
	g := mustParse(t, exampleInput)
	c, ok := g.TakeCell(3, 2)
	if !ok {
		t.Fatal("TakeCell(3,2) out of bounds")
	}
	if p, occupied := c.Piece(); !occupied || p != grid.Bronze {
		t.Errorf("TakeCell(3,2) = %q; want B", c.Rune())
	}
	if after, _ := g.CellAt(3, 2); !after.IsEmpty() {
		t.Errorf("cell (3,2) after take = %q; want empty", after.Rune())
	}
	if _, ok = g.TakeCell(-1, 0); ok {
		t.Error("TakeCell(-1,0) in bounds; want absent")
	}
}

// TestSetCell_CollisionPanics: placing a second piece on an occupied
// cell is an invariant violation and must not be silently absorbed.
func TestSetCell_CollisionPanics(t *testing.T) {
	g := mustParse(t, exampleInput)
	defer func() {
		if recover() == nil {
			t.Error("SetCell onto an occupied cell did not panic")
		}
	}()
	g.SetCell(3, 2, grid.CellOf(grid.Amber))
}

// TestOccupied_RowMajor pins the deterministic enumeration order.
func TestOccupied_RowMajor(t *testing.T) {
	g := mustParse(t, exampleInput)
	want := []grid.Placement{
		{X: 3, Y: 2, Piece: grid.Bronze},
		{X: 5, Y: 2, Piece: grid.Copper},
		{X: 7, Y: 2, Piece: grid.Bronze},
		{X: 9, Y: 2, Piece: grid.Desert},
		{X: 3, Y: 3, Piece: grid.Amber},
		{X: 5, Y: 3, Piece: grid.Desert},
		{X: 7, Y: 3, Piece: grid.Copper},
		{X: 9, Y: 3, Piece: grid.Amber},
	}
	if got := g.Occupied(); !reflect.DeepEqual(got, want) {
		t.Errorf("Occupied() = %v; want %v", got, want)
	}
}

// TestClone_Independence: mutating a clone must never leak into the
// original, since enqueued arrangements stay frozen.
func TestClone_Independence(t *testing.T) {
	g := mustParse(t, exampleInput)
	c := g.Clone()
	if !g.Equal(c) || g.Key() != c.Key() {
		t.Fatal("clone does not equal original")
	}

	c.TakeCell(3, 2)
	if g.Equal(c) {
		t.Error("mutating clone changed equality with original")
	}
	if cell, _ := g.CellAt(3, 2); cell.IsEmpty() {
		t.Error("mutating clone leaked into original")
	}
}

// TestEqual covers shape and nil mismatches.
func TestEqual(t *testing.T) {
	g := mustParse(t, exampleInput)
	if g.Equal(nil) {
		t.Error("grid equals nil")
	}
	small := mustParse(t, "###\n#.#\n###\n")
	if g.Equal(small) {
		t.Error("grids of different shapes compare equal")
	}
}

// TestUnfold verifies the two fixed rows are spliced between the
// original room rows.
func TestUnfold(t *testing.T) {
	g := mustParse(t, exampleInput)
	u, err := g.Unfold()
	if err != nil {
		t.Fatalf("Unfold: %v", err)
	}

	want := "#############\n" +
		"#...........#\n" +
		"###B#C#B#D###\n" +
		"  #D#C#B#A#\n" +
		"  #D#B#A#C#\n" +
		"  #A#D#C#A#\n" +
		"  #########\n"
	if got := u.String(); got != want {
		t.Errorf("Unfold mismatch:\ngot:\n%swant:\n%s", got, want)
	}

	// The receiver must be untouched.
	if g.Height() != 5 {
		t.Errorf("Unfold mutated receiver height: %d", g.Height())
	}

	// A four-row-deep grid cannot be unfolded again.
	if _, err = u.Unfold(); !errors.Is(err, grid.ErrUnfoldShape) {
		t.Errorf("second Unfold: want ErrUnfoldShape, got %v", err)
	}
}
