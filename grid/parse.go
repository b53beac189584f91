package grid

import (
	"fmt"
	"strings"
)

// cellFromRune maps one input rune onto its Cell, or ErrBadRune.
func cellFromRune(r rune) (Cell, error) {
	switch {
	case r == '#':
		return Wall, nil
	case r == '.':
		return Empty, nil
	case r == ' ':
		return Space, nil
	case r >= 'A' && r < 'A'+NumPieceTypes:
		return CellOf(PieceType(r - 'A')), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadRune, r)
	}
}

// ParseGrid builds a Grid from a newline-separated text block using the
// alphabet '#' (wall), '.' (empty), ' ' (non-playable) and 'A'..'D'
// (occupied). Any other rune fails with ErrBadRune and the offending
// position. Short rows are padded to the widest row with non-playable
// Space cells, keeping the grid rectangular without changing semantics.
//
// Returns ErrEmptyGrid when the input holds no rows or no columns.
// Complexity: O(width×height).
func ParseGrid(input string) (*Grid, error) {
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")

	width := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > width {
			width = n
		}
	}
	if len(lines) == 0 || width == 0 {
		return nil, ErrEmptyGrid
	}

	g := newGrid(width, len(lines))
	for y, line := range lines {
		for x, r := range []rune(line) {
			c, err := cellFromRune(r)
			if err != nil {
				return nil, fmt.Errorf("%w at (%d,%d)", err, x, y)
			}
			g.cells[g.index(x, y)] = c
		}
	}

	return g, nil
}

// String renders the grid back into its text form, one row per line with
// trailing non-playable cells trimmed, so a parsed grid round-trips.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		row := make([]rune, g.width)
		for x := 0; x < g.width; x++ {
			row[x] = g.cells[g.index(x, y)].Rune()
		}
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// unfoldRows are the two extra room rows spliced into a two-row-deep grid
// to obtain the four-row-deep variant of the same puzzle.
var unfoldRows = [2]string{
	"  #D#C#B#A#",
	"  #D#B#A#C#",
}

// Unfold converts a two-row-deep enclosure into the four-row-deep
// variant by inserting the two fixed extra room rows between the
// original room rows. The receiver is not modified.
//
// Returns ErrUnfoldShape when the grid does not have the two-row-deep
// height. Complexity: O(width×height).
func (g *Grid) Unfold() (*Grid, error) {
	// Two-row-deep enclosures are exactly five rows tall:
	// wall, hallway, two room rows, wall.
	if g.height != 5 {
		return nil, ErrUnfoldShape
	}

	out := newGrid(g.width, g.height+2)

	// Rows above the splice point keep their position.
	copy(out.cells[:3*g.width], g.cells[:3*g.width])

	// The two inserted rows become rows 3 and 4.
	for i, row := range unfoldRows {
		for x, r := range row {
			c, err := cellFromRune(r)
			if err != nil {
				panic("grid: invalid unfold row literal")
			}
			out.cells[out.index(x, 3+i)] = c
		}
	}

	// The original deep room row and bottom wall shift down by two.
	copy(out.cells[5*g.width:], g.cells[3*g.width:])

	return out, nil
}
