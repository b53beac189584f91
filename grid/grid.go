// Package grid models the burrow enclosure as a flat, rectangular 2D grid
// of cells. It supports:
//
//   - Bounds-checked cell access (CellAt, SetCell, TakeCell)
//   - Row-major enumeration of occupied cells
//   - Deep copies (Clone) and stable equality/hashing (Equal, Key)
//   - A text codec (ParseGrid, String) and the two-to-four-row Unfold
//
// A Grid doubles as a search-state node: the flat cell slice gives it a
// stable byte-string key, so arrangements can be deduplicated in maps.
package grid

// Grid is one full arrangement of the enclosure. Cells are stored
// row-major in a flat slice so that Key is a stable, order-preserving
// view of the whole state.
type Grid struct {
	width, height int
	cells         []Cell
}

// newGrid allocates a width×height grid filled with Space cells.
func newGrid(width, height int) *Grid {
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = Space
	}

	return &Grid{width: width, height: height, cells: cells}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// index maps (x,y) to a row-major index: y*width + x.
func (g *Grid) index(x, y int) int { return y*g.width + x }

// CellAt returns the cell at (x,y). The second result is false when the
// coordinates are out of bounds; out-of-bounds access is never a panic.
// Complexity: O(1).
func (g *Grid) CellAt(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}

	return g.cells[g.index(x, y)], true
}

// SetCell stores c at (x,y). It panics when the coordinates are out of
// bounds or when c carries a piece and the cell already holds one: both
// indicate a defect in the caller's move application, after which the
// arrangement can no longer be trusted.
// Complexity: O(1).
func (g *Grid) SetCell(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		panic("grid: SetCell out of bounds")
	}
	if _, moving := c.Piece(); moving {
		if _, occupied := g.cells[g.index(x, y)].Piece(); occupied {
			panic("grid: SetCell would place two pieces on one cell")
		}
	}
	g.cells[g.index(x, y)] = c
}

// TakeCell reads the cell at (x,y) and resets it to Empty, the read half
// of applying a move. The second result is false when out of bounds.
// Complexity: O(1).
func (g *Grid) TakeCell(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}
	i := g.index(x, y)
	c := g.cells[i]
	g.cells[i] = Empty

	return c, true
}

// Occupied returns every piece on the grid in row-major order. The slice
// is freshly allocated on each call, so enumeration is restartable and
// deterministic.
// Complexity: O(width×height).
func (g *Grid) Occupied() []Placement {
	var out []Placement
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if p, ok := g.cells[g.index(x, y)].Piece(); ok {
				out = append(out, Placement{X: x, Y: y, Piece: p})
			}
		}
	}

	return out
}

// Clone returns an independent deep copy of the grid. Mutating the copy
// never affects the original, so enqueued arrangements stay frozen.
// Complexity: O(width×height).
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)

	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Equal reports cell-wise equality of two grids.
// Complexity: O(width×height).
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}

	return g.Key() == other.Key()
}

// Key returns a stable byte-string view of the flat cell slice, suitable
// as a map key for visited sets and side tables. Two grids of the same
// shape have equal keys iff they are cell-wise equal.
// Complexity: O(width×height).
func (g *Grid) Key() string {
	b := make([]byte, len(g.cells))
	for i, c := range g.cells {
		b[i] = byte(c)
	}

	return string(b)
}
