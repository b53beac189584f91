// Package grid defines the cell-level data model for the burrow enclosure:
// piece types with their movement energies, cell states, and sentinel errors
// shared by the grid parser and accessors.
package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input text contains no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")

	// ErrBadRune indicates an input character outside the grid alphabet
	// ('#', '.', ' ', 'A'..'D'). It is never silently coerced.
	ErrBadRune = errors.New("grid: unrecognized cell rune")

	// ErrUnfoldShape indicates Unfold was given a grid that is not the
	// two-row-deep enclosure shape.
	ErrUnfoldShape = errors.New("grid: only two-row-deep grids can be unfolded")
)

// PieceType identifies one of the four movable piece kinds.
// The zero value is Amber; types ascend in per-step energy order.
type PieceType uint8

const (
	// Amber moves at 1 energy per step.
	Amber PieceType = iota
	// Bronze moves at 10 energy per step.
	Bronze
	// Copper moves at 100 energy per step.
	Copper
	// Desert moves at 1000 energy per step.
	Desert

	// NumPieceTypes is the number of distinct piece kinds.
	NumPieceTypes = 4
)

// energies maps each PieceType to its fixed per-step movement cost.
var energies = [NumPieceTypes]int64{1, 10, 100, 1000}

// Energy returns the per-step movement cost of the piece type.
// Complexity: O(1).
func (p PieceType) Energy() int64 { return energies[p] }

// Rune returns the canonical text representation of the piece type
// ('A' for Amber through 'D' for Desert).
func (p PieceType) Rune() rune { return 'A' + rune(p) }

// String implements fmt.Stringer using the canonical rune.
func (p PieceType) String() string { return string(p.Rune()) }

// Cell is the state of a single grid position: a wall, a non-playable
// space outside the enclosure, an empty playable cell, or a cell occupied
// by one piece. Occupied values are constructed via CellOf.
type Cell uint8

const (
	// Wall is an impassable boundary cell.
	Wall Cell = iota
	// Space is a non-playable filler cell outside the enclosure.
	Space
	// Empty is a playable cell with no piece on it.
	Empty

	// cellAmber is the first occupied value; CellOf(p) == cellAmber + Cell(p).
	cellAmber
)

// CellOf returns the occupied cell value holding piece type p.
func CellOf(p PieceType) Cell { return cellAmber + Cell(p) }

// IsEmpty reports whether the cell is playable and unoccupied.
func (c Cell) IsEmpty() bool { return c == Empty }

// Piece returns the occupying piece type and true when the cell holds a
// piece, or the zero PieceType and false otherwise.
func (c Cell) Piece() (PieceType, bool) {
	if c >= cellAmber && c < cellAmber+NumPieceTypes {
		return PieceType(c - cellAmber), true
	}

	return 0, false
}

// Rune returns the canonical text representation of the cell.
func (c Cell) Rune() rune {
	switch c {
	case Wall:
		return '#'
	case Space:
		return ' '
	case Empty:
		return '.'
	default:
		p, _ := c.Piece()

		return p.Rune()
	}
}

// Coord is a grid position. X grows rightward, Y grows downward.
type Coord struct {
	X, Y int
}

// Placement locates one piece on the grid.
type Placement struct {
	X, Y  int
	Piece PieceType
}
