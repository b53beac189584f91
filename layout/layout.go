// Package layout captures the static topology of the burrow enclosure:
// which coordinates are room cells, which hallway cells are legal
// stopping points, and which room each piece type owns.
//
// A Layout is an immutable value parameterized only by room depth. The
// two documented enclosures are two and four rows deep, but any depth
// ≥ 1 is supported; everything else about the shape is fixed:
//
//	#############        row 0: wall
//	#...........#        row 1: hallway (stops exclude the room mouths)
//	###A#B#C#D###        row 2: outermost room row
//	  #A#B#C#D#          rows 3..depth+1: deeper room rows
//	  #########          row depth+2: wall
package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/runfalk/burrow/grid"
)

// Sentinel errors for layout construction.
var (
	// ErrBadDepth indicates a requested room depth below one.
	ErrBadDepth = errors.New("layout: room depth must be at least 1")

	// ErrUnknownShape indicates a grid whose dimensions do not match the
	// documented enclosure shape.
	ErrUnknownShape = errors.New("layout: grid does not match the burrow enclosure shape")
)

// Fixed geometry of the enclosure, from the originating puzzle.
const (
	// enclosureWidth is the fixed column count of the enclosure.
	enclosureWidth = 13
	// hallwayRow is the row index of the hallway.
	hallwayRow = 1
	// roomTopRow is the row index of the outermost room cells.
	roomTopRow = 2
)

// roomColumns maps each PieceType (by index) to the column of its room.
var roomColumns = [grid.NumPieceTypes]int{3, 5, 7, 9}

// hallwayStops are the hallway columns where a piece may legally rest.
// The four columns directly above room mouths are passable but excluded.
var hallwayStops = map[int]bool{1: true, 2: true, 4: true, 6: true, 8: true, 10: true, 11: true}

// Layout is the static topology for one room depth.
type Layout struct {
	depth int
}

// New returns the Layout for rooms of the given depth (rows per room).
// Returns ErrBadDepth when depth < 1.
func New(depth int) (Layout, error) {
	if depth < 1 {
		return Layout{}, ErrBadDepth
	}

	return Layout{depth: depth}, nil
}

// ForGrid infers the Layout from a grid's dimensions: an enclosure with
// rooms depth d is exactly d+3 rows tall and 13 columns wide. Returns
// ErrUnknownShape for any other dimensions.
func ForGrid(g *grid.Grid) (Layout, error) {
	if g == nil {
		return Layout{}, ErrUnknownShape
	}
	depth := g.Height() - 3
	if g.Width() != enclosureWidth || depth < 1 {
		return Layout{}, fmt.Errorf("%w: %dx%d", ErrUnknownShape, g.Width(), g.Height())
	}

	return Layout{depth: depth}, nil
}

// Depth returns the number of cells per room.
func (l Layout) Depth() int { return l.depth }

// IsRoomCell reports whether (x,y) lies inside one of the four rooms.
// Complexity: O(1).
func (l Layout) IsRoomCell(x, y int) bool {
	if y < roomTopRow || y > roomTopRow+l.depth-1 {
		return false
	}
	for _, col := range roomColumns {
		if x == col {
			return true
		}
	}

	return false
}

// IsHallwayStop reports whether (x,y) is a hallway cell a piece may stop
// on. Cells directly above a room mouth are passable but never a stop.
// Complexity: O(1).
func (l Layout) IsHallwayStop(x, y int) bool {
	return y == hallwayRow && hallwayStops[x]
}

// RoomColumn returns the column of the room owned by piece type p.
func (l Layout) RoomColumn(p grid.PieceType) int { return roomColumns[p] }

// RoomCells returns the cells of the room owned by p, ordered innermost
// (deepest, farthest from the hallway) first. The ordering lets callers
// find the deepest empty cell and test whether a room is settled toward
// its mouth with a single forward scan.
// Complexity: O(depth).
func (l Layout) RoomCells(p grid.PieceType) []grid.Coord {
	col := roomColumns[p]
	cells := make([]grid.Coord, l.depth)
	for i := 0; i < l.depth; i++ {
		cells[i] = grid.Coord{X: col, Y: roomTopRow + l.depth - 1 - i}
	}

	return cells
}

// Target builds the sorted arrangement for this layout: every room cell
// holds its owning type and the hallway is entirely empty. The result is
// freshly allocated and owned by the caller.
// Complexity: O(width×height).
func (l Layout) Target() *grid.Grid {
	var sb strings.Builder
	sb.WriteString("#############\n")
	sb.WriteString("#...........#\n")
	sb.WriteString("###A#B#C#D###\n")
	for i := 1; i < l.depth; i++ {
		sb.WriteString("  #A#B#C#D#\n")
	}
	sb.WriteString("  #########\n")

	g, err := grid.ParseGrid(sb.String())
	if err != nil {
		panic("layout: invalid target literal")
	}

	return g
}
