package solve

import (
	"github.com/runfalk/burrow/grid"
	"github.com/runfalk/burrow/layout"
)

// Move is one legal relocation of a piece, with its BFS step count and
// total energy cost (steps × per-step energy of the piece).
type Move struct {
	From, To grid.Coord
	Piece    grid.PieceType
	Steps    int
	Cost     int64
}

// settled reports whether the piece of type p at (x,y) will never need
// to move again: it sits in its own room and every deeper cell (farther
// from the hallway) already holds a piece of the same type. Settled
// pieces are pruned as move sources, which is what keeps the branching
// factor under control.
func settled(g *grid.Grid, lay layout.Layout, x, y int, p grid.PieceType) bool {
	if x != lay.RoomColumn(p) || !lay.IsRoomCell(x, y) {
		return false
	}
	for _, rc := range lay.RoomCells(p) {
		if rc.Y <= y {
			// Reached the piece's own row; all deeper cells checked out.
			return true
		}
		c, _ := g.CellAt(rc.X, rc.Y)
		if occ, ok := c.Piece(); !ok || occ != p {
			return false
		}
	}

	return true
}

// entryCell returns the only cell of p's room that p may currently enter:
// the deepest empty cell, valid only while every deeper cell already
// holds a p. The second result is false when the room holds a wrong-type
// piece anywhere or is already full.
func entryCell(g *grid.Grid, lay layout.Layout, p grid.PieceType) (grid.Coord, bool) {
	for _, rc := range lay.RoomCells(p) {
		c, _ := g.CellAt(rc.X, rc.Y)
		if c.IsEmpty() {
			// Deeper cells all held p, so this is the entry cell. Cells
			// between here and the mouth must be empty for the BFS to
			// reach it at all, but a wrong-type piece parked above would
			// not block a future entry, so only depth-side purity gates.
			return rc, true
		}
		if occ, ok := c.Piece(); !ok || occ != p {
			// Wall, or a piece of another type: no entry until it leaves.
			return grid.Coord{}, false
		}
	}

	// Room is full of correct pieces.
	return grid.Coord{}, false
}

// LegalMoves enumerates every legal move for the piece at (x,y):
//
//   - a settled piece has no moves;
//   - from a room cell, the destination must be a hallway stop or the
//     entry cell of the piece's own room;
//   - from a hallway cell, the destination must be the entry cell of the
//     piece's own room.
//
// Returns nil when (x,y) does not hold a piece. Destinations come from
// ReachableFrom, so every move's step count is the minimum over empty
// cells and the source cell is never a destination.
func LegalMoves(g *grid.Grid, lay layout.Layout, x, y int) []Move {
	c, ok := g.CellAt(x, y)
	if !ok {
		return nil
	}
	p, ok := c.Piece()
	if !ok {
		return nil
	}
	if settled(g, lay, x, y, p) {
		return nil
	}

	entry, canEnter := entryCell(g, lay, p)
	fromRoom := lay.IsRoomCell(x, y)

	var moves []Move
	for _, st := range ReachableFrom(g, x, y) {
		dest := grid.Coord{X: st.X, Y: st.Y}
		enters := canEnter && dest == entry
		if fromRoom {
			if !enters && !lay.IsHallwayStop(st.X, st.Y) {
				continue
			}
		} else if !enters {
			continue
		}
		moves = append(moves, Move{
			From:  grid.Coord{X: x, Y: y},
			To:    dest,
			Piece: p,
			Steps: st.Steps,
			Cost:  int64(st.Steps) * p.Energy(),
		})
	}

	return moves
}

// apply produces the child arrangement resulting from mv: an independent
// copy of g with the piece relocated. It panics when the source does not
// hold the expected piece or the destination is occupied, both of which
// are solver defects rather than recoverable conditions.
func apply(g *grid.Grid, mv Move) *grid.Grid {
	child := g.Clone()
	c, ok := child.TakeCell(mv.From.X, mv.From.Y)
	if !ok {
		panic("solve: move source out of bounds")
	}
	if p, occupied := c.Piece(); !occupied || p != mv.Piece {
		panic("solve: move source does not hold the moved piece")
	}
	child.SetCell(mv.To.X, mv.To.Y, c)

	return child
}
