// Package burrow solves the amphipod-style sorting puzzle: given a small
// irregular enclosure — one hallway over four destination rooms — and
// four kinds of movable pieces with per-step energies 1, 10, 100 and
// 1000, it computes the minimum total energy needed to sort every piece
// into its own room.
//
// Everything is organized under three subpackages:
//
//	grid/   — cells, piece types, the flat hashable arrangement, text codec
//	layout/ — static topology: rooms, hallway stops, target arrangement
//	solve/  — BFS reachability, move legality, lazy-deletion Dijkstra
//
// Quick example:
//
//	g, err := grid.ParseGrid(input)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cost, err := solve.MinEnergy(g)
//	switch {
//	case errors.Is(err, solve.ErrNoSolution):
//	    fmt.Println("no solution")
//	case err != nil:
//	    log.Fatal(err)
//	default:
//	    fmt.Println(cost)
//	}
//
// The two documented enclosures are two and four rows deep; grid.Unfold
// converts the former into the latter. The design generalizes to any
// room depth ≥ 1.
package burrow
