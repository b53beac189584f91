// Package solve computes the minimum total energy needed to sort a
// burrow arrangement into its target via Dijkstra's algorithm over the
// implicit graph of reachable arrangements.
//
// States are full arrangements; transitions apply exactly one legal move
// to one piece. The frontier is an indexed min-cost priority queue with
// lazy deletion: stale duplicate entries are permitted and discarded on
// pop instead of being decreased in place.
//
// Complexity is bounded by the finite set of distinct reachable
// arrangements S and the branching factor b:
//
//   - Time:  O(S·b·(log(S·b) + W·H)) — each expansion runs one BFS per
//     piece over the W×H grid and pushes at most b children.
//   - Space: O(S·b) worst case for frontier entries under lazy deletion,
//     plus O(S) for the visited set.
package solve

import (
	"fmt"

	"github.com/runfalk/burrow/grid"
	"github.com/runfalk/burrow/layout"
)

// MinEnergy returns the minimum total energy required to rearrange g
// into the sorted target arrangement for its inferred layout.
//
// Returns:
//
//   - the cost at which the target arrangement is first dequeued, proven
//     minimal by the Dijkstra invariant;
//   - ErrNoSolution when the frontier exhausts without reaching the
//     target (an expected outcome for well-formed unsolvable inputs);
//   - ErrCostExceeded when WithMaxCost cut the search short;
//   - the context error when WithContext's context is done.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//  3. g must match a known enclosure shape (layout.ErrUnknownShape).
//
// The frontier and visited set are constructed fresh per invocation and
// owned exclusively by it, so concurrent MinEnergy calls on independent
// grids are safe.
func MinEnergy(g *grid.Grid, opts ...Option) (int64, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return 0, cfg.err
	}

	// 2) Validate the grid pointer.
	if g == nil {
		return 0, ErrNilGrid
	}

	// 3) Infer the topology from the grid's dimensions.
	lay, err := layout.ForGrid(g)
	if err != nil {
		return 0, fmt.Errorf("solve: %w", err)
	}

	// 4) Run the search with per-invocation state.
	r := &runner{
		lay:      lay,
		opts:     cfg,
		target:   lay.Target().Key(),
		frontier: newFrontier(),
		visited:  make(map[string]struct{}),
	}

	return r.run(g)
}

// runner holds the mutable state for a single search execution.
type runner struct {
	lay      layout.Layout       // static topology for this grid shape
	opts     Options             // configuration for this run
	target   string              // key of the target arrangement
	frontier *frontier           // min-cost queue with lazy deletion
	visited  map[string]struct{} // keys of expanded arrangements
}

// run seeds the frontier with the initial arrangement at cost zero and
// loops: pop the cheapest arrangement, return its cost if it is the
// target, discard it if stale, otherwise expand it.
func (r *runner) run(initial *grid.Grid) (int64, error) {
	r.frontier.push(initial, 0)

	for {
		// Cancellation check, once per dequeue.
		select {
		case <-r.opts.Ctx.Done():
			return 0, r.opts.Ctx.Err()
		default:
		}

		g, cost, ok := r.frontier.pop()
		if !ok {
			// Frontier exhausted: the instance is unsolvable.
			return 0, ErrNoSolution
		}

		// Everything still queued costs at least this much, so once the
		// bound is passed nothing cheaper can follow.
		if cost > r.opts.MaxCost {
			return 0, ErrCostExceeded
		}

		// The first dequeue of the target carries the minimum cost.
		key := g.Key()
		if key == r.target {
			return cost, nil
		}

		// Lazy deletion: a previously expanded arrangement reached again
		// is a stale duplicate, never cheaper by queue discipline.
		if _, seen := r.visited[key]; seen {
			continue
		}

		r.visited[key] = struct{}{}
		r.opts.OnExpand(key, cost)
		r.expand(g, cost)
	}
}

// expand pushes one child arrangement per legal move of every piece.
// Children whose arrangement was already expanded are filtered here as
// an early duplicate cut; the pop-side check remains authoritative.
func (r *runner) expand(g *grid.Grid, cost int64) {
	for _, pl := range g.Occupied() {
		for _, mv := range LegalMoves(g, r.lay, pl.X, pl.Y) {
			child := apply(g, mv)
			if _, seen := r.visited[child.Key()]; seen {
				continue
			}
			r.frontier.push(child, cost+mv.Cost)
		}
	}
}
