// Package solve finds the minimum total energy to sort a burrow
// arrangement, using Dijkstra's algorithm with lazy deletion over the
// implicit graph of reachable arrangements.
//
// What:
//
//   - ReachableFrom: BFS over empty cells from a piece's position,
//     returning every reachable cell with its minimum step count.
//   - LegalMoves: the movement rules — room pieces may reach a hallway
//     stop or their own room's entry cell, hallway pieces only the entry
//     cell, and settled pieces never move.
//   - MinEnergy: the search itself, with an indexed priority queue keyed
//     by (cost, sequence) and a per-invocation visited set.
//
// Why:
//
//   - Arrangements hash and compare but have no total order, so the heap
//     stores (cost, sequence) keys and arrangements live in a side
//     table; ties break by discovery order for deterministic results.
//   - The settled-piece prune and the hallway-stop restriction are what
//     keep the frontier tractable; deduplication alone is not enough.
//
// Options:
//
//   - WithContext: poll-based cancellation, checked once per dequeue.
//   - WithMaxCost: stop beyond a cost bound with ErrCostExceeded
//     ("unknown"), distinct from ErrNoSolution ("unsolvable").
//   - WithOnExpand: per-expansion hook for instrumentation and tests.
//
// Errors:
//
//   - ErrNilGrid, ErrOptionViolation: invalid inputs.
//   - ErrNoSolution: frontier exhausted; expected for unsolvable grids.
//   - ErrCostExceeded: cost bound passed before the target was dequeued.
package solve
