// Package grid models one arrangement of the burrow enclosure as a
// flat, rectangular 2D grid of cells.
//
// What:
//
//   - PieceType: the four movable piece kinds with fixed per-step
//     energies 1, 10, 100 and 1000.
//   - Cell: wall, non-playable space, empty, or occupied by one piece.
//   - Grid: flat row-major cell storage with bounds-checked accessors,
//     deep copies, and a stable byte-string Key for deduplication.
//   - ParseGrid/String: the text codec ('#', '.', ' ', 'A'..'D').
//   - Unfold: splice the two extra room rows into a two-row-deep grid.
//
// Why:
//
//   - A Grid is the search-state node of the solver; flat storage gives
//     it stable equality and hashing, which associative-map state cannot.
//   - Independent Clone copies keep enqueued arrangements frozen.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrBadRune: input character outside the grid alphabet.
//   - ErrUnfoldShape: Unfold on a grid that is not two rows deep.
//
// Invariant violations (out-of-bounds SetCell, placing two pieces on one
// cell) panic: they are solver defects after which the arrangement can
// no longer be trusted.
package grid
