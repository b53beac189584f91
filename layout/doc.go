// Package layout provides the static topology of the burrow enclosure
// for any room depth: room-cell and hallway-stop classification, the
// piece-type → room mapping, and the sorted target arrangement.
//
// What:
//
//   - Layout: immutable value parameterized by room depth (≥ 1).
//   - IsRoomCell / IsHallwayStop: coordinate classification; the four
//     hallway cells above room mouths are passable but never stops.
//   - RoomCells: a type's room cells ordered innermost first.
//   - Target: the arrangement with every room sorted and the hallway
//     empty, built once at startup and never mutated by the solver.
//
// Why:
//
//   - Move legality depends entirely on this classification; keeping it
//     in static tables separates topology from search.
//
// Errors:
//
//   - ErrBadDepth: requested depth below one.
//   - ErrUnknownShape: grid dimensions match no known enclosure.
package layout
