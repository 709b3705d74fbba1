// Package grid provides a generic, rectangular 2D container with
// bounds-checked access, change notifications, and structural queries.
//
// What:
//
//   - Grid[T] owns a row-major rectangular store of values of one type T.
//   - Resize grows or shrinks both dimensions, notifying only changed cells.
//   - Optional OnAdded/OnRemoved callbacks fire when a cell is populated or
//     vacated, guarded against infinite re-entrant notification loops.
//   - An optional clamp transform is applied to every value on write.
//   - Structural queries: neighbour lookup, sub-grid extraction, row-major
//     traversal, coordinate-keyed views, structural equality and hashing.
//
// Why:
//
//   - Board games: cells, moves, neighbourhood rules.
//   - Cellular simulations: generation stepping over a bounded field.
//   - Tile maps: rectangular regions, resizing, value normalization.
//
// Complexity:
//
//   - At/Set/InBounds:  O(1).
//   - Resize:           O(Δrows×max(C0,C1) + Δcols×max(R0,R1)) — proportional
//     to the change, not to full re-materialization.
//   - NeighboursAt:     O(d), d = number of offsets (4 or 8 by default).
//   - SubGrid:          O(h×w) for the extracted rectangle.
//   - Equal/Hash:       O(rows×cols).
//
// Concurrency:
//
//   - None. All operations run synchronously on the caller's goroutine and
//     the container carries no locks. A notification callback may call back
//     into the grid; such nested calls execute on the outer call's stack,
//     bounded only by the notification guard.
//
// Errors:
//
//   - ErrInvalidRows / ErrInvalidColumns: non-positive requested dimension.
//   - ErrRowOutOfRange / ErrColumnOutOfRange: coordinate outside [0, extent).
//   - ErrRaggedRows: FromRows input rows of differing lengths.
//   - ErrUnkeyableType: ToCoordinates on an element type that cannot key a map.
package grid
