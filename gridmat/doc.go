// Package gridmat bridges grid.Grid and gonum's mat package.
//
// What:
//
//   - ToDense copies a numeric grid into a *mat.Dense for linear algebra
//     and statistics.
//   - FromMatrix adopts any mat.Matrix into a *grid.Grid[float64],
//     construction options (clamp, callbacks) flowing through.
//
// Why:
//
//   - Simulations often need matrix operations over the same field the
//     grid container manages; converting at the boundary keeps the two
//     worlds decoupled.
//
// Complexity:
//
//   - ToDense / FromMatrix: O(rows×cols) time and memory, always a copy.
//
// Errors:
//
//   - ErrNilGrid / ErrNilMatrix: nil input.
//   - ErrEmptyGrid: gonum rejects zero-dimension matrices, so an empty
//     grid cannot convert.
package gridmat
