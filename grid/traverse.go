// Package grid bulk visitation: lazy row-major sequences and eager
// write-path updates.
package grid

import "iter"

// All returns a lazy row-major sequence of (coordinate, value) pairs.
// The sequence is valid only until the next mutation of the grid.
func (g *Grid[T]) All() iter.Seq2[Coord, T] {
	return func(yield func(Coord, T) bool) {
		for i, row := range g.cells {
			for j, v := range row {
				if !yield(Coord{Row: i, Col: j}, v) {
					return
				}
			}
		}
	}
}

// Values returns a lazy row-major sequence of the stored values.
// The sequence is valid only until the next mutation of the grid.
func (g *Grid[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, row := range g.cells {
			for _, v := range row {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Update rewrites every cell in row-major order as fn(row, col, value),
// through the write path: each cell is clamped and emits its removal and
// addition notifications.
// Complexity: O(rows×columns) plus callback work.
func (g *Grid[T]) Update(fn func(row, col int, v T) T) {
	// Loop bounds read the live store each step and every write is
	// re-validated: fn or a notification callback may resize or clear
	// the grid mid-visit.
	for i := 0; i < len(g.cells); i++ {
		for j := 0; i < len(g.cells) && j < len(g.cells[i]); j++ {
			v := fn(i, j, g.cells[i][j])
			if g.live(i, j) {
				g.setCell(i, j, v)
			}
		}
	}
}

// Fill writes v into every cell through the write path.
// Complexity: O(rows×columns) plus callback work.
func (g *Grid[T]) Fill(v T) {
	g.Update(func(_, _ int, _ T) T { return v })
}
