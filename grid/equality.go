// Package grid structural equality and content hashing.
package grid

import "hash/maphash"

// Equal reports whether a and b have identical dimensions and every cell
// at the same coordinate compares equal under ==. Identity is a fast path;
// a grid is never equal to nil unless both are nil.
// Complexity: O(rows×columns).
func Equal[T comparable](a, b *Grid[T]) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}

	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}

// EqualFunc reports structural equality of g and o under a caller-supplied
// cell comparison, for element types that are not comparable under ==.
// Complexity: O(rows×columns).
func (g *Grid[T]) EqualFunc(o *Grid[T], eq func(a, b T) bool) bool {
	if g == o {
		return true
	}
	if g == nil || o == nil {
		return false
	}
	if g.Rows() != o.Rows() || g.Columns() != o.Columns() {
		return false
	}
	for i, row := range g.cells {
		for j, v := range row {
			if !eq(v, o.cells[i][j]) {
				return false
			}
		}
	}

	return true
}

// Hash returns a content hash of the grid under seed: the dimensions and
// every cell in row-major order. Structurally equal grids hash equal under
// the same seed; the hash changes whenever the contents change, so it is
// not stable across mutation.
// Complexity: O(rows×columns).
func Hash[T comparable](seed maphash.Seed, g *Grid[T]) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	rows, cols := g.Dims()
	maphash.WriteComparable(&h, rows)
	maphash.WriteComparable(&h, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			maphash.WriteComparable(&h, g.cells[i][j])
		}
	}

	return h.Sum64()
}
