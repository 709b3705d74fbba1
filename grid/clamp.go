// Package grid value clamping: optional write-path transforms and
// non-mutating clamped projections.
package grid

import "iter"

// SetClamp installs fn as the transform applied to every subsequent write
// (nil removes the current clamp). When applyNow is true and fn is non-nil,
// every existing cell is immediately rewritten through the ordinary write
// path, so clamping a populated grid emits a full removal/addition
// notification pair per cell.
// Complexity: O(1), or O(rows×columns) with applyNow.
func (g *Grid[T]) SetClamp(fn func(T) T, applyNow bool) {
	g.clamp = fn
	if applyNow && fn != nil {
		g.Update(func(_, _ int, v T) T { return v })
	}
}

// ClampValues eagerly rewrites every cell as fn(value) through the write
// path. A nil fn is a no-op.
// Complexity: O(rows×columns) plus callback work.
func (g *Grid[T]) ClampValues(fn func(T) T) {
	if fn == nil {
		return
	}
	g.Update(func(_, _ int, v T) T { return fn(v) })
}

// ClampedValues returns a lazy row-major projection of the stored values
// through fn, without mutating the grid (nil fn yields the values as-is).
// The sequence is valid only until the next mutation of the grid.
func (g *Grid[T]) ClampedValues(fn func(T) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, row := range g.cells {
			for _, v := range row {
				if fn != nil {
					v = fn(v)
				}
				if !yield(v) {
					return
				}
			}
		}
	}
}
