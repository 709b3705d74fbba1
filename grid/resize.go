// Package grid resize engine: two-axis grow/shrink with per-cell
// notifications for the cells that actually changed.
package grid

import "slices"

// Resize reshapes the grid to rows×columns. Cells valid in both the old
// and new shape keep their values; dropped cells emit removals; new cells
// are initialized from the grid's fill factory (zero value of T when none
// is configured), clamped, and emit additions. Resizing to the current
// shape is a no-op with no notifications.
// Returns ErrInvalidRows if rows < 1, ErrInvalidColumns if columns < 1
// (rows are validated first); a rejected call leaves the grid untouched.
// Complexity: O(Δrows×max(C0,C1) + Δcols×max(R0,R1)).
func (g *Grid[T]) Resize(rows, columns int) error {
	if rows < 1 {
		return gridErrorf("Resize", rows, columns, ErrInvalidRows)
	}
	if columns < 1 {
		return gridErrorf("Resize", rows, columns, ErrInvalidColumns)
	}
	g.reshape(rows, columns, nil)

	return nil
}

// ResizeFill is Resize with a per-call fill value for the new cells,
// overriding the grid's fill factory for this one reshape.
func (g *Grid[T]) ResizeFill(rows, columns int, fill T) error {
	if rows < 1 {
		return gridErrorf("ResizeFill", rows, columns, ErrInvalidRows)
	}
	if columns < 1 {
		return gridErrorf("ResizeFill", rows, columns, ErrInvalidColumns)
	}
	g.reshape(rows, columns, func(_, _ int) T { return fill })

	return nil
}

// Clear empties the grid. Zero is the single permitted exception to the
// positive-dimension precondition: Clear is an internal resize to 0×0 and
// emits one removal notification per vacated cell.
// Complexity: O(rows×columns).
func (g *Grid[T]) Clear() {
	g.reshape(0, 0, nil)
}

// reshape is the resize engine. fillAt produces the value for a newly
// created cell at (i, j); nil means the grid's fill factory (zero value
// when that is nil too). Every produced value passes through the clamp.
//
// Rows are processed from max(R0,R1)-1 down to 0 and columns within each
// row from max(C0,C1)-1 down to 0. Descending order keeps not-yet-processed
// indices valid regardless of what a notification callback does. Row slices
// and the outer row list are grown/truncated in bulk at the loop boundary,
// never per-cell, so the work stays proportional to the change.
func (g *Grid[T]) reshape(newRows, newCols int, fillAt func(i, j int) T) {
	oldRows, oldCols := len(g.cells), 0
	if oldRows > 0 {
		oldCols = len(g.cells[0])
	}
	if oldRows == newRows && oldCols == newCols {
		return
	}
	if fillAt == nil {
		fill := g.fill
		fillAt = func(_, _ int) T {
			var v T
			if fill != nil {
				v = fill()
			}

			return v
		}
	}
	clamped := func(i, j int) T {
		v := fillAt(i, j)
		if g.clamp != nil {
			v = g.clamp(v)
		}

		return v
	}

	// Grow the outer row list up front; shrink it after the loop.
	if newRows > oldRows {
		g.cells = resizeSlice(g.cells, newRows, nil)
	}
	// Every indexed access below re-validates against the live store: a
	// notification callback may itself resize or clear the grid, and the
	// shape this loop planned against no longer holds after that.
	maxCols := max(oldCols, newCols)
	for i := max(oldRows, newRows) - 1; i >= 0; i-- {
		switch {
		case i >= newRows:
			// Dropped row: every existing cell is vacated.
			for j := oldCols - 1; j >= 0; j-- {
				if g.live(i, j) {
					g.notify(i, j, g.cells[i][j], false)
				}
			}
		case i >= oldRows:
			// New row: allocate in bulk, then announce each cell.
			if i >= len(g.cells) {
				continue
			}
			g.cells[i] = resizeSlice(nil, newCols, func(j int) T { return clamped(i, j) })
			for j := newCols - 1; j >= 0; j-- {
				if g.live(i, j) {
					g.notify(i, j, g.cells[i][j], true)
				}
			}
		default:
			// Surviving row: only the column delta changes.
			for j := maxCols - 1; j >= newCols; j-- {
				if j < oldCols && g.live(i, j) {
					g.notify(i, j, g.cells[i][j], false)
				}
			}
			if i >= len(g.cells) {
				continue
			}
			if len(g.cells[i]) != newCols {
				g.cells[i] = resizeSlice(g.cells[i], newCols, func(j int) T { return clamped(i, j) })
			}
			for j := newCols - 1; j >= oldCols; j-- {
				if g.live(i, j) {
					g.notify(i, j, g.cells[i][j], true)
				}
			}
		}
	}
	if newRows < len(g.cells) {
		g.cells = resizeSlice(g.cells, newRows, nil)
	}
	if newRows == 0 || newCols == 0 {
		// Uniform normalization: an empty grid stores no row slices.
		g.cells = nil
	}
}

// resizeSlice truncates or extends s to length n. Truncation clears the
// dropped tail so discarded values do not pin memory; extension fills each
// new slot via fill, called once per slot (nil fill means zero values).
// Complexity: O(|n - len(s)|), amortized.
func resizeSlice[T any](s []T, n int, fill func(i int) T) []T {
	if n <= len(s) {
		clear(s[n:])

		return s[:n]
	}
	s = slices.Grow(s, n-len(s))
	for i := len(s); i < n; i++ {
		var v T
		if fill != nil {
			v = fill(i)
		}
		s = append(s, v)
	}

	return s
}
