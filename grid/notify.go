// Package grid change-notification dispatch and its re-entrancy guard.
package grid

// notify dispatches one add or remove callback for (row, col, v).
// Before invoking the callback the (row, col, added) triple is pushed onto
// the guard stack; a nested dispatch for the same coordinate and the same
// direction already in flight is suppressed. This bounds the recursion when
// a callback writes back into the grid: the nested write's own addition
// matches the in-flight entry and stops the loop. The entry is popped when
// the callback returns; the guard is transient state, never persisted.
func (g *Grid[T]) notify(row, col int, v T, added bool) {
	fn := g.onRemoved
	if added {
		fn = g.onAdded
	}
	if fn == nil {
		return
	}
	for _, e := range g.guard {
		if e.row == row && e.col == col && e.added == added {
			return
		}
	}
	g.guard = append(g.guard, guardEntry{row: row, col: col, added: added})
	// Popped via defer so a panicking callback cannot leak its entry and
	// mute future notifications for the coordinate.
	defer func() { g.guard = g.guard[:len(g.guard)-1] }()
	fn(row, col, v)
}
