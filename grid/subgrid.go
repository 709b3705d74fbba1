// Package grid rectangular sub-grid extraction.
package grid

// SubGrid copies the rectangle anchored at (row, col) with the requested
// height and width into a freshly constructed plain grid (no clamp, no
// callbacks), coordinates rebased to (0,0). The requested extent is clamped
// to what the source can provide: the result is
// min(height, Rows()-row) × min(width, Columns()-col).
// Returns ErrInvalidRows / ErrInvalidColumns on a non-positive extent
// (height checked first), then ErrRowOutOfRange / ErrColumnOutOfRange when
// the origin is out of bounds (row checked first).
// Complexity: O(height×width) for the extracted rectangle.
func (g *Grid[T]) SubGrid(row, col, height, width int) (*Grid[T], error) {
	if height < 1 {
		return nil, gridErrorf("SubGrid", row, col, ErrInvalidRows)
	}
	if width < 1 {
		return nil, gridErrorf("SubGrid", row, col, ErrInvalidColumns)
	}
	if err := g.checkBounds(row, col); err != nil {
		return nil, gridErrorf("SubGrid", row, col, err)
	}
	height = min(height, g.Rows()-row)
	width = min(width, g.Columns()-col)
	cells := make([][]T, height)
	for i := 0; i < height; i++ {
		cells[i] = make([]T, width)
		copy(cells[i], g.cells[row+i][col:col+width])
	}

	return &Grid[T]{cells: cells}, nil
}
