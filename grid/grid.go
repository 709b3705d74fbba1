// Package grid construction and bounds-checked element access.
package grid

// New constructs a rows×columns grid, every cell initialized from the fill
// factory (zero value of T when none is configured) and passed through the
// clamp when one is set. Population runs through the resize engine, so a
// grid born with an OnAdded callback observes one addition per cell.
// Returns ErrInvalidRows if rows < 1, ErrInvalidColumns if columns < 1
// (rows are validated first).
// Complexity: O(rows×columns).
func New[T any](rows, columns int, opts ...Option[T]) (*Grid[T], error) {
	if rows < 1 {
		return nil, gridErrorf("New", rows, columns, ErrInvalidRows)
	}
	if columns < 1 {
		return nil, gridErrorf("New", rows, columns, ErrInvalidColumns)
	}
	g := NewEmpty(opts...)
	g.reshape(rows, columns, nil)

	return g, nil
}

// NewEmpty constructs a 0×0 grid. It cannot fail; the grid grows on the
// first Resize.
func NewEmpty[T any](opts ...Option[T]) *Grid[T] {
	g := &Grid[T]{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// FromRows constructs a grid adopting the values of a rectangular [][]T.
// The input is deep-copied; adopted values pass through the clamp and emit
// addition notifications exactly as New does. An empty input yields an
// empty grid. Returns ErrRaggedRows if any row length differs.
// Complexity: O(rows×columns).
func FromRows[T any](rows [][]T, opts ...Option[T]) (*Grid[T], error) {
	g := NewEmpty(opts...)
	if len(rows) == 0 || len(rows[0]) == 0 {
		return g, nil
	}
	width := len(rows[0])
	for _, row := range rows {
		if len(row) != width {
			return nil, ErrRaggedRows
		}
	}
	g.reshape(len(rows), width, func(i, j int) T { return rows[i][j] })

	return g, nil
}

// Rows reports the number of rows. Nil-safe.
func (g *Grid[T]) Rows() int {
	if g == nil {
		return 0
	}

	return len(g.cells)
}

// Columns reports the number of columns. Nil-safe; an empty grid reports 0.
func (g *Grid[T]) Columns() int {
	if g == nil || len(g.cells) == 0 {
		return 0
	}

	return len(g.cells[0])
}

// Dims reports (rows, columns) in one call.
func (g *Grid[T]) Dims() (rows, columns int) {
	return g.Rows(), g.Columns()
}

// IsEmpty reports whether the grid holds no cells.
func (g *Grid[T]) IsEmpty() bool {
	return g.Rows() == 0
}

// InBounds reports whether (row, col) addresses an existing cell.
// Complexity: O(1).
func (g *Grid[T]) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows() && col >= 0 && col < g.Columns()
}

// checkBounds validates (row, col), row axis first. The column is checked
// against the addressed row's current length, so re-entrant reads during an
// in-flight resize stay safe even while the store is transiently ragged.
func (g *Grid[T]) checkBounds(row, col int) error {
	if row < 0 || row >= len(g.cells) {
		return ErrRowOutOfRange
	}
	if col < 0 || col >= len(g.cells[row]) {
		return ErrColumnOutOfRange
	}

	return nil
}

// live reports whether (row, col) still addresses a cell in the current
// store. Loops that dispatch notifications re-validate indices with it:
// a callback may structurally mutate the grid mid-dispatch.
func (g *Grid[T]) live(row, col int) bool {
	return row < len(g.cells) && col < len(g.cells[row])
}

// At returns the value at (row, col).
// Returns ErrRowOutOfRange or ErrColumnOutOfRange (row checked first).
// Complexity: O(1).
func (g *Grid[T]) At(row, col int) (T, error) {
	if err := g.checkBounds(row, col); err != nil {
		var zero T
		return zero, gridErrorf("At", row, col, err)
	}

	return g.cells[row][col], nil
}

// Set stores v at (row, col) through the write path: the value is clamped
// when a clamp is installed, then one removal (old value) and one addition
// (new value) notification fire for the coordinate.
// Returns ErrRowOutOfRange or ErrColumnOutOfRange (row checked first).
// Complexity: O(1) plus callback work.
func (g *Grid[T]) Set(row, col int, v T) error {
	if err := g.checkBounds(row, col); err != nil {
		return gridErrorf("Set", row, col, err)
	}
	g.setCell(row, col, v)

	return nil
}

// setCell is the shared unchecked write path: clamp, store, then notify
// removal of the old value followed by addition of the new one. Storing
// before dispatch lets a re-entrant write from a callback win: the nested
// write lands first and its addition suppresses ours via the guard.
func (g *Grid[T]) setCell(row, col int, v T) {
	old := g.cells[row][col]
	if g.clamp != nil {
		v = g.clamp(v)
	}
	g.cells[row][col] = v
	g.notify(row, col, old, false)
	g.notify(row, col, v, true)
}

// Row returns a copy of row i.
// Complexity: O(columns).
func (g *Grid[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= g.Rows() {
		return nil, gridErrorf("Row", i, 0, ErrRowOutOfRange)
	}
	out := make([]T, len(g.cells[i]))
	copy(out, g.cells[i])

	return out, nil
}

// RowView returns the live backing slice of row i. The view is invalidated
// by the next resize; callers must not retain it across one.
// Complexity: O(1).
func (g *Grid[T]) RowView(i int) ([]T, error) {
	if i < 0 || i >= g.Rows() {
		return nil, gridErrorf("RowView", i, 0, ErrRowOutOfRange)
	}

	return g.cells[i], nil
}

// Column returns a copy of column j.
// Complexity: O(rows).
func (g *Grid[T]) Column(j int) ([]T, error) {
	if j < 0 || j >= g.Columns() {
		return nil, gridErrorf("Column", 0, j, ErrColumnOutOfRange)
	}
	out := make([]T, len(g.cells))
	for i := range g.cells {
		out[i] = g.cells[i][j]
	}

	return out, nil
}

// Swap exchanges the values of cells a and b through the write path, so
// both cells emit the usual removal/addition notification pair.
// Validates a before b, row axis before column on each.
func (g *Grid[T]) Swap(a, b Coord) error {
	if err := g.checkBounds(a.Row, a.Col); err != nil {
		return gridErrorf("Swap", a.Row, a.Col, err)
	}
	if err := g.checkBounds(b.Row, b.Col); err != nil {
		return gridErrorf("Swap", b.Row, b.Col, err)
	}
	va, vb := g.cells[a.Row][a.Col], g.cells[b.Row][b.Col]
	g.setCell(a.Row, a.Col, vb)
	// The first write's callbacks may have reshaped the grid.
	if g.live(b.Row, b.Col) {
		g.setCell(b.Row, b.Col, va)
	}

	return nil
}

// Clone returns a deep copy of the grid's cells. The clone shares the fill,
// clamp and callback functions with the original; in-flight notification
// state is never cloned.
// Complexity: O(rows×columns).
func (g *Grid[T]) Clone() *Grid[T] {
	out := &Grid[T]{
		fill:      g.fill,
		clamp:     g.clamp,
		onAdded:   g.onAdded,
		onRemoved: g.onRemoved,
	}
	if len(g.cells) == 0 {
		return out
	}
	out.cells = make([][]T, len(g.cells))
	for i, row := range g.cells {
		out.cells[i] = make([]T, len(row))
		copy(out.cells[i], row)
	}

	return out
}
