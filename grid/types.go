// Package grid defines the core Grid type, coordinate and callback types,
// and the neighbour offset tables shared across the package.
package grid

import "fmt"

// Coord addresses a single cell as (Row, Col), both zero-based.
type Coord struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// CellFunc observes a single cell change: the coordinate and the value
// that was added to or removed from it.
type CellFunc[T any] func(row, col int, value T)

// Predicate filters neighbour candidates; current is the value at the
// reference cell, candidate the value at the neighbouring cell.
type Predicate[T any] func(current, candidate T) bool

// Neighbour offset tables. Offsets are relative (row, col) displacements;
// the zero offset (the cell itself) is never part of a lookup result.
var (
	// Offsets4 covers the 4 orthogonal directions: N, E, S, W.
	Offsets4 = []Coord{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	// Offsets8 covers the 8 compass directions, diagonals included.
	Offsets8 = []Coord{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	// DefaultOffsets is the offset set NeighboursAt uses when none is given.
	DefaultOffsets = Offsets8
)

// guardEntry records one in-flight notification dispatch: the coordinate
// and the direction (added vs removed). See notify.go.
type guardEntry struct {
	row, col int
	added    bool
}

// Grid is a rectangular, row-major 2D container of values of type T.
// Dimensions are derived from the backing store: every row holds exactly
// Columns() values, and an empty grid stores no row slices at all (a grid
// with zero rows uniformly reports zero columns).
//
// The Grid exclusively owns its backing store: row views obtained from it
// are invalidated by the next resize. It is not safe for concurrent use.
type Grid[T any] struct {
	cells     [][]T       // row-major backing store, exclusively owned
	fill      func() T    // per-slot default factory for new cells, may be nil
	clamp     func(T) T   // optional transform applied on every write
	onAdded   CellFunc[T] // invoked when a cell is populated
	onRemoved CellFunc[T] // invoked when a cell is vacated
	guard     []guardEntry
}
