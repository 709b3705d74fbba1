// Package gridmat conversions between the grid container and gonum
// matrices. Both directions copy; neither aliases the other's storage.
package gridmat

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlgrid/grid"
)

// Sentinel errors for gridmat conversions.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("gridmat: grid is nil")
	// ErrEmptyGrid indicates the grid holds no cells; gonum matrices
	// require at least one row and one column.
	ErrEmptyGrid = errors.New("gridmat: grid must have at least one row and one column")
	// ErrNilMatrix indicates a nil mat.Matrix was passed.
	ErrNilMatrix = errors.New("gridmat: matrix is nil")
)

// Number constrains the element types ToDense can widen to float64.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ToDense copies g into a freshly allocated *mat.Dense, widening every
// cell to float64. Returns ErrNilGrid on nil input and ErrEmptyGrid when
// the grid has no cells.
// Complexity: O(rows×cols).
func ToDense[T Number](g *grid.Grid[T]) (*mat.Dense, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	rows, cols := g.Dims()
	if rows == 0 || cols == 0 {
		return nil, ErrEmptyGrid
	}
	data := make([]float64, 0, rows*cols)
	for v := range g.Values() {
		data = append(data, float64(v))
	}

	return mat.NewDense(rows, cols, data), nil
}

// FromMatrix copies m into a new *grid.Grid[float64]. Construction options
// flow through, so an installed clamp applies to the adopted values and
// callbacks observe one addition per cell. A 0×0 matrix yields an empty
// grid. Returns ErrNilMatrix on nil input.
// Complexity: O(rows×cols).
func FromMatrix(m mat.Matrix, opts ...grid.Option[float64]) (*grid.Grid[float64], error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return grid.NewEmpty(opts...), nil
	}
	values := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		values[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			values[i][j] = m.At(i, j)
		}
	}

	return grid.FromRows(values, opts...)
}
