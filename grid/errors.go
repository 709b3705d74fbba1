package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations. Callers match with errors.Is;
// context (method name, coordinates) is attached at the method boundary
// via gridErrorf and never re-declared per call site.
var (
	// ErrInvalidRows indicates a non-positive row count was requested.
	ErrInvalidRows = errors.New("grid: rows must be positive")
	// ErrInvalidColumns indicates a non-positive column count was requested.
	ErrInvalidColumns = errors.New("grid: columns must be positive")
	// ErrRowOutOfRange indicates a row coordinate outside [0, rows).
	ErrRowOutOfRange = errors.New("grid: row index out of range")
	// ErrColumnOutOfRange indicates a column coordinate outside [0, columns).
	ErrColumnOutOfRange = errors.New("grid: column index out of range")
	// ErrRaggedRows indicates input rows of differing lengths.
	ErrRaggedRows = errors.New("grid: all rows must have the same length")
	// ErrUnkeyableType indicates the element type cannot serve as a map key.
	ErrUnkeyableType = errors.New("grid: element type cannot key a map")
)

// gridErrorf wraps a sentinel with uniform method context and coordinates,
// e.g. "Grid.At(3,9): grid: column index out of range".
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}
