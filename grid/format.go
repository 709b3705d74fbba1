// Package grid text rendering: an aligned table with index headers.
// Presentation only, not part of the structural contract.
package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders the grid as an aligned table with row and column index
// headers. Values are formatted with %v and right-aligned per column.
// An empty grid renders as "Grid(0x0)".
func (g *Grid[T]) String() string {
	rows, cols := g.Dims()
	if rows == 0 || cols == 0 {
		return "Grid(0x0)"
	}
	// Pre-render every cell and size each column to its widest entry.
	text := make([][]string, rows)
	widths := make([]int, cols)
	for j := 0; j < cols; j++ {
		widths[j] = len(strconv.Itoa(j))
	}
	for i := 0; i < rows; i++ {
		text[i] = make([]string, cols)
		for j := 0; j < cols; j++ {
			s := fmt.Sprintf("%v", g.cells[i][j])
			text[i][j] = s
			widths[j] = max(widths[j], len(s))
		}
	}
	rowW := len(strconv.Itoa(rows - 1))

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", rowW+3))
	for j := 0; j < cols; j++ {
		if j > 0 {
			b.WriteString("  ")
		}
		fmt.Fprintf(&b, "%*d", widths[j], j)
	}
	for i := 0; i < rows; i++ {
		b.WriteByte('\n')
		fmt.Fprintf(&b, "%*d | ", rowW, i)
		for j := 0; j < cols; j++ {
			if j > 0 {
				b.WriteString("  ")
			}
			fmt.Fprintf(&b, "%*s", widths[j], text[i][j])
		}
	}

	return b.String()
}
