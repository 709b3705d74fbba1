// Package gridviz gonum/plot backend: a static PNG heatmap.
package gridviz

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lvlgrid/grid"
)

// paletteColors is the number of discrete heat bands in the PNG palette.
const paletteColors = 12

// plotGrid adapts a grid to plotter.GridXYZ. Y is flipped so row 0 renders
// at the top, matching Grid.String and RenderHTML.
type plotGrid struct {
	g *grid.Grid[float64]
}

// Dims reports (columns, rows), the axis order plotter expects.
func (p plotGrid) Dims() (c, r int) {
	r, c = p.g.Dims()

	return c, r
}

// Z returns the value drawn at plot cell (c, r).
func (p plotGrid) Z(c, r int) float64 {
	rows := p.g.Rows()
	v, err := p.g.At(rows-1-r, c)
	if err != nil {
		return 0
	}

	return v
}

// X maps a plot column to its coordinate.
func (p plotGrid) X(c int) float64 { return float64(c) }

// Y maps a plot row to its coordinate.
func (p plotGrid) Y(r int) float64 { return float64(r) }

// SavePNG renders g as a static heatmap image at path. Returns ErrNilGrid /
// ErrEmptyGrid on degenerate input before touching the filesystem.
// Complexity: O(rows×cols) plus encoding.
func SavePNG(path string, g *grid.Grid[float64], options ...Option) error {
	if g == nil {
		return ErrNilGrid
	}
	if g.IsEmpty() {
		return ErrEmptyGrid
	}
	o := resolveOptions(options)

	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row"
	p.Add(plotter.NewHeatMap(plotGrid{g: g}, palette.Heat(paletteColors, 1)))

	return p.Save(vg.Length(o.PlotWidth)*vg.Inch, vg.Length(o.PlotHeight)*vg.Inch, path)
}
