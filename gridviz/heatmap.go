// Package gridviz go-echarts backend: an interactive HTML heatmap rendered
// into any io.Writer.
package gridviz

import (
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/lvlgrid/grid"
)

// RenderHTML renders g as an interactive heatmap: category axes carry the
// grid indices, the visual map spans the observed value range, and row 0
// is drawn at the top. Returns ErrNilGrid / ErrEmptyGrid on degenerate
// input before anything is written.
// Complexity: O(rows×cols) to stage the data.
func RenderHTML(w io.Writer, g *grid.Grid[float64], options ...Option) error {
	if g == nil {
		return ErrNilGrid
	}
	rows, cols := g.Dims()
	if rows == 0 || cols == 0 {
		return ErrEmptyGrid
	}
	o := resolveOptions(options)

	// Category labels: columns left-to-right, rows listed bottom-up so the
	// top of the chart shows row 0.
	xLabels := make([]string, cols)
	for j := 0; j < cols; j++ {
		xLabels[j] = strconv.Itoa(j)
	}
	yLabels := make([]string, rows)
	for i := 0; i < rows; i++ {
		yLabels[i] = strconv.Itoa(rows - 1 - i)
	}

	data := make([]opts.HeatMapData, 0, rows*cols)
	lo, hi := valueRange(g)
	for c, v := range g.All() {
		data = append(data, opts.HeatMapData{Value: [3]interface{}{c.Col, rows - 1 - c.Row, v}})
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: o.Title, Width: o.Width, Height: o.Height}),
		charts.WithTitleOpts(opts.Title{Title: o.Title, Subtitle: o.Subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", SplitArea: &opts.SplitArea{Show: opts.Bool(true)}}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: yLabels, SplitArea: &opts.SplitArea{Show: opts.Bool(true)}}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        float32(lo),
			Max:        float32(hi),
			InRange:    &opts.VisualMapInRange{Color: o.Palette},
		}),
	)
	hm.SetXAxis(xLabels).AddSeries("cells", data)

	return hm.Render(w)
}

// valueRange scans the observed minimum and maximum cell values.
func valueRange(g *grid.Grid[float64]) (lo, hi float64) {
	first := true
	for v := range g.Values() {
		if first {
			lo, hi = v, v
			first = false
			continue
		}
		lo = min(lo, v)
		hi = max(hi, v)
	}

	return lo, hi
}
