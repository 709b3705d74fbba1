// Package gridviz renders float64 grids as heatmaps.
//
// What:
//
//   - RenderHTML writes an interactive go-echarts heatmap to any io.Writer.
//   - SavePNG writes a static gonum/plot heatmap image to a file.
//
// Both renderers draw row 0 at the top, matching Grid.String.
//
// Why:
//
//   - Simulations and tile maps are easiest to debug visually; the two
//     backends cover the browser and the report/artifact cases.
//
// Options:
//
//   - WithTitle / WithSubtitle: chart captions.
//   - WithSize: HTML canvas size (CSS units).
//   - WithPlotSize: PNG size in inches.
//   - WithPalette: visual-map color ramp, low to high (default Viridis).
//
// Errors:
//
//   - ErrNilGrid: nil grid.
//   - ErrEmptyGrid: a grid with no cells has nothing to draw.
package gridviz
