package gridviz

import "errors"

// Sentinel errors for gridviz rendering.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("gridviz: grid is nil")
	// ErrEmptyGrid indicates the grid holds no cells to draw.
	ErrEmptyGrid = errors.New("gridviz: grid must have at least one row and one column")
)

// Rendering defaults; every setting is overridable per call via Option.
const (
	// DefaultTitle captions charts when no title is given.
	DefaultTitle = "lvlgrid heatmap"
	// DefaultWidth is the HTML canvas width.
	DefaultWidth = "900px"
	// DefaultHeight is the HTML canvas height.
	DefaultHeight = "600px"
	// DefaultPlotWidth is the PNG width in inches.
	DefaultPlotWidth = 8
	// DefaultPlotHeight is the PNG height in inches.
	DefaultPlotHeight = 6
)

// Viridis is the default visual-map color ramp, low to high.
var Viridis = []string{
	"#440154", "#482777", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// Options collects the resolved settings of one render call.
type Options struct {
	Title      string
	Subtitle   string
	Width      string  // HTML canvas width, CSS units
	Height     string  // HTML canvas height, CSS units
	PlotWidth  float64 // PNG width, inches
	PlotHeight float64 // PNG height, inches
	Palette    []string
}

// Option overrides one rendering setting.
type Option func(*Options)

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(o *Options) { o.Title = title }
}

// WithSubtitle sets the chart subtitle.
func WithSubtitle(subtitle string) Option {
	return func(o *Options) { o.Subtitle = subtitle }
}

// WithSize sets the HTML canvas size in CSS units, e.g. "900px".
func WithSize(width, height string) Option {
	return func(o *Options) { o.Width, o.Height = width, height }
}

// WithPlotSize sets the PNG size in inches.
func WithPlotSize(width, height float64) Option {
	return func(o *Options) { o.PlotWidth, o.PlotHeight = width, height }
}

// WithPalette sets the color ramp, low to high.
func WithPalette(colors ...string) Option {
	return func(o *Options) { o.Palette = colors }
}

// resolveOptions applies opts over the documented defaults.
func resolveOptions(opts []Option) Options {
	o := Options{
		Title:      DefaultTitle,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		PlotWidth:  DefaultPlotWidth,
		PlotHeight: DefaultPlotHeight,
		Palette:    Viridis,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
