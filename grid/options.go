package grid

// Option configures a Grid at construction time. Options are applied
// left-to-right by the constructors, before any cell is populated, so
// clamp and callbacks observe the initial fill.
type Option[T any] func(*Grid[T])

// WithFill sets v as the default value for cells created by construction
// and by Resize.
func WithFill[T any](v T) Option[T] {
	return func(g *Grid[T]) { g.fill = func() T { return v } }
}

// WithFillFunc sets fn as the default-value factory for new cells.
// fn is called once per new slot, so no single instance is shared
// across multiple cells.
func WithFillFunc[T any](fn func() T) Option[T] {
	return func(g *Grid[T]) { g.fill = fn }
}

// WithClamp installs fn as the value transform applied on every write,
// resize-time fills included.
func WithClamp[T any](fn func(T) T) Option[T] {
	return func(g *Grid[T]) { g.clamp = fn }
}

// WithOnAdded registers fn to be invoked whenever a cell is populated.
func WithOnAdded[T any](fn CellFunc[T]) Option[T] {
	return func(g *Grid[T]) { g.onAdded = fn }
}

// WithOnRemoved registers fn to be invoked whenever a cell is vacated.
func WithOnRemoved[T any](fn CellFunc[T]) Option[T] {
	return func(g *Grid[T]) { g.onRemoved = fn }
}
