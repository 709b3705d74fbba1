// Package grid neighbour lookup over configurable offset sets.
package grid

// NeighbourOption configures a single NeighboursAt call.
type NeighbourOption[T any] func(*neighbourQuery[T])

// neighbourQuery holds the resolved settings of one lookup.
type neighbourQuery[T any] struct {
	offsets   []Coord
	predicate Predicate[T]
}

// WithOffsets replaces the default offset set (DefaultOffsets, the 8
// compass directions) for this lookup.
func WithOffsets[T any](offsets ...Coord) NeighbourOption[T] {
	return func(q *neighbourQuery[T]) { q.offsets = offsets }
}

// WithPredicate keeps only neighbours for which pred(current, candidate)
// holds, current being the value at the reference cell.
func WithPredicate[T any](pred Predicate[T]) NeighbourOption[T] {
	return func(q *neighbourQuery[T]) { q.predicate = pred }
}

// NeighboursAt returns the neighbours of (row, col) keyed by their absolute
// coordinates. For each configured offset the absolute coordinate is
// computed; out-of-bounds candidates are skipped, in-bounds candidates are
// included unless a predicate rejects them. The reference cell itself is
// never included, even if the zero offset is configured.
// Returns ErrRowOutOfRange or ErrColumnOutOfRange when the reference cell
// is out of bounds (row checked first).
// Complexity: O(d), d = number of offsets.
func (g *Grid[T]) NeighboursAt(row, col int, opts ...NeighbourOption[T]) (map[Coord]T, error) {
	if err := g.checkBounds(row, col); err != nil {
		return nil, gridErrorf("NeighboursAt", row, col, err)
	}
	q := neighbourQuery[T]{offsets: DefaultOffsets}
	for _, opt := range opts {
		opt(&q)
	}
	current := g.cells[row][col]
	out := make(map[Coord]T, len(q.offsets))
	for _, d := range q.offsets {
		if d.Row == 0 && d.Col == 0 {
			continue
		}
		at := Coord{Row: row + d.Row, Col: col + d.Col}
		if !g.InBounds(at.Row, at.Col) {
			continue
		}
		candidate := g.cells[at.Row][at.Col]
		if q.predicate != nil && !q.predicate(current, candidate) {
			continue
		}
		out[at] = candidate
	}

	return out, nil
}
