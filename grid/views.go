// Package grid coordinate-keyed views and bulk application of keyed writes.
package grid

import (
	"reflect"
	"sort"
)

// ToDictionary builds a coordinate→value map of the whole grid.
// Complexity: O(rows×columns).
func (g *Grid[T]) ToDictionary() map[Coord]T {
	out := make(map[Coord]T, g.Rows()*g.Columns())
	for i, row := range g.cells {
		for j, v := range row {
			out[Coord{Row: i, Col: j}] = v
		}
	}

	return out
}

// ToCoordinates builds the inverse view: value→coordinates, each coordinate
// list in row-major order. The element type must be key-safe: a type that
// Go map keys cannot be built from (slice, map, function, or a struct
// containing one) fails with ErrUnkeyableType. For interface element types
// the check moves to each stored value's dynamic type; a nil interface
// value is a legal key. Prefer CoordinateIndex when T is statically
// comparable — it moves this check to compile time.
// Complexity: O(rows×columns).
func (g *Grid[T]) ToCoordinates() (map[any][]Coord, error) {
	t := reflect.TypeFor[T]()
	if !t.Comparable() {
		return nil, ErrUnkeyableType
	}
	perValue := t.Kind() == reflect.Interface
	out := make(map[any][]Coord)
	for i, row := range g.cells {
		for j, v := range row {
			if perValue {
				if rv := reflect.ValueOf(v); rv.IsValid() && !rv.Comparable() {
					return nil, ErrUnkeyableType
				}
			}
			out[v] = append(out[v], Coord{Row: i, Col: j})
		}
	}

	return out, nil
}

// CoordinateIndex is the compile-time-checked variant of ToCoordinates:
// the comparable constraint on T guarantees key-safety statically.
// Coordinate lists are in row-major order.
// Complexity: O(rows×columns).
func CoordinateIndex[T comparable](g *Grid[T]) map[T][]Coord {
	out := make(map[T][]Coord)
	for i, row := range g.cells {
		for j, v := range row {
			out[v] = append(out[v], Coord{Row: i, Col: j})
		}
	}

	return out
}

// Apply writes the in-bound entries of cells into the grid through the
// write path, in deterministic row-major order, and reports how many were
// applied. Out-of-bound entries are skipped, not errors.
// Complexity: O(n log n) for n entries, dominated by the ordering.
func (g *Grid[T]) Apply(cells map[Coord]T) int {
	coords := make([]Coord, 0, len(cells))
	for c := range cells {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(a, b int) bool {
		if coords[a].Row != coords[b].Row {
			return coords[a].Row < coords[b].Row
		}

		return coords[a].Col < coords[b].Col
	})
	applied := 0
	for _, c := range coords {
		// Checked per entry against the addressed row: an earlier entry's
		// callback may have reshaped the grid.
		if g.checkBounds(c.Row, c.Col) != nil {
			continue
		}
		g.setCell(c.Row, c.Col, cells[c])
		applied++
	}

	return applied
}
