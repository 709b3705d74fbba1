package grid_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Coordinate-Keyed View Tests
//----------------------------------------------------------------------------//

// TestToDictionary builds the coordinate→value map of a small grid.
func TestToDictionary(t *testing.T) {
	g, err := grid.FromRows([][]string{{"a", "b"}, {"c", "d"}})
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}
	got := g.ToDictionary()
	want := map[grid.Coord]string{
		{Row: 0, Col: 0}: "a",
		{Row: 0, Col: 1}: "b",
		{Row: 1, Col: 0}: "c",
		{Row: 1, Col: 1}: "d",
	}
	if d := cmp.Diff(got, want); d != "" {
		t.Errorf("ToDictionary mismatch (-got +want):\n%s", d)
	}
}

// TestToCoordinates groups repeated values in row-major order.
func TestToCoordinates(t *testing.T) {
	g, err := grid.FromRows([][]int{{1, 2}, {2, 1}})
	require.NoError(t, err)

	got, err := g.ToCoordinates()
	require.NoError(t, err)
	want := map[any][]grid.Coord{
		1: {{Row: 0, Col: 0}, {Row: 1, Col: 1}},
		2: {{Row: 0, Col: 1}, {Row: 1, Col: 0}},
	}
	if d := cmp.Diff(got, want); d != "" {
		t.Errorf("ToCoordinates mismatch (-got +want):\n%s", d)
	}
}

// TestToCoordinates_UnkeyableType rejects element types that cannot key a
// Go map.
func TestToCoordinates_UnkeyableType(t *testing.T) {
	g, err := grid.New(1, 1, grid.WithFill([]int{1}))
	require.NoError(t, err)

	_, err = g.ToCoordinates()
	require.ErrorIs(t, err, grid.ErrUnkeyableType)
}

// TestToCoordinates_InterfaceElements checks the per-value capability
// check: nil and comparable dynamic values are legal keys, a slice-valued
// cell is not.
func TestToCoordinates_InterfaceElements(t *testing.T) {
	g, err := grid.New[any](1, 2)
	require.NoError(t, err)
	require.NoError(t, g.Set(0, 1, 5))

	got, err := g.ToCoordinates()
	require.NoError(t, err)
	require.Equal(t, []grid.Coord{{Row: 0, Col: 0}}, got[nil])
	require.Equal(t, []grid.Coord{{Row: 0, Col: 1}}, got[5])

	require.NoError(t, g.Set(0, 0, []int{1}))
	_, err = g.ToCoordinates()
	require.ErrorIs(t, err, grid.ErrUnkeyableType)
}

// TestCoordinateIndex is the compile-time-checked inverse view.
func TestCoordinateIndex(t *testing.T) {
	g, err := grid.FromRows([][]rune{{'x', 'y'}, {'x', 'x'}})
	require.NoError(t, err)

	got := grid.CoordinateIndex(g)
	require.Equal(t, []grid.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}, got['x'])
	require.Equal(t, []grid.Coord{{Row: 0, Col: 1}}, got['y'])
}

//----------------------------------------------------------------------------//
// Apply Tests
//----------------------------------------------------------------------------//

// TestApply writes only the in-bound entries and reports the count.
func TestApply(t *testing.T) {
	g, err := grid.New[int](2, 2)
	require.NoError(t, err)

	applied := g.Apply(map[grid.Coord]int{
		{Row: 0, Col: 0}: 1,
		{Row: 1, Col: 1}: 4,
		{Row: 2, Col: 0}: 9,  // out of bounds: skipped
		{Row: 0, Col: -1}: 9, // out of bounds: skipped
	})
	require.Equal(t, 2, applied)

	v, err := g.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v)
	v, err = g.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 4, v)
}

// TestApply_WritePath verifies applied entries go through the write path:
// clamped and notified.
func TestApply_WritePath(t *testing.T) {
	added := 0
	g, err := grid.New(1, 1,
		grid.WithClamp(func(v int) int { return v % 10 }),
		grid.WithOnAdded[int](func(_, _ int, _ int) { added++ }),
	)
	require.NoError(t, err)
	added = 0

	require.Equal(t, 1, g.Apply(map[grid.Coord]int{{Row: 0, Col: 0}: 42}))
	require.Equal(t, 1, added)
	v, err := g.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 2, v)
}
