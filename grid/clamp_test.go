package grid_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/stretchr/testify/require"
)

func capAt(limit int) func(int) int {
	return func(v int) int {
		if v > limit {
			return limit
		}
		return v
	}
}

// TestClamp_AppliesOnWrite verifies the clamp runs on Set and on
// construction-time fills.
func TestClamp_AppliesOnWrite(t *testing.T) {
	g, err := grid.New(1, 2, grid.WithFill(50), grid.WithClamp(capAt(10)))
	require.NoError(t, err)

	v, err := g.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 10, v, "construction fill is clamped")

	require.NoError(t, g.Set(0, 1, 3))
	v, err = g.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 3, v, "values inside the range pass through")
}

// TestSetClamp_ApplyNow checks that installing a clamp with applyNow
// rewrites every cell through the write path, notification pairs included.
func TestSetClamp_ApplyNow(t *testing.T) {
	added, removed := 0, 0
	g, err := grid.FromRows([][]int{{5, 50}, {500, 7}},
		grid.WithOnAdded[int](func(_, _ int, _ int) { added++ }),
		grid.WithOnRemoved[int](func(_, _ int, _ int) { removed++ }),
	)
	require.NoError(t, err)
	added, removed = 0, 0

	g.SetClamp(capAt(10), true)
	require.Equal(t, 4, added, "every cell re-announces its clamped value")
	require.Equal(t, 4, removed, "every cell vacates its previous value")

	got := slices.Collect(g.Values())
	require.Equal(t, []int{5, 10, 10, 7}, got)
}

// TestSetClamp_DeferredAndRemoval covers applyNow=false and clamp removal.
func TestSetClamp_DeferredAndRemoval(t *testing.T) {
	g, err := grid.FromRows([][]int{{99}})
	require.NoError(t, err)

	g.SetClamp(capAt(10), false)
	v, err := g.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 99, v, "stored values untouched without applyNow")

	require.NoError(t, g.Set(0, 0, 42))
	v, err = g.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 10, v, "subsequent writes are clamped")

	g.SetClamp(nil, false)
	require.NoError(t, g.Set(0, 0, 42))
	v, err = g.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 42, v, "nil removes the clamp")
}

// TestClampedValues is a non-mutating lazy projection.
func TestClampedValues(t *testing.T) {
	g, err := grid.FromRows([][]int{{5, 50}})
	require.NoError(t, err)

	got := slices.Collect(g.ClampedValues(capAt(10)))
	require.Equal(t, []int{5, 10}, got)

	stored := slices.Collect(g.Values())
	require.Equal(t, []int{5, 50}, stored, "projection must not mutate")
}

// TestClampValues eagerly rewrites through the write path.
func TestClampValues(t *testing.T) {
	removed := 0
	g, err := grid.FromRows([][]int{{5, 50}},
		grid.WithOnRemoved[int](func(_, _ int, _ int) { removed++ }))
	require.NoError(t, err)
	removed = 0

	g.ClampValues(capAt(10))
	require.Equal(t, []int{5, 10}, slices.Collect(g.Values()))
	require.Equal(t, 2, removed, "eager clamp goes through the write path")
}
