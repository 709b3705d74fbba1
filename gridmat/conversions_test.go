package gridmat_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/katalvlaran/lvlgrid/gridmat"
)

// TestToDense widens an int grid into a dense matrix.
func TestToDense(t *testing.T) {
	g, err := grid.FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	d, err := gridmat.ToDense(g)
	require.NoError(t, err)
	want := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	require.True(t, mat.Equal(d, want), "ToDense mismatch:\ngot:\n%v\nwant:\n%v",
		mat.Formatted(d), mat.Formatted(want))
}

// TestToDense_Errors covers nil and empty inputs.
func TestToDense_Errors(t *testing.T) {
	_, err := gridmat.ToDense[float64](nil)
	require.ErrorIs(t, err, gridmat.ErrNilGrid)

	_, err = gridmat.ToDense(grid.NewEmpty[float64]())
	require.ErrorIs(t, err, gridmat.ErrEmptyGrid)
}

// TestFromMatrix adopts a gonum matrix, options flowing through.
func TestFromMatrix(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	g, err := gridmat.FromMatrix(m)
	require.NoError(t, err)
	r, c := g.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	v, err := g.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	// Clamp option applies to the adopted values.
	clamped, err := gridmat.FromMatrix(m, grid.WithClamp(func(v float64) float64 {
		if v > 4 {
			return 4
		}
		return v
	}))
	require.NoError(t, err)
	v, err = clamped.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)
}

// TestFromMatrix_NilAndEmpty covers the degenerate inputs.
func TestFromMatrix_NilAndEmpty(t *testing.T) {
	_, err := gridmat.FromMatrix(nil)
	require.ErrorIs(t, err, gridmat.ErrNilMatrix)

	g, err := gridmat.FromMatrix(&mat.Dense{})
	require.NoError(t, err)
	require.True(t, g.IsEmpty())
}

// TestRoundTrip checks FromMatrix(ToDense(g)) reproduces the grid.
func TestRoundTrip(t *testing.T) {
	g, err := grid.FromRows([][]float64{
		{0.5, -1, 2},
		{7, 0, 3.25},
	})
	require.NoError(t, err)

	d, err := gridmat.ToDense(g)
	require.NoError(t, err)
	back, err := gridmat.FromMatrix(d)
	require.NoError(t, err)

	if diff := cmp.Diff(back.ToDictionary(), g.ToDictionary()); diff != "" {
		t.Errorf("round trip mismatch (-got +want):\n%s", diff)
	}
	require.True(t, grid.Equal(back, g))
}
