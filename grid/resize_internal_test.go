package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// White-box tests for the list-resize collaborator. The engine relies on
// exactly two properties: truncate-or-fill correctness and one factory call
// per new slot.

// TestResizeSlice_Truncate verifies shrink behavior and tail clearing.
func TestResizeSlice_Truncate(t *testing.T) {
	s := []*int{ptr(1), ptr(2), ptr(3)}
	tail := s[:3:3] // keep a handle on the full backing array

	s = resizeSlice(s, 1, nil)
	require.Len(t, s, 1)
	require.Equal(t, 1, *s[0])
	// Dropped slots are cleared so discarded values do not pin memory.
	require.Nil(t, tail[1])
	require.Nil(t, tail[2])
}

// TestResizeSlice_Extend verifies growth with and without a fill function.
func TestResizeSlice_Extend(t *testing.T) {
	s := resizeSlice([]int{1}, 4, func(i int) int { return i * 10 })
	require.Equal(t, []int{1, 10, 20, 30}, s)

	z := resizeSlice[int](nil, 3, nil)
	require.Equal(t, []int{0, 0, 0}, z)
}

// TestResizeSlice_NoSharedInstance verifies the factory is invoked once per
// new slot, so no single instance lands in multiple slots.
func TestResizeSlice_NoSharedInstance(t *testing.T) {
	calls := 0
	s := resizeSlice[*int](nil, 3, func(int) *int {
		calls++
		v := 0
		return &v
	})
	require.Equal(t, 3, calls)
	require.NotSame(t, s[0], s[1])
	require.NotSame(t, s[1], s[2])
}

// TestResizeSlice_SameLength is a no-op both ways.
func TestResizeSlice_SameLength(t *testing.T) {
	s := []int{1, 2}
	require.Equal(t, []int{1, 2}, resizeSlice(s, 2, nil))
}

func ptr(v int) *int { return &v }
