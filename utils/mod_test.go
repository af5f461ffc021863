package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		require.Equal(t, 2, FindIndex([]string{"a", "b", "c"}, "c"))
	})

	t.Run("absent", func(t *testing.T) {
		require.Equal(t, -1, FindIndex([]int{1, 2}, 3))
		require.False(t, Contains([]int{1, 2}, 3))
	})
}

func TestMax(t *testing.T) {
	require.Equal(t, 10, Max([]int{9, 2, 10, 3}))
	require.Equal(t, -1, Max([]int{-5, -1, -3}), "Max should not assume a zero floor")
	require.Equal(t, 0, Max([]int(nil)))
}
