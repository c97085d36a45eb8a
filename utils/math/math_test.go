package math

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMax(t *testing.T) {
	require.Equal(t, 5, Max(3, 5))
	require.Equal(t, 5, Max(5, 3))
	require.Equal(t, int64(-1), Max(int64(-1), int64(-7)))
	require.Equal(t, "bb", Max("aa", "bb"))
}

func TestMin(t *testing.T) {
	require.Equal(t, 3, Min(3, 5))
	require.Equal(t, 3, Min(5, 3))
	require.Equal(t, int64(-7), Min(int64(-1), int64(-7)))
	require.Equal(t, "aa", Min("aa", "bb"))
}
