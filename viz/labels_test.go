package viz

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndexToLabel(t *testing.T) {
	testcases := []struct {
		index    int
		expected string
	}{
		{0, "A"},
		{2, "C"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
		{-1, "-1"},
	}
	for _, tc := range testcases {
		require.Equal(t, tc.expected, IndexToLabel(tc.index), "index=%d", tc.index)
	}
}

func TestFormatNumber(t *testing.T) {
	require.Equal(t, "4", formatNumber(4))
	require.Equal(t, "-2.5", formatNumber(-2.5))
	require.Equal(t, "∞", formatNumber(math.Inf(1)))
	require.Equal(t, "[1, 4, 11]", joinValues([]int{1, 4, 11}))
	require.Equal(t, "[]", joinValues([]int{}))
}
