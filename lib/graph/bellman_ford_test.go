package graph

import (
	"math"
	randv2 "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShortestPathsChain(t *testing.T) {
	m := NewMatrix([][]int{{0, 4, 0}, {0, 0, 1}, {0, 0, 0}})
	res, err := ShortestPaths(m, 0)
	require.NoError(t, err)
	require.False(t, res.NegativeCycleDetected)
	require.Equal(t, []float64{0, 4, 5}, res.Final().Dist)
	require.Equal(t, []int{-1, 0, 1}, res.Final().Pred)
	require.Equal(t, 2, res.LastUpdatingPass)
	require.Len(t, res.History, 3)

	initial := res.History[0]
	require.Equal(t, 0, initial.Pass)
	require.True(t, initial.Updated)
	require.Equal(t, 0.0, initial.Dist[0])
	require.True(t, math.IsInf(initial.Dist[1], 1))
	require.Equal(t, []int{-1, -1, -1}, initial.Pred)

	// Pass 1 relaxes against pass 0 only, so 2 is still unreachable.
	require.Equal(t, 4.0, res.History[1].Dist[1])
	require.True(t, math.IsInf(res.History[1].Dist[2], 1))

	path, err := res.PathTo(2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, path)
	path, err = res.PathTo(0)
	require.NoError(t, err)
	require.Equal(t, []int{0}, path)
}

func TestShortestPathsStopsEarly(t *testing.T) {
	m := Matrix{
		{0, 1, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	res, err := ShortestPaths(m, 0)
	require.NoError(t, err)
	// init, the updating pass and the quiet pass that stops the loop.
	require.Len(t, res.History, 3)
	require.True(t, res.History[1].Updated)
	require.False(t, res.History[2].Updated)
	require.Equal(t, 1, res.LastUpdatingPass)
	require.Equal(t, []float64{0, 1, 1, 1}, res.Final().Dist)
}

func TestShortestPathsNegativeCycle(t *testing.T) {
	m := Matrix{
		{0, 1, 0},
		{0, 0, -1},
		{-1, 0, 0},
	}
	res, err := ShortestPaths(m, 0)
	require.NoError(t, err)
	require.True(t, res.NegativeCycleDetected)
	require.Equal(t, 3, res.LastUpdatingPass)
	require.Len(t, res.History, 3)

	_, err = res.PathTo(2)
	require.ErrorIs(t, err, ErrNegativeCycle)
}

func TestShortestPathsNegativeEdgeWithoutCycle(t *testing.T) {
	m := Matrix{
		{0, 5, 2},
		{0, 0, 0},
		{0, -4, 0},
	}
	res, err := ShortestPaths(m, 0)
	require.NoError(t, err)
	require.False(t, res.NegativeCycleDetected)
	require.Equal(t, []float64{0, -2, 2}, res.Final().Dist)
	path, err := res.PathTo(1)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 1}, path)
}

func TestShortestPathsUnreachable(t *testing.T) {
	m := Matrix{{0, 0}, {3, 0}}
	res, err := ShortestPaths(m, 0)
	require.NoError(t, err)
	require.True(t, math.IsInf(res.Final().Dist[1], 1))
	require.Equal(t, 0, res.LastUpdatingPass)

	_, err = res.PathTo(1)
	require.ErrorIs(t, err, ErrUnreachableVertex)
	_, err = res.PathTo(7)
	require.ErrorIs(t, err, ErrVertexOutOfRange)
}

func TestShortestPathsRejectsBadInput(t *testing.T) {
	m := Matrix{{0, 1}, {1, 0}}
	for _, source := range []int{-1, 2} {
		_, err := ShortestPaths(m, source)
		require.ErrorIs(t, err, ErrSourceOutOfRange)
	}
	_, err := ShortestPaths(Matrix{{0, 1, 2}, {0, 0}}, 0)
	require.ErrorIs(t, err, ErrMalformedMatrix)
}

func TestShortestPathsHistoryIsMonotone(t *testing.T) {
	rnd := randv2.New(randv2.NewPCG(11, 13))
	for round := 0; round < 30; round++ {
		n := 2 + rnd.IntN(10)
		m := make(Matrix, n)
		for i := range m {
			m[i] = make([]float64, n)
			for j := range m[i] {
				if i != j && rnd.IntN(3) == 0 {
					m[i][j] = float64(rnd.IntN(20) - 3)
				}
			}
		}
		res, err := ShortestPaths(m, rnd.IntN(n))
		require.NoError(t, err)
		require.LessOrEqual(t, len(res.History), n)
		for k := 1; k < len(res.History); k++ {
			require.Equal(t, k, res.History[k].Pass)
			for v := 0; v < n; v++ {
				require.LessOrEqual(t, res.History[k].Dist[v], res.History[k-1].Dist[v])
			}
		}
	}
}
