package graph

import (
	"fmt"
	"math"
	"slices"

	"github.com/benz9527/xalgo/lib/infra"
)

// Snapshot is the state after one relaxation pass, pass 0 being the
// initial state. Unreachable vertices hold +Inf and a -1 predecessor.
type Snapshot struct {
	Pass    int
	Dist    []float64
	Pred    []int
	Updated bool
}

type Result struct {
	Source                int
	History               []Snapshot
	NegativeCycleDetected bool
	// LastUpdatingPass is the last pass that improved a distance, or the
	// vertex count when a negative cycle was detected.
	LastUpdatingPass int
}

// Final returns the last snapshot. Its distances are unreliable when
// NegativeCycleDetected is set.
func (r *Result) Final() Snapshot {
	return r.History[len(r.History)-1]
}

// PathTo rebuilds the source→v path from the final predecessors.
func (r *Result) PathTo(v int) ([]int, error) {
	final := r.Final()
	if v < 0 || v >= len(final.Dist) {
		return nil, infra.WrapErrorStackWithMessage(ErrVertexOutOfRange, fmt.Sprintf("vertex=%d, order=%d", v, len(final.Dist)))
	}
	if r.NegativeCycleDetected {
		return nil, infra.WrapErrorStack(ErrNegativeCycle)
	}
	if math.IsInf(final.Dist[v], 1) {
		return nil, infra.WrapErrorStackWithMessage(ErrUnreachableVertex, fmt.Sprintf("vertex=%d", v))
	}
	path := []int{v}
	for cur := v; cur != r.Source; {
		cur = final.Pred[cur]
		if cur < 0 || len(path) > len(final.Pred) {
			return nil, infra.WrapErrorStackWithMessage(ErrUnreachableVertex, fmt.Sprintf("vertex=%d", v))
		}
		path = append(path, cur)
	}
	slices.Reverse(path)
	return path, nil
}

// ShortestPaths runs Bellman-Ford from source over the directed weighted
// graph m. Every pass relaxes all edges against the previous pass's
// distances and is kept in the history. It stops early on a pass without
// updates and runs at most n-1 passes, then one more sweep over the edges
// detects negative cycles without adding a snapshot.
func ShortestPaths(m Matrix, source int) (*Result, error) {
	if err := ValidateWeighted(m); err != nil {
		return nil, err
	}
	n := m.Order()
	if source < 0 || source >= n {
		return nil, infra.WrapErrorStackWithMessage(ErrSourceOutOfRange, fmt.Sprintf("source=%d, order=%d", source, n))
	}

	dist := make([]float64, n)
	pred := make([]int, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		pred[i] = -1
	}
	dist[source] = 0

	res := &Result{Source: source}
	res.History = append(res.History, Snapshot{
		Pass:    0,
		Dist:    slices.Clone(dist),
		Pred:    slices.Clone(pred),
		Updated: true,
	})

	edges := m.Edges()
	for k := 1; k <= n-1; k++ {
		next := slices.Clone(dist)
		updated := false
		for _, e := range edges {
			if !math.IsInf(dist[e.From], 1) && dist[e.From]+e.Weight < next[e.To] {
				next[e.To] = dist[e.From] + e.Weight
				pred[e.To] = e.From
				updated = true
			}
		}
		dist = next
		if updated {
			res.LastUpdatingPass = k
		}
		res.History = append(res.History, Snapshot{
			Pass:    k,
			Dist:    slices.Clone(dist),
			Pred:    slices.Clone(pred),
			Updated: updated,
		})
		if !updated {
			break
		}
	}

	for _, e := range edges {
		if !math.IsInf(dist[e.From], 1) && dist[e.From]+e.Weight < dist[e.To] {
			res.NegativeCycleDetected = true
			res.LastUpdatingPass = n
			break
		}
	}
	return res, nil
}
