package viz

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/benz9527/xalgo/lib/infra"
	"github.com/benz9527/xalgo/lib/quicksort"
)

type DAGNode struct {
	ID    uint64
	Label string
	Phase quicksort.Phase
	// Level is the drawing row, the equal blocks sit one row under
	// their branch and merges continue below the deepest input.
	Level int
}

type DAGEdge struct {
	From  uint64
	To    uint64
	Label string
}

type QuicksortDAG struct {
	Strategy quicksort.PivotStrategy
	Nodes    []DAGNode
	Edges    []DAGEdge
}

// QuicksortGraph lays out a quicksort trace as split boxes, equal blocks
// and merge boxes. Split edges are labelled with the relation to the
// pivot, e.g. "< (19)".
func QuicksortGraph[T infra.OrderedKey](trace *quicksort.Trace[T]) QuicksortDAG {
	dag := QuicksortDAG{}
	if trace == nil {
		return dag
	}
	dag.Strategy = trace.Strategy
	pivots := make(map[uint64]T, len(trace.Records))
	for _, rec := range trace.Records {
		if rec.Phase == quicksort.PhaseSplit && rec.HasPivot {
			pivots[rec.ID] = rec.Pivot
		}
	}

	dag.Nodes = lo.Map(trace.Records, func(rec quicksort.TraceRecord[T], _ int) DAGNode {
		label := joinValues(rec.Items)
		if rec.Phase == quicksort.PhaseSplit && rec.HasPivot {
			label = fmt.Sprintf("%s   pivot = %v", label, rec.Pivot)
		}
		return DAGNode{
			ID:    rec.ID,
			Label: label,
			Phase: rec.Phase,
			Level: rec.Depth,
		}
	})
	for _, rec := range trace.Records {
		for _, in := range rec.Inputs {
			edge := DAGEdge{From: in.From, To: rec.ID}
			if in.Relation != quicksort.RelNone {
				edge.Label = fmt.Sprintf("%s (%v)", in.Relation, pivots[in.From])
			}
			dag.Edges = append(dag.Edges, edge)
		}
	}
	return dag
}
