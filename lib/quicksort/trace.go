package quicksort

import (
	"cmp"
	"slices"

	"github.com/benz9527/xalgo/lib/infra"
)

type Phase uint8

const (
	PhaseSplit Phase = iota
	PhaseEqual
	PhaseMerge
)

func (p Phase) String() string {
	switch p {
	case PhaseSplit:
		return "split"
	case PhaseEqual:
		return "equal"
	case PhaseMerge:
		return "merge"
	default:
	}
	return "unknown"
}

type Relation uint8

const (
	RelNone Relation = iota
	RelLess
	RelEqual
	RelGreater
)

func (r Relation) String() string {
	switch r {
	case RelLess:
		return "<"
	case RelEqual:
		return "="
	case RelGreater:
		return ">"
	default:
	}
	return ""
}

type TraceEdge struct {
	From     uint64
	Relation Relation
}

// TraceRecord is one drawable record. Inputs point at the records this
// one is derived from.
type TraceRecord[T infra.OrderedKey] struct {
	ID       uint64
	Phase    Phase
	Depth    int
	Items    []T
	Pivot    T
	HasPivot bool
	Inputs   []TraceEdge
}

type Trace[T infra.OrderedKey] struct {
	Strategy      PivotStrategy
	Decomposition *DecompositionNode[T]
	Recomposition *RecompositionNode[T]
	Records       []TraceRecord[T]
}

// BuildTrace decomposes items, recomposes the result and flattens both
// into records ordered by id. Leaves appear once, as split records.
func BuildTrace[T infra.OrderedKey](items []T, strategy PivotStrategy, opts ...Option) (*Trace[T], error) {
	root, err := Decompose(items, strategy, opts...)
	if err != nil {
		return nil, err
	}
	trace := &Trace[T]{
		Strategy:      strategy,
		Decomposition: root,
		Recomposition: Recompose(root),
	}

	relations := make(map[uint64]Relation)
	Walk(root, func(node *DecompositionNode[T]) bool {
		rec := TraceRecord[T]{
			ID:    node.ID,
			Phase: PhaseSplit,
			Depth: node.Depth,
			Items: node.Items,
		}
		if node.ParentID != 0 {
			rec.Inputs = []TraceEdge{{From: node.ParentID, Relation: relations[node.ID]}}
		}
		trace.Records = append(trace.Records, rec)
		if node.IsLeaf() {
			return true
		}
		trace.Records[len(trace.Records)-1].Pivot = node.Pivot
		trace.Records[len(trace.Records)-1].HasPivot = true
		relations[node.Left.ID] = RelLess
		relations[node.Right.ID] = RelGreater
		trace.Records = append(trace.Records, TraceRecord[T]{
			ID:       node.EqualID,
			Phase:    PhaseEqual,
			Depth:    node.Depth + 1,
			Items:    node.Equal,
			Pivot:    node.Pivot,
			HasPivot: true,
			Inputs:   []TraceEdge{{From: node.ID, Relation: RelEqual}},
		})
		return true
	})
	WalkRecomposition(trace.Recomposition, func(node *RecompositionNode[T]) bool {
		if node.IsLeaf() {
			return true
		}
		inputs := make([]TraceEdge, 0, len(node.SourceIDs))
		for _, src := range node.SourceIDs {
			inputs = append(inputs, TraceEdge{From: src})
		}
		trace.Records = append(trace.Records, TraceRecord[T]{
			ID:     node.ID,
			Phase:  PhaseMerge,
			Depth:  node.Depth,
			Items:  node.Sorted,
			Inputs: inputs,
		})
		return true
	})
	slices.SortStableFunc(trace.Records, func(a, b TraceRecord[T]) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return trace, nil
}
