package quicksort

import (
	"github.com/benz9527/xalgo/lib/id"
	"github.com/benz9527/xalgo/lib/infra"
)

type NodeKind uint8

const (
	LeafNode NodeKind = iota
	BranchNode
)

func (k NodeKind) String() string {
	if k == BranchNode {
		return "branch"
	}
	return "leaf"
}

// DecompositionNode records one partition step. A leaf holds a sub-array
// of length <= 1 which is already sorted, a branch holds the pivot, the
// block of elements equal to it and the two partitions.
type DecompositionNode[T infra.OrderedKey] struct {
	ID       uint64
	ParentID uint64 // 0 for the root
	Kind     NodeKind
	Depth    int
	Items    []T
	Pivot    T
	Equal    []T
	EqualID  uint64
	Left     *DecompositionNode[T]
	Right    *DecompositionNode[T]
}

func (n *DecompositionNode[T]) IsLeaf() bool {
	return n.Kind == LeafNode
}

// Decompose mirrors Sort top-down and keeps every partition step.
// Ids are handed out in pre-order: the node, its lows subtree, its
// equal block and then its highs subtree.
func Decompose[T infra.OrderedKey](items []T, strategy PivotStrategy, opts ...Option) (*DecompositionNode[T], error) {
	if err := validStrategy(strategy); err != nil {
		return nil, err
	}
	o := applyOptions(opts...)

	type task struct {
		items    []T
		depth    int
		parentID uint64
		slot     **DecompositionNode[T]
		equalOf  *DecompositionNode[T]
	}
	var root *DecompositionNode[T]
	stack := []task{{items: items, slot: &root}}
	defer func() {
		clear(stack)
	}()
	for size := len(stack); size > 0; size = len(stack) {
		t := stack[size-1]
		stack = stack[:size-1]
		if t.equalOf != nil {
			t.equalOf.EqualID = o.idGen.Number()
			continue
		}

		node := &DecompositionNode[T]{
			ID:       o.idGen.Number(),
			ParentID: t.parentID,
			Depth:    t.depth,
			Items:    append(make([]T, 0, len(t.items)), t.items...),
		}
		*t.slot = node
		if len(t.items) <= 1 {
			node.Kind = LeafNode
			continue
		}

		pivot, err := choosePivot(t.items, strategy, o)
		if err != nil {
			return nil, err
		}
		lows, equal, highs := partition(t.items, pivot)
		node.Kind = BranchNode
		node.Pivot = pivot
		node.Equal = equal
		stack = append(stack,
			task{items: highs, depth: t.depth + 1, parentID: node.ID, slot: &node.Right},
			task{equalOf: node},
			task{items: lows, depth: t.depth + 1, parentID: node.ID, slot: &node.Left},
		)
	}
	return root, nil
}

// Walk visits the decomposition in id order. Returning false stops it.
func Walk[T infra.OrderedKey](root *DecompositionNode[T], fn func(node *DecompositionNode[T]) bool) {
	if root == nil {
		return
	}
	stack := []*DecompositionNode[T]{root}
	defer func() {
		clear(stack)
	}()
	for size := len(stack); size > 0; size = len(stack) {
		node := stack[size-1]
		stack = stack[:size-1]
		if !fn(node) {
			return
		}
		if node.IsLeaf() {
			continue
		}
		stack = append(stack, node.Right, node.Left)
	}
}

// RecompositionNode is the merged, sorted result of a decomposition
// subtree. Leaves are reused as is, so their id is the leaf's id and
// they have no sources.
type RecompositionNode[T infra.OrderedKey] struct {
	ID        uint64
	Sorted    []T
	Depth     int
	SourceIDs []uint64 // lows result, equal block, highs result
	Left      *RecompositionNode[T]
	Right     *RecompositionNode[T]
	Origin    *DecompositionNode[T]
}

func (n *RecompositionNode[T]) IsLeaf() bool {
	return len(n.SourceIDs) == 0
}

// Recompose folds a decomposition bottom-up. New merge ids continue
// after the largest id used by the decomposition, in post-order.
func Recompose[T infra.OrderedKey](root *DecompositionNode[T]) *RecompositionNode[T] {
	if root == nil {
		return nil
	}
	var maxID uint64
	Walk(root, func(node *DecompositionNode[T]) bool {
		maxID = max(maxID, node.ID, node.EqualID)
		return true
	})
	gen := id.MonotonicNonZeroIDFrom(maxID)

	type frame struct {
		node     *DecompositionNode[T]
		expanded bool
	}
	done := make(map[*DecompositionNode[T]]*RecompositionNode[T])
	stack := []frame{{node: root}}
	defer func() {
		clear(stack)
		clear(done)
	}()
	for size := len(stack); size > 0; size = len(stack) {
		f := stack[size-1]
		stack = stack[:size-1]
		node := f.node
		if node.IsLeaf() {
			done[node] = &RecompositionNode[T]{
				ID:     node.ID,
				Sorted: node.Items,
				Depth:  node.Depth,
				Origin: node,
			}
			continue
		}
		if !f.expanded {
			stack = append(stack,
				frame{node: node, expanded: true},
				frame{node: node.Right},
				frame{node: node.Left},
			)
			continue
		}

		left, right := done[node.Left], done[node.Right]
		sorted := make([]T, 0, len(node.Items))
		sorted = append(sorted, left.Sorted...)
		sorted = append(sorted, node.Equal...)
		sorted = append(sorted, right.Sorted...)
		done[node] = &RecompositionNode[T]{
			ID:        gen.Number(),
			Sorted:    sorted,
			Depth:     max(left.Depth, node.Depth+1, right.Depth) + 2,
			SourceIDs: []uint64{left.ID, node.EqualID, right.ID},
			Left:      left,
			Right:     right,
			Origin:    node,
		}
	}
	return done[root]
}

// WalkRecomposition visits merges in the order their ids were assigned,
// leaves come right before the merge that first consumes them.
func WalkRecomposition[T infra.OrderedKey](root *RecompositionNode[T], fn func(node *RecompositionNode[T]) bool) {
	if root == nil {
		return
	}
	type frame struct {
		node     *RecompositionNode[T]
		expanded bool
	}
	stack := []frame{{node: root}}
	defer func() {
		clear(stack)
	}()
	for size := len(stack); size > 0; size = len(stack) {
		f := stack[size-1]
		stack = stack[:size-1]
		if f.node.IsLeaf() || f.expanded {
			if !fn(f.node) {
				return
			}
			continue
		}
		stack = append(stack,
			frame{node: f.node, expanded: true},
			frame{node: f.node.Right},
			frame{node: f.node.Left},
		)
	}
}
