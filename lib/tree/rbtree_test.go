package tree

import (
	randv2 "math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

type checkData struct {
	color RBColor
	key   uint64
}

func requireColors(t *testing.T, tree RBTree[uint64], expected []checkData) {
	t.Helper()
	require.Equal(t, int64(len(expected)), tree.Len())
	tree.Foreach(func(idx int64, node Node[uint64]) bool {
		require.Equal(t, expected[idx].color, node.Color(), "key %d", node.Key())
		require.Equal(t, expected[idx].key, node.Key())
		return true
	})
}

func requireValid(t *testing.T, tree RBTree[uint64]) {
	t.Helper()
	require.NoError(t, RedViolationValidate[uint64](tree))
	require.NoError(t, BlackViolationValidate[uint64](tree))
	require.NoError(t, RootColorValidate[uint64](tree))
	require.NoError(t, OrderValidate[uint64](tree.Root()))
}

func stepKinds(steps []Step[uint64]) []StepKind {
	kinds := make([]StepKind, 0, len(steps))
	for _, s := range steps {
		kinds = append(kinds, s.Kind())
	}
	return kinds
}

func buildSample(t *testing.T, opts ...RBTreeOpt[uint64]) RBTree[uint64] {
	tree := NewRBTree[uint64](opts...)
	for _, k := range []uint64{52, 47, 3, 35, 24} {
		steps := tree.Insert(k)
		require.NotEqual(t, StepError, steps[len(steps)-1].Kind())
		requireValid(t, tree)
	}
	return tree
}

func TestRbtreeInsertCases(t *testing.T) {
	tree := NewRBTree[uint64]()

	steps := tree.Insert(52)
	require.Equal(t, []StepKind{StepCreate, StepSetRoot, StepRecolor}, stepKinds(steps))
	require.Equal(t, RecolorStep[uint64]{Nodes: []uint64{52}, From: Red, To: Black, Root: true}, steps[2])
	requireColors(t, tree, []checkData{{Black, 52}})

	steps = tree.Insert(47)
	require.Equal(t, []StepKind{StepCreate, StepTraverse, StepLink, StepRecolor}, stepKinds(steps))
	require.Equal(t, LinkStep[uint64]{Key: 47, Parent: 52, Direction: Left}, steps[2])
	requireColors(t, tree, []checkData{{Red, 47}, {Black, 52}})

	// c3 on the left side.
	steps = tree.Insert(3)
	require.Equal(t, []Step[uint64]{
		CreateStep[uint64]{Key: 3},
		TraverseStep[uint64]{Key: 52, Target: 3},
		TraverseStep[uint64]{Key: 47, Target: 3},
		LinkStep[uint64]{Key: 3, Parent: 47, Direction: Left},
		CaseStep[uint64]{Number: 3},
		RecolorStep[uint64]{Nodes: []uint64{47}, From: Red, To: Black},
		RecolorStep[uint64]{Nodes: []uint64{52}, From: Black, To: Red},
		RotateStep[uint64]{Direction: Right, Node: 52, Pivot: 47},
		RecolorStep[uint64]{Nodes: []uint64{47}, From: Black, To: Black, Root: true},
	}, steps)
	requireColors(t, tree, []checkData{{Red, 3}, {Black, 47}, {Red, 52}})
	requireValid(t, tree)

	// c1, the red uncle is recolored and the root turns red then black.
	steps = tree.Insert(35)
	require.Equal(t, []Step[uint64]{
		CreateStep[uint64]{Key: 35},
		TraverseStep[uint64]{Key: 47, Target: 35},
		TraverseStep[uint64]{Key: 3, Target: 35},
		LinkStep[uint64]{Key: 35, Parent: 3, Direction: Right},
		CaseStep[uint64]{Number: 1},
		RecolorStep[uint64]{Nodes: []uint64{3, 52}, From: Red, To: Black},
		RecolorStep[uint64]{Nodes: []uint64{47}, From: Black, To: Red},
		RecolorStep[uint64]{Nodes: []uint64{47}, From: Red, To: Black, Root: true},
	}, steps)
	requireColors(t, tree, []checkData{{Black, 3}, {Red, 35}, {Black, 47}, {Black, 52}})
	requireValid(t, tree)

	// mirrored c2 then c3.
	steps = tree.Insert(24)
	require.Equal(t, []Step[uint64]{
		CreateStep[uint64]{Key: 24},
		TraverseStep[uint64]{Key: 47, Target: 24},
		TraverseStep[uint64]{Key: 3, Target: 24},
		TraverseStep[uint64]{Key: 35, Target: 24},
		LinkStep[uint64]{Key: 24, Parent: 35, Direction: Left},
		CaseStep[uint64]{Number: 2, Mirrored: true},
		RotateStep[uint64]{Direction: Right, Node: 35, Pivot: 24},
		CaseStep[uint64]{Number: 3, Mirrored: true},
		RecolorStep[uint64]{Nodes: []uint64{24}, From: Red, To: Black},
		RecolorStep[uint64]{Nodes: []uint64{3}, From: Black, To: Red},
		RotateStep[uint64]{Direction: Left, Node: 3, Pivot: 24},
		RecolorStep[uint64]{Nodes: []uint64{47}, From: Black, To: Black, Root: true},
	}, steps)
	requireColors(t, tree, []checkData{{Red, 3}, {Black, 24}, {Red, 35}, {Black, 47}, {Black, 52}})
	requireValid(t, tree)

	require.Equal(t, 3, tree.Height())
	require.Equal(t, 2, tree.BlackHeight())
	require.Equal(t, uint64(47), tree.Root().Key())
}

func TestRbtreeDuplicateInsert(t *testing.T) {
	tree := buildSample(t)
	before := Keys[uint64](tree.Root())

	steps := tree.Insert(24)
	require.Equal(t, []Step[uint64]{
		CreateStep[uint64]{Key: 24},
		TraverseStep[uint64]{Key: 47, Target: 24},
		TraverseStep[uint64]{Key: 24, Target: 24},
		ErrorStep[uint64]{Key: 24, Reason: ErrDuplicateKey},
	}, steps)
	require.Equal(t, "Value 24 already exists in tree", steps[3].Description())
	require.Equal(t, int64(5), tree.Len())
	require.Equal(t, before, Keys[uint64](tree.Root()))
	requireColors(t, tree, []checkData{{Red, 3}, {Black, 24}, {Red, 35}, {Black, 47}, {Black, 52}})
}

func TestRbtreeSearchPath(t *testing.T) {
	tree := buildSample(t)

	res := tree.Search(35)
	require.True(t, res.Found)
	require.Equal(t, []uint64{47, 24, 35}, res.Path)

	res = tree.Search(30)
	require.False(t, res.Found)
	require.Equal(t, []uint64{47, 24, 35}, res.Path)

	res = NewRBTree[uint64]().Search(1)
	require.False(t, res.Found)
	require.Empty(t, res.Path)
}

func TestRbtreeDeleteWithoutFixup(t *testing.T) {
	tree := buildSample(t)

	ok, steps := tree.Delete(24)
	require.True(t, ok)
	require.Equal(t, []Step[uint64]{
		TraverseStep[uint64]{Key: 47, Target: 24},
		TraverseStep[uint64]{Key: 24, Target: 24},
		DeleteStep[uint64]{Key: 24, Successor: 35, HasSuccessor: true},
		RecolorStep[uint64]{Nodes: []uint64{47}, From: Black, To: Black, Root: true},
	}, steps)
	// The successor keeps its red color, 35 and 3 are now both red.
	requireColors(t, tree, []checkData{{Red, 3}, {Red, 35}, {Black, 47}, {Black, 52}})
	require.Error(t, RedViolationValidate[uint64](tree))
	require.NoError(t, RootColorValidate[uint64](tree))
	require.NoError(t, OrderValidate[uint64](tree.Root()))

	ok, steps = tree.Delete(24)
	require.False(t, ok)
	require.Equal(t, ErrorStep[uint64]{Key: 24, Reason: ErrKeyNotFound}, steps[len(steps)-1])

	// Removing the root leaves a red child as root, forced back to black.
	for _, k := range []uint64{47, 52, 35} {
		ok, _ = tree.Delete(k)
		require.True(t, ok)
		require.NoError(t, RootColorValidate[uint64](tree))
	}
	requireColors(t, tree, []checkData{{Black, 3}})
	ok, _ = tree.Delete(3)
	require.True(t, ok)
	require.Nil(t, tree.Root())
	require.Equal(t, int64(0), tree.Len())
	require.Equal(t, 0, tree.Height())
	require.Equal(t, 0, tree.BlackHeight())
}

func TestRbtreeDeleteWithFixup(t *testing.T) {
	tree := buildSample(t, WithRBTreeDeleteFixup[uint64]())

	ok, _ := tree.Delete(24)
	require.True(t, ok)
	requireColors(t, tree, []checkData{{Red, 3}, {Black, 35}, {Black, 47}, {Black, 52}})
	requireValid(t, tree)

	// Removing a black leaf needs the sibling side rebalanced.
	ok, steps := tree.Delete(52)
	require.True(t, ok)
	requireValid(t, tree)
	require.Contains(t, stepKinds(steps), StepCase)
	require.Equal(t, []uint64{3, 35, 47}, Keys[uint64](tree.Root()))
	require.Equal(t, uint64(35), tree.Root().Key())
}

func TestRbtreeRandomInsertAndDelete(t *testing.T) {
	testcases := []struct {
		name  string
		total int
	}{
		{"small", 64},
		{"medium", 1024},
		{"large", 4096},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			tree := NewRBTree[uint64](WithRBTreeDeleteFixup[uint64]())
			keys := make([]uint64, 0, tc.total)
			seen := make(map[uint64]struct{}, tc.total)
			for len(keys) < tc.total {
				k := randv2.Uint64N(uint64(tc.total) * 8)
				steps := tree.Insert(k)
				if _, ok := seen[k]; ok {
					require.Equal(tt, StepError, steps[len(steps)-1].Kind())
					continue
				}
				seen[k] = struct{}{}
				keys = append(keys, k)
				if len(keys)%64 == 0 {
					requireValid(tt, tree)
				}
			}
			requireValid(tt, tree)
			require.Equal(tt, int64(tc.total), tree.Len())

			sorted := append([]uint64(nil), keys...)
			sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
			require.Equal(tt, sorted, Keys[uint64](tree.Root()))

			for i, k := range keys {
				require.True(tt, tree.Search(k).Found)
				if i%2 == 0 {
					ok, _ := tree.Delete(k)
					require.True(tt, ok)
					require.False(tt, tree.Search(k).Found)
				}
				if i%32 == 0 {
					requireValid(tt, tree)
				}
			}
			requireValid(tt, tree)
			require.Equal(tt, int64(tc.total/2), tree.Len())

			tree.Release()
			require.Nil(tt, tree.Root())
			require.Equal(tt, int64(0), tree.Len())
		})
	}
}

func TestRbtreeReverseSequentialInsert(t *testing.T) {
	tree := NewRBTree[uint64]()
	for i := uint64(1000); i > 0; i-- {
		tree.Insert(i)
	}
	requireValid(t, tree)
	tree.Foreach(func(idx int64, node Node[uint64]) bool {
		require.Equal(t, uint64(idx+1), node.Key())
		return true
	})
	// 2*log2(n+1) bound.
	require.LessOrEqual(t, tree.Height(), 20)
}

func TestStepDescriptions(t *testing.T) {
	require.Equal(t, "Creating new node with value 7", CreateStep[int]{Key: 7}.Description())
	require.Equal(t, "Comparing 7 with 9", TraverseStep[int]{Key: 9, Target: 7}.Description())
	require.Equal(t, "7 becomes the root", SetRootStep[int]{Key: 7}.Description())
	require.Equal(t, "Inserting 7 as left child of 9", LinkStep[int]{Key: 7, Parent: 9, Direction: Left}.Description())
	require.Equal(t, "Left rotating 3 with pivot 24", RotateStep[int]{Direction: Left, Node: 3, Pivot: 24}.Description())
	require.Equal(t, "Recoloring 3, 52 from RED to BLACK", RecolorStep[int]{Nodes: []int{3, 52}, From: Red, To: Black}.Description())
	require.Equal(t, "Ensuring root is BLACK", RecolorStep[int]{Nodes: []int{47}, Root: true}.Description())
	require.Equal(t, "Case 2: Node is the inner grandchild - rotate at parent to convert to case 3 (mirror)",
		CaseStep[int]{Number: 2, Mirrored: true}.Description())
	require.Equal(t, "Deleted node 24, successor 35 takes its place",
		DeleteStep[int]{Key: 24, Successor: 35, HasSuccessor: true}.Description())
	require.Equal(t, "rotate", StepRotate.String())
	require.Equal(t, "RED", Red.String())
}
