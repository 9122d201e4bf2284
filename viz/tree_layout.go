package viz

import (
	"fmt"

	"github.com/benz9527/xalgo/lib/infra"
	"github.com/benz9527/xalgo/lib/tree"
)

type LayoutNode[K infra.OrderedKey] struct {
	Key   K
	Label string
	// X is the in-order index, Y the depth (root is 0).
	X      int
	Y      int
	Height int
	Color  tree.RBColor
}

type LayoutEdge[K infra.OrderedKey] struct {
	From      K
	To        K
	Direction tree.RBDirection
}

type TreeLayout[K infra.OrderedKey] struct {
	Variant tree.Variant
	Nodes   []LayoutNode[K]
	Edges   []LayoutEdge[K]
}

// LayoutTree places the nodes of root in-order. Node labels carry the
// balance metadata of the variant: the height for AVL trees, the color
// for red-black trees.
func LayoutTree[K infra.OrderedKey](variant tree.Variant, root tree.Node[K]) TreeLayout[K] {
	layout := TreeLayout[K]{Variant: variant}
	if root == nil {
		return layout
	}

	type frame struct {
		node  tree.Node[K]
		depth int
	}
	stack := make([]frame, 0, 16)
	defer func() {
		clear(stack)
	}()
	idx := 0
	for node, depth := root, 0; node != nil || len(stack) > 0; {
		for ; node != nil; node, depth = node.Left(), depth+1 {
			stack = append(stack, frame{node: node, depth: depth})
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		layout.Nodes = append(layout.Nodes, LayoutNode[K]{
			Key:    f.node.Key(),
			Label:  nodeLabel(variant, f.node),
			X:      idx,
			Y:      f.depth,
			Height: f.node.Height(),
			Color:  f.node.Color(),
		})
		idx++
		if left := f.node.Left(); left != nil {
			layout.Edges = append(layout.Edges, LayoutEdge[K]{From: f.node.Key(), To: left.Key(), Direction: tree.Left})
		}
		if right := f.node.Right(); right != nil {
			layout.Edges = append(layout.Edges, LayoutEdge[K]{From: f.node.Key(), To: right.Key(), Direction: tree.Right})
		}
		node, depth = f.node.Right(), f.depth+1
	}
	return layout
}

func nodeLabel[K infra.OrderedKey](variant tree.Variant, node tree.Node[K]) string {
	switch variant {
	case tree.AVLVariant:
		return fmt.Sprintf("%v (h=%d)", node.Key(), node.Height())
	case tree.RedBlackVariant:
		return fmt.Sprintf("%v (%s)", node.Key(), node.Color())
	default:
	}
	return fmt.Sprint(node.Key())
}

// LayoutBST is LayoutTree for the plain and AVL trees.
func LayoutBST[K infra.OrderedKey](t tree.BST[K]) TreeLayout[K] {
	return LayoutTree(t.Variant(), t.Root())
}

func LayoutRBTree[K infra.OrderedKey](t tree.RBTree[K]) TreeLayout[K] {
	return LayoutTree(t.Variant(), t.Root())
}
