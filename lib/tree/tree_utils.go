package tree

import (
	"errors"

	"github.com/benz9527/xalgo/lib/infra"
)

// Traversal helpers shared by every variant. All of them walk with an
// explicit stack so a degenerate (list shaped) plain BST does not grow the
// call stack.

type depthFrame[K infra.OrderedKey] struct {
	node  Node[K]
	depth int
}

func subtreeHeight[K infra.OrderedKey](root Node[K]) int {
	if root == nil {
		return 0
	}
	height := 0
	stack := []depthFrame[K]{{node: root, depth: 1}}
	defer func() {
		clear(stack)
	}()
	for size := len(stack); size > 0; size = len(stack) {
		f := stack[size-1]
		stack = stack[:size-1]
		if f.depth > height {
			height = f.depth
		}
		if l := f.node.Left(); l != nil {
			stack = append(stack, depthFrame[K]{node: l, depth: f.depth + 1})
		}
		if r := f.node.Right(); r != nil {
			stack = append(stack, depthFrame[K]{node: r, depth: f.depth + 1})
		}
	}
	return height
}

func maxDegree[K infra.OrderedKey](root Node[K]) int {
	if root == nil {
		return 0
	}
	degree := 0
	stack := []Node[K]{root}
	defer func() {
		clear(stack)
	}()
	for size := len(stack); size > 0 && degree < 2; size = len(stack) {
		aux := stack[size-1]
		stack = stack[:size-1]
		children := 0
		if l := aux.Left(); l != nil {
			children++
			stack = append(stack, l)
		}
		if r := aux.Right(); r != nil {
			children++
			stack = append(stack, r)
		}
		if children > degree {
			degree = children
		}
	}
	return degree
}

// Inorder traversal to implement the DFS.
func inorder[K infra.OrderedKey](root Node[K], action func(idx int64, node Node[K]) bool) {
	if root == nil {
		return
	}
	stack := make([]Node[K], 0, 16)
	defer func() {
		clear(stack)
	}()

	for aux := root; aux != nil; aux = aux.Left() {
		stack = append(stack, aux)
	}

	idx := int64(0)
	for size := len(stack); size > 0; size = len(stack) {
		aux := stack[size-1]
		if !action(idx, aux) {
			return
		}
		idx++
		stack = stack[:size-1]
		for aux = aux.Right(); aux != nil; aux = aux.Left() {
			stack = append(stack, aux)
		}
	}
}

// OrderValidate checks the in-order keys are strictly ascending.
func OrderValidate[K infra.OrderedKey](root Node[K]) error {
	var (
		prev    K
		hasPrev bool
		err     error
	)
	inorder[K](root, func(idx int64, node Node[K]) bool {
		if hasPrev && infra.KeyCompare(prev, node.Key()) >= 0 {
			err = errors.New("bst order violation")
			return false
		}
		prev, hasPrev = node.Key(), true
		return true
	})
	return err
}

// AVLBalanceValidate checks |balance| <= 1 and the cached heights on
// every node of an AVL tree.
func AVLBalanceValidate[K infra.OrderedKey](tree BST[K]) error {
	if tree.Variant() != AVLVariant {
		return errors.New("avl validation on a non avl tree")
	}
	var err error
	inorder[K](tree.Root(), func(idx int64, node Node[K]) bool {
		lh, rh := heightOf[K](node.Left()), heightOf[K](node.Right())
		if node.Height() != 1+max(lh, rh) {
			err = errors.New("avl height violation")
			return false
		}
		if lh-rh > 1 || rh-lh > 1 {
			err = errors.New("avl balance violation")
			return false
		}
		return true
	})
	return err
}

func heightOf[K infra.OrderedKey](node Node[K]) int {
	if node == nil {
		return 0
	}
	return node.Height()
}

// Keys collects the in-order keys.
func Keys[K infra.OrderedKey](root Node[K]) []K {
	keys := make([]K, 0, 16)
	inorder[K](root, func(idx int64, node Node[K]) bool {
		keys = append(keys, node.Key())
		return true
	})
	return keys
}
