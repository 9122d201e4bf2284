package tree

import (
	"errors"

	"github.com/benz9527/xalgo/lib/infra"
)

func isRed[K infra.OrderedKey](node Node[K]) bool {
	return node != nil && node.Color() == Red
}

func isBlack[K infra.OrderedKey](node Node[K]) bool {
	return node == nil || node.Color() == Black
}

// rbtree rule validation utilities.

// References:
// https://github1s.com/minghu6/rust-minghu6/blob/master/coll_st/src/bst/rb.rs

// Inorder traversal to validate no red node has a red child.
func RedViolationValidate[K infra.OrderedKey](tree RBTree[K]) error {
	var err error
	inorder[K](tree.Root(), func(idx int64, node Node[K]) bool {
		if isRed[K](node) && (isRed[K](node.Left()) || isRed[K](node.Right())) {
			err = errors.New("rbtree red violation")
			return false
		}
		return true
	})
	return err
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).

	        [13]
			/  \
		 <8>    [15]
		 / \    /  \
	  [6] [11] [14] [17]
	  /              /
	<1>            [16]

DFS from the root, counting black nodes down to every NIL child.
Each NIL must be reached with the same black count.
*/
func BlackViolationValidate[K infra.OrderedKey](tree RBTree[K]) error {
	root := tree.Root()
	if root == nil {
		return nil
	}

	type frame struct {
		node   Node[K]
		blacks int
	}
	stack := []frame{{node: root}}
	defer func() {
		clear(stack)
	}()

	expected := -1
	for size := len(stack); size > 0; size = len(stack) {
		f := stack[size-1]
		stack = stack[:size-1]
		blacks := f.blacks
		if isBlack[K](f.node) {
			blacks++
		}
		for _, child := range [2]Node[K]{f.node.Left(), f.node.Right()} {
			if child != nil {
				stack = append(stack, frame{node: child, blacks: blacks})
				continue
			}
			if expected < 0 {
				expected = blacks
			} else if blacks != expected {
				return errors.New("rbtree black violation")
			}
		}
	}
	return nil
}

func RootColorValidate[K infra.OrderedKey](tree RBTree[K]) error {
	if isRed[K](tree.Root()) {
		return errors.New("rbtree root is red")
	}
	return nil
}
