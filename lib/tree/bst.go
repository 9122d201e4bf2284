package tree

import (
	"github.com/benz9527/xalgo/lib/infra"
)

type bstNode[K infra.OrderedKey] struct {
	left  *bstNode[K]
	right *bstNode[K]
	key   K
}

func (node *bstNode[K]) Key() K {
	return node.key
}

func (node *bstNode[K]) Left() Node[K] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *bstNode[K]) Right() Node[K] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

// Height is computed on demand, plain nodes do not cache it.
func (node *bstNode[K]) Height() int {
	if node == nil {
		return 0
	}
	return subtreeHeight[K](node)
}

func (node *bstNode[K]) Color() RBColor {
	return Black
}

func (node *bstNode[K]) minimum() *bstNode[K] {
	aux := node
	for ; aux != nil && aux.left != nil; aux = aux.left {
	}
	return aux
}

type bsTree[K infra.OrderedKey] struct {
	root  *bstNode[K]
	count int64
}

func (tree *bsTree[K]) Variant() Variant {
	return PlainVariant
}

func (tree *bsTree[K]) Len() int64 {
	return tree.count
}

func (tree *bsTree[K]) Root() Node[K] {
	if tree.root == nil {
		return nil
	}
	return tree.root
}

func (tree *bsTree[K]) Insert(key K) bool {
	z := &bstNode[K]{key: key}
	if tree.root == nil {
		tree.root = z
		tree.count++
		return true
	}

	for aux := tree.root; ; {
		res := infra.KeyCompare(key, aux.key)
		if /* equal */ res == 0 {
			return false
		} else /* less */ if res < 0 {
			if aux.left == nil {
				aux.left = z
				break
			}
			aux = aux.left
		} else /* greater */ {
			if aux.right == nil {
				aux.right = z
				break
			}
			aux = aux.right
		}
	}
	tree.count++
	return true
}

func (tree *bsTree[K]) Search(key K) (Node[K], bool) {
	for aux := tree.root; aux != nil; {
		res := infra.KeyCompare(key, aux.key)
		if res == 0 {
			return aux, true
		} else if res < 0 {
			aux = aux.left
		} else {
			aux = aux.right
		}
	}
	return nil, false
}

/*
d1: X has no child, unlink it from its parent.

d2: X has one child C, C takes X's place.

d3: X has two children. Copy the key of the successor S (minimum of the
right subtree) into X, then remove S. S has no left child so it falls into
d1 or d2.

	  |                      |
	  X                      S
	 / \    copy(S -> X)    / \
	L   R   ===========>   L   R
	   /                      /
	  S                     (S.right)
	   \
	   Sr
*/
func (tree *bsTree[K]) Delete(key K) bool {
	var (
		parent *bstNode[K]
		z      = tree.root
	)
	for z != nil {
		res := infra.KeyCompare(key, z.key)
		if res == 0 {
			break
		}
		parent = z
		if res < 0 {
			z = z.left
		} else {
			z = z.right
		}
	}
	if z == nil {
		return false
	}

	if /* d3 */ z.left != nil && z.right != nil {
		succParent, succ := z, z.right
		for succ.left != nil {
			succParent, succ = succ, succ.left
		}
		z.key = succ.key
		parent, z = succParent, succ
	}

	// d1 and d2
	child := z.left
	if child == nil {
		child = z.right
	}
	switch {
	case parent == nil:
		tree.root = child
	case parent.left == z:
		parent.left = child
	default:
		parent.right = child
	}
	z.left, z.right = nil, nil
	tree.count--
	return true
}

func (tree *bsTree[K]) Height() int {
	if tree.root == nil {
		return 0
	}
	return subtreeHeight[K](tree.root)
}

func (tree *bsTree[K]) Degree() int {
	return maxDegree[K](tree.Root())
}

func (tree *bsTree[K]) Foreach(action func(idx int64, node Node[K]) bool) {
	inorder[K](tree.Root(), action)
}

func NewBST[K infra.OrderedKey]() BST[K] {
	return &bsTree[K]{}
}
