package tree

import (
	"github.com/benz9527/xalgo/lib/infra"
)

type avlNode[K infra.OrderedKey] struct {
	left   *avlNode[K]
	right  *avlNode[K]
	key    K
	height int
}

func (node *avlNode[K]) Key() K {
	return node.key
}

func (node *avlNode[K]) Left() Node[K] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *avlNode[K]) Right() Node[K] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

func (node *avlNode[K]) Height() int {
	if node == nil {
		return 0
	}
	return node.height
}

func (node *avlNode[K]) Color() RBColor {
	return Black
}

// Balance factor is height(left) - height(right).
func (node *avlNode[K]) balance() int {
	if node == nil {
		return 0
	}
	return node.left.Height() - node.right.Height()
}

func (node *avlNode[K]) fixHeight() {
	node.height = 1 + max(node.left.Height(), node.right.Height())
}

type avlTree[K infra.OrderedKey] struct {
	root  *avlNode[K]
	count int64
}

func (tree *avlTree[K]) Variant() Variant {
	return AVLVariant
}

func (tree *avlTree[K]) Len() int64 {
	return tree.count
}

func (tree *avlTree[K]) Root() Node[K] {
	if tree.root == nil {
		return nil
	}
	return tree.root
}

/*
	     |                       |
	     Z                       Y
	    / \   rightRotate(Z)    / \
	   Y   D  =============>   A   Z
	  / \                         / \
	 A   C                       C   D
*/
func (tree *avlTree[K]) rightRotate(z *avlNode[K]) *avlNode[K] {
	y := z.left
	z.left, y.right = y.right, z
	z.fixHeight()
	y.fixHeight()
	return y
}

/*
	   |                           |
	   Z                           Y
	  / \      leftRotate(Z)      / \
	 A   Y     ============>     Z   D
	    / \                     / \
	   C   D                   A   C
*/
func (tree *avlTree[K]) leftRotate(z *avlNode[K]) *avlNode[K] {
	y := z.right
	z.right, y.left = y.left, z
	z.fixHeight()
	y.fixHeight()
	return y
}

func (tree *avlTree[K]) Insert(key K) bool {
	var inserted bool
	tree.root = tree.insert(tree.root, key, &inserted)
	if inserted {
		tree.count++
	}
	return inserted
}

/*
After the BST descent, on the way back up the heights are refreshed and
the balance factor B of each node X decides the rotation. The side is
picked by comparing the new key K with the child's key.

	ll: B > 1 and K < X.left.key    => rightRotate(X)
	rr: B < -1 and K > X.right.key  => leftRotate(X)
	lr: B > 1 and K > X.left.key    => leftRotate(X.left), rightRotate(X)
	rl: B < -1 and K < X.right.key  => rightRotate(X.right), leftRotate(X)
*/
func (tree *avlTree[K]) insert(x *avlNode[K], key K, inserted *bool) *avlNode[K] {
	if x == nil {
		*inserted = true
		return &avlNode[K]{key: key, height: 1}
	}

	res := infra.KeyCompare(key, x.key)
	if /* equal */ res == 0 {
		return x
	} else /* less */ if res < 0 {
		x.left = tree.insert(x.left, key, inserted)
	} else /* greater */ {
		x.right = tree.insert(x.right, key, inserted)
	}
	if !*inserted {
		return x
	}

	x.fixHeight()
	b := x.balance()
	if /* ll */ b > 1 && infra.KeyCompare(key, x.left.key) < 0 {
		return tree.rightRotate(x)
	}
	if /* rr */ b < -1 && infra.KeyCompare(key, x.right.key) > 0 {
		return tree.leftRotate(x)
	}
	if /* lr */ b > 1 && infra.KeyCompare(key, x.left.key) > 0 {
		x.left = tree.leftRotate(x.left)
		return tree.rightRotate(x)
	}
	if /* rl */ b < -1 && infra.KeyCompare(key, x.right.key) < 0 {
		x.right = tree.rightRotate(x.right)
		return tree.leftRotate(x)
	}
	return x
}

func (tree *avlTree[K]) Search(key K) (Node[K], bool) {
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

func (tree *avlTree[K]) Delete(key K) bool {
	var deleted bool
	tree.root = tree.delete(tree.root, key, &deleted)
	if deleted {
		tree.count--
	}
	return deleted
}

/*
Deletion can not use the key to pick the side, the removed key is gone.
The child's own balance factor breaks the tie instead, a zero balanced
child takes the single rotation.

	ll: B > 1 and balance(X.left) >= 0   => rightRotate(X)
	lr: B > 1 and balance(X.left) < 0    => leftRotate(X.left), rightRotate(X)
	rr: B < -1 and balance(X.right) <= 0 => leftRotate(X)
	rl: B < -1 and balance(X.right) > 0  => rightRotate(X.right), leftRotate(X)
*/
func (tree *avlTree[K]) delete(x *avlNode[K], key K, deleted *bool) *avlNode[K] {
	if x == nil {
		return nil
	}

	res := infra.KeyCompare(key, x.key)
	if res < 0 {
		x.left = tree.delete(x.left, key, deleted)
	} else if res > 0 {
		x.right = tree.delete(x.right, key, deleted)
	} else {
		*deleted = true
		if x.left == nil || x.right == nil {
			child := x.left
			if child == nil {
				child = x.right
			}
			x.left, x.right = nil, nil
			if child == nil {
				return nil
			}
			x = child
		} else {
			succ := x.right
			for ; succ.left != nil; succ = succ.left {
			}
			x.key = succ.key
			x.right = tree.delete(x.right, succ.key, deleted)
		}
	}
	if !*deleted {
		return x
	}

	x.fixHeight()
	b := x.balance()
	if /* ll */ b > 1 && x.left.balance() >= 0 {
		return tree.rightRotate(x)
	}
	if /* lr */ b > 1 && x.left.balance() < 0 {
		x.left = tree.leftRotate(x.left)
		return tree.rightRotate(x)
	}
	if /* rr */ b < -1 && x.right.balance() <= 0 {
		return tree.leftRotate(x)
	}
	if /* rl */ b < -1 && x.right.balance() > 0 {
		x.right = tree.rightRotate(x.right)
		return tree.leftRotate(x)
	}
	return x
}

// Height reads the cached root height.
func (tree *avlTree[K]) Height() int {
	return tree.root.Height()
}

func (tree *avlTree[K]) Degree() int {
	return maxDegree[K](tree.Root())
}

func (tree *avlTree[K]) Foreach(action func(idx int64, node Node[K]) bool) {
	inorder[K](tree.Root(), action)
}

func NewAVLTree[K infra.OrderedKey]() BST[K] {
	return &avlTree[K]{}
}
