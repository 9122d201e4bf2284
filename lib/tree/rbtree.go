package tree

import (
	"github.com/benz9527/xalgo/lib/infra"
)

// A nil child or parent stands for the NIL leaf and always counts as
// black. There is no shared sentinel object to be written by accident.
type rbNode[K infra.OrderedKey] struct {
	parent *rbNode[K]
	left   *rbNode[K]
	right  *rbNode[K]
	key    K
	color  RBColor
}

func (node *rbNode[K]) Key() K {
	return node.key
}

func (node *rbNode[K]) Color() RBColor {
	if node == nil {
		return Black
	}
	return node.color
}

func (node *rbNode[K]) Left() Node[K] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *rbNode[K]) Right() Node[K] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

func (node *rbNode[K]) Parent() Node[K] {
	if node == nil || node.parent == nil {
		return nil
	}
	return node.parent
}

func (node *rbNode[K]) Height() int {
	if node == nil {
		return 0
	}
	return subtreeHeight[K](node)
}

func (node *rbNode[K]) isRed() bool {
	return node != nil && node.color == Red
}

func (node *rbNode[K]) isBlack() bool {
	return node == nil || node.color == Black
}

func (node *rbNode[K]) isRoot() bool {
	return node != nil && node.parent == nil
}

func (node *rbNode[K]) Direction() RBDirection {
	if node == nil {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] nil leaf node without direction")
	}

	if node.isRoot() {
		return Root
	}
	if node == node.parent.left {
		return Left
	}
	return Right
}

func (node *rbNode[K]) minimum() *rbNode[K] {
	aux := node
	for ; aux != nil && aux.left != nil; aux = aux.left {
	}
	return aux
}

type rbTree[K infra.OrderedKey] struct {
	root        *rbNode[K]
	count       int64
	deleteFixup bool
	steps       []Step[K]
}

func (tree *rbTree[K]) Variant() Variant {
	return RedBlackVariant
}

func (tree *rbTree[K]) Len() int64 {
	return tree.count
}

func (tree *rbTree[K]) Root() Node[K] {
	if tree.root == nil {
		return nil
	}
	return tree.root
}

func (tree *rbTree[K]) record(step Step[K]) {
	tree.steps = append(tree.steps, step)
}

// drain hands the recorded steps to the caller and resets the trace.
func (tree *rbTree[K]) drain() []Step[K] {
	steps := tree.steps
	tree.steps = nil
	return steps
}

func (tree *rbTree[K]) recolor(from, to RBColor, nodes ...*rbNode[K]) {
	keys := make([]K, 0, len(nodes))
	for _, n := range nodes {
		n.color = to
		keys = append(keys, n.key)
	}
	tree.record(RecolorStep[K]{Nodes: keys, From: from, To: to})
}

// rbtree properties:
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties
// p1. Every node is either red or black.
// p2. All NIL nodes are considered black.
// p3. A red node does not have a red child. (red-violation)
// p4. Every path from a given node to any of its descendant
//   NIL nodes goes through the same number of black nodes. (black-violation)
// p5. The root is black.

/*
		 |                         |
		 X                         S
		/ \     leftRotate(X)     / \
	   L   S    ============>    X   Sd
		  / \                   / \
		Sc   Sd                L   Sc
*/
func (tree *rbTree[K]) leftRotate(x *rbNode[K]) {
	if x == nil || x.right == nil {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] left rotate node x is nil or x.right is nil")
	}

	p, y := x.parent, x.right
	tree.record(RotateStep[K]{Direction: Left, Node: x.key, Pivot: y.key})
	dir := x.Direction()
	x.right, y.left = y.left, x
	if x.right != nil {
		x.right.parent = x
	}
	x.parent = y

	switch dir {
	case Root:
		tree.root = y
	case Left:
		p.left = y
	case Right:
		p.right = y
	default:
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] unknown node direction to left-rotate")
	}
	y.parent = p
}

/*
			 |                         |
			 X                         S
			/ \     rightRotate(S)    / \
	       L   S    <============    X   R
			  / \                   / \
			Sc   Sd               Sc   Sd
*/
func (tree *rbTree[K]) rightRotate(x *rbNode[K]) {
	if x == nil || x.left == nil {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] right rotate node x is nil or x.left is nil")
	}

	p, y := x.parent, x.left
	tree.record(RotateStep[K]{Direction: Right, Node: x.key, Pivot: y.key})
	dir := x.Direction()
	x.left, y.right = y.right, x
	if x.left != nil {
		x.left.parent = x
	}
	x.parent = y

	switch dir {
	case Root:
		tree.root = y
	case Left:
		p.left = y
	case Right:
		p.right = y
	default:
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] unknown node direction to right-rotate")
	}
	y.parent = p
}

func (tree *rbTree[K]) Insert(key K) []Step[K] {
	tree.steps = make([]Step[K], 0, 8)
	tree.record(CreateStep[K]{Key: key})

	var x, y *rbNode[K] = tree.root, nil
	for x != nil {
		y = x
		tree.record(TraverseStep[K]{Key: x.key, Target: key})
		res := infra.KeyCompare(key, x.key)
		if /* equal */ res == 0 {
			tree.record(ErrorStep[K]{Key: key, Reason: ErrDuplicateKey})
			return tree.drain()
		} else /* less */ if res < 0 {
			x = x.left
		} else /* greater */ {
			x = x.right
		}
	}

	z := &rbNode[K]{
		key:    key,
		color:  Red,
		parent: y,
	}
	if y == nil {
		tree.root = z
		tree.record(SetRootStep[K]{Key: key})
	} else if infra.KeyCompare(key, y.key) < 0 {
		y.left = z
		tree.record(LinkStep[K]{Key: key, Parent: y.key, Direction: Left})
	} else {
		y.right = z
		tree.record(LinkStep[K]{Key: key, Parent: y.key, Direction: Right})
	}
	tree.count++
	tree.insertRebalance(z)
	return tree.drain()
}

/*
New node X is red by default. The loop runs while X's parent P is red,
so the grandpa G exists (a red node is never the root after a fix-up).

<X> is a RED node.
[X] is a BLACK node (or NIL).

c1: The uncle U is red. Repaint P and U into black and G into red, then
continue from G, which may now be a red child of a red node.

	    [G]             <G>
	    / \             / \
	  <P> <U>  ====>  [P] [U]
	  /               /
	<X>             <X>

c2: The uncle U is black and X is the inner grandchild. Rotate P towards
the outside, P becomes the focus and c3 follows.

	  [G]                 [G]
	  / \    rotate(P)    / \
	<P> [U]  ========>  <X> [U]
	  \                 /
	  <X>             <P>

c3: The uncle U is black and X is the outer grandchild. Repaint P into
black and G into red, rotate G to the opposite side. P is black after
this, so the loop ends.

	    [G]                 [P]
	    / \    rotate(G)    / \
	  <P> [U]  ========>  <X> <G>
	  /                         \
	<X>                         [U]

The mirrored cases swap left and right. The root is always repainted
black at last, c1 may have turned it red.
*/
func (tree *rbTree[K]) insertRebalance(x *rbNode[K]) {
	for x.parent.isRed() {
		p := x.parent
		g := p.parent
		mirrored := p.Direction() == Right
		var u *rbNode[K]
		if mirrored {
			u = g.left
		} else {
			u = g.right
		}

		if /* c1 */ u.isRed() {
			tree.record(CaseStep[K]{Number: 1, Mirrored: mirrored})
			tree.recolor(Red, Black, p, u)
			tree.recolor(Black, Red, g)
			x = g
			continue
		}

		if /* c2 */ (!mirrored && x == p.right) || (mirrored && x == p.left) {
			tree.record(CaseStep[K]{Number: 2, Mirrored: mirrored})
			x = p
			if mirrored {
				tree.rightRotate(x)
			} else {
				tree.leftRotate(x)
			}
			p = x.parent
		}

		// c3
		tree.record(CaseStep[K]{Number: 3, Mirrored: mirrored})
		tree.recolor(Red, Black, p)
		tree.recolor(Black, Red, g)
		if mirrored {
			tree.leftRotate(g)
		} else {
			tree.rightRotate(g)
		}
	}
	tree.blackenRoot()
}

func (tree *rbTree[K]) blackenRoot() {
	if tree.root == nil {
		return
	}
	from := tree.root.color
	tree.root.color = Black
	tree.record(RecolorStep[K]{Nodes: []K{tree.root.key}, From: from, To: Black, Root: true})
}

func (tree *rbTree[K]) Search(key K) SearchResult[K] {
	path := make([]K, 0, 8)
	for aux := tree.root; aux != nil; {
		path = append(path, aux.key)
		res := infra.KeyCompare(key, aux.key)
		if res == 0 {
			return SearchResult[K]{Found: true, Path: path}
		} else if res < 0 {
			aux = aux.left
		} else {
			aux = aux.right
		}
	}
	return SearchResult[K]{Found: false, Path: path}
}

// transplant replaces the subtree rooted at u by the subtree rooted at v.
func (tree *rbTree[K]) transplant(u, v *rbNode[K]) {
	switch u.Direction() {
	case Root:
		tree.root = v
	case Left:
		u.parent.left = v
	case Right:
		u.parent.right = v
	default:
	}
	if v != nil {
		v.parent = u.parent
	}
}

/*
r1: Z has at most one child C, C (or NIL) takes Z's place.

r2: Z has two children, its successor Y is spliced out from the right
subtree and moved into Z's place, taking over Z's children.

	  |                    |
	  Z                    Y
	 / \                  / \
	L   R   splice(Y)    L   R
	   /    =========>      /
	  Y                   Yr
	   \
	   Yr

Without the delete fix-up (the default) Y keeps its own color and only the
root is repainted black. The red-black properties p3 and p4 are not
restored in general. WithRBTreeDeleteFixup switches to the full fix-up,
where Y inherits Z's color and removing a black node is repaired.
*/
func (tree *rbTree[K]) Delete(key K) (bool, []Step[K]) {
	tree.steps = make([]Step[K], 0, 8)
	z := tree.root
	for z != nil {
		tree.record(TraverseStep[K]{Key: z.key, Target: key})
		res := infra.KeyCompare(key, z.key)
		if res == 0 {
			break
		} else if res < 0 {
			z = z.left
		} else {
			z = z.right
		}
	}
	if z == nil {
		tree.record(ErrorStep[K]{Key: key, Reason: ErrKeyNotFound})
		return false, tree.drain()
	}

	var (
		x, xParent   *rbNode[K]
		removedColor = z.color
		step         = DeleteStep[K]{Key: key}
	)
	if /* r1 */ z.left == nil {
		x, xParent = z.right, z.parent
		tree.transplant(z, z.right)
	} else if /* r1 */ z.right == nil {
		x, xParent = z.left, z.parent
		tree.transplant(z, z.left)
	} else /* r2 */ {
		y := z.right.minimum()
		step.Successor, step.HasSuccessor = y.key, true
		removedColor = y.color
		x = y.right
		if y.parent == z {
			xParent = y
		} else {
			xParent = y.parent
			tree.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		tree.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		if tree.deleteFixup {
			y.color = z.color
		}
	}
	z.parent, z.left, z.right = nil, nil, nil
	tree.count--
	tree.record(step)

	if tree.deleteFixup && removedColor == Black {
		tree.deleteRebalance(x, xParent)
	}
	tree.blackenRoot()
	return true, tree.drain()
}

/*
X carries an extra black. S is X's sibling, Sc the sibling's child on X's
side and Sd the one on the opposite side.

rm1: S is red. Rotate P towards X, swap the colors of P and S. X gets a
black sibling and one of rm2-rm4 follows.

rm2: S, Sc and Sd are black. Repaint S into red, move the extra black
up to P.

rm3: S and Sd are black, Sc is red. Rotate S away from X and swap the
colors of S and Sc. Enter rm4.

rm4: S is black and Sd is red. Rotate P towards X, S takes P's color,
P and Sd are painted black. Done.
*/
func (tree *rbTree[K]) deleteRebalance(x, p *rbNode[K]) {
	for x != tree.root && x.isBlack() && p != nil {
		mirrored := x == p.right
		s := p.right
		if mirrored {
			s = p.left
		}

		if /* rm1 */ s.isRed() {
			tree.record(CaseStep[K]{Number: 1, Mirrored: mirrored, Deletion: true})
			tree.recolor(Red, Black, s)
			tree.recolor(Black, Red, p)
			if mirrored {
				tree.rightRotate(p)
				s = p.left
			} else {
				tree.leftRotate(p)
				s = p.right
			}
		}

		sc, sd := s.left, s.right
		if mirrored {
			sc, sd = s.right, s.left
		}
		if /* rm2 */ sc.isBlack() && sd.isBlack() {
			tree.record(CaseStep[K]{Number: 2, Mirrored: mirrored, Deletion: true})
			tree.recolor(Black, Red, s)
			x, p = p, p.parent
			continue
		}

		if /* rm3 */ sd.isBlack() {
			tree.record(CaseStep[K]{Number: 3, Mirrored: mirrored, Deletion: true})
			tree.recolor(Red, Black, sc)
			tree.recolor(Black, Red, s)
			if mirrored {
				tree.leftRotate(s)
				s = p.left
			} else {
				tree.rightRotate(s)
				s = p.right
			}
			sd = s.right
			if mirrored {
				sd = s.left
			}
		}

		// rm4
		tree.record(CaseStep[K]{Number: 4, Mirrored: mirrored, Deletion: true})
		if s.color != p.color {
			tree.recolor(s.color, p.color, s)
		}
		if p.isRed() {
			tree.recolor(Red, Black, p)
		}
		tree.recolor(Red, Black, sd)
		if mirrored {
			tree.rightRotate(p)
		} else {
			tree.leftRotate(p)
		}
		x, p = tree.root, nil
	}
	if x.isRed() {
		tree.recolor(Red, Black, x)
	}
}

func (tree *rbTree[K]) Height() int {
	return subtreeHeight[K](tree.Root())
}

func (tree *rbTree[K]) BlackHeight() int {
	height := 0
	for aux := tree.root; aux != nil; aux = aux.left {
		if aux.isBlack() {
			height++
		}
	}
	return height
}

func (tree *rbTree[K]) Foreach(action func(idx int64, node Node[K]) bool) {
	inorder[K](tree.Root(), action)
}

// Release unlinks every node so the tree can be reused.
func (tree *rbTree[K]) Release() {
	aux := tree.root
	tree.root = nil
	tree.count = 0
	if aux == nil {
		return
	}

	stack := make([]*rbNode[K], 0, 16)
	defer func() {
		clear(stack)
	}()
	stack = append(stack, aux)
	for size := len(stack); size > 0; size = len(stack) {
		aux = stack[size-1]
		stack = stack[:size-1]
		if aux.left != nil {
			stack = append(stack, aux.left)
		}
		if aux.right != nil {
			stack = append(stack, aux.right)
		}
		aux.left, aux.right, aux.parent = nil, nil, nil
	}
}

type RBTreeOpt[K infra.OrderedKey] func(*rbTree[K])

// WithRBTreeDeleteFixup restores the red-black properties after Delete.
func WithRBTreeDeleteFixup[K infra.OrderedKey]() RBTreeOpt[K] {
	return func(tree *rbTree[K]) {
		tree.deleteFixup = true
	}
}

func NewRBTree[K infra.OrderedKey](opts ...RBTreeOpt[K]) RBTree[K] {
	tree := &rbTree[K]{
		count:       0,
		deleteFixup: false,
	}

	for _, o := range opts {
		o(tree)
	}
	return tree
}
