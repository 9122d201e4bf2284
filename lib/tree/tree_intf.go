package tree

import "github.com/benz9527/xalgo/lib/infra"

type RBColor uint8

const (
	Black RBColor = iota
	Red
)

func (c RBColor) String() string {
	switch c {
	case Black:
		return "BLACK"
	case Red:
		return "RED"
	default:
	}
	return "UNKNOWN"
}

type RBDirection int8

const (
	Left RBDirection = -1 + iota
	Root
	Right
)

func (d RBDirection) String() string {
	switch d {
	case Left:
		return "left"
	case Root:
		return "root"
	case Right:
		return "right"
	default:
	}
	return "unknown"
}

// Variant tells a renderer which node metadata is meaningful.
type Variant uint8

const (
	PlainVariant Variant = iota
	AVLVariant
	RedBlackVariant
)

// Node is the read-only view handed to renderers. A missing child is
// reported as a nil interface, never as a typed nil pointer.
// Height is the cached height for AVL nodes and the computed subtree
// height otherwise. Color is Black for non red-black variants.
type Node[K infra.OrderedKey] interface {
	Key() K
	Left() Node[K]
	Right() Node[K]
	Height() int
	Color() RBColor
}

// BST is the common contract of the plain and AVL trees.
type BST[K infra.OrderedKey] interface {
	Variant() Variant
	Len() int64
	Root() Node[K]
	// Insert returns false iff the key is already present, the tree is
	// left unchanged in that case.
	Insert(key K) bool
	Search(key K) (Node[K], bool)
	// Delete returns false iff the key is absent. A node with two children
	// takes its in-order successor's key, then the successor node is removed,
	// so a Node obtained before the call must not be reused.
	Delete(key K) bool
	Height() int
	// Degree is the max number of non-nil children over all nodes.
	Degree() int
	// Foreach is an in-order traversal, stops when action returns false.
	Foreach(action func(idx int64, node Node[K]) bool)
}

type SearchResult[K infra.OrderedKey] struct {
	Found bool
	// Path holds the keys compared from the root to the terminating node.
	Path []K
}

type RBTree[K infra.OrderedKey] interface {
	Variant() Variant
	Len() int64
	Root() Node[K]
	// Insert reports a duplicate key as an ErrorStep, the tree is unchanged.
	Insert(key K) []Step[K]
	Search(key K) SearchResult[K]
	Delete(key K) (bool, []Step[K])
	Height() int
	// BlackHeight counts the black nodes along the leftmost root-to-leaf path.
	BlackHeight() int
	Foreach(action func(idx int64, node Node[K]) bool)
	Release()
}
