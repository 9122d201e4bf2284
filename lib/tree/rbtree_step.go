package tree

import (
	"errors"
	"fmt"
	"strings"

	"github.com/benz9527/xalgo/lib/infra"
)

var (
	ErrDuplicateKey = errors.New("[tree] duplicate key")
	ErrKeyNotFound  = errors.New("[tree] key not found")
)

type StepKind uint8

const (
	StepCreate StepKind = iota
	StepTraverse
	StepSetRoot
	StepLink
	StepCase
	StepRecolor
	StepRotate
	StepError
	StepDelete
)

func (k StepKind) String() string {
	switch k {
	case StepCreate:
		return "create"
	case StepTraverse:
		return "traverse"
	case StepSetRoot:
		return "set-root"
	case StepLink:
		return "link"
	case StepCase:
		return "case"
	case StepRecolor:
		return "recolor"
	case StepRotate:
		return "rotate"
	case StepError:
		return "error"
	case StepDelete:
		return "delete"
	default:
	}
	return "unknown"
}

// Step is one record of the red-black tree animation trace.
// The set of implementations is closed, consumers type-switch over
// CreateStep, TraverseStep, SetRootStep, LinkStep, CaseStep, RecolorStep,
// RotateStep, ErrorStep and DeleteStep.
type Step[K infra.OrderedKey] interface {
	Kind() StepKind
	Description() string
	step()
}

var (
	_ Step[int] = CreateStep[int]{}
	_ Step[int] = TraverseStep[int]{}
	_ Step[int] = SetRootStep[int]{}
	_ Step[int] = LinkStep[int]{}
	_ Step[int] = CaseStep[int]{}
	_ Step[int] = RecolorStep[int]{}
	_ Step[int] = RotateStep[int]{}
	_ Step[int] = ErrorStep[int]{}
	_ Step[int] = DeleteStep[int]{}
)

type CreateStep[K infra.OrderedKey] struct {
	Key K
}

func (CreateStep[K]) Kind() StepKind { return StepCreate }
func (CreateStep[K]) step()          {}
func (s CreateStep[K]) Description() string {
	return fmt.Sprintf("Creating new node with value %v", s.Key)
}

// TraverseStep compares Target against the visited node Key.
type TraverseStep[K infra.OrderedKey] struct {
	Key    K
	Target K
}

func (TraverseStep[K]) Kind() StepKind { return StepTraverse }
func (TraverseStep[K]) step()          {}
func (s TraverseStep[K]) Description() string {
	return fmt.Sprintf("Comparing %v with %v", s.Target, s.Key)
}

type SetRootStep[K infra.OrderedKey] struct {
	Key K
}

func (SetRootStep[K]) Kind() StepKind { return StepSetRoot }
func (SetRootStep[K]) step()          {}
func (s SetRootStep[K]) Description() string {
	return fmt.Sprintf("%v becomes the root", s.Key)
}

// LinkStep attaches Key as the Direction child of Parent.
type LinkStep[K infra.OrderedKey] struct {
	Key       K
	Parent    K
	Direction RBDirection
}

func (LinkStep[K]) Kind() StepKind { return StepLink }
func (LinkStep[K]) step()          {}
func (s LinkStep[K]) Description() string {
	return fmt.Sprintf("Inserting %v as %s child of %v", s.Key, s.Direction, s.Parent)
}

// CaseStep marks the insert (or delete) fix-up case being applied.
// Mirrored is set when the parent is the right child of the grandparent.
type CaseStep[K infra.OrderedKey] struct {
	Number   int
	Mirrored bool
	Deletion bool
}

func (CaseStep[K]) Kind() StepKind { return StepCase }
func (CaseStep[K]) step()          {}
func (s CaseStep[K]) Description() string {
	var desc string
	switch {
	case s.Deletion:
		desc = fmt.Sprintf("Delete fix-up case %d", s.Number)
	case s.Number == 1:
		desc = "Case 1: Uncle is red - recolor parent, uncle, and grandparent"
	case s.Number == 2:
		desc = "Case 2: Node is the inner grandchild - rotate at parent to convert to case 3"
	default:
		desc = "Case 3: Node is the outer grandchild - recolor and rotate at grandparent"
	}
	if s.Mirrored {
		desc += " (mirror)"
	}
	return desc
}

type RecolorStep[K infra.OrderedKey] struct {
	Nodes []K
	From  RBColor
	To    RBColor
	// Root is set by the unconditional root repaint at the end of a fix-up.
	Root bool
}

func (RecolorStep[K]) Kind() StepKind { return StepRecolor }
func (RecolorStep[K]) step()          {}
func (s RecolorStep[K]) Description() string {
	if s.Root {
		return "Ensuring root is BLACK"
	}
	keys := make([]string, 0, len(s.Nodes))
	for _, k := range s.Nodes {
		keys = append(keys, fmt.Sprint(k))
	}
	return fmt.Sprintf("Recoloring %s from %s to %s", strings.Join(keys, ", "), s.From, s.To)
}

// RotateStep rotates Node, Pivot is the child that takes its place.
type RotateStep[K infra.OrderedKey] struct {
	Direction RBDirection
	Node      K
	Pivot     K
}

func (RotateStep[K]) Kind() StepKind { return StepRotate }
func (RotateStep[K]) step()          {}
func (s RotateStep[K]) Description() string {
	dir := "Left"
	if s.Direction == Right {
		dir = "Right"
	}
	return fmt.Sprintf("%s rotating %v with pivot %v", dir, s.Node, s.Pivot)
}

type ErrorStep[K infra.OrderedKey] struct {
	Key    K
	Reason error
}

func (ErrorStep[K]) Kind() StepKind { return StepError }
func (ErrorStep[K]) step()          {}
func (s ErrorStep[K]) Description() string {
	if errors.Is(s.Reason, ErrDuplicateKey) {
		return fmt.Sprintf("Value %v already exists in tree", s.Key)
	}
	return fmt.Sprintf("Value %v: %v", s.Key, s.Reason)
}

type DeleteStep[K infra.OrderedKey] struct {
	Key K
	// Successor is set when a two-children node was replaced by its
	// in-order successor.
	Successor    K
	HasSuccessor bool
}

func (DeleteStep[K]) Kind() StepKind { return StepDelete }
func (DeleteStep[K]) step()          {}
func (s DeleteStep[K]) Description() string {
	if s.HasSuccessor {
		return fmt.Sprintf("Deleted node %v, successor %v takes its place", s.Key, s.Successor)
	}
	return fmt.Sprintf("Deleted node %v", s.Key)
}
