package scene

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"go.lepak.sg/gamekit/traverse"
)

// ErrNameNotIndex is returned when a child's name is not an integer.
var ErrNameNotIndex = errors.New("scene: child name is not an integer")

// SetActive sets the node's own active flag. It reports whether anything
// changed: false when the node was already in the requested state.
func (n *Node) SetActive(active bool) bool {
	if n.active == active {
		return false
	}
	n.active = active
	return true
}

// ActiveSelf returns the node's own active flag.
func (n *Node) ActiveSelf() bool {
	return n.active
}

// ActiveInHierarchy reports whether the node and all its ancestors are
// active.
func (n *Node) ActiveInHierarchy() bool {
	for p := n; p != nil; p = p.Parent {
		if !p.active {
			return false
		}
	}
	return true
}

// DestroyChildren destroys every child of the node. The node itself stays.
func (n *Node) DestroyChildren() {
	// Destroy detaches each child from n.children, so walk a copy.
	traverse.Each(n.children, (*Node).Destroy, true)
}

// SetParentResetTransform moves the node under parent and resets its local
// transform, so it sits exactly at the parent's origin. A nil parent
// detaches the node. If parent is already the node's parent, only the
// transform is reset.
func (n *Node) SetParentResetTransform(parent *Node) {
	switch parent {
	case nil:
		n.RemoveFromParent()
	case n.Parent:
		// already there; keep the sibling position
	default:
		parent.AddChild(n)
	}
	n.ResetTransform()
}

// Walk calls f for the node and then for each descendant, depth first in
// child order, until f returns true. Inactive nodes are visited.
// It reports whether f stopped the walk.
func (n *Node) Walk(f func(node *Node) (stop bool)) bool {
	if f(n) {
		return true
	}

	stopped := false
	traverse.EachUntil(n.children, func(child *Node) bool {
		stopped = child.Walk(f)
		return stopped
	}, false)
	return stopped
}

// SetChildLayer sets Layer on the node and on every descendant, active
// or not.
func (n *Node) SetChildLayer(layer uint8) {
	n.Walk(func(node *Node) bool {
		node.Layer = layer
		return false
	})
}

// FindInAllChildren returns the first node called name in a depth-first
// walk starting at (and including) n. Inactive nodes are searched too.
// If there is none, a warning is logged and nil returned.
func (n *Node) FindInAllChildren(name string) *Node {
	var found *Node
	n.Walk(func(node *Node) bool {
		if node.Name == name {
			found = node
		}
		return found != nil
	})

	if found == nil {
		logger.WithFields(logrus.Fields{
			"name":   name,
			"parent": n.Name,
		}).Warn("scene: no node with this name")
	}
	return found
}

type indexedChild struct {
	index int
	node  *Node
}

// SortChildrenByNameIndex reorders the children of n by their names read
// as integers, highest first when descending is true. Children with equal
// indexes keep their relative order. If any name is not an integer,
// nothing is moved and the error wraps ErrNameNotIndex.
func (n *Node) SortChildrenByNameIndex(descending bool) error {
	keyed := make([]indexedChild, 0, len(n.children))
	var err error
	traverse.EachUntil(n.children, func(child *Node) bool {
		idx, perr := strconv.Atoi(child.Name)
		if perr != nil {
			err = errors.Wrapf(ErrNameNotIndex, "child %q of %q", child.Name, n.Name)
			return true
		}
		keyed = append(keyed, indexedChild{idx, child})
		return false
	}, false)
	if err != nil {
		return err
	}

	slices.SortStableFunc(keyed, func(a, b indexedChild) bool {
		return before(a.index, b.index, descending)
	})
	traverse.EachIndexed(keyed, func(i int, c indexedChild) {
		n.children[i] = c.node
	}, false)
	return nil
}

func before[T constraints.Ordered](a, b T, descending bool) bool {
	if descending {
		return a > b
	}
	return a < b
}
