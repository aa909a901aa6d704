// Package scene is a small retained-mode 2D node tree with the helpers
// game code keeps reaching for: toggling activity, destroying or
// re-layering whole subtrees, finding nodes by name and ordering children
// by numeric names.
//
// The tree is single-threaded. Nothing here takes a lock.
package scene

import (
	"golang.org/x/exp/slices"

	"go.lepak.sg/gamekit/traverse"
)

// nodeIDCounter is a plain counter; the tree is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is an element of the tree.
type Node struct {
	ID   uint32
	Name string

	Parent   *Node
	children []*Node

	// Local transform. Assigning the fields directly requires MarkDirty;
	// the setters in transform.go do that.
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64

	worldTransform  [6]float64
	parentTransform [6]float64
	transformDirty  bool

	// Layer is an opaque grouping tag, e.g. for rendering or collision.
	Layer uint8

	active    bool
	destroyed bool
}

// NewNode returns an active, parentless node with an identity transform.
func NewNode(name string) *Node {
	return &Node{
		ID:             nextNodeID(),
		Name:           name,
		ScaleX:         1,
		ScaleY:         1,
		active:         true,
		transformDirty: true,
	}
}

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first;
// a child of this node moves to the end.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	n.checkAdd(child, "AddChild")
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
}

// AddChildAt inserts child at the given index, with the same reparenting
// and cycle checks as AddChild. For a child already under this node the
// index is its new position, as with SetChildIndex.
// The tree is left untouched when AddChildAt panics.
func (n *Node) AddChildAt(child *Node, index int) {
	n.checkAdd(child, "AddChildAt")
	if child.Parent == n {
		n.SetChildIndex(child, index)
		markSubtreeDirty(child)
		return
	}
	if index < 0 || index > len(n.children) {
		panic("scene: child index out of range")
	}

	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	markSubtreeDirty(child)
}

func (n *Node) checkAdd(child *Node, op string) {
	if child == nil {
		panic("scene: cannot add nil child")
	}
	if debug {
		debugCheckDestroyed(n, op+" (parent)")
		debugCheckDestroyed(child, op+" (child)")
	}
	if isAncestor(child, n) {
		panic("scene: adding child would create a cycle")
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if debug {
		debugCheckDestroyed(n, "RemoveChild")
	}
	if child.Parent != n {
		panic("scene: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice must not be
// modified, and it changes under the caller when the tree does.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// SetChildIndex moves child to a new index among its siblings.
func (n *Node) SetChildIndex(child *Node, index int) {
	if child.Parent != n {
		panic("scene: child's parent is not this node")
	}
	if index < 0 || index >= len(n.children) {
		panic("scene: child index out of range")
	}

	old := slices.Index(n.children, child)
	if old == index {
		return
	}
	if old < index {
		copy(n.children[old:], n.children[old+1:index+1])
	} else {
		copy(n.children[index+1:], n.children[index:old])
	}
	n.children[index] = child
}

// Destroy removes this node from its parent, marks it destroyed and
// destroys all its descendants. Destroying twice is a no-op.
func (n *Node) Destroy() {
	if n.destroyed {
		return
	}
	n.RemoveFromParent()
	n.destroy()
}

func (n *Node) destroy() {
	n.destroyed = true
	n.active = false
	n.ID = 0
	traverse.Each(n.children, func(child *Node) {
		child.Parent = nil
		child.destroy()
	}, false)
	n.children = nil
	n.Parent = nil
}

// IsDestroyed reports whether Destroy was called on this node or one of
// its ancestors.
func (n *Node) IsDestroyed() bool {
	return n.destroyed
}

// isAncestor reports whether candidate is node or an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing
// child.Parent.
func (n *Node) removeChildByPtr(child *Node) {
	i := slices.Index(n.children, child)
	if i < 0 {
		return
	}
	copy(n.children[i:], n.children[i+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	traverse.Each(node.children, markSubtreeDirty, false)
}
