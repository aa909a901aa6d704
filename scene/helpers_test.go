package scene

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetActive(t *testing.T) {
	root, a, _, _, a1, _ := tree()

	assert.False(t, a.SetActive(true))
	assert.True(t, a.SetActive(false))
	assert.False(t, a.ActiveSelf())
	assert.False(t, a.SetActive(false))

	assert.True(t, a1.ActiveSelf())
	assert.False(t, a1.ActiveInHierarchy())
	assert.True(t, root.ActiveInHierarchy())

	assert.True(t, a.SetActive(true))
	assert.True(t, a1.ActiveInHierarchy())
}

func TestDestroyChildren(t *testing.T) {
	root, a, b, c, a1, _ := tree()
	extra := []*Node{NewNode("d"), NewNode("e"), NewNode("f")}
	for _, n := range extra {
		root.AddChild(n)
	}

	root.DestroyChildren()

	assert.Equal(t, 0, root.NumChildren())
	assert.False(t, root.IsDestroyed())
	for _, n := range append([]*Node{a, b, c, a1}, extra...) {
		assert.True(t, n.IsDestroyed(), n.Name)
	}

	root.DestroyChildren()
}

func TestSetParentResetTransform(t *testing.T) {
	parent := NewNode("parent")
	parent.SetPosition(10, 20)
	parent.SetScale(2, 3)

	child := NewNode("child")
	child.SetPosition(5, 5)
	child.SetScale(4, 4)
	child.SetRotation(1)

	child.SetParentResetTransform(parent)

	assert.Same(t, parent, child.Parent)
	assert.Equal(t, 0.0, child.X)
	assert.Equal(t, 0.0, child.Y)
	assert.Equal(t, 1.0, child.ScaleX)
	assert.Equal(t, 1.0, child.ScaleY)
	assert.Equal(t, 0.0, child.Rotation)
	assert.Equal(t, parent.WorldTransform(), child.WorldTransform())

	child.SetParentResetTransform(nil)
	assert.Nil(t, child.Parent)
	assert.Equal(t, 0, parent.NumChildren())
	assert.Equal(t, identityTransform, child.WorldTransform())
}

func TestSetParentResetTransform_SameParent(t *testing.T) {
	root, a, b, c, _, _ := tree()
	parent := root
	parent.SetPosition(3, 4)
	b.SetPosition(7, 7)
	b.SetRotation(0.5)

	b.SetParentResetTransform(parent)

	assert.Same(t, parent, b.Parent)
	assert.Equal(t, []*Node{a, b, c}, parent.Children())
	assert.Equal(t, 0.0, b.X)
	assert.Equal(t, 0.0, b.Rotation)
	assert.Equal(t, parent.WorldTransform(), b.WorldTransform())
}

func TestWorldTransform(t *testing.T) {
	root := NewNode("root")
	root.SetPosition(100, 50)

	child := NewNode("child")
	child.SetPosition(10, 0)
	root.AddChild(child)

	x, y := child.LocalToWorld(1, 1)
	assert.InDelta(t, 111, x, 1e-9)
	assert.InDelta(t, 51, y, 1e-9)

	// ancestor change propagates without touching the child
	root.SetScale(2, 2)
	x, y = child.LocalToWorld(1, 1)
	assert.InDelta(t, 122, x, 1e-9)
	assert.InDelta(t, 52, y, 1e-9)

	root.SetScale(1, 1)
	root.SetRotation(3.141592653589793 / 2)
	x, y = child.LocalToWorld(0, 0)
	assert.InDelta(t, 100, x, 1e-9)
	assert.InDelta(t, 60, y, 1e-9)
}

func TestSetChildLayer(t *testing.T) {
	root, a, b, c, a1, a2 := tree()
	a.SetActive(false)

	a.SetChildLayer(3)
	for _, n := range []*Node{a, a1, a2} {
		assert.Equal(t, uint8(3), n.Layer, n.Name)
	}
	for _, n := range []*Node{root, b, c} {
		assert.Equal(t, uint8(0), n.Layer, n.Name)
	}

	root.SetChildLayer(7)
	for _, n := range []*Node{root, a, b, c, a1, a2} {
		assert.Equal(t, uint8(7), n.Layer, n.Name)
	}
}

func TestWalk(t *testing.T) {
	root, _, _, _, _, _ := tree()

	var visited []string
	stopped := root.Walk(func(n *Node) bool {
		visited = append(visited, n.Name)
		return false
	})
	assert.False(t, stopped)
	assert.Equal(t, []string{"root", "a", "a1", "a2", "b", "c"}, visited)

	visited = nil
	stopped = root.Walk(func(n *Node) bool {
		visited = append(visited, n.Name)
		return n.Name == "a2"
	})
	assert.True(t, stopped)
	assert.Equal(t, []string{"root", "a", "a1", "a2"}, visited)
}

func TestFindInAllChildren(t *testing.T) {
	l, hook := test.NewNullLogger()
	SetLogger(l)
	t.Cleanup(func() { SetLogger(logrus.StandardLogger()) })

	root, a, _, c, _, a2 := tree()
	a.SetActive(false)

	assert.Same(t, a2, root.FindInAllChildren("a2"))
	assert.Same(t, root, root.FindInAllChildren("root"))
	assert.Same(t, c, root.FindInAllChildren("c"))
	assert.Empty(t, hook.AllEntries())

	// first match in pre-order wins
	dup := NewNode("c")
	a.AddChild(dup)
	assert.Same(t, dup, root.FindInAllChildren("c"))

	assert.Nil(t, a.FindInAllChildren("b"))
	require.Len(t, hook.AllEntries(), 1)
	e := hook.LastEntry()
	assert.Equal(t, logrus.WarnLevel, e.Level)
	assert.Equal(t, "b", e.Data["name"])
	assert.Equal(t, "a", e.Data["parent"])
}

func TestSortChildrenByNameIndex(t *testing.T) {
	tests := []struct {
		name       string
		children   []string
		descending bool
		want       []string
	}{
		{
			name:       "descending",
			children:   []string{"3", "1", "2"},
			descending: true,
			want:       []string{"3", "2", "1"},
		},
		{
			name:     "ascending",
			children: []string{"3", "1", "2"},
			want:     []string{"1", "2", "3"},
		},
		{
			name:     "negative and padded",
			children: []string{"10", "-1", "02"},
			want:     []string{"-1", "02", "10"},
		},
		{
			name:       "empty",
			children:   nil,
			descending: true,
			want:       []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parent := NewNode("parent")
			for _, n := range tt.children {
				parent.AddChild(NewNode(n))
			}

			require.NoError(t, parent.SortChildrenByNameIndex(tt.descending))
			assert.Equal(t, tt.want, names(parent.Children()))
		})
	}
}

func TestSortChildrenByNameIndex_Stable(t *testing.T) {
	parent := NewNode("parent")
	first, second := NewNode("1"), NewNode("1")
	parent.AddChild(NewNode("0"))
	parent.AddChild(first)
	parent.AddChild(second)

	require.NoError(t, parent.SortChildrenByNameIndex(true))
	assert.Same(t, first, parent.ChildAt(0))
	assert.Same(t, second, parent.ChildAt(1))
}

func TestSortChildrenByNameIndex_BadName(t *testing.T) {
	parent := NewNode("parent")
	for _, n := range []string{"3", "x", "1"} {
		parent.AddChild(NewNode(n))
	}

	err := parent.SortChildrenByNameIndex(false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNameNotIndex))
	assert.Contains(t, err.Error(), `"x"`)
	assert.Equal(t, []string{"3", "x", "1"}, names(parent.Children()))
}
