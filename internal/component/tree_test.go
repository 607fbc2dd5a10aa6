package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/blockwright/internal/event"
)

func ids(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID()
	}
	return out
}

// assertTreeInvariants checks that root is the only parentless node and
// that every node appears exactly once in its parent's list.
func assertTreeInvariants(t *testing.T, root *Node) {
	t.Helper()
	require.Nil(t, root.Parent())

	root.Walk(func(n *Node) bool {
		if n == root {
			return true
		}
		require.NotNil(t, n.Parent(), "node %s has no parent", n.ID())
		count := 0
		for _, c := range n.Parent().Children() {
			if c == n {
				count++
			}
		}
		assert.Equal(t, 1, count, "node %s appears %d times", n.ID(), count)
		assert.Same(t, root, n.Root())
		return true
	})
}

func TestAppendAndInsert(t *testing.T) {
	types := NewTypes()
	root := newNode(t, types, TypeWrapper, "root")
	a := newNode(t, types, TypeDefault, "a")
	b := newNode(t, types, TypeDefault, "b")
	c := newNode(t, types, TypeDefault, "c")

	require.NoError(t, root.Append(a))
	require.NoError(t, root.Append(c))
	require.NoError(t, root.Insert(1, b))

	assert.Equal(t, []string{"a", "b", "c"}, ids(root.Children()))
	assert.Equal(t, 1, b.Index())
	assert.Equal(t, -1, root.Index())
	assertTreeInvariants(t, root)
}

func TestInsert_ClampsIndex(t *testing.T) {
	types := NewTypes()
	root := newNode(t, types, TypeDefault, "root")
	a := newNode(t, types, TypeDefault, "a")
	b := newNode(t, types, TypeDefault, "b")

	require.NoError(t, root.Insert(99, a))
	require.NoError(t, root.Insert(-5, b))
	assert.Equal(t, []string{"b", "a"}, ids(root.Children()))
}

func TestAppend_MoveSemantics(t *testing.T) {
	types := NewTypes()
	root := newNode(t, types, TypeDefault, "root")
	left := newNode(t, types, TypeDefault, "left")
	right := newNode(t, types, TypeDefault, "right")
	x := newNode(t, types, TypeDefault, "x")
	require.NoError(t, root.Append(left))
	require.NoError(t, root.Append(right))
	require.NoError(t, left.Append(x))

	var leftChanges []ChildrenChange
	left.On(event.ChildrenChanged, func(p any) { leftChanges = append(leftChanges, p.(ChildrenChange)) })

	require.NoError(t, right.Append(x))

	assert.Equal(t, 0, left.Len())
	assert.Equal(t, []string{"x"}, ids(right.Children()))
	assert.Same(t, right, x.Parent())
	assert.False(t, x.Destroyed(), "moving must not destroy")
	require.Len(t, leftChanges, 1)
	assert.Equal(t, []*Node{x}, leftChanges[0].Removed)
	assertTreeInvariants(t, root)
}

func TestInsert_ReorderWithinParent(t *testing.T) {
	types := NewTypes()
	root := newNode(t, types, TypeDefault, "root")
	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, root.Append(newNode(t, types, TypeDefault, id)))
	}
	a := root.Child(0)

	notifications := 0
	root.On(event.ChildrenChanged, func(any) { notifications++ })

	require.NoError(t, root.Insert(3, a))
	assert.Equal(t, []string{"b", "c", "a", "d"}, ids(root.Children()))
	assert.Equal(t, 1, notifications)

	require.NoError(t, root.Append(root.Child(0)))
	assert.Equal(t, []string{"c", "a", "d", "b"}, ids(root.Children()))
	assertTreeInvariants(t, root)
}

func TestInsert_Rejections(t *testing.T) {
	types := NewTypes()
	root := newNode(t, types, TypeDefault, "root")
	child := newNode(t, types, TypeDefault, "child")
	text := newNode(t, types, TypeText, "text")
	require.NoError(t, root.Append(child))
	require.NoError(t, root.Append(text))

	assert.ErrorIs(t, root.Append(nil), ErrNilNode)
	assert.ErrorIs(t, child.Append(root), ErrCycle)
	assert.ErrorIs(t, root.Append(root), ErrCycle)
	assert.ErrorIs(t, text.Append(newNode(t, types, TypeDefault, "x")), ErrChildrenNotAccepted)
	assert.ErrorIs(t, root.Append(newNode(t, types, TypeDefault, "child")), ErrDuplicateID)

	assertTreeInvariants(t, root)
	assert.Equal(t, []string{"child", "text"}, ids(root.Children()))
}

func TestRemove_DestroysSubtree(t *testing.T) {
	types := NewTypes()
	root := newNode(t, types, TypeDefault, "root")
	section := newNode(t, types, TypeDefault, "section")
	inner := newNode(t, types, TypeText, "inner")
	require.NoError(t, root.Append(section))
	require.NoError(t, section.Append(inner))

	var order []string
	section.On(event.Destroy, func(p any) { order = append(order, p.(*Node).ID()) })
	inner.On(event.Destroy, func(p any) { order = append(order, p.(*Node).ID()) })

	var removed []*Node
	root.On(event.ChildrenChanged, func(p any) { removed = append(removed, p.(ChildrenChange).Removed...) })

	require.NoError(t, root.Remove(section))

	assert.Equal(t, []string{"inner", "section"}, order, "children are destroyed first")
	assert.Equal(t, []*Node{section}, removed)
	assert.True(t, section.Destroyed())
	assert.True(t, inner.Destroyed())
	assert.Nil(t, section.Parent())
	assert.Equal(t, 0, section.Count(event.Destroy), "listeners dropped after destroy")

	assert.ErrorIs(t, root.Remove(section), ErrNotChild)
	assert.ErrorIs(t, root.Append(section), ErrDestroyed)
	assert.ErrorIs(t, section.Set("a", 1), ErrDestroyed)

	section.Destroy()
}

func TestDetach_KeepsNodeAlive(t *testing.T) {
	types := NewTypes()
	root := newNode(t, types, TypeDefault, "root")
	a := newNode(t, types, TypeDefault, "a")
	require.NoError(t, root.Append(a))

	a.Detach()
	a.Detach()

	assert.Nil(t, a.Parent())
	assert.False(t, a.Destroyed())
	assert.Equal(t, 0, root.Len())
	require.NoError(t, root.Append(a))
}

func TestFind(t *testing.T) {
	types := NewTypes()
	root, err := types.FromDefinition(map[string]any{
		"id": "root",
		"components": []any{
			map[string]any{"id": "a", "components": []any{
				map[string]any{"id": "deep", "type": "text"},
			}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "deep", root.Find("deep").ID())
	assert.Nil(t, root.Find("missing"))
	assert.Nil(t, root.Child(5))
	assertTreeInvariants(t, root)
}

func TestTrees_DoNotAlias(t *testing.T) {
	types := NewTypes()
	one := newNode(t, types, TypeDefault, "one")
	two := newNode(t, types, TypeDefault, "two")
	shared := newNode(t, types, TypeDefault, "shared")

	require.NoError(t, one.Append(shared))
	require.NoError(t, two.Append(shared))

	assert.Equal(t, 0, one.Len())
	assert.Equal(t, 1, two.Len())
	assert.Same(t, two, shared.Root())
}
