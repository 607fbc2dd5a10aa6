package component

import (
	"fmt"

	"github.com/dshills/blockwright/internal/event"
)

// Parent returns the parent node, or nil for a root or detached node.
func (n *Node) Parent() *Node { return n.parent }

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool { return n.parent == nil }

// Root returns the topmost ancestor of n.
func (n *Node) Root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Children returns a copy of the ordered child list.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Len returns the number of children.
func (n *Node) Len() int { return len(n.children) }

// Child returns the child at index i, or nil when out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Index returns the position of n in its parent's child list, or -1.
func (n *Node) Index() int {
	if n.parent == nil {
		return -1
	}
	for i, c := range n.parent.children {
		if c == n {
			return i
		}
	}
	return -1
}

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the visited node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Find returns the node with the given id in n's subtree.
func (n *Node) Find(id string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.id == id {
			found = c
			return false
		}
		return true
	})
	return found
}

// isAncestorOf reports whether n is other or one of its ancestors.
func (n *Node) isAncestorOf(other *Node) bool {
	for p := other; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// Append adds child at the end of the child list. See Insert.
func (n *Node) Append(child *Node) error {
	return n.Insert(len(n.children), child)
}

// Insert places child at position at (clamped to the list bounds). A child
// already attached elsewhere, or elsewhere in this same list, is moved:
// it is detached from its previous position first and is never duplicated.
func (n *Node) Insert(at int, child *Node) error {
	if child == nil {
		return ErrNilNode
	}
	if n.destroyed || child.destroyed {
		return ErrDestroyed
	}
	if !n.typ.AcceptsChildren() {
		return fmt.Errorf("%w: %s", ErrChildrenNotAccepted, n.typ.Name())
	}
	if child.isAncestorOf(n) {
		return ErrCycle
	}
	if err := n.checkIDs(child); err != nil {
		return err
	}

	if old := child.parent; old != nil {
		idx := child.Index()
		old.removeAt(idx)
		if old == n {
			if idx < at {
				at--
			}
		} else {
			old.Emit(event.ChildrenChanged, ChildrenChange{Removed: []*Node{child}})
		}
	}

	if at < 0 {
		at = 0
	}
	if at > len(n.children) {
		at = len(n.children)
	}

	n.children = append(n.children, nil)
	copy(n.children[at+1:], n.children[at:])
	n.children[at] = child
	child.parent = n

	n.Emit(event.ChildrenChanged, ChildrenChange{Added: []*Node{child}})
	return nil
}

// checkIDs rejects a child subtree carrying an id that already exists in
// n's tree outside that subtree.
func (n *Node) checkIDs(child *Node) error {
	ids := make(map[string]bool)
	child.Walk(func(c *Node) bool {
		ids[c.id] = true
		return true
	})

	var dup string
	n.Root().Walk(func(c *Node) bool {
		if dup != "" || c == child {
			return false
		}
		if ids[c.id] {
			dup = c.id
			return false
		}
		return true
	})
	if dup != "" {
		return fmt.Errorf("%w: %s", ErrDuplicateID, dup)
	}
	return nil
}

func (n *Node) removeAt(i int) {
	child := n.children[i]
	copy(n.children[i:], n.children[i+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	child.parent = nil
}

// Remove detaches child and destroys its subtree.
func (n *Node) Remove(child *Node) error {
	if child == nil {
		return ErrNilNode
	}
	if child.parent != n {
		return ErrNotChild
	}
	child.Destroy()
	return nil
}

// Detach removes n from its parent without destroying it, so it can be
// attached elsewhere.
func (n *Node) Detach() {
	p := n.parent
	if p == nil {
		return
	}
	p.removeAt(n.Index())
	p.Emit(event.ChildrenChanged, ChildrenChange{Removed: []*Node{n}})
}

// Destroy detaches n and destroys it with all its descendants. Each node
// emits "destroy" (children before parents) and then drops its listeners.
// Destroying twice is a no-op.
func (n *Node) Destroy() {
	if n.destroyed {
		return
	}
	n.Detach()
	n.destroySubtree()
}

func (n *Node) destroySubtree() {
	for _, c := range n.children {
		c.destroySubtree()
	}
	n.destroyed = true
	n.Emit(event.Destroy, n)
	n.Clear()
}
