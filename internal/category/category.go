// Package category implements block palette categories: a small model
// holding id, label, order and open state, and a view that renders a
// collapsible section for it.
package category

import (
	"sort"
	"sync"

	"github.com/dshills/blockwright/internal/event"
)

// Spec declares a category.
type Spec struct {
	ID    string
	Label string
	Order int
	Open  bool
}

// Category is one block palette category. Views observe it through the
// embedded emitter: "change:open" (payload bool) and "destroy".
type Category struct {
	event.Emitter

	mu    sync.RWMutex
	id    string
	label string
	order int
	open  bool
}

// New creates a category from a spec. An empty label falls back to the id.
func New(spec Spec) *Category {
	label := spec.Label
	if label == "" {
		label = spec.ID
	}
	return &Category{id: spec.ID, label: label, order: spec.Order, open: spec.Open}
}

// ID returns the category id.
func (c *Category) ID() string { return c.id }

// Label returns the display label.
func (c *Category) Label() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.label
}

// Order returns the sort position.
func (c *Category) Order() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.order
}

// Open reports whether the category is expanded.
func (c *Category) Open() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.open
}

// SetOpen sets the open state and notifies when it changed.
func (c *Category) SetOpen(open bool) {
	c.mu.Lock()
	if c.open == open {
		c.mu.Unlock()
		return
	}
	c.open = open
	c.mu.Unlock()

	c.Emit(event.ChangeOf("open"), open)
	c.Emit(event.Change, nil)
}

// Toggle flips the open state.
func (c *Category) Toggle() {
	c.SetOpen(!c.Open())
}

// Collection owns the categories of one editor.
type Collection struct {
	mu    sync.RWMutex
	items []*Category
	byID  map[string]*Category
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{byID: make(map[string]*Category)}
}

// Add creates a category, or returns the existing one with the same id.
func (l *Collection) Add(spec Spec) *Category {
	l.mu.Lock()
	defer l.mu.Unlock()

	if c, ok := l.byID[spec.ID]; ok {
		return c
	}
	c := New(spec)
	l.items = append(l.items, c)
	l.byID[c.id] = c
	return c
}

// Get returns the category with the given id.
func (l *Collection) Get(id string) (*Category, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	c, ok := l.byID[id]
	return c, ok
}

// All returns the categories sorted by order, then insertion.
func (l *Collection) All() []*Category {
	l.mu.RLock()
	out := make([]*Category, len(l.items))
	copy(out, l.items)
	l.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order() < out[j].Order()
	})
	return out
}

// Len returns the number of categories.
func (l *Collection) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// Remove deletes a category and notifies its observers.
func (l *Collection) Remove(id string) bool {
	l.mu.Lock()
	c, ok := l.byID[id]
	if ok {
		delete(l.byID, id)
		for i, item := range l.items {
			if item == c {
				l.items = append(l.items[:i], l.items[i+1:]...)
				break
			}
		}
	}
	l.mu.Unlock()

	if ok {
		c.destroy()
	}
	return ok
}

// Reset removes every category.
func (l *Collection) Reset() {
	l.mu.Lock()
	items := l.items
	l.items = nil
	l.byID = make(map[string]*Category)
	l.mu.Unlock()

	for _, c := range items {
		c.destroy()
	}
}

func (c *Category) destroy() {
	c.Emit(event.Destroy, c)
	c.Clear()
}
