package app

import (
	"sort"
	"strconv"
	"sync"

	"github.com/dshills/blockwright/internal/editor"
)

// Registry holds the initialized editors of an app by id.
type Registry struct {
	mu      sync.RWMutex
	editors map[string]*editor.Editor
	next    int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{editors: make(map[string]*editor.Editor)}
}

// Set stores ed under id, replacing any editor with that id.
func (r *Registry) Set(id string, ed *editor.Editor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.editors[id] = ed
}

// Get returns the editor registered under id.
func (r *Registry) Get(id string) (*editor.Editor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ed, ok := r.editors[id]
	return ed, ok
}

// IDs returns the registered ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.editors))
	for id := range r.editors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered editors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.editors)
}

// NextID returns the next automatic id, starting at 0. Values already
// taken by an explicit id are skipped.
func (r *Registry) NextID() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	for {
		id := r.next
		r.next++
		if _, taken := r.editors[strconv.Itoa(id)]; !taken {
			return id
		}
	}
}
