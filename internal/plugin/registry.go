package plugin

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/blockwright/internal/editor"
)

// Func is a plugin entry point.
type Func func(ed *editor.Editor, opts map[string]any)

// Registry maps plugin ids to plugin functions. It is shared by every
// editor of an app.
type Registry struct {
	mu      sync.RWMutex
	plugins map[string]Func
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{plugins: make(map[string]Func)}
}

// Register stores fn under id, replacing any previous plugin with that id.
func (r *Registry) Register(id string, fn Func) error {
	if id == "" || fn == nil {
		return fmt.Errorf("%w: id %q", ErrInvalidPlugin, id)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plugins[id] = fn
	return nil
}

// Get returns the plugin registered under id.
func (r *Registry) Get(id string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.plugins[id]
	return fn, ok
}

// Names returns the registered ids in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.plugins))
	for id := range r.plugins {
		names = append(names, id)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered plugins.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.plugins)
}
