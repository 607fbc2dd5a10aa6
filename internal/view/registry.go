package view

import (
	"fmt"
	"sync"

	"github.com/dshills/blockwright/internal/component"
)

// Observer is notified about view lifecycle. Any method may be a no-op.
type Observer interface {
	OnViewCreated(v *View)
	OnViewDestroyed(v *View)
	OnReconcile(v *View)
}

// Registry maps component types to view variants and tracks live views.
// Each editor owns one.
type Registry struct {
	mu       sync.RWMutex
	types    *component.Types
	variants map[string]Variant
	views    map[*component.Node][]*View
	observer Observer
}

// NewRegistry creates a registry holding the built-in variants. types
// resolves the names given to VariantFor.
func NewRegistry(types *component.Types) *Registry {
	return &Registry{
		types: types,
		variants: map[string]Variant{
			component.TypeDefault: defaultVariant{},
			component.TypeText:    textVariant{},
			component.TypeImage:   imageVariant{},
		},
		views: make(map[*component.Node][]*View),
	}
}

// SetObserver installs the lifecycle observer. Nil removes it.
func (r *Registry) SetObserver(o Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observer = o
}

// Register sets the variant used for a component type name.
func (r *Registry) Register(typeName string, v Variant) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.variants[typeName] = v
}

// VariantFor returns the variant for a registered type name. Unknown names
// use a variant registered under that name, or the default variant.
func (r *Registry) VariantFor(typeName string) Variant {
	if r.types != nil {
		if t, ok := r.types.Lookup(typeName); ok {
			return r.VariantOf(t)
		}
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if v, ok := r.variants[typeName]; ok {
		return v
	}
	return r.variants[component.TypeDefault]
}

// VariantOf returns the variant for t. Types without their own variant
// use their base type's, and finally the default variant.
func (r *Registry) VariantOf(t component.Type) Variant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for t != nil {
		if v, ok := r.variants[t.Name()]; ok {
			return v
		}
		ext, ok := t.(component.Extender)
		if !ok {
			break
		}
		t = ext.Base()
	}
	return r.variants[component.TypeDefault]
}

// Bind creates a view for node and subscribes it to the node's
// notifications. The view renders nothing until Render is called.
func (r *Registry) Bind(node *component.Node) (*View, error) {
	if node == nil {
		return nil, component.ErrNilNode
	}
	if node.Destroyed() {
		return nil, component.ErrDestroyed
	}

	variant := r.VariantOf(node.Type())
	if bound, ok := node.AcquireView(variant.Name()); !ok {
		return nil, fmt.Errorf("%w: %s has %q, requested %q",
			ErrIncompatibleVariant, node.ID(), bound, variant.Name())
	}

	v := &View{reg: r, node: node, variant: variant}
	v.subscribe()

	r.mu.Lock()
	r.views[node] = append(r.views[node], v)
	obs := r.observer
	r.mu.Unlock()

	if obs != nil {
		obs.OnViewCreated(v)
	}
	return v, nil
}

// View returns the first live view bound to node.
func (r *Registry) View(node *component.Node) (*View, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	views := r.views[node]
	if len(views) == 0 {
		return nil, false
	}
	return views[0], true
}

// Len returns the number of live views.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, views := range r.views {
		n += len(views)
	}
	return n
}

func (r *Registry) forget(v *View) Observer {
	r.mu.Lock()
	defer r.mu.Unlock()

	views := r.views[v.node]
	for i, other := range views {
		if other == v {
			views = append(views[:i], views[i+1:]...)
			break
		}
	}
	if len(views) == 0 {
		delete(r.views, v.node)
	} else {
		r.views[v.node] = views
	}
	return r.observer
}

func (r *Registry) reconciled(v *View) {
	r.mu.RLock()
	obs := r.observer
	r.mu.RUnlock()
	if obs != nil {
		obs.OnReconcile(v)
	}
}
