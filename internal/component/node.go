package component

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/google/uuid"

	"github.com/dshills/blockwright/internal/config"
	"github.com/dshills/blockwright/internal/event"
)

// Change describes one property change.
type Change struct {
	Key string
	Old any
	New any
}

// ChildrenChange describes a change of a node's child list.
type ChildrenChange struct {
	Added   []*Node
	Removed []*Node
}

// Node is one element of the edited document.
type Node struct {
	event.Emitter

	id       string
	typ      Type
	props    map[string]any
	children []*Node
	parent   *Node

	destroyed bool

	// Bound view bookkeeping, see AcquireView.
	viewVariant string
	viewCount   int
}

// New creates a detached node of the named type. Unknown type names fall
// back to the default type. An "id" property becomes the node id;
// otherwise a random one is generated. The "type" property is ignored.
func (r *Types) New(typeName string, props map[string]any, children ...*Node) (*Node, error) {
	t := r.Get(typeName)

	bag := config.Clone(props)
	if bag == nil {
		bag = make(map[string]any)
	}

	id := ""
	if raw, ok := bag["id"]; ok && raw != nil {
		id = fmt.Sprint(raw)
	}
	if id == "" {
		id = uuid.NewString()
	}
	delete(bag, "id")
	delete(bag, "type")

	n := &Node{
		id:    id,
		typ:   t,
		props: config.ApplyDefaults(bag, t.Defaults()),
	}

	for _, c := range children {
		if err := n.Append(c); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// FromDefinition builds a subtree from its declarative form: a map with
// "type", optional "id", a "components" list of child definitions, and
// any other keys as properties.
func (r *Types) FromDefinition(def map[string]any) (*Node, error) {
	typeName, _ := def["type"].(string)

	props := make(map[string]any, len(def))
	for k, v := range def {
		if k == "type" || k == "components" {
			continue
		}
		props[k] = v
	}

	n, err := r.New(typeName, props)
	if err != nil {
		return nil, err
	}

	children, err := childDefinitions(def["components"])
	if err != nil {
		return nil, fmt.Errorf("component %s: %w", n.id, err)
	}
	for _, cdef := range children {
		child, err := r.FromDefinition(cdef)
		if err != nil {
			return nil, err
		}
		if err := n.Append(child); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func childDefinitions(raw any) ([]map[string]any, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []map[string]any:
		return v, nil
	case []any:
		out := make([]map[string]any, 0, len(v))
		for i, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("components[%d]: expected a definition, got %T", i, item)
			}
			out = append(out, m)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("components: expected a list, got %T", raw)
	}
}

// ID returns the node id.
func (n *Node) ID() string { return n.id }

// Type returns the node type. It never changes.
func (n *Node) Type() Type { return n.typ }

// Destroyed reports whether the node was destroyed.
func (n *Node) Destroyed() bool { return n.destroyed }

// Get returns a property value, or nil.
func (n *Node) Get(key string) any {
	return n.props[key]
}

// Lookup returns a property value and whether it is set.
func (n *Node) Lookup(key string) (any, bool) {
	v, ok := n.props[key]
	return v, ok
}

// GetString returns a property as a string, or "" when unset.
func (n *Node) GetString(key string) string {
	v, ok := n.props[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Props returns a copy of the property bag.
func (n *Node) Props() map[string]any {
	return config.Clone(n.props)
}

// Set updates one property. See SetProps.
func (n *Node) Set(key string, value any) error {
	return n.SetProps(map[string]any{key: value})
}

// SetProps updates several properties. For every key whose value actually
// changed, "change:<key>" is emitted (in key order), followed by a single
// "change" carrying all changes. Setting "type" or "id" fails and nothing
// is applied.
func (n *Node) SetProps(props map[string]any) error {
	if n.destroyed {
		return ErrDestroyed
	}
	if _, ok := props["type"]; ok {
		return ErrTypeImmutable
	}
	if _, ok := props["id"]; ok {
		return ErrIDImmutable
	}

	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var changes []Change
	for _, k := range keys {
		old, had := n.props[k]
		val := props[k]
		if had && reflect.DeepEqual(old, val) {
			continue
		}
		n.props[k] = val
		changes = append(changes, Change{Key: k, Old: old, New: val})
	}

	for _, c := range changes {
		n.Emit(event.ChangeOf(c.Key), c)
	}
	if len(changes) > 0 {
		n.Emit(event.Change, changes)
	}
	return nil
}

// Serialize returns the declarative form of the node and its subtree.
func (n *Node) Serialize() map[string]any {
	return n.typ.Serialize(n)
}

// AcquireView records that a view of the given variant is bound to the
// node. It fails when a view of a different variant is already bound and
// returns that variant.
func (n *Node) AcquireView(variant string) (string, bool) {
	if n.viewCount > 0 && n.viewVariant != variant {
		return n.viewVariant, false
	}
	n.viewVariant = variant
	n.viewCount++
	return variant, true
}

// ReleaseView undoes one AcquireView.
func (n *Node) ReleaseView() {
	if n.viewCount == 0 {
		return
	}
	n.viewCount--
	if n.viewCount == 0 {
		n.viewVariant = ""
	}
}

// ViewVariant returns the variant of the bound views, or "".
func (n *Node) ViewVariant() string {
	return n.viewVariant
}
