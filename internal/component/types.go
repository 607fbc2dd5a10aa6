package component

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/blockwright/internal/config"
)

// Built-in type names.
const (
	TypeDefault = "default"
	TypeText    = "text"
	TypeImage   = "image"
	TypeWrapper = "wrapper"
)

// Type is the capability set that varies between component variants.
type Type interface {
	// Name is the type discriminator stored on nodes.
	Name() string

	// TagName is the element tag views create for this type.
	TagName() string

	// AcceptsChildren reports whether nodes of this type may hold children.
	AcceptsChildren() bool

	// TextBearing reports whether the node's content property is its text.
	TextBearing() bool

	// Defaults are property defaults applied when a node is created.
	Defaults() map[string]any

	// Serialize returns the declarative form of n.
	Serialize(n *Node) map[string]any
}

// Extender is implemented by types defined on top of another type.
type Extender interface {
	Base() Type
}

// Definition declares a type on top of an existing one. Plugins register
// new component types with definitions.
type Definition struct {
	// Name of the new type. Registering an existing name replaces it.
	Name string

	// Extends names the base type. Empty means "default".
	Extends string

	// TagName overrides the base tag when set.
	TagName string

	// Defaults are merged over the base defaults.
	Defaults map[string]any

	// AcceptsChildren overrides the base capability when set.
	AcceptsChildren *bool
}

// baseType is the generic variant every other type builds on.
type baseType struct {
	name     string
	tag      string
	accepts  bool
	text     bool
	defaults map[string]any
}

func (t *baseType) Name() string          { return t.name }
func (t *baseType) TagName() string       { return t.tag }
func (t *baseType) AcceptsChildren() bool { return t.accepts }
func (t *baseType) TextBearing() bool     { return t.text }

func (t *baseType) Defaults() map[string]any {
	return config.Clone(t.defaults)
}

func (t *baseType) Serialize(n *Node) map[string]any {
	return serializeGeneric(n)
}

func serializeGeneric(n *Node) map[string]any {
	out := n.Props()
	out["type"] = n.Type().Name()
	out["id"] = n.ID()

	if len(n.children) > 0 {
		children := make([]any, len(n.children))
		for i, c := range n.children {
			children[i] = c.Serialize()
		}
		out["components"] = children
	}
	return out
}

// textType holds its text in the content property.
type textType struct {
	baseType
}

func (t *textType) Serialize(n *Node) map[string]any {
	out := serializeGeneric(n)
	if _, ok := out["content"]; !ok {
		out["content"] = ""
	}
	delete(out, "components")
	return out
}

// imageType is a void element whose source is the src property.
type imageType struct {
	baseType
}

func (t *imageType) Serialize(n *Node) map[string]any {
	out := serializeGeneric(n)
	if _, ok := out["src"]; !ok {
		out["src"] = ""
	}
	delete(out, "components")
	return out
}

// definedType is a type registered through a Definition.
type definedType struct {
	base Type
	def  Definition
}

func (t *definedType) Name() string { return t.def.Name }
func (t *definedType) Base() Type   { return t.base }

func (t *definedType) TagName() string {
	if t.def.TagName != "" {
		return t.def.TagName
	}
	return t.base.TagName()
}

func (t *definedType) AcceptsChildren() bool {
	if t.def.AcceptsChildren != nil {
		return *t.def.AcceptsChildren
	}
	return t.base.AcceptsChildren()
}

func (t *definedType) TextBearing() bool { return t.base.TextBearing() }

func (t *definedType) Defaults() map[string]any {
	return config.ApplyDefaults(config.Clone(t.def.Defaults), t.base.Defaults())
}

func (t *definedType) Serialize(n *Node) map[string]any {
	return t.base.Serialize(n)
}

// Types is a component type registry. Each editor owns one, so a plugin
// extending one editor never affects another.
type Types struct {
	mu    sync.RWMutex
	types map[string]Type
}

// NewTypes creates a registry holding the built-in types.
func NewTypes() *Types {
	r := &Types{types: make(map[string]Type)}

	def := &baseType{name: TypeDefault, tag: "div", accepts: true}
	r.types[TypeDefault] = def
	r.types[TypeText] = &textType{baseType{name: TypeText, tag: "div", text: true}}
	r.types[TypeImage] = &imageType{baseType{name: TypeImage, tag: "img",
		defaults: map[string]any{"src": ""}}}
	r.types[TypeWrapper] = &definedType{base: def, def: Definition{
		Name:     TypeWrapper,
		Defaults: map[string]any{"removable": false},
	}}

	return r
}

// Register adds or replaces a type implementation.
func (r *Types) Register(t Type) error {
	if t == nil || t.Name() == "" {
		return ErrEmptyTypeName
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[t.Name()] = t
	return nil
}

// Add registers a type built from a definition and returns it.
func (r *Types) Add(def Definition) (Type, error) {
	if def.Name == "" {
		return nil, ErrEmptyTypeName
	}
	baseName := def.Extends
	if baseName == "" {
		baseName = TypeDefault
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	base, ok := r.types[baseName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBase, baseName)
	}

	def.Defaults = config.Clone(def.Defaults)
	t := &definedType{base: base, def: def}
	r.types[def.Name] = t
	return t, nil
}

// Lookup returns the named type.
func (r *Types) Lookup(name string) (Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[name]
	return t, ok
}

// Get returns the named type, falling back to the default type.
func (r *Types) Get(name string) Type {
	if t, ok := r.Lookup(name); ok {
		return t
	}
	t, _ := r.Lookup(TypeDefault)
	return t
}

// Names returns the registered type names in sorted order.
func (r *Types) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
