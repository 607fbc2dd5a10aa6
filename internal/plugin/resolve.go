package plugin

import (
	"fmt"

	"github.com/dshills/blockwright/internal/editor"
)

// Globals is the process-global fallback namespace for plugin ids.
type Globals interface {
	Lookup(id string) (Func, bool)
}

// MapGlobals is a Globals backed by a map.
type MapGlobals map[string]Func

// Lookup implements Globals.
func (m MapGlobals) Lookup(id string) (Func, bool) {
	fn, ok := m[id]
	return fn, ok && fn != nil
}

// Resolved is the outcome of resolving one plugin reference.
type Resolved struct {
	// Fn is nil when the reference did not resolve.
	Fn Func

	// Name identifies the plugin in options lookups and logs: the id, or
	// "<inline #i>" for a function reference.
	Name string

	Tier Tier
}

// Resolve turns the index-th entry of an editor's plugin list into a
// function. A string is looked up in reg, then in globals. A function is
// used directly. Either of reg and globals may be nil.
func Resolve(ref any, index int, reg *Registry, globals Globals) (Resolved, bool) {
	switch v := ref.(type) {
	case string:
		if reg != nil {
			if fn, ok := reg.Get(v); ok {
				return Resolved{Fn: fn, Name: v, Tier: TierRegistry}, true
			}
		}
		if globals != nil {
			if fn, ok := globals.Lookup(v); ok {
				return Resolved{Fn: fn, Name: v, Tier: TierGlobal}, true
			}
		}
		return Resolved{Name: v}, false
	case Func:
		if v != nil {
			return Resolved{Fn: v, Name: inlineName(index), Tier: TierInline}, true
		}
	case func(*editor.Editor, map[string]any):
		if v != nil {
			return Resolved{Fn: v, Name: inlineName(index), Tier: TierInline}, true
		}
	}
	return Resolved{Name: fmt.Sprintf("%v", ref)}, false
}

func inlineName(index int) string {
	return fmt.Sprintf("<inline #%d>", index)
}

// Invoke runs the plugin and reports a panic as a *PanicError.
func Invoke(r Resolved, ed *editor.Editor, opts map[string]any) (err error) {
	if r.Fn == nil {
		return fmt.Errorf("%w: %s", ErrPluginNotFound, r.Name)
	}
	defer func() {
		if v := recover(); v != nil {
			err = &PanicError{Plugin: r.Name, Value: v}
		}
	}()
	r.Fn(ed, opts)
	return nil
}
