package lua

import (
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/blockwright/internal/editor"
	"github.com/dshills/blockwright/internal/logging"
	"github.com/dshills/blockwright/internal/plugin"
)

// Globals is a plugin.Globals backed by Lua global variables.
type Globals struct {
	state *State
	log   *logging.Logger
}

// Option configures Globals.
type Option func(*Globals)

// WithLogger sets the logger receiving script output and plugin failures.
func WithLogger(l *logging.Logger) Option {
	return func(g *Globals) {
		g.log = l
	}
}

// WithState uses an existing state instead of creating one.
func WithState(s *State) Option {
	return func(g *Globals) {
		g.state = s
	}
}

// NewGlobals creates an empty namespace.
func NewGlobals(opts ...Option) *Globals {
	g := &Globals{}
	for _, opt := range opts {
		opt(g)
	}
	if g.state == nil {
		g.state = NewState()
	}
	g.installPrint()
	return g
}

// installPrint routes print to the logger.
func (g *Globals) installPrint() {
	_ = g.state.Do(func(L *lua.LState) error {
		L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
			parts := make([]string, 0, L.GetTop())
			for i := 1; i <= L.GetTop(); i++ {
				parts = append(parts, L.ToStringMeta(L.Get(i)).String())
			}
			g.log.Info(strings.Join(parts, " "), "source", "lua")
			return 0
		}))
		return nil
	})
}

// DoString loads a script.
func (g *Globals) DoString(code string) error {
	return g.state.DoString(code)
}

// DoFile loads a script file.
func (g *Globals) DoFile(path string) error {
	if err := g.state.DoFile(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Close releases the Lua state.
func (g *Globals) Close() error {
	return g.state.Close()
}

// Lookup implements plugin.Globals.
func (g *Globals) Lookup(id string) (plugin.Func, bool) {
	fn, err := g.function(id)
	if err != nil {
		return nil, false
	}
	return func(ed *editor.Editor, opts map[string]any) {
		if err := g.call(fn, ed, opts); err != nil {
			g.log.Warn("lua plugin failed", "plugin", id, "editor", ed.ID(), "error", err)
		}
	}, true
}

// function returns the plugin function stored under id.
func (g *Globals) function(id string) (*lua.LFunction, error) {
	switch v := g.state.Global(id).(type) {
	case *lua.LFunction:
		return v, nil
	case *lua.LTable:
		if fn, ok := v.RawGetString("default").(*lua.LFunction); ok {
			return fn, nil
		}
	case *lua.LNilType:
		return nil, fmt.Errorf("%w: %s", plugin.ErrPluginNotFound, id)
	}
	return nil, fmt.Errorf("%w: %s", ErrNotPlugin, id)
}

func (g *Globals) call(fn *lua.LFunction, ed *editor.Editor, opts map[string]any) error {
	return g.state.Call(func(L *lua.LState) error {
		api := newEditorAPI(L, ed, g.log)
		if opts == nil {
			opts = map[string]any{}
		}
		return L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, api, toLua(L, opts))
	})
}
