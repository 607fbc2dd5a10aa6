package lua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/blockwright/internal/category"
	"github.com/dshills/blockwright/internal/component"
	"github.com/dshills/blockwright/internal/editor"
	"github.com/dshills/blockwright/internal/logging"
)

// newEditorAPI builds the table handed to Lua plugins for ed.
func newEditorAPI(L *lua.LState, ed *editor.Editor, log *logging.Logger) *lua.LTable {
	api := L.NewTable()

	// arg returns the n-th call argument, skipping the table itself for
	// method-style calls.
	arg := func(L *lua.LState, n int) lua.LValue {
		if L.Get(1) == api {
			n++
		}
		return L.Get(n)
	}
	tableArg := func(L *lua.LState, n int) *lua.LTable {
		t, ok := arg(L, n).(*lua.LTable)
		if !ok {
			L.ArgError(n, "table expected")
		}
		return t
	}

	funcs := map[string]lua.LGFunction{
		"id": func(L *lua.LState) int {
			L.Push(lua.LString(ed.ID()))
			return 1
		},

		"add_type": func(L *lua.LState) int {
			t := tableArg(L, 1)
			def := component.Definition{
				Name:     tableString(t, "name"),
				Extends:  tableString(t, "extends"),
				TagName:  tableString(t, "tag"),
				Defaults: tableMap(t, "defaults"),
			}
			if accepts, ok := tableBool(t, "accepts_children"); ok {
				def.AcceptsChildren = &accepts
			}
			if _, err := ed.Types().Add(def); err != nil {
				L.RaiseError("add_type: %s", err.Error())
			}
			return 0
		},

		"add_category": func(L *lua.LState) int {
			t := tableArg(L, 1)
			open, _ := tableBool(t, "open")
			c := ed.Categories().Add(category.Spec{
				ID:    tableString(t, "id"),
				Label: tableString(t, "label"),
				Order: tableInt(t, "order"),
				Open:  open,
			})
			L.Push(lua.LString(c.ID()))
			return 1
		},

		"add_component": func(L *lua.LState) int {
			def, ok := toGo(tableArg(L, 1)).(map[string]any)
			if !ok {
				L.ArgError(1, "component definition expected")
			}
			n, err := ed.Types().FromDefinition(def)
			if err == nil {
				err = ed.Root().Append(n)
			}
			if err != nil {
				L.RaiseError("add_component: %s", err.Error())
			}
			L.Push(lua.LString(n.ID()))
			return 1
		},

		"get_config": func(L *lua.LState) int {
			key, ok := arg(L, 1).(lua.LString)
			if !ok {
				L.ArgError(1, "string expected")
			}
			v, _ := ed.Config(string(key))
			L.Push(toLua(L, v))
			return 1
		},

		"log": func(L *lua.LState) int {
			log.Info(L.ToStringMeta(arg(L, 1)).String(), "editor", ed.ID(), "source", "lua")
			return 0
		},
	}

	for name, fn := range funcs {
		api.RawSetString(name, L.NewFunction(fn))
	}
	return api
}
