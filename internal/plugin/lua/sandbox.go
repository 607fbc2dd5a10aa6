package lua

import lua "github.com/yuin/gopher-lua"

// openSafeLibraries opens the libraries scripts may use. io, os, debug,
// channel, coroutine and package are never opened.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// removedGlobals are base library entries that load code from outside the
// state or reach its environment.
var removedGlobals = []string{
	"dofile",
	"loadfile",
	"load",
	"loadstring",
	"require",
	"module",
	"getfenv",
	"setfenv",
	"collectgarbage",
	"newproxy",
}

func installSandbox(L *lua.LState) {
	for _, name := range removedGlobals {
		L.SetGlobal(name, lua.LNil)
	}
}
