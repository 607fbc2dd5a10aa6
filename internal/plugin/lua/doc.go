// Package lua provides the process-global plugin namespace backed by a
// sandboxed gopher-lua state.
//
// Scripts loaded into the namespace define plugins as globals. A global
// function, or a table whose "default" field is a function, resolves the
// plugin id of the same name:
//
//	function forms(editor, opts)
//	  editor.add_type{name = "input", tag = "input", accepts_children = false}
//	  editor.add_category{id = "forms", label = opts.label or "Forms"}
//	end
//
//	hero = { default = function(editor) editor.add_component{type = "text", content = "Hi"} end }
//
// The editor argument is a table of functions operating on the editor the
// plugin runs for. Both editor.f(...) and editor:f(...) call forms work.
//
// The state opens only the base, table, string and math libraries and
// removes the loaders (dofile, loadfile, load, loadstring, require).
//
// gopher-lua states are not goroutine-safe. All calls are serialized by
// a mutex.
package lua
