// Package plugin holds the plugin registry and plugin resolution.
//
// A plugin is a function called once per editor during startup with the
// editor and its options. Plugins are referenced from editor options by id
// or given inline as functions:
//
//	reg := plugin.NewRegistry()
//	reg.Register("forms", func(ed *editor.Editor, opts map[string]any) {
//	    ed.Types().Add(component.Definition{Name: "input"})
//	})
//
// An id is looked up in the registry first, then in the process-global
// fallback namespace (see Globals and the lua subpackage). A reference
// that is itself a function is used as is.
package plugin
