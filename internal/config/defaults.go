package config

// ApplyDefaults copies every key of defaults that is absent from dst into
// dst and returns dst. Presence governs, not truthiness: a key the caller
// set to false, 0, "" or nil is left alone. Copied values are deep clones,
// so later mutation of dst never reaches the defaults table.
func ApplyDefaults(dst, defaults map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(defaults))
	}
	for key, val := range defaults {
		if _, exists := dst[key]; exists {
			continue
		}
		dst[key] = cloneValue(val)
	}
	return dst
}

// EditorDefaults returns the named defaults for editor initialization.
// A fresh table is returned on every call.
//
// editorId has no default: leaving it unset selects the next value of
// the editor registry counter.
func EditorDefaults() map[string]any {
	return map[string]any{
		// Render the editor right after startup
		"autorender": true,

		// Plugins to run on start, by id or inline function
		"plugins": []any{},

		// Per-plugin options keyed by plugin id
		"pluginsOpts": map[string]any{},

		// Initial component definitions, loaded after plugins
		"components": []any{},

		// Prefix for generated class names
		"stylePrefix": "bw-",

		"blockManager": map[string]any{
			"categories": []any{},
		},
	}
}
