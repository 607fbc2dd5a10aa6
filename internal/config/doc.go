// Package config provides the configuration layer for Blockwright editors.
//
// Editor options arrive as a plain map (programmatic callers) or as a TOML
// or YAML file (the CLI). Either way they pass through the same steps:
//
//	raw options ──► ApplyDefaults ──► Decode ──► EditorOptions
//	                     ▲
//	             EditorDefaults()
//
// ApplyDefaults fills keys the caller left out and never touches keys the
// caller set, even when the value is false, 0 or "". DeepMerge is the
// override-style merge used to layer a configuration file under options
// given on the command line.
//
// # Sub-packages
//
//   - watcher: fsnotify-based file watching for live re-rendering
package config
