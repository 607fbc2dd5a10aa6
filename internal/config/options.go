package config

import (
	"fmt"
	"sort"

	"github.com/mitchellh/mapstructure"
)

// EditorOptions is the typed form of merged editor options.
type EditorOptions struct {
	// Container is the render target: an element handle or a selector.
	// Kept as given; resolution happens during startup.
	Container any `mapstructure:"-"`

	// EditorID is the explicit registry id. Empty selects the counter.
	EditorID string `mapstructure:"editorId"`

	// Autorender renders the editor right after startup.
	Autorender bool `mapstructure:"autorender"`

	// Plugins holds plugin ids (strings) or inline plugin functions, in
	// execution order.
	Plugins []any `mapstructure:"-"`

	// PluginsOpts holds per-plugin options keyed by plugin id.
	PluginsOpts map[string]map[string]any `mapstructure:"pluginsOpts"`

	// Components are declarative component definitions loaded into the
	// root once all plugins have run.
	Components []map[string]any `mapstructure:"components"`

	// StylePrefix prefixes generated class names.
	StylePrefix string `mapstructure:"stylePrefix"`

	BlockManager BlockManagerOptions `mapstructure:"blockManager"`
}

// BlockManagerOptions configures the block palette.
type BlockManagerOptions struct {
	Categories []CategorySpec `mapstructure:"categories"`
}

// CategorySpec declares a block category.
type CategorySpec struct {
	ID    string `mapstructure:"id"`
	Label string `mapstructure:"label"`
	Order int    `mapstructure:"order"`
	Open  bool   `mapstructure:"open"`
}

// PluginOptions returns the options for the named plugin, or an empty map.
func (o *EditorOptions) PluginOptions(name string) map[string]any {
	if opts, ok := o.PluginsOpts[name]; ok && opts != nil {
		return opts
	}
	return map[string]any{}
}

// Decode converts merged raw options into EditorOptions.
// Input is weakly typed so that values from files and flags ("true", 1,
// 7.0) land in their typed fields.
func Decode(raw map[string]any) (*EditorOptions, error) {
	opts := &EditorOptions{}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           opts,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}

	opts.Container = raw["container"]

	switch plugins := raw["plugins"].(type) {
	case nil:
	case []any:
		opts.Plugins = append([]any(nil), plugins...)
	case []string:
		for _, id := range plugins {
			opts.Plugins = append(opts.Plugins, id)
		}
	default:
		return nil, fmt.Errorf("%w: plugins must be a list, got %T", ErrInvalidOptions, plugins)
	}

	if opts.PluginsOpts == nil {
		opts.PluginsOpts = make(map[string]map[string]any)
	}

	return opts, nil
}

// Sanitize returns a copy of raw in which every option value that cannot
// be decoded is replaced by its default, or dropped when it has none.
// Map-valued options are checked entry by entry first, so one bad entry
// does not discard its siblings. Each replacement is reported as an
// *OptionError. The container is never touched.
func Sanitize(raw map[string]any) (map[string]any, []error) {
	out := Clone(raw)
	if _, err := Decode(out); err == nil {
		return out, nil
	}

	defaults := EditorDefaults()
	var rejected []error
	for _, key := range sortedKeys(out) {
		if key == "container" {
			continue
		}
		err := checkOption(key, out[key])
		if err == nil {
			continue
		}

		if entries, ok := out[key].(map[string]any); ok {
			for _, sub := range sortedKeys(entries) {
				if serr := checkOption(key, map[string]any{sub: entries[sub]}); serr != nil {
					delete(entries, sub)
					rejected = append(rejected, &OptionError{Key: key + "." + sub, Err: serr})
				}
			}
			if err = checkOption(key, entries); err == nil {
				continue
			}
		}

		if def, ok := defaults[key]; ok {
			out[key] = def
		} else {
			delete(out, key)
		}
		rejected = append(rejected, &OptionError{Key: key, Err: err})
	}
	return out, rejected
}

func checkOption(key string, val any) error {
	_, err := Decode(map[string]any{key: val})
	return err
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
