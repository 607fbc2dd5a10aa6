package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Defaults(t *testing.T) {
	raw := ApplyDefaults(map[string]any{"container": "#gjs"}, EditorDefaults())

	opts, err := Decode(raw)
	require.NoError(t, err)

	assert.Equal(t, "#gjs", opts.Container)
	assert.True(t, opts.Autorender)
	assert.Empty(t, opts.Plugins)
	assert.Empty(t, opts.EditorID)
	assert.Equal(t, "bw-", opts.StylePrefix)
	assert.NotNil(t, opts.PluginsOpts)
}

func TestDecode_WeakTypes(t *testing.T) {
	raw := map[string]any{
		"autorender": 0,
		"editorId":   7,
		"blockManager": map[string]any{
			"categories": []any{
				map[string]any{"id": "basic", "label": "Basic", "order": "2", "open": "true"},
			},
		},
	}

	opts, err := Decode(raw)
	require.NoError(t, err)

	assert.False(t, opts.Autorender)
	assert.Equal(t, "7", opts.EditorID)
	require.Len(t, opts.BlockManager.Categories, 1)
	assert.Equal(t, CategorySpec{ID: "basic", Label: "Basic", Order: 2, Open: true}, opts.BlockManager.Categories[0])
}

func TestDecode_PluginsKeepInlineFunctions(t *testing.T) {
	called := false
	inline := func() { called = true }

	opts, err := Decode(map[string]any{"plugins": []any{"named", inline}})
	require.NoError(t, err)

	require.Len(t, opts.Plugins, 2)
	assert.Equal(t, "named", opts.Plugins[0])
	fn, ok := opts.Plugins[1].(func())
	require.True(t, ok)
	fn()
	assert.True(t, called)
}

func TestDecode_PluginsStringSlice(t *testing.T) {
	opts, err := Decode(map[string]any{"plugins": []string{"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, opts.Plugins)
}

func TestDecode_InvalidPlugins(t *testing.T) {
	_, err := Decode(map[string]any{"plugins": "not-a-list"})
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestEditorOptions_PluginOptions(t *testing.T) {
	opts, err := Decode(map[string]any{
		"pluginsOpts": map[string]any{
			"forms": map[string]any{"theme": "dark"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"theme": "dark"}, opts.PluginOptions("forms"))
	assert.Equal(t, map[string]any{}, opts.PluginOptions("missing"))
}

func TestSanitize_ResetsUndecodableValues(t *testing.T) {
	raw := map[string]any{
		"container":  "#gjs",
		"autorender": "yes",
		"plugins":    "forms",
		"pluginsOpts": map[string]any{
			"broken": true,
			"forms":  map[string]any{"theme": "dark"},
		},
		"stylePrefix": "x-",
	}

	clean, rejected := Sanitize(raw)

	var keys []string
	for _, err := range rejected {
		var oe *OptionError
		require.ErrorAs(t, err, &oe)
		assert.ErrorIs(t, err, ErrInvalidOptions)
		keys = append(keys, oe.Key)
	}
	assert.Equal(t, []string{"autorender", "plugins", "pluginsOpts.broken"}, keys)

	opts, err := Decode(clean)
	require.NoError(t, err)
	assert.True(t, opts.Autorender)
	assert.Empty(t, opts.Plugins)
	assert.Equal(t, map[string]any{"theme": "dark"}, opts.PluginOptions("forms"))
	assert.Equal(t, "x-", opts.StylePrefix)
	assert.Equal(t, "#gjs", opts.Container)

	assert.Equal(t, "yes", raw["autorender"], "input is left alone")
	assert.Contains(t, raw["pluginsOpts"], "broken")
}

func TestSanitize_ValidOptions(t *testing.T) {
	raw := ApplyDefaults(map[string]any{"container": "#gjs", "autorender": "false"}, EditorDefaults())

	clean, rejected := Sanitize(raw)
	assert.Empty(t, rejected)
	assert.Equal(t, raw, clean)
}
