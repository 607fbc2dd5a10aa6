package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_PresenceNotTruthiness(t *testing.T) {
	defaults := map[string]any{
		"autorender": true,
		"count":      5,
		"label":      "default",
		"extra":      "added",
		"nothing":    "filled",
	}
	caller := map[string]any{
		"autorender": false,
		"count":      0,
		"label":      "",
		"nothing":    nil,
		"own":        "kept",
	}

	got := ApplyDefaults(caller, defaults)

	assert.Equal(t, false, got["autorender"])
	assert.Equal(t, 0, got["count"])
	assert.Equal(t, "", got["label"])
	assert.Nil(t, got["nothing"])
	assert.Contains(t, got, "nothing")
	assert.Equal(t, "kept", got["own"])
	assert.Equal(t, "added", got["extra"])
}

func TestApplyDefaults_KeySetProperty(t *testing.T) {
	tests := []struct {
		name     string
		caller   map[string]any
		defaults map[string]any
	}{
		{"empty caller", map[string]any{}, map[string]any{"a": 1, "b": 2}},
		{"empty defaults", map[string]any{"a": 1}, map[string]any{}},
		{"disjoint", map[string]any{"x": "y"}, map[string]any{"a": 1}},
		{"overlap", map[string]any{"a": "mine", "c": 3}, map[string]any{"a": 1, "b": 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := Clone(tt.caller)
			got := ApplyDefaults(tt.caller, tt.defaults)

			for k, v := range before {
				assert.Equal(t, v, got[k], "caller key %q changed", k)
			}
			for k, v := range tt.defaults {
				if _, ok := before[k]; !ok {
					assert.Equal(t, v, got[k], "default key %q missing", k)
				}
			}
			for k := range got {
				_, inCaller := before[k]
				_, inDefaults := tt.defaults[k]
				assert.True(t, inCaller || inDefaults, "unexpected key %q", k)
			}
		})
	}
}

func TestApplyDefaults_NilDestination(t *testing.T) {
	got := ApplyDefaults(nil, map[string]any{"a": 1})
	require.NotNil(t, got)
	assert.Equal(t, map[string]any{"a": 1}, got)
}

func TestApplyDefaults_ClonesDefaultValues(t *testing.T) {
	defaults := EditorDefaults()
	got := ApplyDefaults(map[string]any{}, defaults)

	got["pluginsOpts"].(map[string]any)["p"] = map[string]any{}
	got["plugins"] = append(got["plugins"].([]any), "p")

	assert.Empty(t, defaults["pluginsOpts"])
	assert.Empty(t, defaults["plugins"])
}

func TestEditorDefaults(t *testing.T) {
	d := EditorDefaults()

	assert.Equal(t, true, d["autorender"])
	assert.Equal(t, []any{}, d["plugins"])
	assert.Equal(t, map[string]any{}, d["pluginsOpts"])
	assert.NotContains(t, d, "editorId")
	assert.NotContains(t, d, "container")

	d["autorender"] = false
	assert.Equal(t, true, EditorDefaults()["autorender"], "defaults table must be fresh per call")
}
