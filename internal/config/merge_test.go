package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"autorender": true,
		"blockManager": map[string]any{
			"categories": []any{"a"},
			"appendTo":   "#blocks",
		},
	}
	src := map[string]any{
		"autorender": false,
		"blockManager": map[string]any{
			"categories": []any{"b"},
		},
		"editorId": "main",
	}

	got := DeepMerge(dst, src)

	assert.Equal(t, false, got["autorender"])
	assert.Equal(t, "main", got["editorId"])
	bm := got["blockManager"].(map[string]any)
	assert.Equal(t, []any{"b"}, bm["categories"])
	assert.Equal(t, "#blocks", bm["appendTo"])
}

func TestDeepMerge_NilInputs(t *testing.T) {
	assert.Equal(t, map[string]any{"a": 1}, DeepMerge(nil, map[string]any{"a": 1}))
	assert.Equal(t, map[string]any{"a": 1}, DeepMerge(map[string]any{"a": 1}, nil))
}

func TestGetByPath(t *testing.T) {
	data := map[string]any{
		"blockManager": map[string]any{
			"categories": []any{"basic"},
		},
		"stylePrefix": "bw-",
	}

	v, ok := GetByPath(data, "blockManager.categories")
	assert.True(t, ok)
	assert.Equal(t, []any{"basic"}, v)

	v, ok = GetByPath(data, "stylePrefix")
	assert.True(t, ok)
	assert.Equal(t, "bw-", v)

	_, ok = GetByPath(data, "stylePrefix.nested")
	assert.False(t, ok)

	_, ok = GetByPath(data, "")
	assert.False(t, ok)
}
