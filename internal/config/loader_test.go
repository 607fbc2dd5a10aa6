package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_TOML(t *testing.T) {
	data := []byte(`
container = "#gjs"
editorId = "main"
autorender = false
plugins = ["forms", "blocks"]

[pluginsOpts.forms]
theme = "dark"
`)

	raw, err := Parse("editor.toml", data)
	require.NoError(t, err)

	assert.Equal(t, "#gjs", raw["container"])
	assert.Equal(t, false, raw["autorender"])
	assert.Equal(t, []any{"forms", "blocks"}, raw["plugins"])

	opts, err := Decode(ApplyDefaults(raw, EditorDefaults()))
	require.NoError(t, err)
	assert.Equal(t, "main", opts.EditorID)
	assert.Equal(t, "dark", opts.PluginOptions("forms")["theme"])
}

func TestParse_YAML(t *testing.T) {
	data := []byte(`
container: "#gjs"
components:
  - type: text
    content: Hello
blockManager:
  categories:
    - id: basic
      label: Basic
      open: true
`)

	raw, err := Parse("editor.yml", data)
	require.NoError(t, err)

	opts, err := Decode(ApplyDefaults(raw, EditorDefaults()))
	require.NoError(t, err)
	require.Len(t, opts.Components, 1)
	assert.Equal(t, "text", opts.Components[0]["type"])
	require.Len(t, opts.BlockManager.Categories, 1)
	assert.True(t, opts.BlockManager.Categories[0].Open)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse("editor.json", []byte(`{}`))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Parse("editor.toml", []byte("container = \n"))
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "editor.toml", perr.Path)

	_, err = Parse("editor.yaml", []byte("a: [1, 2"))
	require.True(t, errors.As(err, &perr))
}

func TestParse_EmptyFile(t *testing.T) {
	raw, err := Parse("editor.yaml", nil)
	require.NoError(t, err)
	assert.NotNil(t, raw)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "editor.toml")
	require.NoError(t, os.WriteFile(path, []byte(`container = "body"`), 0o644))

	raw, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "body", raw["container"])

	_, err = LoadFile(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
