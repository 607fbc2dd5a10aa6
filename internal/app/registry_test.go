package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/blockwright/internal/editor"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, 0, r.NextID())
	assert.Equal(t, 1, r.NextID())

	a, err := editor.New(editor.Config{ID: "a"})
	require.NoError(t, err)
	b, err := editor.New(editor.Config{ID: "a"})
	require.NoError(t, err)

	r.Set("a", a)
	r.Set("a", b)
	got, ok := r.Get("a")
	require.True(t, ok)
	assert.Same(t, b, got)
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, []string{"a"}, r.IDs())

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestRegistry_NextIDSkipsTakenIDs(t *testing.T) {
	r := NewRegistry()
	ed, err := editor.New(editor.Config{ID: "0"})
	require.NoError(t, err)
	r.Set("0", ed)
	r.Set("2", ed)

	assert.Equal(t, 1, r.NextID())
	assert.Equal(t, 3, r.NextID())
	assert.Equal(t, 4, r.NextID())
}
