package plugin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/blockwright/internal/editor"
)

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	var calls []string

	require.NoError(t, reg.Register("b", func(*editor.Editor, map[string]any) { calls = append(calls, "b1") }))
	require.NoError(t, reg.Register("a", func(*editor.Editor, map[string]any) {}))
	require.NoError(t, reg.Register("b", func(*editor.Editor, map[string]any) { calls = append(calls, "b2") }))

	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, []string{"a", "b"}, reg.Names())

	fn, ok := reg.Get("b")
	require.True(t, ok)
	fn(nil, nil)
	assert.Equal(t, []string{"b2"}, calls, "last registration wins")

	_, ok = reg.Get("missing")
	assert.False(t, ok)

	assert.ErrorIs(t, reg.Register("", func(*editor.Editor, map[string]any) {}), ErrInvalidPlugin)
	assert.ErrorIs(t, reg.Register("x", nil), ErrInvalidPlugin)
}

func TestResolve_Order(t *testing.T) {
	var called string
	reg := NewRegistry()
	require.NoError(t, reg.Register("shared", func(*editor.Editor, map[string]any) { called = "registry" }))
	globals := MapGlobals{
		"shared":      func(*editor.Editor, map[string]any) { called = "global" },
		"global-only": func(*editor.Editor, map[string]any) { called = "global-only" },
	}

	r, ok := Resolve("shared", 0, reg, globals)
	require.True(t, ok)
	assert.Equal(t, TierRegistry, r.Tier)
	r.Fn(nil, nil)
	assert.Equal(t, "registry", called)

	r, ok = Resolve("global-only", 1, reg, globals)
	require.True(t, ok)
	assert.Equal(t, TierGlobal, r.Tier)
	assert.Equal(t, "global-only", r.Name)

	r, ok = Resolve("missing", 2, reg, globals)
	assert.False(t, ok)
	assert.Equal(t, "missing", r.Name)
	assert.Equal(t, TierNone, r.Tier)

	r, ok = Resolve("shared", 0, nil, globals)
	require.True(t, ok)
	assert.Equal(t, TierGlobal, r.Tier)
}

func TestResolve_Inline(t *testing.T) {
	plain := func(*editor.Editor, map[string]any) {}

	r, ok := Resolve(plain, 3, nil, nil)
	require.True(t, ok)
	assert.Equal(t, TierInline, r.Tier)
	assert.Equal(t, "<inline #3>", r.Name)

	r, ok = Resolve(Func(plain), 4, nil, nil)
	require.True(t, ok)
	assert.Equal(t, "<inline #4>", r.Name)

	_, ok = Resolve(42, 5, nil, nil)
	assert.False(t, ok)
	_, ok = Resolve(Func(nil), 6, nil, nil)
	assert.False(t, ok)
}

func TestInvoke(t *testing.T) {
	var got map[string]any
	r := Resolved{Name: "p", Fn: func(_ *editor.Editor, opts map[string]any) { got = opts }}
	require.NoError(t, Invoke(r, nil, map[string]any{"k": "v"}))
	assert.Equal(t, map[string]any{"k": "v"}, got)

	boom := errors.New("boom")
	err := Invoke(Resolved{Name: "bad", Fn: func(*editor.Editor, map[string]any) { panic(boom) }}, nil, nil)
	var pe *PanicError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "bad", pe.Plugin)
	assert.ErrorIs(t, err, boom)

	assert.ErrorIs(t, Invoke(Resolved{Name: "none"}, nil, nil), ErrPluginNotFound)
}

func TestTier_String(t *testing.T) {
	assert.Equal(t, "registry", TierRegistry.String())
	assert.Equal(t, "global", TierGlobal.String())
	assert.Equal(t, "inline", TierInline.String())
	assert.Equal(t, "none", TierNone.String())
}
