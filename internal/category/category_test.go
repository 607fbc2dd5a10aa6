package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/blockwright/internal/event"
)

func TestCategory_SetOpenNotifiesOnChange(t *testing.T) {
	c := New(Spec{ID: "basic"})
	assert.Equal(t, "basic", c.Label())

	var got []bool
	c.On(event.ChangeOf("open"), func(p any) { got = append(got, p.(bool)) })

	c.SetOpen(false)
	c.SetOpen(true)
	c.SetOpen(true)
	c.Toggle()

	assert.Equal(t, []bool{true, false}, got)
}

func TestCategory_ToggleRoundTrip(t *testing.T) {
	for _, open := range []bool{true, false} {
		c := New(Spec{ID: "x", Open: open})
		c.Toggle()
		c.Toggle()
		assert.Equal(t, open, c.Open())
	}
}

func TestCollection(t *testing.T) {
	l := NewCollection()
	a := l.Add(Spec{ID: "a", Order: 2})
	b := l.Add(Spec{ID: "b", Order: 1})
	c := l.Add(Spec{ID: "c", Order: 2})

	assert.Same(t, a, l.Add(Spec{ID: "a", Label: "ignored"}))
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []*Category{b, a, c}, l.All())

	got, ok := l.Get("b")
	require.True(t, ok)
	assert.Same(t, b, got)

	destroyed := 0
	b.On(event.Destroy, func(any) { destroyed++ })
	assert.True(t, l.Remove("b"))
	assert.False(t, l.Remove("b"))
	assert.Equal(t, 1, destroyed)
	_, ok = l.Get("b")
	assert.False(t, ok)

	a.On(event.Destroy, func(any) { destroyed++ })
	c.On(event.Destroy, func(any) { destroyed++ })
	l.Reset()
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 3, destroyed)
}
