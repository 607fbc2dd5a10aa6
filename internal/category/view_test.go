package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/blockwright/internal/dom"
)

func TestView_Render(t *testing.T) {
	c := New(Spec{ID: "basic", Label: "Basic", Order: 3})
	v := NewView(c, ViewConfig{Prefix: "bw-"})

	el := v.Render()
	assert.Equal(t,
		`<div style="order: 3" class="bw-category">`+
			`<div class="bw-title"><i class="bw-caret-icon fa fa-caret-right"></i>Basic</div>`+
			`<div class="bw-blocks-c" style="display: none"></div></div>`,
		dom.Render(el))

	c.SetOpen(true)
	assert.Equal(t,
		`<div style="order: 3" class="bw-category bw-open">`+
			`<div class="bw-title"><i class="bw-caret-icon fa fa-caret-down"></i>Basic</div>`+
			`<div class="bw-blocks-c"></div></div>`,
		dom.Render(el))
}

func TestView_Translation(t *testing.T) {
	tr := TranslatorFunc(func(key string) string {
		if key == "blockManager.categories.forms" {
			return "Formulaires"
		}
		return ""
	})

	v := NewView(New(Spec{ID: "forms", Label: "Forms"}), ViewConfig{Translator: tr})
	assert.Equal(t, "Formulaires", dom.TextContent(v.Render()))

	v = NewView(New(Spec{ID: "media", Label: "Media"}), ViewConfig{Translator: tr})
	assert.Equal(t, "Media", dom.TextContent(v.Render()))
}

func TestView_ClickTogglesThroughModel(t *testing.T) {
	c := New(Spec{ID: "basic"})
	v := NewView(c, ViewConfig{})
	el := v.Render()

	v.Click(v.Blocks())
	assert.False(t, c.Open(), "clicks outside the title are ignored")

	icon := dom.QueryClass(el, "caret-icon")
	require.NotNil(t, icon)
	for i := 0; i < 5; i++ {
		v.Click(icon)
	}
	assert.True(t, c.Open())
	assert.True(t, dom.HasClass(el, "open"))
	assert.Equal(t, "", dom.Style(v.Blocks(), "display"))

	c.Toggle()
	assert.False(t, dom.HasClass(el, "open"))
	assert.Equal(t, "none", dom.Style(v.Blocks(), "display"))
}

func TestView_AppendSurvivesRerender(t *testing.T) {
	c := New(Spec{ID: "basic", Open: true})
	v := NewView(c, ViewConfig{Prefix: "bw-", ContentClass: "blocks"})
	v.Render()

	block := dom.NewElement("div")
	dom.SetClass(block, "bw-block")
	v.Append(block)

	el := v.Render()
	assert.Same(t, v.Blocks(), block.Parent)
	assert.True(t, dom.HasClass(v.Blocks(), "bw-blocks"))
	assert.Same(t, block, dom.QueryClass(el, "bw-block"))
}

func TestView_DestroyedWithModel(t *testing.T) {
	l := NewCollection()
	c := l.Add(Spec{ID: "basic"})
	v := NewView(c, ViewConfig{})
	el := v.Render()
	host := dom.NewElement("div")
	host.AppendChild(el)

	l.Remove("basic")
	assert.Nil(t, el.Parent)
}
