package view

import (
	"golang.org/x/net/html"

	"github.com/dshills/blockwright/internal/dom"
)

// Variant produces the type-specific content of a view's element.
// Attributes and child placement are handled by the View itself. Content
// nodes go through View.SetContent; the rest of el belongs to child views.
type Variant interface {
	Name() string
	RenderContent(v *View, el *html.Node)
}

// VariantFunc adapts a function to the Variant interface.
type VariantFunc struct {
	ID string
	Fn func(v *View, el *html.Node)
}

func (f VariantFunc) Name() string { return f.ID }

func (f VariantFunc) RenderContent(v *View, el *html.Node) {
	if f.Fn != nil {
		f.Fn(v, el)
	}
}

// defaultVariant renders no content of its own; its element holds the
// elements of child views.
type defaultVariant struct{}

func (defaultVariant) Name() string                         { return "default" }
func (defaultVariant) RenderContent(v *View, el *html.Node) {}

// textVariant renders the content property as the element's text.
type textVariant struct{}

func (textVariant) Name() string { return "text" }

func (textVariant) RenderContent(v *View, el *html.Node) {
	text := v.Node().GetString("content")
	if c := v.content; len(c) == 1 && c[0].Type == html.TextNode {
		c[0].Data = text
		return
	}
	if text == "" {
		v.SetContent()
		return
	}
	v.SetContent(dom.NewText(text))
}

// imageVariant mirrors the src property onto the element.
type imageVariant struct{}

func (imageVariant) Name() string { return "image" }

func (imageVariant) RenderContent(v *View, el *html.Node) {
	dom.SetAttr(el, "src", v.Node().GetString("src"))
	if alt, ok := v.Node().Lookup("alt"); ok {
		dom.SetAttr(el, "alt", toString(alt))
	}
}
