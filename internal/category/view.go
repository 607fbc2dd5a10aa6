package category

import (
	"strconv"

	"golang.org/x/net/html"

	"github.com/dshills/blockwright/internal/dom"
	"github.com/dshills/blockwright/internal/event"
)

// Caret icon classes for the open and closed states.
const (
	CaretOpen   = "fa fa-caret-down"
	CaretClosed = "fa fa-caret-right"
)

// DefaultContentClass is the unprefixed class of the blocks container.
const DefaultContentClass = "blocks-c"

// Translator looks up a localized string. An empty result means no
// translation.
type Translator interface {
	T(key string) string
}

// TranslatorFunc adapts a function to Translator.
type TranslatorFunc func(key string) string

// T implements Translator.
func (f TranslatorFunc) T(key string) string { return f(key) }

// ViewConfig configures category views.
type ViewConfig struct {
	// Prefix is prepended to every class name.
	Prefix string

	// ContentClass is the unprefixed class of the blocks container.
	ContentClass string

	Translator Translator
}

// View renders one category as a collapsible section. It keeps no state
// of its own; the open state is always read from the model.
type View struct {
	model *Category
	cfg   ViewConfig

	el     *html.Node
	title  *html.Node
	icon   *html.Node
	blocks *html.Node

	subs []*event.Subscription
}

// NewView creates a view observing model.
func NewView(model *Category, cfg ViewConfig) *View {
	if cfg.ContentClass == "" {
		cfg.ContentClass = DefaultContentClass
	}
	v := &View{model: model, cfg: cfg}
	v.subs = []*event.Subscription{
		model.On(event.ChangeOf("open"), func(any) { v.updateVisibility() }),
		model.On(event.Destroy, func(any) { v.Destroy() }),
	}
	return v
}

// Model returns the observed category.
func (v *View) Model() *Category { return v.model }

// Element returns the root element, or nil before Render.
func (v *View) Element() *html.Node { return v.el }

// Blocks returns the blocks container, or nil before Render.
func (v *View) Blocks() *html.Node { return v.blocks }

// Render builds the section. Rendering again rebuilds the title and keeps
// the elements already appended to the blocks container.
func (v *View) Render() *html.Node {
	p := v.cfg.Prefix
	if v.el == nil {
		v.el = dom.NewElement("div")
	}

	var kept []*html.Node
	if v.blocks != nil {
		kept = dom.Children(v.blocks)
	}
	dom.Clear(v.el)

	v.icon = dom.NewElement("i")
	v.title = dom.NewElement("div")
	dom.SetClass(v.title, p+"title")
	v.title.AppendChild(v.icon)
	v.title.AppendChild(dom.NewText(v.label()))

	v.blocks = dom.NewElement("div")
	dom.SetClass(v.blocks, p+v.cfg.ContentClass)
	for _, c := range kept {
		dom.Detach(c)
		v.blocks.AppendChild(c)
	}

	v.el.AppendChild(v.title)
	v.el.AppendChild(v.blocks)
	dom.SetStyle(v.el, "order", strconv.Itoa(v.model.Order()))

	v.updateVisibility()
	return v.el
}

func (v *View) label() string {
	if v.cfg.Translator != nil {
		if s := v.cfg.Translator.T("blockManager.categories." + v.model.ID()); s != "" {
			return s
		}
	}
	return v.model.Label()
}

func (v *View) updateVisibility() {
	if v.el == nil {
		return
	}
	p := v.cfg.Prefix
	if v.model.Open() {
		dom.SetClass(v.el, p+"category", p+"open")
		dom.SetClass(v.icon, p+"caret-icon", CaretOpen)
		dom.SetStyle(v.blocks, "display", "")
	} else {
		dom.SetClass(v.el, p+"category")
		dom.SetClass(v.icon, p+"caret-icon", CaretClosed)
		dom.SetStyle(v.blocks, "display", "none")
	}
}

// Click handles a click on target. Clicks inside the title toggle the
// category.
func (v *View) Click(target *html.Node) {
	if v.title == nil || target == nil || !dom.Contains(v.title, target) {
		return
	}
	v.model.Toggle()
}

// Append adds an element to the blocks container.
func (v *View) Append(el *html.Node) {
	if v.blocks == nil {
		v.Render()
	}
	dom.Detach(el)
	v.blocks.AppendChild(el)
}

// Destroy stops observing the model and detaches the element.
func (v *View) Destroy() {
	for _, s := range v.subs {
		s.Unsubscribe()
	}
	v.subs = nil
	if v.el != nil {
		dom.Detach(v.el)
	}
}
