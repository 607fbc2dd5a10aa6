package editor

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/dshills/blockwright/internal/category"
	"github.com/dshills/blockwright/internal/dom"
)

// Module is a unit of editor functionality loaded at startup.
type Module interface {
	Name() string
	OnLoad(ed *Editor) error
}

// Built-in module names.
const (
	ModuleDomComponents = "DomComponents"
	ModuleBlockManager  = "BlockManager"
)

// DomComponents loads the configured component definitions into the root.
type DomComponents struct{}

// Name implements Module.
func (DomComponents) Name() string { return ModuleDomComponents }

// OnLoad appends every configured definition to the root, in order.
func (DomComponents) OnLoad(ed *Editor) error {
	for i, def := range ed.opts.Components {
		n, err := ed.types.FromDefinition(def)
		if err != nil {
			return fmt.Errorf("components[%d]: %w", i, err)
		}
		if err := ed.root.Append(n); err != nil {
			return fmt.Errorf("components[%d]: %w", i, err)
		}
	}
	return nil
}

// BlockManager owns the block palette categories and their views.
type BlockManager struct {
	cfg   category.ViewConfig
	el    *html.Node
	views map[*category.Category]*category.View
}

// NewBlockManager creates the module with the view configuration used for
// category sections.
func NewBlockManager(cfg category.ViewConfig) *BlockManager {
	return &BlockManager{cfg: cfg, views: make(map[*category.Category]*category.View)}
}

// Name implements Module.
func (b *BlockManager) Name() string { return ModuleBlockManager }

// OnLoad adds the configured categories.
func (b *BlockManager) OnLoad(ed *Editor) error {
	for _, spec := range ed.opts.BlockManager.Categories {
		ed.categories.Add(category.Spec{
			ID:    spec.ID,
			Label: spec.Label,
			Order: spec.Order,
			Open:  spec.Open,
		})
	}
	return nil
}

// View returns the view of a category, creating it on first use.
func (b *BlockManager) View(c *category.Category) *category.View {
	if v, ok := b.views[c]; ok {
		return v
	}
	v := category.NewView(c, b.cfg)
	b.views[c] = v
	return v
}

// Render renders the palette: one section per category in display order.
// The same element is returned on every call.
func (b *BlockManager) Render(ed *Editor) *html.Node {
	if b.el == nil {
		b.el = dom.NewElement("div")
		dom.SetClass(b.el, b.cfg.Prefix+"blocks")
	}

	live := make(map[*category.Category]bool)
	for i, c := range ed.categories.All() {
		live[c] = true
		v := b.View(c)
		el := v.Element()
		if el == nil {
			el = v.Render()
		}
		dom.PlaceAt(b.el, el, i)
	}
	for c, v := range b.views {
		if !live[c] {
			v.Destroy()
			delete(b.views, c)
		}
	}
	return b.el
}
