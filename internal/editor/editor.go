package editor

import (
	"errors"
	"fmt"

	"golang.org/x/net/html"

	"github.com/dshills/blockwright/internal/category"
	"github.com/dshills/blockwright/internal/component"
	"github.com/dshills/blockwright/internal/config"
	"github.com/dshills/blockwright/internal/dom"
	"github.com/dshills/blockwright/internal/logging"
	"github.com/dshills/blockwright/internal/view"
)

// Config carries everything needed to construct an editor.
type Config struct {
	// ID is the registry id of the editor.
	ID string

	// Options are the decoded editor options. Nil means defaults.
	Options *config.EditorOptions

	// Raw is the merged option table backing Config lookups.
	Raw map[string]any

	// Container receives the rendered editor. May be nil.
	Container *html.Node

	Logger       *logging.Logger
	ViewObserver view.Observer
	Translator   category.Translator
}

// Editor is one page builder instance.
type Editor struct {
	id        string
	opts      *config.EditorOptions
	raw       map[string]any
	container *html.Node
	log       *logging.Logger

	types      *component.Types
	views      *view.Registry
	root       *component.Node
	rootView   *view.View
	categories *category.Collection

	modules []Module
	byName  map[string]Module

	loaded   bool
	rendered bool
}

// New constructs an editor with its built-in modules. Modules are not
// loaded until LoadOnStart.
func New(cfg Config) (*Editor, error) {
	opts := cfg.Options
	if opts == nil {
		var err error
		if opts, err = config.Decode(config.EditorDefaults()); err != nil {
			return nil, err
		}
	}
	raw := cfg.Raw
	if raw == nil {
		raw = map[string]any{}
	}

	types := component.NewTypes()
	root, err := types.New(component.TypeWrapper, nil)
	if err != nil {
		return nil, fmt.Errorf("create root: %w", err)
	}

	views := view.NewRegistry(types)
	if cfg.ViewObserver != nil {
		views.SetObserver(cfg.ViewObserver)
	}

	ed := &Editor{
		id:         cfg.ID,
		opts:       opts,
		raw:        raw,
		container:  cfg.Container,
		log:        cfg.Logger,
		types:      types,
		views:      views,
		root:       root,
		categories: category.NewCollection(),
		byName:     make(map[string]Module),
	}

	builtins := []Module{
		DomComponents{},
		NewBlockManager(category.ViewConfig{
			Prefix:     opts.StylePrefix,
			Translator: cfg.Translator,
		}),
	}
	for _, m := range builtins {
		if err := ed.AddModule(m); err != nil {
			return nil, err
		}
	}
	return ed, nil
}

// ID returns the registry id.
func (e *Editor) ID() string { return e.id }

// Options returns the decoded options.
func (e *Editor) Options() *config.EditorOptions { return e.opts }

// Config returns a merged option by dotted path, e.g. "blockManager.categories".
func (e *Editor) Config(key string) (any, bool) {
	return config.GetByPath(e.raw, key)
}

// Types returns the editor's component type registry.
func (e *Editor) Types() *component.Types { return e.types }

// Views returns the editor's view registry.
func (e *Editor) Views() *view.Registry { return e.views }

// Root returns the root wrapper node.
func (e *Editor) Root() *component.Node { return e.root }

// RootView returns the root view, or nil before the first Render.
func (e *Editor) RootView() *view.View { return e.rootView }

// Categories returns the block categories.
func (e *Editor) Categories() *category.Collection { return e.categories }

// Container returns the render target, or nil.
func (e *Editor) Container() *html.Node { return e.container }

// Logger returns the editor logger.
func (e *Editor) Logger() *logging.Logger { return e.log }

// Modules returns the modules in load order.
func (e *Editor) Modules() []Module {
	out := make([]Module, len(e.modules))
	copy(out, e.modules)
	return out
}

// Module returns a module by name.
func (e *Editor) Module(name string) (Module, bool) {
	m, ok := e.byName[name]
	return m, ok
}

// BlockManager returns the built-in block manager module.
func (e *Editor) BlockManager() *BlockManager {
	m, _ := e.byName[ModuleBlockManager].(*BlockManager)
	return m
}

// AddModule appends a module. A module added after LoadOnStart is loaded
// immediately and its load error returned.
func (e *Editor) AddModule(m Module) error {
	if m == nil {
		return ErrNilModule
	}
	name := m.Name()
	if _, ok := e.byName[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateModule, name)
	}
	e.modules = append(e.modules, m)
	e.byName[name] = m

	if e.loaded {
		return e.load(m)
	}
	return nil
}

// LoadOnStart calls OnLoad on every module in order. It runs once; later
// calls return nil. Module errors are joined; one failing module does not
// stop the others.
func (e *Editor) LoadOnStart() error {
	if e.loaded {
		return nil
	}
	e.loaded = true

	var errs []error
	for _, m := range e.Modules() {
		if err := e.load(m); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (e *Editor) load(m Module) error {
	e.log.Debug("loading module", "module", m.Name())
	if err := m.OnLoad(e); err != nil {
		return fmt.Errorf("module %s: %w", m.Name(), err)
	}
	return nil
}

// Loaded reports whether LoadOnStart ran.
func (e *Editor) Loaded() bool { return e.loaded }

// Render renders the document and places it inside the container. The
// same element is reused on every call and appears in the container once.
func (e *Editor) Render() (*html.Node, error) {
	if e.rootView == nil {
		v, err := e.views.Bind(e.root)
		if err != nil {
			return nil, err
		}
		e.rootView = v
	}

	el, err := e.rootView.Render()
	if err != nil {
		return nil, fmt.Errorf("render editor %s: %w", e.id, err)
	}

	if e.container != nil && el.Parent != e.container {
		dom.Detach(el)
		e.container.AppendChild(el)
	}
	e.rendered = true
	return el, nil
}

// Rendered reports whether Render completed.
func (e *Editor) Rendered() bool { return e.rendered }

// Element returns the rendered root element, or nil.
func (e *Editor) Element() *html.Node {
	if e.rootView == nil {
		return nil
	}
	return e.rootView.Element()
}

// HTML returns the markup of the rendered document, or "" before Render.
func (e *Editor) HTML() string {
	el := e.Element()
	if el == nil {
		return ""
	}
	return dom.Render(el)
}

// Serialize returns the declarative form of the document.
func (e *Editor) Serialize() map[string]any {
	return e.root.Serialize()
}
