package app

import (
	"golang.org/x/net/html"

	"github.com/dshills/blockwright/internal/category"
	"github.com/dshills/blockwright/internal/editor"
	"github.com/dshills/blockwright/internal/logging"
	"github.com/dshills/blockwright/internal/plugin"
)

// App is the process-scoped context editors are created in. Plugins,
// global plugins and initialized editors are shared by every Init call on
// the same App; everything else belongs to a single editor.
type App struct {
	// Plugins is the plugin registry consulted first.
	Plugins *plugin.Registry

	// Editors holds the initialized editors.
	Editors *Registry

	// Globals is the fallback namespace for plugin ids. May be nil.
	Globals plugin.Globals

	// Document is the host page selectors are resolved against. May be nil.
	Document *html.Node

	log        *logging.Logger
	metrics    *Metrics
	translator category.Translator
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(a *App) {
		a.log = l
	}
}

// WithGlobals sets the fallback plugin namespace.
func WithGlobals(g plugin.Globals) Option {
	return func(a *App) {
		a.Globals = g
	}
}

// WithDocument sets the host document.
func WithDocument(doc *html.Node) Option {
	return func(a *App) {
		a.Document = doc
	}
}

// WithTranslator sets the translator handed to every editor.
func WithTranslator(t category.Translator) Option {
	return func(a *App) {
		a.translator = t
	}
}

// New creates an App with empty registries.
func New(opts ...Option) *App {
	a := &App{
		Plugins: plugin.NewRegistry(),
		Editors: NewRegistry(),
		metrics: NewMetrics(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.log == nil {
		a.log = logging.NewNop()
	}
	return a
}

// Logger returns the app logger.
func (a *App) Logger() *logging.Logger { return a.log }

// Metrics returns the app metrics.
func (a *App) Metrics() *Metrics { return a.metrics }

// EditorByID returns an initialized editor.
func (a *App) EditorByID(id string) (*editor.Editor, bool) {
	return a.Editors.Get(id)
}

// Init creates, starts and registers an editor from raw options. Only a
// missing or unresolvable container is fatal; unresolved or failing
// plugins and module load errors are logged as warnings.
func (a *App) Init(raw map[string]any) (*editor.Editor, error) {
	b := newBootstrapper(a, raw)
	if err := b.bootstrap(); err != nil {
		return nil, err
	}
	return b.ed, nil
}
