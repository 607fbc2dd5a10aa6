package app

import (
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/net/html"

	"github.com/dshills/blockwright/internal/config"
	"github.com/dshills/blockwright/internal/dom"
	"github.com/dshills/blockwright/internal/editor"
	"github.com/dshills/blockwright/internal/plugin"
)

// Startup step names, in execution order.
const (
	StepOptions        = "options"
	StepContainer      = "container"
	StepEditor         = "editor"
	StepResolvePlugins = "resolvePlugins"
	StepInvokePlugins  = "invokePlugins"
	StepLoadModules    = "loadModules"
	StepRender         = "render"
	StepRegister       = "register"
)

// bootstrapper runs the startup steps of one editor.
type bootstrapper struct {
	app *App
	raw map[string]any

	opts      *config.EditorOptions
	container *html.Node
	ed        *editor.Editor
	plugins   []plugin.Resolved

	initOrder []string
}

func newBootstrapper(app *App, raw map[string]any) *bootstrapper {
	return &bootstrapper{
		app:       app,
		raw:       config.Clone(raw),
		initOrder: make([]string, 0, 8),
	}
}

// Steps returns the completed steps in order.
func (b *bootstrapper) Steps() []string {
	out := make([]string, len(b.initOrder))
	copy(out, b.initOrder)
	return out
}

// bootstrap runs every step in order. Each step completes before the next
// starts; the first error aborts startup before anything is registered.
func (b *bootstrapper) bootstrap() error {
	steps := []struct {
		name string
		fn   func() error
	}{
		// 1. Merge defaults and decode options
		{StepOptions, b.initOptions},
		// 2. Resolve the render target
		{StepContainer, b.initContainer},
		// 3. Construct the editor and its built-in modules
		{StepEditor, b.initEditor},
		// 4. Resolve plugin references
		{StepResolvePlugins, b.resolvePlugins},
		// 5. Run plugins
		{StepInvokePlugins, b.invokePlugins},
		// 6. Load modules
		{StepLoadModules, b.loadModules},
		// 7. Autorender
		{StepRender, b.render},
		// 8. Register
		{StepRegister, b.register},
	}

	for _, step := range steps {
		if err := step.fn(); err != nil {
			return &InitError{Step: step.name, Err: err}
		}
		b.initOrder = append(b.initOrder, step.name)
	}
	return nil
}

func (b *bootstrapper) initOptions() error {
	b.raw = config.ApplyDefaults(b.raw, config.EditorDefaults())

	raw, rejected := config.Sanitize(b.raw)
	for _, err := range rejected {
		key := ""
		var oe *config.OptionError
		if errors.As(err, &oe) {
			key = oe.Key
		}
		b.app.log.Warn("invalid option, using default", "option", key, "error", err)
	}
	b.raw = raw

	opts, err := config.Decode(b.raw)
	if err != nil {
		return err
	}
	b.opts = opts
	return nil
}

func (b *bootstrapper) initContainer() error {
	switch ref := b.opts.Container.(type) {
	case nil:
		return ErrContainerRequired
	case *html.Node:
		if ref == nil {
			return ErrContainerRequired
		}
		b.container = ref
	case string:
		if ref == "" {
			return ErrContainerRequired
		}
		if b.app.Document == nil {
			return &ContainerError{Ref: ref, Cause: fmt.Errorf("no document to resolve against")}
		}
		el, err := dom.Query(b.app.Document, ref)
		if err != nil {
			return &ContainerError{Ref: ref, Cause: err}
		}
		b.container = el
	default:
		return &ContainerError{Ref: ref, Cause: fmt.Errorf("unsupported container type %T", ref)}
	}
	return nil
}

func (b *bootstrapper) initEditor() error {
	id := b.opts.EditorID
	if id == "" {
		id = strconv.Itoa(b.app.Editors.NextID())
	}

	ed, err := editor.New(editor.Config{
		ID:           id,
		Options:      b.opts,
		Raw:          b.raw,
		Container:    b.container,
		Logger:       b.app.log.With("editor", id),
		ViewObserver: b.app.metrics,
		Translator:   b.app.translator,
	})
	if err != nil {
		return err
	}
	b.ed = ed
	return nil
}

// resolvePlugins resolves every reference in declared order. An
// unresolved reference is logged once and skipped.
func (b *bootstrapper) resolvePlugins() error {
	log := b.ed.Logger()
	for i, ref := range b.opts.Plugins {
		r, ok := plugin.Resolve(ref, i, b.app.Plugins, b.app.Globals)
		if !ok {
			log.Warn("plugin not found", "plugin", r.Name)
			b.app.metrics.pluginsMissing.Inc()
			continue
		}
		log.Debug("plugin resolved", "plugin", r.Name, "tier", r.Tier.String())
		b.app.metrics.pluginsResolved.WithLabelValues(r.Tier.String()).Inc()
		b.plugins = append(b.plugins, r)
	}
	return nil
}

func (b *bootstrapper) invokePlugins() error {
	for _, r := range b.plugins {
		if err := plugin.Invoke(r, b.ed, b.opts.PluginOptions(r.Name)); err != nil {
			b.ed.Logger().Warn("plugin failed", "plugin", r.Name, "error", err)
			b.app.metrics.pluginsFailed.Inc()
		}
	}
	return nil
}

func (b *bootstrapper) loadModules() error {
	if err := b.ed.LoadOnStart(); err != nil {
		b.ed.Logger().Warn("module load failed", "error", err)
	}
	return nil
}

func (b *bootstrapper) render() error {
	if !b.opts.Autorender {
		return nil
	}
	if _, err := b.ed.Render(); err != nil {
		b.ed.Logger().Warn("autorender failed", "error", err)
	}
	return nil
}

func (b *bootstrapper) register() error {
	b.app.Editors.Set(b.ed.ID(), b.ed)
	b.app.metrics.editorsInitialized.Inc()
	b.ed.Logger().Info("editor initialized", "plugins", len(b.plugins), "rendered", b.ed.Rendered())
	return nil
}
