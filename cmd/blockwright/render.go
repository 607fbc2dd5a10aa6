package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/net/html"
	"gopkg.in/yaml.v3"

	"github.com/dshills/blockwright/internal/app"
	"github.com/dshills/blockwright/internal/config"
	"github.com/dshills/blockwright/internal/config/watcher"
	"github.com/dshills/blockwright/internal/dom"
	"github.com/dshills/blockwright/internal/logging"
	"github.com/dshills/blockwright/internal/plugin/lua"
)

// defaultPage hosts the editor when no page is given.
const defaultPage = `<!DOCTYPE html><html><head></head><body><div id="gjs"></div></body></html>`

// defaultContainer is used when neither the options nor the flags name one.
const defaultContainer = "#gjs"

type renderOptions struct {
	configPath string
	pagePath   string
	luaPaths   []string
	container  string
	format     string
	watch      bool
	metrics    bool
}

func newRenderCmd() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Build an editor and print the rendered page",
		Long: `Loads editor options from --config (TOML or YAML), runs the plugins they
reference (registered Lua plugins from --lua files), and prints the host
page with the editor rendered into its container.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, _ := cmd.Flags().GetString("log-level")
			log := logging.New(logging.ParseLevel(level))

			if opts.format != "html" && opts.format != "yaml" {
				return fmt.Errorf("unknown format %q", opts.format)
			}
			if !opts.watch {
				return renderOnce(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, log)
			}
			return renderWatch(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, log)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "Editor options file (.toml, .yaml)")
	f.StringVarP(&opts.pagePath, "page", "p", "", "Host HTML page (default: an empty page with #gjs)")
	f.StringSliceVar(&opts.luaPaths, "lua", nil, "Lua files defining global plugins (repeatable)")
	f.StringVar(&opts.container, "container", "", "Container selector, overrides the options file")
	f.StringVar(&opts.format, "format", "html", "Output format: html or yaml")
	f.BoolVarP(&opts.watch, "watch", "w", false, "Render again whenever an input file changes")
	f.BoolVar(&opts.metrics, "metrics", false, "Print startup counters to stderr")
	return cmd
}

// renderOnce builds a fresh app and editor from the input files and writes
// the result to out.
func renderOnce(out, errOut io.Writer, opts renderOptions, log *logging.Logger) error {
	raw, err := loadOptions(opts)
	if err != nil {
		return err
	}

	doc, err := loadPage(opts.pagePath)
	if err != nil {
		return err
	}

	globals := lua.NewGlobals(lua.WithLogger(log.WithComponent("lua")))
	defer globals.Close()
	for _, path := range opts.luaPaths {
		if err := globals.DoFile(path); err != nil {
			return err
		}
	}

	a := app.New(
		app.WithLogger(log),
		app.WithGlobals(globals),
		app.WithDocument(doc),
	)

	ed, err := a.Init(raw)
	if err != nil {
		return err
	}
	if !ed.Rendered() {
		if _, err := ed.Render(); err != nil {
			return err
		}
	}

	switch opts.format {
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(ed.Serialize()); err != nil {
			return fmt.Errorf("encode document: %w", err)
		}
		if err := enc.Close(); err != nil {
			return err
		}
	default:
		if err := html.Render(out, doc); err != nil {
			return fmt.Errorf("render page: %w", err)
		}
		fmt.Fprintln(out)
	}

	if opts.metrics {
		return printMetrics(errOut, a.Metrics())
	}
	return nil
}

func loadOptions(opts renderOptions) (map[string]any, error) {
	raw := map[string]any{}
	if opts.configPath != "" {
		fileOpts, err := config.LoadFile(opts.configPath)
		if err != nil {
			return nil, err
		}
		raw = config.DeepMerge(raw, fileOpts)
	}

	if opts.container != "" {
		raw = config.DeepMerge(raw, map[string]any{"container": opts.container})
	}
	return config.ApplyDefaults(raw, map[string]any{"container": defaultContainer}), nil
}

func loadPage(path string) (*html.Node, error) {
	if path == "" {
		return dom.ParseString(defaultPage)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	defer f.Close()

	doc, err := dom.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse page %s: %w", path, err)
	}
	return doc, nil
}

func printMetrics(w io.Writer, m *app.Metrics) error {
	snap, err := m.Snapshot()
	if err != nil {
		return err
	}
	names := make([]string, 0, len(snap))
	for name := range snap {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s %g\n", name, snap[name])
	}
	return nil
}

// renderWatch renders once, then again after every change to an input
// file, until interrupted.
func renderWatch(ctx context.Context, out, errOut io.Writer, opts renderOptions, log *logging.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var mu sync.Mutex
	render := func(reason string) {
		mu.Lock()
		defer mu.Unlock()
		if err := renderOnce(out, errOut, opts, log); err != nil {
			log.Error("render failed", "reason", reason, "error", err)
		}
	}

	w, err := watcher.New(
		watcher.WithDebounce(100*time.Millisecond),
		watcher.WithErrorHandler(func(err error) {
			log.Warn("watch error", "error", err)
		}),
	)
	if err != nil {
		return err
	}
	defer w.Close()

	for _, path := range watchedPaths(opts) {
		if err := w.Watch(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
	}
	w.OnChange(func(ev watcher.Event) {
		log.Info("input changed", "path", ev.Path, "op", ev.Op.String())
		render(ev.Path)
	})

	render("start")
	log.Info("watching", "files", strings.Join(w.WatchedFiles(), ","))

	<-ctx.Done()
	return nil
}

func watchedPaths(opts renderOptions) []string {
	var paths []string
	if opts.configPath != "" {
		paths = append(paths, opts.configPath)
	}
	if opts.pagePath != "" {
		paths = append(paths, opts.pagePath)
	}
	return append(paths, opts.luaPaths...)
}
