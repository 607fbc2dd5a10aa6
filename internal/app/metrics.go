package app

import (
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/dshills/blockwright/internal/view"
)

const metricsNamespace = "blockwright"

// Metrics counts startup and view activity. Each App owns a separate
// prometheus registry.
type Metrics struct {
	registry *prometheus.Registry

	editorsInitialized prometheus.Counter
	pluginsResolved    *prometheus.CounterVec
	pluginsMissing     prometheus.Counter
	pluginsFailed      prometheus.Counter
	viewsCreated       prometheus.Counter
	viewsDestroyed     prometheus.Counter
	reconciliations    prometheus.Counter
}

// NewMetrics creates the counters and registers them.
func NewMetrics() *Metrics {
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      name,
			Help:      help,
		})
	}

	m := &Metrics{
		registry:           prometheus.NewRegistry(),
		editorsInitialized: counter("editors_initialized_total", "Editors that completed startup."),
		pluginsResolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "plugins_resolved_total",
			Help:      "Plugin references resolved, by resolution tier.",
		}, []string{"tier"}),
		pluginsMissing:  counter("plugins_missing_total", "Plugin references that did not resolve."),
		pluginsFailed:   counter("plugins_failed_total", "Plugins that panicked while running."),
		viewsCreated:    counter("views_created_total", "Component views created."),
		viewsDestroyed:  counter("views_destroyed_total", "Component views destroyed."),
		reconciliations: counter("view_reconciliations_total", "Child view reconciliations."),
	}

	m.registry.MustRegister(
		m.editorsInitialized,
		m.pluginsResolved,
		m.pluginsMissing,
		m.pluginsFailed,
		m.viewsCreated,
		m.viewsDestroyed,
		m.reconciliations,
	)
	return m
}

// Registry returns the prometheus registry holding the counters.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// OnViewCreated implements view.Observer.
func (m *Metrics) OnViewCreated(*view.View) { m.viewsCreated.Inc() }

// OnViewDestroyed implements view.Observer.
func (m *Metrics) OnViewDestroyed(*view.View) { m.viewsDestroyed.Inc() }

// OnReconcile implements view.Observer.
func (m *Metrics) OnReconcile(*view.View) { m.reconciliations.Inc() }

// Snapshot returns the current counter values keyed by metric name, with
// labels appended as {name="value"}.
func (m *Metrics) Snapshot() (map[string]float64, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64)
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			out[mf.GetName()+labelSuffix(metric.GetLabel())] = metric.GetCounter().GetValue()
		}
	}
	return out, nil
}

func labelSuffix(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p.GetName()+`="`+p.GetValue()+`"`)
	}
	sort.Strings(parts)
	return "{" + strings.Join(parts, ",") + "}"
}
