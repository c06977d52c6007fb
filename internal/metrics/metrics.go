// Package metrics defines Prometheus metrics for mapping resolution and
// linting.
//
// Metrics live on a private registry so a CLI run can dump them to a
// node-exporter textfile without exposing an HTTP endpoint. All methods are
// no-ops on a nil *Metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"petab-mapper/internal/diagnostic"
)

const namespace = "petab"

// Metrics holds all collectors.
type Metrics struct {
	Registry *prometheus.Registry

	// ConditionsResolved counts resolved condition pairs.
	ConditionsResolved prometheus.Counter
	// UnmappedOverrides counts placeholders set to missing.
	UnmappedOverrides prometheus.Counter
	// Resolutions counts resolution runs by status (success, error).
	Resolutions *prometheus.CounterVec
	// ResolutionSeconds measures the duration of resolution runs.
	ResolutionSeconds prometheus.Histogram
	// Diagnostics counts lint findings by severity and code.
	Diagnostics *prometheus.CounterVec
}

// New creates the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		ConditionsResolved: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "mapping",
			Name:      "conditions_resolved_total",
			Help:      "Number of simulation conditions whose parameter mapping was resolved.",
		}),
		UnmappedOverrides: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "mapping",
			Name:      "unmapped_overrides_total",
			Help:      "Number of output placeholders left without an override.",
		}),
		Resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "mapping",
			Name:      "resolutions_total",
			Help:      "Number of mapping resolution runs by status.",
		}, []string{"status"}),
		ResolutionSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "mapping",
			Name:      "resolution_duration_seconds",
			Help:      "Duration of mapping resolution runs.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
		Diagnostics: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lint",
			Name:      "diagnostics_total",
			Help:      "Number of lint findings by severity and code.",
		}, []string{"severity", "code"}),
	}
}

// ObserveCondition records one resolved condition.
func (m *Metrics) ObserveCondition(unmapped int) {
	if m == nil {
		return
	}

	m.ConditionsResolved.Inc()
	m.UnmappedOverrides.Add(float64(unmapped))
}

// ObserveResolution records the outcome of a resolution run.
func (m *Metrics) ObserveResolution(elapsed time.Duration, err error) {
	if m == nil {
		return
	}

	status := "success"
	if err != nil {
		status = "error"
	}

	m.Resolutions.WithLabelValues(status).Inc()
	m.ResolutionSeconds.Observe(elapsed.Seconds())
}

// ObserveDiagnostics records every error and warning of d.
func (m *Metrics) ObserveDiagnostics(d *diagnostic.Diagnostics) {
	if m == nil || d == nil {
		return
	}

	for _, e := range d.Errors {
		m.Diagnostics.WithLabelValues(e.Severity.String(), e.Code).Inc()
	}

	for _, w := range d.Warnings {
		m.Diagnostics.WithLabelValues(w.Severity.String(), w.Code).Inc()
	}
}

// WriteTextfile writes the registry in the node-exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}

	return prometheus.WriteToTextfile(path, m.Registry)
}
