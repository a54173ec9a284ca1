// Package metrics exposes Prometheus instrumentation for tool invocations.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels.
const (
	OutcomeOK          = "ok"
	OutcomeClientError = "client_error"
	OutcomeServerError = "server_error"
)

// Metrics holds the toolbox collectors.
type Metrics struct {
	registry    *prometheus.Registry
	invocations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	inputBytes  *prometheus.HistogramVec
	submissions *prometheus.CounterVec
}

// New creates the collectors on a fresh registry, alongside the Go runtime
// and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		invocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "toolbox",
			Name:      "tool_invocations_total",
			Help:      "Tool invocations by tool and outcome.",
		}, []string{"tool", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "toolbox",
			Name:      "tool_duration_seconds",
			Help:      "Time spent handling a tool invocation.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"tool"}),
		inputBytes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "toolbox",
			Name:      "tool_input_bytes",
			Help:      "Request body size per tool invocation.",
			Buckets:   prometheus.ExponentialBuckets(64, 4, 8),
		}, []string{"tool"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "toolbox",
			Name:      "intake_submissions_total",
			Help:      "Form submissions by kind and outcome.",
		}, []string{"kind", "outcome"}),
	}
	reg.MustRegister(
		m.invocations, m.duration, m.inputBytes, m.submissions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveTool records one tool invocation.
func (m *Metrics) ObserveTool(tool string, status int, bytes int64, elapsed time.Duration) {
	m.invocations.WithLabelValues(tool, OutcomeFromStatus(status)).Inc()
	m.duration.WithLabelValues(tool).Observe(elapsed.Seconds())
	if bytes >= 0 {
		m.inputBytes.WithLabelValues(tool).Observe(float64(bytes))
	}
}

// ObserveSubmission records one intake submission.
func (m *Metrics) ObserveSubmission(kind string, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeServerError
	}
	m.submissions.WithLabelValues(kind, outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// OutcomeFromStatus maps an HTTP status code to an outcome label.
func OutcomeFromStatus(status int) string {
	switch {
	case status >= 500:
		return OutcomeServerError
	case status >= 400:
		return OutcomeClientError
	default:
		return OutcomeOK
	}
}
