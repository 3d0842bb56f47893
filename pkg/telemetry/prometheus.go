// Package telemetry provides optional observability for the MCP server:
// Prometheus metrics for tool calls and an OpenTelemetry trace exporter for
// the query pipeline. Both are config-gated and never sit on the hot path.
package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics tracks tool-call and upstream-request counters. A nil *Metrics is
// a valid no-op receiver so call sites never need a guard.
type Metrics struct {
	registry *prometheus.Registry

	toolCalls    *prometheus.CounterVec
	toolDuration *prometheus.HistogramVec
	upstream     *prometheus.CounterVec
}

// NewMetrics creates a Metrics with its own registry, including the
// standard Go runtime collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		toolCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "databoard",
			Name:      "tool_calls_total",
			Help:      "Tool invocations by tool name and outcome.",
		}, []string{"tool", "outcome"}),
		toolDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "databoard",
			Name:      "tool_duration_seconds",
			Help:      "Tool invocation duration.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"tool"}),
		upstream: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "databoard",
			Name:      "upstream_responses_total",
			Help:      "Upstream API responses by HTTP status code.",
		}, []string{"status"}),
	}
	registry.MustRegister(m.toolCalls, m.toolDuration, m.upstream)
	return m
}

// Handler serves the metrics endpoint for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveToolCall records one tool invocation.
func (m *Metrics) ObserveToolCall(tool string, isError bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := "ok"
	if isError {
		outcome = "error"
	}
	m.toolCalls.WithLabelValues(tool, outcome).Inc()
	m.toolDuration.WithLabelValues(tool).Observe(elapsed.Seconds())
}

// ObserveUpstreamStatus records one upstream HTTP response code.
func (m *Metrics) ObserveUpstreamStatus(code int) {
	if m == nil {
		return
	}
	m.upstream.WithLabelValues(strconv.Itoa(code)).Inc()
}
