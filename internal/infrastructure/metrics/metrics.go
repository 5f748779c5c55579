// Package metrics exposes Prometheus instrumentation for the navigator service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "lifenav"
	subsystem = "navigator_api"
)

// Model invocation flows.
const (
	FlowChat     = "chat"
	FlowDecision = "decision"
)

// Model invocation outcomes.
const (
	OutcomeOK                = "ok"
	OutcomeCapacityExhausted = "capacity_exhausted"
	OutcomeError             = "error"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests processed, by method, route and status code.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds, by method and route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	modelCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "model_calls_total",
			Help:      "Total generative model invocations, by flow and outcome.",
		},
		[]string{"flow", "outcome"},
	)

	modelCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "model_call_duration_seconds",
			Help:      "Generative model invocation latency in seconds, by flow.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"flow"},
	)

	fallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "degraded_responses_total",
			Help:      "Total degraded responses served after model capacity exhaustion, by flow.",
		},
		[]string{"flow"},
	)

	snapshotSeedsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "metrics_snapshots_seeded_total",
			Help:      "Total metrics snapshots lazily seeded with default values.",
		},
	)
)

// RecordHTTPRequest records one completed HTTP request.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordModelCall records one generative model invocation.
func RecordModelCall(flow, outcome string, duration time.Duration) {
	modelCallsTotal.WithLabelValues(flow, outcome).Inc()
	modelCallDuration.WithLabelValues(flow).Observe(duration.Seconds())
}

// RecordFallback records a degraded response served in place of model output.
func RecordFallback(flow string) {
	fallbacksTotal.WithLabelValues(flow).Inc()
}

// RecordSnapshotSeeded records a lazily seeded metrics snapshot.
func RecordSnapshotSeeded() {
	snapshotSeedsTotal.Inc()
}
