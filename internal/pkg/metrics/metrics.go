// Package metrics defines and registers all custom Prometheus metrics for
// the booking client. It is the single source of truth for metric names,
// labels, and help strings. Metrics are exposed by the local diagnostics
// server when enabled.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "booking_client"

// RequestsTotal counts outbound API calls by method, endpoint, and outcome.
// The status label carries the HTTP status code, or "network" when the
// request never produced a response.
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of outbound API requests.",
	},
	[]string{"method", "endpoint", "status"},
)

// RequestDuration measures the round-trip time of outbound API calls.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of outbound API requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// FetchesTotal counts collection refetches by resource and result (ok/error).
var FetchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fetches_total",
		Help:      "Total number of collection fetches, by resource and result.",
	},
	[]string{"resource", "result"},
)

// MutationsTotal counts create/update/transition/delete operations by
// resource, operation, and result (ok/error).
var MutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_total",
		Help:      "Total number of mutating operations, by resource, op, and result.",
	},
	[]string{"resource", "op", "result"},
)

// DedupTotal counts in-flight deduplication decisions.
// Label:
//   - result: "hit" (identical mutation suppressed) or "miss" (sent)
var DedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dedup_total",
		Help:      "Total number of in-flight deduplication checks, by result (hit/miss).",
	},
	[]string{"result"},
)
