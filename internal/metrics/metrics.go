// Package metrics declares the Prometheus collectors exported at /metrics.
// Collectors register with the default registry on package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PromptViewsTotal counts detail fetches that incremented a view counter.
	PromptViewsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "promptlib_prompt_views_total",
			Help: "Total number of prompt views recorded",
		},
	)

	// PromptCopiesTotal counts copy actions that incremented a copy counter.
	PromptCopiesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "promptlib_prompt_copies_total",
			Help: "Total number of prompt copies recorded",
		},
	)

	// PromptMutationsTotal counts applied mutations.
	// Labels: op (create/update/delete/feature)
	PromptMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promptlib_prompt_mutations_total",
			Help: "Total number of prompt mutations by operation",
		},
		[]string{"op"},
	)

	// SnapshotWritesTotal counts writes of the full prompt snapshot.
	// Labels: result (success/error)
	SnapshotWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promptlib_snapshot_writes_total",
			Help: "Total number of prompt snapshot writes by result",
		},
		[]string{"result"},
	)

	// HTTPRequestsTotal counts served requests.
	// Labels: method, route (chi route pattern), status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promptlib_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration observes request latency in seconds.
	// Labels: method, route
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "promptlib_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds by method and route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// RecordMutation records one applied mutation of kind op.
func RecordMutation(op string) {
	PromptMutationsTotal.WithLabelValues(op).Inc()
}

// RecordSnapshotWrite records the outcome of one snapshot write.
func RecordSnapshotWrite(success bool) {
	result := "success"
	if !success {
		result = "error"
	}
	SnapshotWritesTotal.WithLabelValues(result).Inc()
}

// RecordRequest records one served HTTP request.
func RecordRequest(method, route, status string, durationSeconds float64) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(durationSeconds)
}
