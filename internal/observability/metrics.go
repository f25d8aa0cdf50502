// Package observability provides Prometheus metrics and OpenTelemetry tracing
// for the daemon.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "petshare_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// ReadDegradations counts reads that failed and were served as empty results.
	ReadDegradations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "petshare_read_degradations_total",
		Help: "Total number of read failures degraded to empty responses",
	}, []string{"resource"})

	// CounterUpdates counts denormalized counter adjustments by table and direction.
	CounterUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "petshare_counter_updates_total",
		Help: "Total number of denormalized counter adjustments",
	}, []string{"counter", "direction"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
