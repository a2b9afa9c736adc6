// Package metrics registers the prometheus counters the inspection surface
// increments around each decode call, mirroring the teacher's api/metrics
// package shape. The devpath decoder itself is never instrumented
// directly; it has no logging or metrics hooks of its own (§7 policy).
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DecodeTotal counts decode attempts by operation (node/path/paths)
	// and result ("ok", a devpath.Kind string such as "invalid" or
	// "unknown type", or "error" for any other failure).
	DecodeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devpath_decode_total",
		Help: "Total device path decode attempts by operation and result.",
	}, []string{"operation", "result"})

	// DecodeDuration observes wall-clock time spent in a decode call.
	DecodeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "devpath_decode_duration_seconds",
		Help:    "Device path decode latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
)

// Observe records one decode attempt's outcome and duration.
func Observe(operation, result string, elapsed time.Duration) {
	DecodeTotal.WithLabelValues(operation, result).Inc()
	DecodeDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}
