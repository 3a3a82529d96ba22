// Package metrics exposes the audit-log subsystem's Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the counters and histograms the event service observes.
type Metrics struct {
	EventsRecorded  prometheus.Counter
	AnchorFailures  prometheus.Counter
	StorageFailures prometheus.Counter
	AnchorLatency   prometheus.Histogram
}

// New registers the metrics with reg. Pass prometheus.DefaultRegisterer in
// main; tests should pass a fresh registry to avoid duplicate registration.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		EventsRecorded: factory.NewCounter(prometheus.CounterOpts{
			Name: "aidproof_events_recorded_total",
			Help: "Events anchored and appended to the audit log",
		}),
		AnchorFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "aidproof_anchor_failures_total",
			Help: "Submissions rejected because the ledger anchor call failed",
		}),
		StorageFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "aidproof_storage_failures_total",
			Help: "Local appends that failed after a successful anchor",
		}),
		AnchorLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "aidproof_anchor_duration_seconds",
			Help:    "Round-trip latency of ledger anchor calls",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
