package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ModeFailed labels matching turns that ended on a vendor store error.
const ModeFailed = "failed"

// Metrics holds the Prometheus collectors of the matching pipeline. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	requests    *prometheus.CounterVec
	duration    prometheus.Histogram
	storeErrors prometheus.Counter
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vendor_match_requests_total",
			Help: "Matching turns by resulting mode.",
		}, []string{"mode"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "vendor_match_duration_seconds",
			Help:    "Time spent resolving one matching turn, vendor store read included.",
			Buckets: prometheus.DefBuckets,
		}),
		storeErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vendor_match_store_errors_total",
			Help: "Vendor store reads that failed.",
		}),
	}
	reg.MustRegister(m.requests, m.duration, m.storeErrors)
	return m
}

// ObserveMatch records one finished matching turn.
func (m *Metrics) ObserveMatch(mode string, elapsed time.Duration) {
	if m == nil {
		return
	}
	if mode == "" {
		mode = ModeFailed
	}
	m.requests.WithLabelValues(mode).Inc()
	m.duration.Observe(elapsed.Seconds())
}

// StoreError counts a failed vendor store read.
func (m *Metrics) StoreError() {
	if m == nil {
		return
	}
	m.storeErrors.Inc()
}
