package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	upstreamRequests *prometheus.CounterVec
	fallbacks        *prometheus.CounterVec
	tokenEvictions   prometheus.Counter
	latency          *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		upstreamRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketlens_upstream_requests_total",
				Help: "Upstream backend requests by endpoint and status",
			},
			[]string{"endpoint", "status"},
		),
		fallbacks: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketlens_synthetic_fallbacks_total",
				Help: "View signals substituted with synthetic data",
			},
			[]string{"signal"},
		),
		tokenEvictions: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "marketlens_token_evictions_total",
				Help: "Session tokens evicted after upstream auth failures",
			},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "marketlens_operation_duration_seconds",
				Help:    "Duration of view assembly operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordUpstreamRequest counts one upstream call by endpoint and status.
func (r *Recorder) RecordUpstreamRequest(endpoint, status string) {
	r.upstreamRequests.WithLabelValues(endpoint, status).Inc()
}

// RecordFallback counts one synthetic substitution for a signal.
func (r *Recorder) RecordFallback(signal string) {
	r.fallbacks.WithLabelValues(signal).Inc()
}

// RecordTokenEviction counts one session token eviction.
func (r *Recorder) RecordTokenEviction() {
	r.tokenEvictions.Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
