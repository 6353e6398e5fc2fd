// Package metrics provides Prometheus metrics for the decryption service:
// processed uploads by outcome, decryption latency, upload sizes and the
// number of decryptions in progress. Metrics live on a dedicated registry
// exposed through [PrometheusMetrics.Handler].
package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels recorded by the decryption service.
const (
	OutcomeUnlocked         = "unlocked"
	OutcomePassthrough      = "passthrough"
	OutcomePasswordRequired = "password_required"
	OutcomeWrongPassword    = "wrong_password"
	OutcomeInvalidRequest   = "invalid_request"
	OutcomeFailed           = "failed"
)

// Recorder is the metrics surface used by the service layer.
type Recorder interface {
	RecordOutcome(outcome string)
	RecordDuration(operation string, seconds float64)
	RecordFileSize(bytes int64)
	StartOperation(operation string)
	EndOperation(operation string)
}

// PrometheusMetrics implements [Recorder]. All metric names are prefixed
// with the namespace given to [New].
type PrometheusMetrics struct {
	namespace string
	registry  *prometheus.Registry

	// processedTotal counts uploads by outcome
	processedTotal *prometheus.CounterVec
	// durationSeconds uses default buckets: 5ms .. 10s
	durationSeconds *prometheus.HistogramVec
	// fileSizeBytes: 1KB .. 100MB
	fileSizeBytes prometheus.Histogram
	inProgress    *prometheus.GaugeVec
}

// New creates a PrometheusMetrics with its own registry. Go runtime and
// process collectors are registered alongside the service metrics.
func New(namespace string) *PrometheusMetrics {
	m := &PrometheusMetrics{
		namespace: namespace,
		registry:  prometheus.NewRegistry(),
	}

	m.processedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: fmt.Sprintf("%s_processed_total", namespace),
			Help: "Total processed uploads by outcome.",
		},
		[]string{"outcome"},
	)

	m.durationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    fmt.Sprintf("%s_duration_seconds", namespace),
			Help:    "Operation duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	m.fileSizeBytes = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name: fmt.Sprintf("%s_file_size_bytes", namespace),
			Help: "Sizes of uploaded documents.",
			Buckets: []float64{
				1024,      // 1KB
				10240,     // 10KB
				102400,    // 100KB
				1048576,   // 1MB
				10485760,  // 10MB
				104857600, // 100MB
			},
		},
	)

	m.inProgress = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: fmt.Sprintf("%s_in_progress", namespace),
			Help: "Operations in progress.",
		},
		[]string{"operation"},
	)

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.processedTotal,
		m.durationSeconds,
		m.fileSizeBytes,
		m.inProgress,
	)

	return m
}

func (m *PrometheusMetrics) RecordOutcome(outcome string) {
	m.processedTotal.WithLabelValues(outcome).Inc()
}

// RecordDuration observes seconds; use time.Since(start).Seconds().
func (m *PrometheusMetrics) RecordDuration(operation string, seconds float64) {
	m.durationSeconds.WithLabelValues(operation).Observe(seconds)
}

func (m *PrometheusMetrics) RecordFileSize(bytes int64) {
	m.fileSizeBytes.Observe(float64(bytes))
}

// StartOperation must be paired with EndOperation, typically via defer.
func (m *PrometheusMetrics) StartOperation(operation string) {
	m.inProgress.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) EndOperation(operation string) {
	m.inProgress.WithLabelValues(operation).Dec()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
