package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for fiscal code operations.
type Metrics struct {
	Validations       *prometheus.CounterVec
	Extractions       *prometheus.CounterVec
	ExtractLatency    prometheus.Histogram
	BatchSizes        prometheus.Histogram
	OutcomesPublished prometheus.Counter
	PublishFailures   prometheus.Counter
}

// New registers and returns codes metrics collectors.
func New() *Metrics {
	return &Metrics{
		Validations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "codice_validations_total",
			Help: "Total number of fiscal code validations, labeled by result",
		}, []string{"valid"}),
		Extractions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "codice_extractions_total",
			Help: "Total number of extraction attempts, labeled by outcome (ok or the failure code)",
		}, []string{"outcome"}),
		ExtractLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "codice_extract_latency_seconds",
			Help:    "Latency of extraction including place resolution in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		BatchSizes: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "codice_batch_sizes",
			Help:    "Distribution of batch cleaning request sizes",
			Buckets: []float64{1, 10, 50, 100, 500, 1000, 5000},
		}),
		OutcomesPublished: promauto.NewCounter(prometheus.CounterOpts{
			Name: "codice_outcomes_published_total",
			Help: "Total number of batch outcomes published to the outcome topic",
		}),
		PublishFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "codice_outcome_publish_failures_total",
			Help: "Total number of batch outcomes that failed to publish",
		}),
	}
}
