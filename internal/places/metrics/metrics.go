package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for place table lookups.
type Metrics struct {
	Lookups       *prometheus.CounterVec
	CacheHits     prometheus.Counter
	CacheMisses   prometheus.Counter
	LookupLatency *prometheus.HistogramVec
}

// New registers and returns place lookup metrics collectors.
func New() *Metrics {
	return &Metrics{
		Lookups: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "codice_place_lookups_total",
			Help: "Total number of place code lookups, labeled by result",
		}, []string{"result"}),
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "codice_place_cache_hits_total",
			Help: "Total number of place lookups served from the Redis cache",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "codice_place_cache_misses_total",
			Help: "Total number of place lookups that fell through to the backing store",
		}),
		LookupLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "codice_place_lookup_latency_seconds",
			Help:    "Latency of place lookups in seconds, labeled by backend",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"backend"}),
	}
}

// ObserveLookup records a lookup against the given backend.
func (m *Metrics) ObserveLookup(backend string, start time.Time, found bool) {
	if m == nil {
		return
	}
	result := "hit"
	if !found {
		result = "miss"
	}
	m.Lookups.WithLabelValues(result).Inc()
	m.LookupLatency.WithLabelValues(backend).Observe(time.Since(start).Seconds())
}
