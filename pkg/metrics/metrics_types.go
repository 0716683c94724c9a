package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Detection Metrics
	DetectionRunsTotal  *prometheus.CounterVec
	DetectionDuration   prometheus.Histogram
	DetectionLevels     prometheus.Histogram
	CommunitiesFound    prometheus.Gauge
	LastModularity      prometheus.Gauge

	// Level Metrics
	SweepsTotal   *prometheus.CounterVec
	MovesTotal    *prometheus.CounterVec
	LevelDuration *prometheus.HistogramVec

	// Store Metrics
	StoreNeighborFetchesTotal prometheus.Counter
	StoreDegreeBatchesTotal   prometheus.Counter
	StoreStreamRestartsTotal  prometheus.Counter

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initDetectionMetrics()
	r.initLevelMetrics()
	r.initStoreMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
