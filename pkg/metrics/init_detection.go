package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initDetectionMetrics() {
	r.DetectionRunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "communities_detection_runs_total",
			Help: "Total number of community detection runs",
		},
		[]string{"status"},
	)

	r.DetectionDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "communities_detection_duration_seconds",
			Help:    "End-to-end community detection duration in seconds",
			Buckets: []float64{0.01, 0.1, 0.5, 1.0, 5.0, 30.0, 120.0, 600.0},
		},
	)

	r.DetectionLevels = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "communities_detection_levels",
			Help:    "Number of coarsening levels accepted per run",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
		},
	)

	r.CommunitiesFound = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "communities_found",
			Help: "Number of communities in the most recent result",
		},
	)

	r.LastModularity = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "communities_last_modularity",
			Help: "Modularity score of the most recently accepted level",
		},
	)
}
