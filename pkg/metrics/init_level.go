package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initLevelMetrics() {
	r.SweepsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "communities_sweeps_total",
			Help: "Total number of local-move sweeps performed",
		},
		[]string{"mode"},
	)

	r.MovesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "communities_moves_total",
			Help: "Total number of accepted vertex moves",
		},
		[]string{"mode"},
	)

	r.LevelDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "communities_level_duration_seconds",
			Help:    "Per-level local-move optimization duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1.0, 5.0, 30.0, 120.0},
		},
		[]string{"mode"},
	)
}

func (r *Registry) initStoreMetrics() {
	r.StoreNeighborFetchesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "communities_store_neighbor_fetches_total",
			Help: "Total number of neighbor list fetches issued to the graph store",
		},
	)

	r.StoreDegreeBatchesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "communities_store_degree_batches_total",
			Help: "Total number of batched degree lookups issued to the graph store",
		},
	)

	r.StoreStreamRestartsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "communities_store_stream_restarts_total",
			Help: "Total number of vertex stream restarts (one per Level-0 sweep)",
		},
	)
}
