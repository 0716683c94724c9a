package metrics

import (
	"time"
)

// Level modes reported by the optimization engine
const (
	ModeStore  = "store"
	ModeMemory = "memory"
)

// Detection run statuses
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// RecordLevel records one completed local-move optimization level
func (r *Registry) RecordLevel(mode string, sweeps, moves int, duration time.Duration) {
	r.SweepsTotal.WithLabelValues(mode).Add(float64(sweeps))
	r.MovesTotal.WithLabelValues(mode).Add(float64(moves))
	r.LevelDuration.WithLabelValues(mode).Observe(duration.Seconds())
}

// RecordDetection records one finished community detection run
func (r *Registry) RecordDetection(status string, levels, communities int, modularity float64, duration time.Duration) {
	r.DetectionRunsTotal.WithLabelValues(status).Inc()
	r.DetectionDuration.Observe(duration.Seconds())
	if status != StatusCompleted {
		return
	}
	r.DetectionLevels.Observe(float64(levels))
	r.CommunitiesFound.Set(float64(communities))
	r.LastModularity.Set(modularity)
}

// RecordStoreScan records store traffic generated by a Level-0 scan
func (r *Registry) RecordStoreScan(neighborFetches, degreeBatches, streamRestarts uint64) {
	r.StoreNeighborFetchesTotal.Add(float64(neighborFetches))
	r.StoreDegreeBatchesTotal.Add(float64(degreeBatches))
	r.StoreStreamRestartsTotal.Add(float64(streamRestarts))
}
