package louvain

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-communities/pkg/graph"
	"github.com/dd0wney/cluso-communities/pkg/logging"
	"github.com/dd0wney/cluso-communities/pkg/metrics"
)

// ComputeCommunities runs multilevel community detection against the
// given store and returns the mapping from each original vertex ID to its
// final community ID. A negative minModularityGrowth is invalid; zero
// means DefaultMinModularityGrowth.
func ComputeCommunities(store graph.Store, minModularityGrowth float64) (Partition, error) {
	opts := DefaultOptions()
	opts.MinModularityGrowth = minModularityGrowth
	result, err := Detect(store, opts)
	if err != nil {
		return nil, err
	}
	return result.Partition, nil
}

// Detect runs multilevel community detection against the given store.
//
// Level 0 optimizes directly over the store through its batched vertex
// stream; each subsequent level optimizes an in-memory coarsened graph
// whose vertices are the previous level's communities. A level is
// accepted only when it improves modularity by more than the configured
// threshold; the accepted partitions are then flattened into one
// vertex-to-community mapping.
//
// Store failures abort the run unchanged: a cursor that cannot be opened
// surfaces graph.ErrStoreUnavailable, a vertex that disappears mid-scan
// surfaces graph.ErrVertexNotFound. A graph with no edges yields the
// identity partition.
func Detect(store graph.Store, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	log := opts.logger().With(
		logging.Component("louvain"),
		logging.RunID(uuid.NewString()),
	)

	start := time.Now()
	result, err := detect(store, opts, log)
	if err != nil {
		if opts.Metrics != nil {
			opts.Metrics.RecordDetection(metrics.StatusFailed, 0, 0, 0, time.Since(start))
		}
		log.Error("community detection failed", logging.Error(err))
		return nil, err
	}

	if opts.Metrics != nil {
		opts.Metrics.RecordDetection(metrics.StatusCompleted,
			result.Levels, len(result.Communities), result.Modularity, time.Since(start))
	}
	log.Info("community detection finished",
		logging.Int("levels", result.Levels),
		logging.Int("communities", len(result.Communities)),
		logging.Float64("modularity", result.Modularity),
		logging.Duration("duration", time.Since(start)))
	return result, nil
}

func detect(store graph.Store, opts Options, log logging.Logger) (*Result, error) {
	edgeCount := store.EdgeCount()

	partition, degrees, communityDegrees, degreeBatches, err := initializeState(store)
	if err != nil {
		return nil, err
	}
	if len(partition) == 0 {
		log.Info("graph has no vertices")
		return buildResult(Partition{}, 0, 0), nil
	}
	if edgeCount == 0 {
		log.Warn("graph has no edges, returning identity partition",
			logging.Int("vertices", len(partition)))
		return buildResult(partition, 0, 0), nil
	}

	adj := newStoreAdjacency(store)
	levelStart := time.Now()
	moved, stats, err := localMove(adj, partition, degrees, communityDegrees, float64(edgeCount))
	if err != nil {
		return nil, err
	}
	mod := modularity(communityDegrees, float64(edgeCount))
	logLevel(log, opts, metrics.ModeStore, 0, stats, mod, time.Since(levelStart))

	induced, err := induce(adj, partition)
	if err != nil {
		return nil, err
	}
	if opts.Metrics != nil {
		opts.Metrics.RecordStoreScan(adj.neighborFetches, degreeBatches, adj.streamRestarts)
	}

	stack := []Partition{partition}
	for moved && len(induced) > 0 {
		if opts.MaxLevels > 0 && len(stack) >= opts.MaxLevels {
			log.Debug("level cap reached", logging.Int("max_levels", opts.MaxLevels))
			break
		}

		levelPartition, levelDegrees, levelComDegrees, degreeSum, levelEdges := initializeFromGraph(induced)
		levelAdj := memoryAdjacency(induced)

		levelStart = time.Now()
		moved, stats, err = localMove(levelAdj, levelPartition, levelDegrees, levelComDegrees, levelEdges)
		if err != nil {
			return nil, err
		}
		newMod := modularity(levelComDegrees, degreeSum/2)
		logLevel(log, opts, metrics.ModeMemory, len(stack), stats, newMod, time.Since(levelStart))

		if newMod-mod <= opts.growth() {
			log.Debug("level rejected, stopping",
				logging.LevelNum(len(stack)),
				logging.Float64("modularity", newMod),
				logging.Float64("previous", mod))
			break
		}

		induced, err = induce(levelAdj, levelPartition)
		if err != nil {
			return nil, err
		}
		stack = append(stack, levelPartition)
		mod = newMod
	}

	return buildResult(flatten(stack), mod, len(stack)), nil
}

func logLevel(log logging.Logger, opts Options, mode string, level int, stats moveStats, mod float64, elapsed time.Duration) {
	if opts.Metrics != nil {
		opts.Metrics.RecordLevel(mode, stats.sweeps, stats.moves, elapsed)
	}
	log.Debug("level optimized",
		logging.LevelNum(level),
		logging.String("mode", mode),
		logging.Int("sweeps", stats.sweeps),
		logging.Int("moves", stats.moves),
		logging.Float64("modularity", mod),
		logging.Duration("duration", elapsed))
}

// flatten composes the accepted partitions, finest first, into a single
// mapping from original vertex IDs to coarsest-level community IDs.
// A community with no entry at the next-coarser level had no external
// links when that level was induced; its members keep the community ID.
func flatten(stack []Partition) Partition {
	flat := stack[0]
	for _, coarser := range stack[1:] {
		for v, com := range flat {
			if next, ok := coarser[com]; ok {
				flat[v] = next
			}
		}
	}
	return flat
}

func buildResult(flat Partition, mod float64, levels int) *Result {
	members := make(map[uint64][]uint64)
	for v, com := range flat {
		members[com] = append(members[com], v)
	}

	communities := make([]*Community, 0, len(members))
	for com, nodes := range members {
		sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })
		communities = append(communities, &Community{ID: com, Nodes: nodes, Size: len(nodes)})
	}
	sort.Slice(communities, func(i, j int) bool { return communities[i].ID < communities[j].ID })

	return &Result{
		Partition:   flat,
		Communities: communities,
		Modularity:  mod,
		Levels:      levels,
	}
}
