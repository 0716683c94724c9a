package louvain

import (
	"github.com/dd0wney/cluso-communities/pkg/graph"
)

// initializeState seeds the level-0 structures from the external store:
// an identity partition (each vertex its own community), the vertex degree
// map, and community degree stats with In=0 and Tot=vertex degree.
//
// Vertices are consumed in stream batches and degrees fetched once per
// batch to amortize store round-trips.
func initializeState(store graph.Store) (Partition, VertexDegrees, CommunityDegrees, uint64, error) {
	count := store.NodeCount()
	partition := make(Partition, count)
	degrees := make(VertexDegrees, count)
	communityDegrees := make(CommunityDegrees, count)

	stream, err := store.OpenVertexStream()
	if err != nil {
		return nil, nil, nil, 0, err
	}

	var degreeBatches uint64
	for !stream.AtEnd() {
		batch := stream.KeyBatch()
		batchDegrees, err := store.Degrees(batch)
		if err != nil {
			return nil, nil, nil, 0, err
		}
		degreeBatches++
		for i, v := range batch {
			partition[v] = v
			degrees[v] = batchDegrees[i]
			communityDegrees[v] = CommunityDegree{Tot: batchDegrees[i]}
		}
		stream.AdvanceBatch()
	}
	return partition, degrees, communityDegrees, degreeBatches, nil
}

// initializeFromGraph seeds the structures for a level backed by an
// in-memory coarsened graph. Returns the identity partition, degree maps,
// the summed vertex degree, and the undirected edge count of the level.
func initializeFromGraph(g WeightedGraph) (Partition, VertexDegrees, CommunityDegrees, float64, float64) {
	partition := make(Partition, len(g))
	degrees := make(VertexDegrees, len(g))
	communityDegrees := make(CommunityDegrees, len(g))

	degreeSum := 0.0
	entries := 0
	for v, neighbors := range g {
		partition[v] = v
		degree := 0.0
		for _, w := range neighbors {
			degree += w
			entries++
		}
		degreeSum += degree
		degrees[v] = degree
		communityDegrees[v] = CommunityDegree{Tot: degree}
	}
	return partition, degrees, communityDegrees, degreeSum, float64(entries) / 2
}
