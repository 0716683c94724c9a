package louvain

// induce builds the coarsened graph for the next level: every community
// of the given partition becomes one vertex, and the weight between two
// community-vertices is the summed weight of all edges between their
// members. Intra-community edges are dropped, so a community with no
// external links disappears from the coarsened graph entirely.
func induce(adj adjacency, partition Partition) (WeightedGraph, error) {
	induced := make(WeightedGraph)
	err := adj.forEachVertex(func(v uint64) error {
		vertexCom := partition[v]
		return adj.forEachNeighbor(v, func(n uint64, weight float64) {
			neighborCom := partition[n]
			if neighborCom == vertexCom {
				return
			}
			row := induced[vertexCom]
			if row == nil {
				row = make(map[uint64]float64)
				induced[vertexCom] = row
			}
			row[neighborCom] += weight
		})
	})
	if err != nil {
		return nil, err
	}
	return induced, nil
}
