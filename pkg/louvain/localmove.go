package louvain

// moveStats summarizes one level's local-move optimization.
type moveStats struct {
	sweeps int
	moves  int
}

// localMove greedily reassigns vertices to neighboring communities until a
// full sweep produces no change. Community degree stats are updated
// incrementally on every accepted move; nothing is recomputed from
// scratch inside the loop.
//
// Returns whether any move was accepted across all sweeps.
func localMove(adj adjacency, partition Partition, degrees VertexDegrees, communityDegrees CommunityDegrees, edgeCount float64) (bool, moveStats, error) {
	improvement := false
	modified := true
	stats := moveStats{}

	// weight from the current vertex into each adjacent community,
	// reused across vertices
	degreeInComs := make(map[uint64]float64)

	for modified {
		modified = false
		stats.sweeps++

		err := adj.forEachVertex(func(v uint64) error {
			vertexDegree := degrees[v]
			vertexCom := partition[v]
			bestDelta := 0.0
			bestCom := vertexCom
			vertexComTot := communityDegrees[vertexCom].Tot

			clear(degreeInComs)
			if err := adj.forEachNeighbor(v, func(n uint64, weight float64) {
				degreeInComs[partition[n]] += weight
			}); err != nil {
				return err
			}
			degreeInOwn := degreeInComs[vertexCom]

			if err := adj.forEachNeighbor(v, func(n uint64, _ float64) {
				neighborCom := partition[n]
				if neighborCom == vertexCom {
					return
				}
				neighborComTot := communityDegrees[neighborCom].Tot
				degreeInNeighbor := degreeInComs[neighborCom]
				delta := (1.0/edgeCount)*(degreeInNeighbor-degreeInOwn) -
					(vertexDegree/(2.0*edgeCount*edgeCount))*
						(vertexDegree+neighborComTot-vertexComTot)

				// strictly greater: equal deltas keep the earlier candidate
				if delta > bestDelta {
					bestDelta = delta
					bestCom = neighborCom
				}
			}); err != nil {
				return err
			}

			if bestCom != vertexCom {
				old := communityDegrees[vertexCom]
				old.Tot -= vertexDegree
				old.In -= 2 * degreeInOwn
				communityDegrees[vertexCom] = old

				next := communityDegrees[bestCom]
				next.Tot += vertexDegree
				next.In += 2 * degreeInComs[bestCom]
				communityDegrees[bestCom] = next

				partition[v] = bestCom
				modified = true
				improvement = true
				stats.moves++
			}
			return nil
		})
		if err != nil {
			return false, stats, err
		}
	}
	return improvement, stats, nil
}
