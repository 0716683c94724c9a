package louvain

import (
	"github.com/dd0wney/cluso-communities/pkg/graph"
)

// adjacency abstracts neighbor access for one optimization level, so the
// local-move engine and the graph inducer run unchanged whether the level
// is backed by the external store or by an in-memory coarsened graph.
//
// forEachNeighbor may be invoked several times in a row for the same
// vertex; implementations should make repeated access cheap.
type adjacency interface {
	// forEachVertex visits every vertex of the level once, in the
	// implementation's scan order.
	forEachVertex(fn func(v uint64) error) error

	// forEachNeighbor visits every neighbor of v with its edge weight.
	forEachNeighbor(v uint64, fn func(n uint64, weight float64)) error
}

// storeAdjacency scans the external store. Edge weights come from the
// store's adjacency entries; the cursor is reopened lazily and rewound
// per scan.
type storeAdjacency struct {
	store  graph.Store
	stream graph.VertexStream

	// one-entry neighbor cache: the engine reads the same vertex's
	// neighbors twice per sweep (tally pass, then candidate pass)
	cachedVertex uint64
	cachedValid  bool
	cached       []graph.Neighbor

	neighborFetches uint64
	streamRestarts  uint64
}

func newStoreAdjacency(store graph.Store) *storeAdjacency {
	return &storeAdjacency{store: store}
}

func (a *storeAdjacency) forEachVertex(fn func(v uint64) error) error {
	if a.stream == nil {
		stream, err := a.store.OpenVertexStream()
		if err != nil {
			return err
		}
		a.stream = stream
	} else {
		a.stream.SeekToFirst()
	}
	a.streamRestarts++

	for !a.stream.AtEnd() {
		if err := fn(a.stream.Key()); err != nil {
			return err
		}
		a.stream.Advance()
	}
	return nil
}

func (a *storeAdjacency) forEachNeighbor(v uint64, fn func(n uint64, weight float64)) error {
	if !a.cachedValid || a.cachedVertex != v {
		neighbors, err := a.store.Neighbors(v)
		if err != nil {
			return err
		}
		a.cached = neighbors
		a.cachedVertex = v
		a.cachedValid = true
		a.neighborFetches++
	}
	for _, n := range a.cached {
		fn(n.ID, n.Weight)
	}
	return nil
}

// memoryAdjacency scans an in-memory coarsened graph. No I/O, no errors.
type memoryAdjacency WeightedGraph

func (a memoryAdjacency) forEachVertex(fn func(v uint64) error) error {
	for v := range a {
		if err := fn(v); err != nil {
			return err
		}
	}
	return nil
}

func (a memoryAdjacency) forEachNeighbor(v uint64, fn func(n uint64, weight float64)) error {
	for n, w := range a[v] {
		fn(n, w)
	}
	return nil
}
