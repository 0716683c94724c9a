package graph

// Store is the contract community detection requires from a graph storage
// engine. Implementations are expected to serve graphs too large to fully
// materialize, so vertex iteration goes through a batched stream and degree
// lookups accept whole batches to amortize round-trips.
//
// All methods are blocking; retries are the implementation's concern, not
// the caller's. A failed cursor open surfaces ErrStoreUnavailable, a vertex
// missing between stream and lookup surfaces ErrVertexNotFound.
type Store interface {
	// NodeCount returns the number of vertices in the graph.
	NodeCount() uint64

	// EdgeCount returns the number of distinct edges in the graph.
	EdgeCount() uint64

	// OpenVertexStream opens a restartable cursor over all vertex IDs.
	OpenVertexStream() (VertexStream, error)

	// Neighbors returns the adjacency entries of the given vertex. Each
	// incident edge contributes one entry carrying the edge weight; a
	// self-loop appears once.
	Neighbors(id uint64) ([]Neighbor, error)

	// Degrees returns the weighted degree of each given vertex,
	// positionally aligned with the input. Self-loops count twice.
	Degrees(ids []uint64) ([]float64, error)
}

// Neighbor is one adjacency entry: an adjacent vertex and the weight of
// the connecting edge.
type Neighbor struct {
	ID     uint64
	Weight float64
}

// VertexStream is a restartable cursor over the vertex IDs of a Store.
// Callers may interleave the per-vertex and batched accessors, but the
// cursor position is shared between them.
type VertexStream interface {
	// SeekToFirst rewinds the cursor to the first vertex.
	SeekToFirst()

	// AtEnd reports whether the cursor is exhausted.
	AtEnd() bool

	// Key returns the vertex ID at the cursor.
	Key() uint64

	// Advance moves the cursor forward by one vertex.
	Advance()

	// KeyBatch returns the batch of vertex IDs starting at the cursor.
	KeyBatch() []uint64

	// AdvanceBatch moves the cursor past the current batch.
	AdvanceBatch()
}
