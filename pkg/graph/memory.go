package graph

import (
	"sync"
)

// DefaultStreamBatchSize is the batch size used by vertex streams unless
// overridden through MemoryStoreOptions.
const DefaultStreamBatchSize = 256

// MemoryStoreOptions configures a MemoryStore.
type MemoryStoreOptions struct {
	StreamBatchSize int // Vertex IDs per stream batch
}

// DefaultMemoryStoreOptions returns the default MemoryStore configuration.
func DefaultMemoryStoreOptions() MemoryStoreOptions {
	return MemoryStoreOptions{
		StreamBatchSize: DefaultStreamBatchSize,
	}
}

// MemoryStore is an in-memory undirected weighted graph implementing Store.
// It is the reference store used by tests and the command-line tools; real
// deployments plug in a storage engine behind the same interface.
type MemoryStore struct {
	mu        sync.RWMutex
	adjacency map[uint64]map[uint64]float64
	keys      []uint64 // insertion order, snapshot basis for streams
	edgeCount uint64
	batchSize int
	closed    bool
}

// NewMemoryStore creates an empty MemoryStore with default options.
func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWith(DefaultMemoryStoreOptions())
}

// NewMemoryStoreWith creates an empty MemoryStore with the given options.
func NewMemoryStoreWith(opts MemoryStoreOptions) *MemoryStore {
	batch := opts.StreamBatchSize
	if batch <= 0 {
		batch = DefaultStreamBatchSize
	}
	return &MemoryStore{
		adjacency: make(map[uint64]map[uint64]float64),
		batchSize: batch,
	}
}

// AddVertex inserts a vertex. Inserting an existing vertex is a no-op.
func (s *MemoryStore) AddVertex(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return vertexError("AddVertex", id, ErrStoreClosed)
	}
	if _, ok := s.adjacency[id]; ok {
		return nil
	}
	s.adjacency[id] = make(map[uint64]float64)
	s.keys = append(s.keys, id)
	return nil
}

// AddEdge inserts an undirected edge between two existing vertices.
// Adding an edge between an already-connected pair accumulates the weight
// onto the existing edge without changing the edge count.
func (s *MemoryStore) AddEdge(from, to uint64, weight float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return streamError("AddEdge", ErrStoreClosed)
	}
	if weight <= 0 {
		return vertexError("AddEdge", from, ErrInvalidWeight)
	}
	fromAdj, ok := s.adjacency[from]
	if !ok {
		return vertexError("AddEdge", from, ErrVertexNotFound)
	}
	toAdj, ok := s.adjacency[to]
	if !ok {
		return vertexError("AddEdge", to, ErrVertexNotFound)
	}

	if _, ok := fromAdj[to]; !ok {
		s.edgeCount++
	}
	fromAdj[to] += weight
	if from != to {
		toAdj[from] += weight
	}
	return nil
}

// Close marks the store closed. Subsequent stream opens fail with
// ErrStoreUnavailable, mimicking a lost store connection.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// NodeCount returns the number of vertices.
func (s *MemoryStore) NodeCount() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uint64(len(s.keys))
}

// EdgeCount returns the number of distinct edges, self-loops included.
func (s *MemoryStore) EdgeCount() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.edgeCount
}

// OpenVertexStream opens a cursor over a snapshot of the current vertex set.
func (s *MemoryStore) OpenVertexStream() (VertexStream, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, streamError("OpenVertexStream", ErrStoreUnavailable)
	}
	keys := make([]uint64, len(s.keys))
	copy(keys, s.keys)
	return &memoryStream{keys: keys, batch: s.batchSize}, nil
}

// Neighbors returns the adjacency entries of the given vertex.
func (s *MemoryStore) Neighbors(id uint64) ([]Neighbor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	adj, ok := s.adjacency[id]
	if !ok {
		return nil, vertexError("Neighbors", id, ErrVertexNotFound)
	}
	neighbors := make([]Neighbor, 0, len(adj))
	for n, w := range adj {
		neighbors = append(neighbors, Neighbor{ID: n, Weight: w})
	}
	return neighbors, nil
}

// Degrees returns the weighted degree of each given vertex. A self-loop
// contributes twice its weight.
func (s *MemoryStore) Degrees(ids []uint64) ([]float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	degrees := make([]float64, len(ids))
	for i, id := range ids {
		adj, ok := s.adjacency[id]
		if !ok {
			return nil, vertexError("Degrees", id, ErrVertexNotFound)
		}
		degree := 0.0
		for n, w := range adj {
			degree += w
			if n == id {
				degree += w
			}
		}
		degrees[i] = degree
	}
	return degrees, nil
}

// memoryStream is a batched cursor over a snapshot of vertex IDs.
type memoryStream struct {
	keys  []uint64
	pos   int
	batch int
}

func (st *memoryStream) SeekToFirst() {
	st.pos = 0
}

func (st *memoryStream) AtEnd() bool {
	return st.pos >= len(st.keys)
}

func (st *memoryStream) Key() uint64 {
	return st.keys[st.pos]
}

func (st *memoryStream) Advance() {
	st.pos++
}

func (st *memoryStream) KeyBatch() []uint64 {
	end := st.pos + st.batch
	if end > len(st.keys) {
		end = len(st.keys)
	}
	return st.keys[st.pos:end]
}

func (st *memoryStream) AdvanceBatch() {
	st.pos += st.batch
	if st.pos > len(st.keys) {
		st.pos = len(st.keys)
	}
}
