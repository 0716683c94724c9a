package graph

import (
	"errors"
	"testing"
)

// setupTriangle creates a store holding a single unit-weight triangle 1-2-3
func setupTriangle(t *testing.T) *MemoryStore {
	t.Helper()

	store := NewMemoryStore()
	for _, v := range []uint64{1, 2, 3} {
		if err := store.AddVertex(v); err != nil {
			t.Fatalf("AddVertex(%d) failed: %v", v, err)
		}
	}
	for _, e := range [][2]uint64{{1, 2}, {2, 3}, {3, 1}} {
		if err := store.AddEdge(e[0], e[1], 1.0); err != nil {
			t.Fatalf("AddEdge(%d, %d) failed: %v", e[0], e[1], err)
		}
	}
	return store
}

func TestMemoryStore_Empty(t *testing.T) {
	store := NewMemoryStore()

	if store.NodeCount() != 0 {
		t.Errorf("Expected 0 vertices, got %d", store.NodeCount())
	}
	if store.EdgeCount() != 0 {
		t.Errorf("Expected 0 edges, got %d", store.EdgeCount())
	}

	stream, err := store.OpenVertexStream()
	if err != nil {
		t.Fatalf("OpenVertexStream failed: %v", err)
	}
	if !stream.AtEnd() {
		t.Error("Expected empty stream to be at end")
	}
}

func TestMemoryStore_AddVertexIdempotent(t *testing.T) {
	store := NewMemoryStore()

	if err := store.AddVertex(7); err != nil {
		t.Fatalf("AddVertex failed: %v", err)
	}
	if err := store.AddVertex(7); err != nil {
		t.Fatalf("Re-adding vertex failed: %v", err)
	}
	if store.NodeCount() != 1 {
		t.Errorf("Expected 1 vertex, got %d", store.NodeCount())
	}
}

func TestMemoryStore_AddEdge_MissingVertex(t *testing.T) {
	store := NewMemoryStore()
	store.AddVertex(1)

	err := store.AddEdge(1, 99, 1.0)
	if !errors.Is(err, ErrVertexNotFound) {
		t.Errorf("Expected ErrVertexNotFound, got %v", err)
	}

	err = store.AddEdge(99, 1, 1.0)
	if !errors.Is(err, ErrVertexNotFound) {
		t.Errorf("Expected ErrVertexNotFound, got %v", err)
	}
}

func TestMemoryStore_AddEdge_InvalidWeight(t *testing.T) {
	store := NewMemoryStore()
	store.AddVertex(1)
	store.AddVertex(2)

	err := store.AddEdge(1, 2, 0)
	if !errors.Is(err, ErrInvalidWeight) {
		t.Errorf("Expected ErrInvalidWeight, got %v", err)
	}
	err = store.AddEdge(1, 2, -3.0)
	if !errors.Is(err, ErrInvalidWeight) {
		t.Errorf("Expected ErrInvalidWeight, got %v", err)
	}
}

func TestMemoryStore_AddEdge_AccumulatesWeight(t *testing.T) {
	store := NewMemoryStore()
	store.AddVertex(1)
	store.AddVertex(2)

	if err := store.AddEdge(1, 2, 1.5); err != nil {
		t.Fatalf("AddEdge failed: %v", err)
	}
	if err := store.AddEdge(1, 2, 2.5); err != nil {
		t.Fatalf("Second AddEdge failed: %v", err)
	}

	if store.EdgeCount() != 1 {
		t.Errorf("Expected 1 distinct edge, got %d", store.EdgeCount())
	}

	degrees, err := store.Degrees([]uint64{1, 2})
	if err != nil {
		t.Fatalf("Degrees failed: %v", err)
	}
	if degrees[0] != 4.0 || degrees[1] != 4.0 {
		t.Errorf("Expected degrees [4 4], got %v", degrees)
	}
}

func TestMemoryStore_Degrees_SelfLoopCountsTwice(t *testing.T) {
	store := NewMemoryStore()
	store.AddVertex(1)
	store.AddVertex(2)
	store.AddEdge(1, 2, 1.0)
	store.AddEdge(1, 1, 2.0)

	degrees, err := store.Degrees([]uint64{1, 2})
	if err != nil {
		t.Fatalf("Degrees failed: %v", err)
	}
	if degrees[0] != 5.0 {
		t.Errorf("Expected degree 5 for self-looped vertex, got %v", degrees[0])
	}
	if degrees[1] != 1.0 {
		t.Errorf("Expected degree 1, got %v", degrees[1])
	}
}

func TestMemoryStore_Degrees_MissingVertex(t *testing.T) {
	store := setupTriangle(t)

	_, err := store.Degrees([]uint64{1, 42})
	if !errors.Is(err, ErrVertexNotFound) {
		t.Errorf("Expected ErrVertexNotFound, got %v", err)
	}
}

func TestMemoryStore_Neighbors(t *testing.T) {
	store := setupTriangle(t)

	neighbors, err := store.Neighbors(1)
	if err != nil {
		t.Fatalf("Neighbors failed: %v", err)
	}
	if len(neighbors) != 2 {
		t.Fatalf("Expected 2 neighbors, got %d", len(neighbors))
	}
	weights := map[uint64]float64{}
	for _, n := range neighbors {
		weights[n.ID] = n.Weight
	}
	if weights[2] != 1.0 || weights[3] != 1.0 {
		t.Errorf("Expected unit-weight neighbors {2, 3}, got %v", neighbors)
	}

	_, err = store.Neighbors(42)
	if !errors.Is(err, ErrVertexNotFound) {
		t.Errorf("Expected ErrVertexNotFound, got %v", err)
	}
}

func TestMemoryStore_Neighbors_SelfLoopAppearsOnce(t *testing.T) {
	store := NewMemoryStore()
	store.AddVertex(1)
	store.AddEdge(1, 1, 1.0)

	neighbors, err := store.Neighbors(1)
	if err != nil {
		t.Fatalf("Neighbors failed: %v", err)
	}
	if len(neighbors) != 1 || neighbors[0].ID != 1 {
		t.Errorf("Expected self-loop to appear once, got %v", neighbors)
	}
}

func TestMemoryStore_Neighbors_CarriesAccumulatedWeight(t *testing.T) {
	store := NewMemoryStore()
	store.AddVertex(1)
	store.AddVertex(2)
	store.AddEdge(1, 2, 1.5)
	store.AddEdge(1, 2, 2.5)

	neighbors, err := store.Neighbors(1)
	if err != nil {
		t.Fatalf("Neighbors failed: %v", err)
	}
	if len(neighbors) != 1 || neighbors[0].ID != 2 || neighbors[0].Weight != 4.0 {
		t.Errorf("Expected single neighbor 2 with weight 4, got %v", neighbors)
	}
}

func TestMemoryStore_StreamBatches(t *testing.T) {
	store := NewMemoryStoreWith(MemoryStoreOptions{StreamBatchSize: 2})
	for v := uint64(1); v <= 5; v++ {
		store.AddVertex(v)
	}

	stream, err := store.OpenVertexStream()
	if err != nil {
		t.Fatalf("OpenVertexStream failed: %v", err)
	}

	var batches [][]uint64
	for !stream.AtEnd() {
		batch := stream.KeyBatch()
		copied := make([]uint64, len(batch))
		copy(copied, batch)
		batches = append(batches, copied)
		stream.AdvanceBatch()
	}

	if len(batches) != 3 {
		t.Fatalf("Expected 3 batches, got %d", len(batches))
	}
	if len(batches[0]) != 2 || len(batches[1]) != 2 || len(batches[2]) != 1 {
		t.Errorf("Expected batch sizes [2 2 1], got %v", batches)
	}

	// Restart and walk vertex-by-vertex in insertion order
	stream.SeekToFirst()
	var keys []uint64
	for !stream.AtEnd() {
		keys = append(keys, stream.Key())
		stream.Advance()
	}
	for i, want := range []uint64{1, 2, 3, 4, 5} {
		if keys[i] != want {
			t.Errorf("Position %d: expected %d, got %d", i, want, keys[i])
		}
	}
}

func TestMemoryStore_StreamSnapshotIgnoresLaterAdds(t *testing.T) {
	store := setupTriangle(t)

	stream, err := store.OpenVertexStream()
	if err != nil {
		t.Fatalf("OpenVertexStream failed: %v", err)
	}
	store.AddVertex(100)

	count := 0
	for !stream.AtEnd() {
		count++
		stream.Advance()
	}
	if count != 3 {
		t.Errorf("Expected snapshot of 3 vertices, got %d", count)
	}
}

func TestMemoryStore_ClosedStore(t *testing.T) {
	store := setupTriangle(t)
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	_, err := store.OpenVertexStream()
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("Expected ErrStoreUnavailable, got %v", err)
	}

	if err := store.AddVertex(4); !errors.Is(err, ErrStoreClosed) {
		t.Errorf("Expected ErrStoreClosed, got %v", err)
	}
}

func TestStoreError_Format(t *testing.T) {
	err := vertexError("Neighbors", 42, ErrVertexNotFound)

	want := "Neighbors vertex 42: vertex not found"
	if err.Error() != want {
		t.Errorf("Expected %q, got %q", want, err.Error())
	}
	if !errors.Is(err, ErrVertexNotFound) {
		t.Error("Expected error to match ErrVertexNotFound")
	}

	var storeErr *StoreError
	if !errors.As(err, &storeErr) {
		t.Fatal("Expected error to be a *StoreError")
	}
	if storeErr.Op != "Neighbors" || storeErr.ID != 42 {
		t.Errorf("Unexpected structured fields: %+v", storeErr)
	}
}
