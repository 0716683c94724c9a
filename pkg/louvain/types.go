package louvain

// Partition maps each vertex ID to its community ID. At level 0 the keys
// are original vertex IDs; at higher levels they are community IDs from
// the previous level. Mutated in place during local moves, replaced
// wholesale at level transitions.
type Partition map[uint64]uint64

// VertexDegrees maps vertex ID to weighted degree. Built once per level,
// read-only during that level's optimization.
type VertexDegrees map[uint64]float64

// CommunityDegree tracks the degree statistics of one community.
type CommunityDegree struct {
	In  float64 // Twice the summed weight of edges internal to the community
	Tot float64 // Summed degree of member vertices
}

// CommunityDegrees maps community ID to its degree statistics. Updated
// incrementally on every accepted move, never recomputed mid-level.
type CommunityDegrees map[uint64]CommunityDegree

// WeightedGraph is an in-memory adjacency representation of a coarsened
// graph: vertex ID to neighbor ID to aggregated edge weight. Immutable
// during a level's optimization.
type WeightedGraph map[uint64]map[uint64]float64

// Community is one detected community in a final result.
type Community struct {
	ID    uint64   // Community ID (a representative vertex from the coarsest level)
	Nodes []uint64 // Original vertex IDs belonging to the community
	Size  int
}

// Result contains the outcome of a community detection run.
type Result struct {
	Partition   Partition    // Original vertex ID -> final community ID
	Communities []*Community // Grouped view of Partition
	Modularity  float64      // Score of the last accepted level
	Levels      int          // Number of accepted coarsening levels
}
