package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/dd0wney/cluso-communities/pkg/graph"
	"github.com/dd0wney/cluso-communities/pkg/logging"
	"github.com/dd0wney/cluso-communities/pkg/louvain"
	"github.com/dd0wney/cluso-communities/pkg/metrics"
)

func main() {
	vertices := flag.Int("vertices", 10000, "Number of vertices to create")
	clusters := flag.Int("clusters", 50, "Number of planted clusters")
	degree := flag.Int("degree", 8, "Average vertex degree")
	mixing := flag.Float64("mixing", 0.1, "Fraction of edges crossing cluster boundaries")
	seed := flag.Int64("seed", 42, "Random seed")
	verbose := flag.Bool("verbose", false, "Log per-level progress")
	flag.Parse()

	fmt.Printf("🔥 Cluso Communities - Louvain Benchmark\n")
	fmt.Printf("========================================\n\n")
	fmt.Printf("Configuration:\n")
	fmt.Printf("  Vertices: %d\n", *vertices)
	fmt.Printf("  Planted clusters: %d\n", *clusters)
	fmt.Printf("  Average degree: %d\n", *degree)
	fmt.Printf("  Mixing fraction: %.2f\n\n", *mixing)

	rng := rand.New(rand.NewSource(*seed))

	// Build a planted-partition graph: dense inside clusters, sparse across
	fmt.Printf("📝 Building graph...\n")
	start := time.Now()

	store := graph.NewMemoryStore()
	for i := 0; i < *vertices; i++ {
		if err := store.AddVertex(uint64(i + 1)); err != nil {
			log.Fatalf("Failed to add vertex: %v", err)
		}
	}

	clusterSize := *vertices / *clusters
	if clusterSize < 2 {
		log.Fatalf("Need at least 2 vertices per cluster, got %d", clusterSize)
	}
	clusterOf := func(v int) int { return v % *clusters }
	sameClusterPeer := func(v int) int {
		for {
			peer := clusterOf(v) + *clusters*rng.Intn(clusterSize)
			if peer != v && peer < *vertices {
				return peer
			}
		}
	}

	edgeTarget := *vertices * *degree / 2
	created := 0
	for created < edgeTarget {
		from := rng.Intn(*vertices)
		var to int
		if rng.Float64() < *mixing {
			to = rng.Intn(*vertices)
			if to == from {
				continue
			}
		} else {
			to = sameClusterPeer(from)
		}
		if err := store.AddEdge(uint64(from+1), uint64(to+1), 1.0); err != nil {
			log.Fatalf("Failed to add edge: %v", err)
		}
		created++
	}

	fmt.Printf("✅ Built %d vertices / %d edges in %v\n\n",
		store.NodeCount(), store.EdgeCount(), time.Since(start))

	// Run detection
	fmt.Printf("📊 Running community detection...\n")
	opts := louvain.DefaultOptions()
	opts.Metrics = metrics.DefaultRegistry()
	if *verbose {
		logger := logging.NewJSONLogger(os.Stderr, logging.DebugLevel)
		opts.Logger = logger
	}

	start = time.Now()
	result, err := louvain.Detect(store, opts)
	if err != nil {
		log.Fatalf("Detection failed: %v", err)
	}
	elapsed := time.Since(start)

	fmt.Printf("✅ Detection completed in %v\n", elapsed)
	fmt.Printf("  Levels: %d\n", result.Levels)
	fmt.Printf("  Communities: %d (planted: %d)\n", len(result.Communities), *clusters)
	fmt.Printf("  Modularity: %.6f\n", result.Modularity)

	largest := 0
	for _, c := range result.Communities {
		if c.Size > largest {
			largest = c.Size
		}
	}
	fmt.Printf("  Largest community: %d vertices\n", largest)
	fmt.Printf("  Throughput: %.0f vertices/sec\n",
		float64(*vertices)/elapsed.Seconds())
}
