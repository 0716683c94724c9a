package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/dd0wney/cluso-communities/pkg/graph"
	"github.com/dd0wney/cluso-communities/pkg/logging"
	"github.com/dd0wney/cluso-communities/pkg/louvain"
)

// output is the JSON document written to stdout.
type output struct {
	Communities int               `json:"communities"`
	Levels      int               `json:"levels"`
	Modularity  float64           `json:"modularity"`
	Membership  map[string]uint64 `json:"membership"`
}

func main() {
	graphPath := flag.String("graph", "", "Edge list file: one 'from to [weight]' per line")
	configPath := flag.String("config", "", "Optional YAML configuration file")
	flag.Parse()

	if *graphPath == "" {
		fmt.Fprintln(os.Stderr, "usage: louvain -graph <edge-list> [-config <file>]")
		os.Exit(2)
	}

	cfg := DefaultConfig()
	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	storeOpts := graph.DefaultMemoryStoreOptions()
	if cfg.StreamBatchSize > 0 {
		storeOpts.StreamBatchSize = cfg.StreamBatchSize
	}
	store, err := loadEdgeList(*graphPath, storeOpts)
	if err != nil {
		log.Fatalf("Failed to load graph: %v", err)
	}

	opts := louvain.DefaultOptions()
	opts.MinModularityGrowth = cfg.MinModularityGrowth
	opts.MaxLevels = cfg.MaxLevels
	opts.Logger = logging.NewJSONLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))

	result, err := louvain.Detect(store, opts)
	if err != nil {
		log.Fatalf("Detection failed: %v", err)
	}

	doc := output{
		Communities: len(result.Communities),
		Levels:      result.Levels,
		Modularity:  result.Modularity,
		Membership:  make(map[string]uint64, len(result.Partition)),
	}
	for v, com := range result.Partition {
		doc.Membership[strconv.FormatUint(v, 10)] = com
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		log.Fatalf("Failed to write result: %v", err)
	}
}

// loadEdgeList builds a MemoryStore from a whitespace-separated edge list.
// Vertices are created on first sight; blank lines and '#' comments are
// skipped.
func loadEdgeList(path string, opts graph.MemoryStoreOptions) (*graph.MemoryStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	store := graph.NewMemoryStoreWith(opts)
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected 'from to [weight]', got %q", line, text)
		}

		from, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad vertex %q: %w", line, fields[0], err)
		}
		to, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad vertex %q: %w", line, fields[1], err)
		}
		weight := 1.0
		if len(fields) >= 3 {
			weight, err = strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad weight %q: %w", line, fields[2], err)
			}
		}

		if err := store.AddVertex(from); err != nil {
			return nil, err
		}
		if err := store.AddVertex(to); err != nil {
			return nil, err
		}
		if err := store.AddEdge(from, to, weight); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return store, nil
}
