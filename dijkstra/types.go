// SPDX-License-Identifier: MIT
//
// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on index-addressed graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
//
// Strategies:
//
//	– StrategyHeap: binary min-heap with lazy decrease-key.
//	   • Time:  O((V + E) log V)
//	   • Space: O(V + E) (stale heap entries)
//	– StrategyScan: linear scan for the closest unvisited vertex.
//	   • Time:  O(V² + E)
//	   • Space: O(V)
//	   Preferable on small or dense graphs.
//
// Both strategies produce identical distances. When several shortest paths
// tie, the recorded predecessors may differ between strategies.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrSourceRange     if the source lies outside [0, V).
//	– ErrNegativeWeight  if the graph holds a negative edge weight.
//	– ErrUnknownStrategy if Options.Strategy is not a known Strategy.
//
// Example usage:
//
//	g := dijkstra.NewGraph(edges, n)
//	dist, prev, err := dijkstra.Dijkstra(g, 0, dijkstra.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(dist[3], prev[3])
package dijkstra

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceRange indicates that the source index is outside [0, V).
	ErrSourceRange = errors.New("dijkstra: source vertex out of range")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrUnknownStrategy indicates an unsupported Strategy value.
	ErrUnknownStrategy = errors.New("dijkstra: unknown strategy")
)

// Strategy selects how the next closest vertex is found.
type Strategy int

const (
	// StrategyHeap uses a binary heap (lazy decrease-key).
	StrategyHeap Strategy = iota

	// StrategyScan scans all unvisited vertices linearly.
	StrategyScan
)

// String returns "heap" or "scan".
func (s Strategy) String() string {
	switch s {
	case StrategyHeap:
		return "heap"
	case StrategyScan:
		return "scan"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "heap" or "scan" (case-insensitive) to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "heap", "":
		return StrategyHeap, nil
	case "scan":
		return StrategyScan, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Strategy   – how the next vertex is selected. Default StrategyHeap.
// ReturnPath – if true, return the predecessor slice; otherwise prev is nil.
type Options struct {
	Strategy   Strategy // vertex-selection strategy
	ReturnPath bool     // whether to return the predecessor slice
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithStrategy sets the vertex-selection strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithReturnPath enables generation of the predecessor slice in the result.
// If not set, the predecessor slice is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// DefaultOptions returns Options initialized with the defaults:
//   - Strategy:   StrategyHeap.
//   - ReturnPath: false.
func DefaultOptions() Options {
	return Options{
		Strategy:   StrategyHeap,
		ReturnPath: false,
	}
}
