// SPDX-License-Identifier: MIT

package johnson

import (
	"errors"

	"github.com/katalvlaran/spanpath/bellmanford"
	"github.com/katalvlaran/spanpath/dijkstra"
)

// Sentinel errors returned by AllPairs.
var (
	// ErrNegativeCycle indicates that the graph contains a negative-weight
	// cycle, so no shortest paths exist. It is the same value as
	// bellmanford.ErrNegativeCycle.
	ErrNegativeCycle = bellmanford.ErrNegativeCycle

	// ErrNegativeReweight indicates that an edge remained negative after
	// reweighting. This cannot happen for valid input and signals a bug.
	ErrNegativeReweight = errors.New("johnson: reweighted edge is negative")

	// ErrBadWorkers indicates a worker count below 1.
	ErrBadWorkers = errors.New("johnson: workers must be >= 1")
)

// Options configures AllPairs.
//
// Workers  – number of goroutines running per-source Dijkstra. Default 1.
// Strategy – Dijkstra vertex-selection strategy. Default StrategyHeap.
// Paths    – record predecessors so DistanceMatrix.Path works. Default false.
type Options struct {
	Workers  int
	Strategy dijkstra.Strategy
	Paths    bool
}

// Option represents a functional option for configuring AllPairs.
type Option func(*Options)

// WithWorkers sets the number of goroutines used for the per-source runs.
func WithWorkers(k int) Option {
	return func(o *Options) {
		o.Workers = k
	}
}

// WithStrategy selects the Dijkstra strategy used for every source.
func WithStrategy(s dijkstra.Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithPaths enables predecessor tracking in the returned matrix.
func WithPaths() Option {
	return func(o *Options) {
		o.Paths = true
	}
}

// DefaultOptions returns Options with a single worker, the heap strategy and
// no predecessor tracking.
func DefaultOptions() Options {
	return Options{
		Workers:  1,
		Strategy: dijkstra.StrategyHeap,
		Paths:    false,
	}
}
