// SPDX-License-Identifier: MIT

package mst

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spanpath/core"
)

// ErrUnknownMethod indicates that Compute was asked for an algorithm it does not know.
var ErrUnknownMethod = errors.New("mst: unknown method")

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MethodPrim selects Prim's algorithm (grow trees from a min-heap frontier).
const MethodPrim = "prim"

// MSTOptions configures which spanning-forest algorithm Compute runs.
// Use DefaultOptions() to get a default setup (Kruskal).
type MSTOptions struct {
	// Method to use: MethodKruskal or MethodPrim.
	Method string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodKruskal, MethodPrim.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Forest is a minimum spanning forest together with its summary figures.
type Forest struct {
	// Edges are the accepted edges in the order the algorithm accepted them.
	Edges []core.Edge

	// Weight is the sum of Edges' weights.
	Weight float64

	// Components is the number of connected components (trees, counting
	// isolated vertices). len(Edges) == n - Components.
	Components int
}

// Compute selects and runs the spanning-forest algorithm based on opts.
//
//	– MethodKruskal: Kruskal(edges, n).
//	– MethodPrim:    Prim(edges, n).
//	– otherwise:     ErrUnknownMethod.
//
// Complexity: that of the selected algorithm.
func Compute(edges []core.Edge, n int, opts ...Option) (Forest, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var forest []core.Edge
	switch cfg.Method {
	case MethodKruskal:
		forest = Kruskal(edges, n)
	case MethodPrim:
		forest = Prim(edges, n)
	default:
		return Forest{}, fmt.Errorf("%w: %q", ErrUnknownMethod, cfg.Method)
	}

	return Forest{
		Edges:      forest,
		Weight:     core.TotalWeight(forest),
		Components: n - len(forest),
	}, nil
}
