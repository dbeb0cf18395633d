// SPDX-License-Identifier: MIT
//
// Package bellmanford implements the Bellman-Ford single-source shortest-path
// algorithm over index-addressed edge lists, with negative-cycle detection,
// and the virtual-source potential computation used by Johnson's algorithm.
//
// Pass count
//
//	For a graph of V vertices the relaxation loop performs exactly V-1 full
//	passes over all edges, followed by one detection pass. There is no early
//	exit: the number of passes depends only on V.
//
// Complexity: O(V·E) time, O(V) memory.
package bellmanford

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spanpath/core"
)

// ErrNegativeCycle indicates that a negative-weight cycle is reachable from
// the source, so shortest paths are undefined.
var ErrNegativeCycle = errors.New("bellmanford: negative-weight cycle detected")

// ShortestFrom returns the shortest distance from src to every vertex of the
// n-vertex graph given by edges. Vertices without a path from src are
// Unreachable. If a negative cycle is reachable from src the result is nil
// and the error wraps ErrNegativeCycle.
//
// Indices are trusted; see core.Validate.
func ShortestFrom(edges []core.Edge, n, src int) ([]core.Distance, error) {
	// 1) dist[src] = 0, everything else unreachable.
	dist := make([]core.Distance, n)
	dist[src] = core.Finite(0)

	// 2) Exactly n-1 full passes.
	for pass := 0; pass < n-1; pass++ {
		for _, e := range edges {
			relax(dist, e)
		}
	}

	// 3) Detection pass: anything still relaxable lies on or behind a negative cycle.
	for _, e := range edges {
		if relaxable(dist, e) {
			return nil, fmt.Errorf("%w: edge %d→%d (weight %g) still relaxes after %d passes",
				ErrNegativeCycle, e.From, e.To, e.Weight, max(n-1, 0))
		}
	}

	return dist, nil
}

// Potentials computes Johnson potentials for the n-vertex graph given by
// edges. It augments a private copy of edges with a virtual vertex n and a
// zero-weight edge n→i for every real vertex i, then runs ShortestFrom(n)
// over the n+1 augmented vertices, i.e. exactly n relaxation passes.
//
// The returned slice has n+1 entries; entry n is the virtual vertex (always 0).
// Every entry is finite because the virtual vertex reaches all vertices.
// The caller's slice is never modified.
func Potentials(edges []core.Edge, n int) ([]float64, error) {
	// 1) Augmented copy: original edges followed by n virtual edges.
	virtual := n
	augmented := make([]core.Edge, 0, len(edges)+n)
	augmented = append(augmented, edges...)
	for i := 0; i < n; i++ {
		augmented = append(augmented, core.Edge{From: virtual, To: i, Weight: 0})
	}

	// 2) Bellman-Ford from the virtual vertex over n+1 vertices.
	dist, err := ShortestFrom(augmented, n+1, virtual)
	if err != nil {
		return nil, err
	}

	// 3) Unwrap; reachability of every vertex is guaranteed by construction.
	h := make([]float64, n+1)
	for i, d := range dist {
		v, ok := d.Value()
		if !ok {
			return nil, fmt.Errorf("bellmanford: vertex %d unreachable from virtual source", i)
		}
		h[i] = v
	}

	return h, nil
}

// relaxable reports whether dist[From] is finite and dist[From]+w < dist[To].
func relaxable(dist []core.Distance, e core.Edge) bool {
	if !dist[e.From].Reachable() {
		return false
	}

	return dist[e.From].Add(e.Weight).Less(dist[e.To])
}

// relax applies one relaxation of e.
func relax(dist []core.Distance, e core.Edge) {
	if relaxable(dist, e) {
		dist[e.To] = dist[e.From].Add(e.Weight)
	}
}
