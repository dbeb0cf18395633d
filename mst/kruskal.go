// SPDX-License-Identifier: MIT

package mst

import (
	"github.com/katalvlaran/spanpath/core"
	"github.com/katalvlaran/spanpath/unionfind"
)

// Kruskal computes a minimum spanning forest of the n-vertex graph given by
// edges. Edges are treated as undirected.
//
// Steps:
//  1. Sort a copy of edges by ascending weight; the caller's slice is untouched.
//  2. Initialize a union-find over [0, n).
//  3. For each edge in order: if its endpoints are in different sets, accept
//     it and union the sets; otherwise it would close a cycle and is dropped.
//  4. Stop early once n-1 edges are accepted (the forest is a single tree).
//
// The result has n - components edges in acceptance order. It is empty,
// never nil, when nothing is accepted.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Kruskal(edges []core.Edge, n int) []core.Edge {
	// 1. Private sorted copy.
	sorted := core.SortedByWeight(edges)

	// 2. Disjoint sets, one per vertex.
	uf := unionfind.New(n)

	// 3. Scan edges cheapest first.
	forest := make([]core.Edge, 0, min(len(sorted), max(n-1, 0)))
	for _, e := range sorted {
		if !uf.Union(e.From, e.To) {
			// Endpoints already connected (includes self-loops).
			continue
		}
		forest = append(forest, e)

		// 4. A spanning tree cannot grow past n-1 edges.
		if len(forest) == n-1 {
			break
		}
	}

	return forest
}
