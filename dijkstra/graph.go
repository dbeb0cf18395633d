// SPDX-License-Identifier: MIT

package dijkstra

import "github.com/katalvlaran/spanpath/core"

// arc is an outgoing edge stored in an adjacency list.
type arc struct {
	to     int
	weight float64
}

// Graph is a read-only adjacency-list view of a directed edge list,
// suitable for repeated Dijkstra runs from different sources. It is safe
// for concurrent readers.
type Graph struct {
	adj      [][]arc // adj[u] lists arcs u→v in input order
	negative *core.Edge
}

// NewGraph indexes edges by source vertex. The input slice is not retained.
// Indices are trusted; see core.Validate.
// Complexity: O(V + E).
func NewGraph(edges []core.Edge, n int) *Graph {
	g := &Graph{adj: make([][]arc, n)}
	for i, e := range edges {
		if e.Weight < 0 && g.negative == nil {
			neg := edges[i]
			g.negative = &neg
		}
		g.adj[e.From] = append(g.adj[e.From], arc{to: e.To, weight: e.Weight})
	}

	return g
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.adj) }
