// SPDX-License-Identifier: MIT
//
// Package spanpath computes minimum spanning forests and all-pairs shortest
// paths over index-addressed weighted graphs.
//
// A graph is a vertex count n plus a list of core.Edge values whose
// endpoints lie in [0, n). The same edge list feeds both analyses:
//
//	unionfind/   disjoint sets with path compression and union by size
//	mst/         Kruskal and Prim minimum spanning forests
//	bellmanford/ single-source distances and Johnson potentials
//	dijkstra/    heap and scan Dijkstra over non-negative arcs
//	johnson/     all-pairs shortest paths with negative-cycle detection
//	edgelist/    plain-text graph reader and result writers
//	core/        Edge, Distance and DistanceMatrix
//
// Quick example:
//
//	    0 ──1── 1
//	    │       │
//	   10       2
//	    │       │
//	    3 ──1── 2
//
//	forest := mst.Kruskal(edges, 4)           // 0-1, 2-3, 1-2; weight 4
//	m, err := johnson.AllPairs(edges, 4)      // d(0,3) = 4 via 1 and 2
//
// The spanpath command (cmd/spanpath) wraps both behind solve, mst and
// paths subcommands.
//
//	go install github.com/katalvlaran/spanpath/cmd/spanpath@latest
package spanpath
