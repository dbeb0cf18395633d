// SPDX-License-Identifier: MIT
//
// Package mst builds minimum spanning forests over index-addressed edge
// lists with Kruskal's and Prim's algorithms.
//
// What & Why
//
//   - A minimum spanning forest connects every connected component of a
//     weighted graph into a tree using the cheapest possible edge set. On a
//     connected graph it is the familiar minimum spanning tree; on a
//     disconnected graph it has one tree per component and exactly
//     n - components edges. A disconnected input is NOT an error here.
//
//   - Edges are treated as undirected for spanning purposes: (u, v, w) joins
//     u and v regardless of the order in which they are written. Self-loops
//     never enter a forest. Negative weights are fine.
//
// Algorithms Provided
//
//   - Kruskal(edges, n) []core.Edge
//
//   - Strategy: sort a private copy of the edges by weight and accept an
//     edge whenever its endpoints lie in different unionfind sets.
//
//   - Order: accepted edges are returned in acceptance order, i.e.
//     ascending weight. Among equal weights the order is unspecified.
//
//   - Complexity: O(E log E + E·α(V)) time, O(V + E) memory.
//
//   - Prim(edges, n) []core.Edge
//
//   - Strategy: grow a tree with a min-heap of frontier edges from the
//     lowest unvisited vertex, and restart from the next unvisited vertex
//     when the frontier empties, so the result is still a forest.
//
//   - Complexity: O(E log E) time, O(V + E) memory.
//
//   - Compute(edges, n, opts...) (Forest, error)
//     Dispatches on MSTOptions.Method and reports total weight and the
//     number of connected components alongside the edges.
//
// The input slice is never mutated, so Kruskal may run concurrently with
// any other reader of the same edges (for example johnson.AllPairs).
//
// Errors
//
//   - ErrUnknownMethod: Compute was given a method other than MethodKruskal
//     or MethodPrim.
//
// Indices are trusted: endpoints outside [0, n) panic. Use core.Validate on
// untrusted input.
package mst
