// SPDX-License-Identifier: MIT
//
// Package johnson computes all-pairs shortest paths on graphs whose edge
// weights may be negative, using Johnson's reweighting technique.
//
// Pipeline
//
//	Reweight → NegativeCycleCheck → {Reject | ReweightEdges → PerSourceDijkstra → Unreweight → Done}
//
//  1. Potentials: a virtual vertex n with zero-weight edges to every real
//     vertex is added to a private copy of the edge list, and Bellman-Ford
//     runs from it over the n+1 augmented vertices (exactly n passes plus a
//     detection pass). Because the virtual vertex reaches everything, any
//     negative cycle anywhere in the graph is detected and AllPairs returns
//     ErrNegativeCycle with a nil matrix.
//  2. Reweighting: every original edge (u, v, w) becomes
//     (w + h[u]) - h[v] >= 0. The expression is evaluated in that order so
//     floating-point rounding cannot push a weight below zero.
//  3. Dijkstra from every source over the reweighted graph.
//  4. Unreweighting: d(s, t) = d'(s, t) + h[t] - h[s] for reachable pairs.
//     Unreachable pairs stay Unreachable; no arithmetic is applied to them.
//
// Concurrency
//
//	The per-source runs share only the read-only reweighted graph and write
//	disjoint matrix rows, so WithWorkers(k) fans them out over k goroutines
//	(golang.org/x/sync/errgroup) without changing the result.
//
// Complexity
//
//	O(V·E) for Bellman-Ford plus V Dijkstra runs: O(V·(V+E)·log V) with
//	StrategyHeap or O(V³ + V·E) with StrategyScan. Memory O(V² + E).
//
// Errors
//
//	– ErrNegativeCycle    the graph contains a negative-weight cycle.
//	– ErrNegativeReweight a reweighted edge came out negative (internal invariant).
//	– ErrBadWorkers       WithWorkers was given a value < 1.
//
// Indices are trusted: endpoints outside [0, n) panic. Use core.Validate on
// untrusted input.
package johnson
