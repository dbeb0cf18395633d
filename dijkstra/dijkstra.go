// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/spanpath/core"
)

// Dijkstra computes shortest distances from src to all vertices of g.
//
// Returns:
//
//   - dist: dist[v] is the shortest distance, or Unreachable.
//   - prev: if ReturnPath is set, prev[v] is the predecessor of v on one
//     shortest path (core.NoVertex for src and unreachable vertices);
//     nil otherwise.
//   - err:  non-nil if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. src must lie in [0, g.Order()) (ErrSourceRange).
//  3. No edge may have a negative weight (ErrNegativeWeight).
//  4. Strategy must be known (ErrUnknownStrategy).
func Dijkstra(g *Graph, src int, opts ...Option) ([]core.Distance, []int, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if src < 0 || src >= g.Order() {
		return nil, nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceRange, src, g.Order())
	}
	if e := g.negative; e != nil {
		return nil, nil, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
	}

	// 3) Prepare runner state.
	n := g.Order()
	r := &runner{
		g:       g,
		dist:    make([]core.Distance, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
	}
	r.dist[src] = core.Finite(0)
	for i := range r.prev {
		r.prev[i] = core.NoVertex
	}

	// 4) Run the selected strategy.
	switch cfg.Strategy {
	case StrategyHeap:
		r.runHeap(src)
	case StrategyScan:
		r.runScan()
	default:
		return nil, nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, cfg.Strategy)
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *Graph          // read-only input
	dist    []core.Distance // best-known distance per vertex
	prev    []int           // predecessor per vertex
	visited []bool          // finalized vertices
	pq      nodePQ          // heap strategy only
}

// runHeap is the heap-driven main loop.
func (r *runner) runHeap(src int) {
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: src, dist: 0})

	for r.pq.Len() > 0 {
		// 1) Extract the closest candidate.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// 2) Lazy decrease-key: skip stale entries.
		if r.visited[u] {
			continue
		}

		// 3) Finalize u and relax its arcs.
		r.visited[u] = true
		r.relax(u, true)
	}
}

// runScan is the O(V²) main loop: each round picks the unvisited vertex with
// the smallest tentative distance by scanning all vertices.
func (r *runner) runScan() {
	n := len(r.dist)
	for round := 0; round < n; round++ {
		// 1) Select the closest unvisited vertex.
		u := -1
		for v := 0; v < n; v++ {
			if r.visited[v] {
				continue
			}
			if u == -1 || r.dist[v].Less(r.dist[u]) {
				u = v
			}
		}

		// 2) Nothing reachable is left.
		if u == -1 || !r.dist[u].Reachable() {
			return
		}

		// 3) Finalize u and relax its arcs.
		r.visited[u] = true
		r.relax(u, false)
	}
}

// relax improves the distances of u's unvisited neighbors through u.
// When push is set, improved vertices are pushed onto the heap.
// Assumes r.dist[u] is finite and final.
func (r *runner) relax(u int, push bool) {
	du := r.dist[u]
	for _, a := range r.g.adj[u] {
		if r.visited[a.to] {
			continue
		}
		cand := du.Add(a.weight)

		// Strict improvement only, to avoid duplicate heap entries on ties.
		if !cand.Less(r.dist[a.to]) {
			continue
		}
		r.dist[a.to] = cand
		r.prev[a.to] = u
		if push {
			d, _ := cand.Value()
			heap.Push(&r.pq, &nodeItem{id: a.to, dist: d})
		}
	}
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int     // vertex index
	dist float64 // tentative distance
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id.
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance; equal distances pop the lower index first.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
