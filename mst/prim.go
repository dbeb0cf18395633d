// SPDX-License-Identifier: MIT

package mst

import (
	"container/heap"

	"github.com/katalvlaran/spanpath/core"
)

// Prim computes a minimum spanning forest by growing one tree at a time
// from a min-heap of frontier edges. Edges are treated as undirected.
//
// Steps:
//  1. Build an undirected incidence list: edge i is reachable from both
//     endpoints. Self-loops are skipped.
//  2. For every vertex r in ascending order that is not yet visited, mark it
//     and push its incident edges; this starts a new tree.
//  3. While the frontier is non-empty: pop the lightest edge; if its far end
//     is visited, drop it; otherwise accept it, mark the far end and push
//     that vertex's incident edges leading outside the tree.
//  4. When the frontier empties the current component is spanned; continue
//     with the next unvisited root.
//
// Accepted edges are returned exactly as they appear in the input.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(edges []core.Edge, n int) []core.Edge {
	// 1. incident[v] lists indices of edges touching v.
	incident := make([][]int, n)
	for i, e := range edges {
		if e.From == e.To {
			continue
		}
		incident[e.From] = append(incident[e.From], i)
		incident[e.To] = append(incident[e.To], i)
	}

	visited := make([]bool, n)
	forest := make([]core.Edge, 0, max(n-1, 0))
	pq := &frontierPQ{}
	heap.Init(pq)

	// push enqueues every edge from v whose other end is still outside the forest.
	push := func(v int) {
		for _, idx := range incident[v] {
			far := edges[idx].To
			if far == v {
				far = edges[idx].From
			}
			if !visited[far] {
				heap.Push(pq, frontierItem{edge: idx, to: far, weight: edges[idx].Weight})
			}
		}
	}

	// 2. One tree per unvisited root.
	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}
		visited[root] = true
		push(root)

		// 3. Grow the tree.
		for pq.Len() > 0 {
			it := heap.Pop(pq).(frontierItem)
			if visited[it.to] {
				// Stale entry: would close a cycle.
				continue
			}
			visited[it.to] = true
			forest = append(forest, edges[it.edge])
			push(it.to)
		}
	}

	return forest
}

// frontierItem is a candidate edge leaving the current tree.
type frontierItem struct {
	edge   int     // index into the input slice
	to     int     // endpoint outside the tree when pushed
	weight float64 // copy of the edge weight for ordering
}

// frontierPQ implements heap.Interface as a min-heap on weight.
// Ties are broken by edge index so runs are reproducible.
type frontierPQ []frontierItem

func (pq frontierPQ) Len() int { return len(pq) }

func (pq frontierPQ) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}

	return pq[i].edge < pq[j].edge
}

func (pq frontierPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push.
func (pq *frontierPQ) Push(x interface{}) { *pq = append(*pq, x.(frontierItem)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *frontierPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
