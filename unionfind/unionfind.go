// SPDX-License-Identifier: MIT
//
// Package unionfind implements a disjoint-set forest over the integers
// [0, n) with path compression and union by size.
//
// Complexity:
//
//   - New:   O(n) time and memory.
//   - Find:  O(α(n)) amortized; the search is iterative, so adversarial
//     chains cannot exhaust the goroutine stack.
//   - Union: O(α(n)) amortized.
//
// Indices are trusted: passing a value outside [0, n) panics with an index
// error, the same contract as a slice.
package unionfind

// UnionFind tracks a partition of [0, n) into disjoint sets.
// It is not safe for concurrent use.
type UnionFind struct {
	parent []int // parent[x] == x for roots
	size   []int // size[r] is meaningful only for roots
	sets   int   // number of disjoint sets
}

// New creates n singleton sets; every element is its own root with size 1.
func New(n int) *UnionFind {
	uf := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
		sets:   n,
	}
	for i := 0; i < n; i++ {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf
}

// Len returns the number of elements.
func (uf *UnionFind) Len() int { return len(uf.parent) }

// Count returns the current number of disjoint sets.
func (uf *UnionFind) Count() int { return uf.sets }

// Find returns the root of x's set. Every node visited on the way is
// re-pointed directly at the root.
func (uf *UnionFind) Find(x int) int {
	// 1) Walk up to the root.
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}

	// 2) Second pass: compress the whole path onto root.
	for uf.parent[x] != root {
		x, uf.parent[x] = uf.parent[x], root
	}

	return root
}

// Union merges the sets of x and y and reports whether a merge happened.
// The root of the smaller set is attached under the root of the larger one;
// ties attach y's root under x's root.
func (uf *UnionFind) Union(x, y int) bool {
	rx, ry := uf.Find(x), uf.Find(y)
	if rx == ry {
		return false
	}
	if uf.size[rx] < uf.size[ry] {
		rx, ry = ry, rx
	}
	uf.parent[ry] = rx
	uf.size[rx] += uf.size[ry]
	uf.sets--

	return true
}

// Connected reports whether x and y share a set.
func (uf *UnionFind) Connected(x, y int) bool {
	return uf.Find(x) == uf.Find(y)
}

// Size returns the number of elements in x's set.
func (uf *UnionFind) Size(x int) int {
	return uf.size[uf.Find(x)]
}
