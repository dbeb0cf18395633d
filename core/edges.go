// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"math"
	"sort"
)

// Clone returns a copy of edges that shares no backing array with the input.
// A nil input yields an empty, non-nil slice.
// Complexity: O(E).
func Clone(edges []Edge) []Edge {
	out := make([]Edge, len(edges))
	copy(out, edges)

	return out
}

// SortedByWeight returns a copy of edges ordered by ascending Weight.
// The sort is stable, so equal weights keep their input order; callers must
// not rely on that beyond a single call.
// Complexity: O(E log E).
func SortedByWeight(edges []Edge) []Edge {
	out := Clone(edges)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Weight < out[j].Weight
	})

	return out
}

// Reversed returns a copy of edges with every edge direction flipped.
// Complexity: O(E).
func Reversed(edges []Edge) []Edge {
	out := make([]Edge, len(edges))
	for i, e := range edges {
		out[i] = e.Reversed()
	}

	return out
}

// Undirected returns edges followed by the reverse of each edge, which is
// how an undirected graph is encoded for the shortest-path algorithms.
// Self-loops are not doubled.
// Complexity: O(E).
func Undirected(edges []Edge) []Edge {
	out := make([]Edge, 0, 2*len(edges))
	out = append(out, edges...)
	for _, e := range edges {
		if e.From == e.To {
			continue
		}
		out = append(out, e.Reversed())
	}

	return out
}

// TotalWeight sums the weights of edges.
// Complexity: O(E).
func TotalWeight(edges []Edge) float64 {
	var total float64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}

// Validate checks that n is non-negative, that every endpoint lies in
// [0, n) and that every weight is finite. The first violation is returned,
// wrapped with the offending edge index.
// Complexity: O(E).
func Validate(edges []Edge, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: n=%d", ErrNegativeOrder, n)
	}
	for i, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return fmt.Errorf("%w: edge #%d (%d→%d) with n=%d", ErrVertexRange, i, e.From, e.To, n)
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return fmt.Errorf("%w: edge #%d (%d→%d) weight=%v", ErrBadWeight, i, e.From, e.To, e.Weight)
		}
	}

	return nil
}
