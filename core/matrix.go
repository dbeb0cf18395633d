// SPDX-License-Identifier: MIT

package core

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// NoVertex marks a missing predecessor.
const NoVertex = -1

// DistanceMatrix is a dense n×n table of shortest-path distances.
// Row i holds the distances from source i. Optionally it also records, for
// each (source, target) pair, the predecessor of target on one shortest
// path, which is enough to rebuild that path.
//
// A DistanceMatrix is written by a single producer (each row by at most one
// goroutine) and is read-only afterwards.
type DistanceMatrix struct {
	n    int
	dist []Distance // row-major, len n*n
	prev []int      // row-major predecessors, nil unless tracked
}

// NewDistanceMatrix allocates an n×n matrix with Finite(0) on the diagonal
// and Unreachable elsewhere. When withPaths is true every predecessor
// starts as NoVertex.
// Complexity: O(n²).
func NewDistanceMatrix(n int, withPaths bool) *DistanceMatrix {
	m := &DistanceMatrix{n: n, dist: make([]Distance, n*n)}
	for i := 0; i < n; i++ {
		m.dist[i*n+i] = Finite(0)
	}
	if withPaths {
		m.prev = make([]int, n*n)
		for i := range m.prev {
			m.prev[i] = NoVertex
		}
	}

	return m
}

// Size returns n.
func (m *DistanceMatrix) Size() int { return m.n }

// At returns the distance from i to j. Indices must lie in [0, n).
func (m *DistanceMatrix) At(i, j int) Distance { return m.dist[i*m.n+j] }

// Set stores the distance from i to j.
func (m *DistanceMatrix) Set(i, j int, d Distance) { m.dist[i*m.n+j] = d }

// Row returns a copy of the distances from source i.
func (m *DistanceMatrix) Row(i int) []Distance {
	out := make([]Distance, m.n)
	copy(out, m.dist[i*m.n:(i+1)*m.n])

	return out
}

// HasPaths reports whether predecessors were recorded.
func (m *DistanceMatrix) HasPaths() bool { return m.prev != nil }

// SetPredecessor records p as the vertex preceding j on the path from i.
// It is a no-op when predecessors are not tracked.
func (m *DistanceMatrix) SetPredecessor(i, j, p int) {
	if m.prev == nil {
		return
	}
	m.prev[i*m.n+j] = p
}

// Predecessor returns the vertex preceding j on the recorded path from i,
// or NoVertex.
func (m *DistanceMatrix) Predecessor(i, j int) int {
	if m.prev == nil {
		return NoVertex
	}

	return m.prev[i*m.n+j]
}

// Path rebuilds the vertex sequence of a shortest path from i to j,
// both endpoints included. It returns false when j is unreachable from i or
// when predecessors were not tracked.
// Complexity: O(n).
func (m *DistanceMatrix) Path(i, j int) ([]int, bool) {
	if m.prev == nil || !m.At(i, j).Reachable() {
		return nil, false
	}
	if i == j {
		return []int{i}, true
	}

	// Walk predecessors back from j; a shortest path never repeats a vertex,
	// so more than n steps means the table is inconsistent.
	rev := []int{j}
	for v := j; v != i; {
		v = m.prev[i*m.n+v]
		if v == NoVertex || len(rev) > m.n {
			return nil, false
		}
		rev = append(rev, v)
	}
	for l, r := 0, len(rev)-1; l < r; l, r = l+1, r-1 {
		rev[l], rev[r] = rev[r], rev[l]
	}

	return rev, true
}

// Dense exports the matrix as a gonum *mat.Dense with +Inf for unreachable
// pairs, the convention used by gonum's graph/path package.
// An empty matrix yields nil because gonum rejects zero-sized matrices.
// Complexity: O(n²).
func (m *DistanceMatrix) Dense() *mat.Dense {
	if m.n == 0 {
		return nil
	}
	data := make([]float64, len(m.dist))
	for k, d := range m.dist {
		if v, ok := d.Value(); ok {
			data[k] = v
		} else {
			data[k] = math.Inf(1)
		}
	}

	return mat.NewDense(m.n, m.n, data)
}
