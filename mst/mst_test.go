// SPDX-License-Identifier: MIT

package mst_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/spanpath/core"
	"github.com/katalvlaran/spanpath/mst"
	"github.com/katalvlaran/spanpath/unionfind"
)

// buildSquare returns 4 vertices with edges 0-1 (1), 1-2 (2), 2-3 (1), 0-3 (10).
// Its MST is {0-1, 1-2, 2-3} with total weight 4.
func buildSquare() []core.Edge {
	return []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 2},
		{From: 2, To: 3, Weight: 1},
		{From: 0, To: 3, Weight: 10},
	}
}

// buildRandomGraph creates a graph with n vertices and up to m edges on
// distinct unordered vertex pairs, with weights in [-10, 40). No self-loops,
// so the result is also a valid gonum simple graph.
func buildRandomGraph(r *rand.Rand, n, m int) []core.Edge {
	type pair struct{ u, v int }
	seen := make(map[pair]bool)
	edges := make([]core.Edge, 0, m)
	for tries := 0; len(edges) < m && tries < 10*m; tries++ {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		key := pair{min(u, v), max(u, v)}
		if seen[key] {
			continue
		}
		seen[key] = true
		edges = append(edges, core.Edge{From: u, To: v, Weight: float64(r.Intn(50) - 10)})
	}

	return edges
}

// components counts connected components of the undirected view of edges.
func components(edges []core.Edge, n int) int {
	uf := unionfind.New(n)
	for _, e := range edges {
		uf.Union(e.From, e.To)
	}

	return uf.Count()
}

// assertForest checks that forest is acyclic and has n - components(input) edges.
func assertForest(t *testing.T, input, forest []core.Edge, n int) {
	t.Helper()
	uf := unionfind.New(n)
	for _, e := range forest {
		assert.True(t, uf.Union(e.From, e.To), "edge %v closes a cycle", e)
	}
	assert.Len(t, forest, n-components(input, n))
}

func TestKruskal_Square(t *testing.T) {
	edges := buildSquare()
	forest := mst.Kruskal(edges, 4)

	want := []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 2, To: 3, Weight: 1},
		{From: 1, To: 2, Weight: 2},
	}
	assert.ElementsMatch(t, want, forest)
	assert.Equal(t, 4.0, core.TotalWeight(forest))

	// Acceptance order is ascending weight.
	for i := 1; i < len(forest); i++ {
		assert.LessOrEqual(t, forest[i-1].Weight, forest[i].Weight)
	}

	// The caller's slice is untouched.
	if diff := cmp.Diff(buildSquare(), edges); diff != "" {
		t.Fatalf("input mutated (-want +got):\n%s", diff)
	}
}

func TestKruskal_DisconnectedIsForest(t *testing.T) {
	// 3 vertices, only 0-1; vertex 2 is isolated.
	edges := []core.Edge{{From: 0, To: 1, Weight: 5}}
	forest := mst.Kruskal(edges, 3)
	assert.Equal(t, []core.Edge{{From: 0, To: 1, Weight: 5}}, forest)

	f, err := mst.Compute(edges, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, f.Components)
	assert.Equal(t, 5.0, f.Weight)
}

func TestKruskal_Degenerate(t *testing.T) {
	assert.Empty(t, mst.Kruskal(nil, 0))
	assert.NotNil(t, mst.Kruskal(nil, 0))
	assert.Empty(t, mst.Kruskal(nil, 1))
	assert.Empty(t, mst.Kruskal(nil, 5), "no edges: every vertex is its own tree")

	// Self-loops and parallel edges: only the lightest parallel edge survives.
	edges := []core.Edge{
		{From: 0, To: 0, Weight: -100},
		{From: 0, To: 1, Weight: 5},
		{From: 1, To: 0, Weight: 1},
	}
	assert.Equal(t, []core.Edge{{From: 1, To: 0, Weight: 1}}, mst.Kruskal(edges, 2))
	assert.Equal(t, []core.Edge{{From: 1, To: 0, Weight: 1}}, mst.Prim(edges, 2))
}

func TestKruskal_NegativeWeights(t *testing.T) {
	edges := []core.Edge{
		{From: 0, To: 1, Weight: -1},
		{From: 1, To: 0, Weight: -1},
		{From: 1, To: 2, Weight: -3},
		{From: 0, To: 2, Weight: 4},
	}
	forest := mst.Kruskal(edges, 3)
	assertForest(t, edges, forest, 3)
	assert.Equal(t, -4.0, core.TotalWeight(forest))
}

func TestPrim_Square(t *testing.T) {
	forest := mst.Prim(buildSquare(), 4)
	assertForest(t, buildSquare(), forest, 4)
	assert.Equal(t, 4.0, core.TotalWeight(forest))
	// From root 0 the tree grows 0-1, 1-2, 2-3.
	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 2},
		{From: 2, To: 3, Weight: 1},
	}, forest)
}

func TestCompute_Methods(t *testing.T) {
	for _, method := range []string{mst.MethodKruskal, mst.MethodPrim} {
		t.Run(method, func(t *testing.T) {
			f, err := mst.Compute(buildSquare(), 4, mst.WithMethod(method))
			require.NoError(t, err)
			assert.Len(t, f.Edges, 3)
			assert.Equal(t, 4.0, f.Weight)
			assert.Equal(t, 1, f.Components)
		})
	}

	_, err := mst.Compute(buildSquare(), 4, mst.WithMethod("boruvka"))
	assert.ErrorIs(t, err, mst.ErrUnknownMethod)
}

// bruteForceWeight enumerates every acyclic edge subset of size k and
// returns the minimum total weight. Only for tiny inputs.
func bruteForceWeight(edges []core.Edge, n, k int) float64 {
	best := math.Inf(1)
	m := len(edges)
	for mask := 0; mask < 1<<m; mask++ {
		if popcount(mask) != k {
			continue
		}
		uf := unionfind.New(n)
		var w float64
		ok := true
		for i := 0; i < m && ok; i++ {
			if mask&(1<<i) == 0 {
				continue
			}
			ok = uf.Union(edges[i].From, edges[i].To)
			w += edges[i].Weight
		}
		if ok && w < best {
			best = w
		}
	}

	return best
}

func popcount(x int) int {
	c := 0
	for ; x != 0; x &= x - 1 {
		c++
	}

	return c
}

func TestKruskal_MinimalAgainstBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for trial := 0; trial < 40; trial++ {
		n := 2 + r.Intn(5) // 2..6 vertices
		edges := buildRandomGraph(r, n, 1+r.Intn(10))
		forest := mst.Kruskal(edges, n)
		assertForest(t, edges, forest, n)

		k := n - components(edges, n)
		assert.Equal(t, bruteForceWeight(edges, n, k), core.TotalWeight(forest), "trial %d", trial)
		assert.Equal(t, core.TotalWeight(forest), core.TotalWeight(mst.Prim(edges, n)), "prim trial %d", trial)
	}
}

func TestKruskal_AgainstGonum(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		n := 5 + r.Intn(40)
		edges := buildRandomGraph(r, n, r.Intn(3*n))

		g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
		for i := 0; i < n; i++ {
			g.AddNode(simple.Node(i))
		}
		for _, e := range edges {
			g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(e.From), T: simple.Node(e.To), W: e.Weight})
		}
		dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
		want := path.Kruskal(dst, g)

		forest := mst.Kruskal(edges, n)
		assertForest(t, edges, forest, n)
		assert.InDelta(t, want, core.TotalWeight(forest), 1e-9, "trial %d", trial)
	}
}
