// SPDX-License-Identifier: MIT

// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// Every behavioral test runs under both strategies.
package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spanpath/core"
	"github.com/katalvlaran/spanpath/dijkstra"
)

var strategies = []dijkstra.Strategy{dijkstra.StrategyHeap, dijkstra.StrategyScan}

// buildHouse returns the directed "house" graph:
//
//	0→1 (4), 0→2 (2), 1→3 (5), 2→3 (10), 2→4 (3), 4→3 (4); vertex 5 isolated.
func buildHouse() *dijkstra.Graph {
	return dijkstra.NewGraph([]core.Edge{
		{From: 0, To: 1, Weight: 4},
		{From: 0, To: 2, Weight: 2},
		{From: 1, To: 3, Weight: 5},
		{From: 2, To: 3, Weight: 10},
		{From: 2, To: 4, Weight: 3},
		{From: 4, To: 3, Weight: 4},
	}, 6)
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	g := buildHouse()
	_, _, err = dijkstra.Dijkstra(g, 6)
	assert.ErrorIs(t, err, dijkstra.ErrSourceRange)
	_, _, err = dijkstra.Dijkstra(g, -1)
	assert.ErrorIs(t, err, dijkstra.ErrSourceRange)

	neg := dijkstra.NewGraph([]core.Edge{{From: 0, To: 1, Weight: -1}}, 2)
	_, _, err = dijkstra.Dijkstra(neg, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)

	_, _, err = dijkstra.Dijkstra(g, 0, dijkstra.WithStrategy(dijkstra.Strategy(9)))
	assert.ErrorIs(t, err, dijkstra.ErrUnknownStrategy)
}

func TestParseStrategy(t *testing.T) {
	s, err := dijkstra.ParseStrategy("SCAN")
	require.NoError(t, err)
	assert.Equal(t, dijkstra.StrategyScan, s)

	s, err = dijkstra.ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, dijkstra.StrategyHeap, s)

	_, err = dijkstra.ParseStrategy("fibonacci")
	assert.ErrorIs(t, err, dijkstra.ErrUnknownStrategy)

	assert.Equal(t, "heap", dijkstra.StrategyHeap.String())
	assert.Equal(t, "Strategy(7)", dijkstra.Strategy(7).String())
}

// ------------------------------------------------------------------------
// 2. Basic functionality
// ------------------------------------------------------------------------

func TestDijkstra_House(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			dist, prev, err := dijkstra.Dijkstra(buildHouse(), 0, dijkstra.WithStrategy(s), dijkstra.WithReturnPath())
			require.NoError(t, err)
			assert.Equal(t, []core.Distance{
				core.Finite(0),
				core.Finite(4),
				core.Finite(2),
				core.Finite(9),
				core.Finite(5),
				core.Unreachable(),
			}, dist)
			assert.Equal(t, core.NoVertex, prev[0])
			assert.Equal(t, 0, prev[1])
			assert.Equal(t, 0, prev[2])
			assert.Equal(t, 2, prev[4])
			assert.Equal(t, core.NoVertex, prev[5])
			// 3 is reached at 9 both via 1 and via 4; either predecessor is valid.
			assert.Contains(t, []int{1, 4}, prev[3])
		})
	}
}

func TestDijkstra_NoPathByDefault(t *testing.T) {
	_, prev, err := dijkstra.Dijkstra(buildHouse(), 0)
	require.NoError(t, err)
	assert.Nil(t, prev)
}

func TestDijkstra_ZeroWeightsAndLoops(t *testing.T) {
	g := dijkstra.NewGraph([]core.Edge{
		{From: 0, To: 0, Weight: 0},
		{From: 0, To: 1, Weight: 0},
		{From: 1, To: 2, Weight: 0},
		{From: 1, To: 2, Weight: 7}, // parallel, heavier
	}, 3)
	for _, s := range strategies {
		dist, _, err := dijkstra.Dijkstra(g, 0, dijkstra.WithStrategy(s))
		require.NoError(t, err)
		assert.Equal(t, []core.Distance{core.Finite(0), core.Finite(0), core.Finite(0)}, dist, s.String())
	}
}

func TestDijkstra_SingleVertex(t *testing.T) {
	g := dijkstra.NewGraph(nil, 1)
	for _, s := range strategies {
		dist, _, err := dijkstra.Dijkstra(g, 0, dijkstra.WithStrategy(s))
		require.NoError(t, err)
		assert.Equal(t, []core.Distance{core.Finite(0)}, dist)
	}
}

// ------------------------------------------------------------------------
// 3. Strategies agree on random graphs
// ------------------------------------------------------------------------

func TestDijkstra_StrategiesAgree(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for trial := 0; trial < 30; trial++ {
		n := 1 + r.Intn(40)
		m := r.Intn(4 * n)
		edges := make([]core.Edge, m)
		for i := range edges {
			edges[i] = core.Edge{From: r.Intn(n), To: r.Intn(n), Weight: float64(r.Intn(20))}
		}
		g := dijkstra.NewGraph(edges, n)
		src := r.Intn(n)

		dh, _, err := dijkstra.Dijkstra(g, src, dijkstra.WithStrategy(dijkstra.StrategyHeap))
		require.NoError(t, err)
		ds, _, err := dijkstra.Dijkstra(g, src, dijkstra.WithStrategy(dijkstra.StrategyScan))
		require.NoError(t, err)
		assert.Equal(t, dh, ds, "trial %d", trial)
	}
}
