// SPDX-License-Identifier: MIT

package johnson_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spanpath/core"
	"github.com/katalvlaran/spanpath/johnson"
)

// floydWarshall is the O(n³) reference: +Inf marks absent pairs, parallel
// edges keep the lighter weight, and a negative diagonal entry after the
// triple loop means a negative cycle.
func floydWarshall(edges []core.Edge, n int) ([][]float64, bool) {
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
		for j := range d[i] {
			if i != j {
				d[i][j] = math.Inf(1)
			}
		}
	}
	for _, e := range edges {
		d[e.From][e.To] = math.Min(d[e.From][e.To], e.Weight)
	}

	for k := 0; k < n; k++ { // intermediate
		for i := 0; i < n; i++ { // source
			if math.IsInf(d[i][k], 1) {
				continue
			}
			for j := 0; j < n; j++ { // destination
				if cand := d[i][k] + d[k][j]; cand < d[i][j] {
					d[i][j] = cand
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		if d[i][i] < 0 {
			return nil, false
		}
	}

	return d, true
}

// randomMultigraph allows self-loops and parallel edges, which the gonum
// oracle cannot represent.
func randomMultigraph(r *rand.Rand, n, m, lo, span int) []core.Edge {
	edges := make([]core.Edge, m)
	for i := range edges {
		edges[i] = core.Edge{From: r.Intn(n), To: r.Intn(n), Weight: float64(lo + r.Intn(span))}
	}

	return edges
}

func TestAllPairs_AgainstFloydWarshall(t *testing.T) {
	r := rand.New(rand.NewSource(29))
	cycles := 0
	for trial := 0; trial < 60; trial++ {
		n := 1 + r.Intn(12)
		edges := randomMultigraph(r, n, r.Intn(3*n+1), -2, 20)

		want, ok := floydWarshall(edges, n)
		m, err := johnson.AllPairs(edges, n, johnson.WithWorkers(1+trial%3))
		if !ok {
			cycles++
			assert.ErrorIs(t, err, johnson.ErrNegativeCycle, "trial %d", trial)
			assert.Nil(t, m)
			continue
		}
		require.NoError(t, err, "trial %d", trial)
		require.Equal(t, n, m.Size())

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				got := m.At(i, j)
				if math.IsInf(want[i][j], 1) {
					assert.False(t, got.Reachable(), "trial %d d[%d][%d]", trial, i, j)
					continue
				}
				// Integer weights keep every sum exact.
				assert.Equal(t, want[i][j], finite(t, got), "trial %d d[%d][%d]", trial, i, j)
			}
		}
	}
	t.Logf("%d of 60 trials held a negative cycle", cycles)
}
