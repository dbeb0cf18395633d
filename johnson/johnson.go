// SPDX-License-Identifier: MIT

package johnson

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/spanpath/bellmanford"
	"github.com/katalvlaran/spanpath/core"
	"github.com/katalvlaran/spanpath/dijkstra"
)

// AllPairs returns the n×n shortest-path distance matrix of the graph given
// by edges, or a nil matrix and an error wrapping ErrNegativeCycle when the
// graph holds a negative-weight cycle.
//
// The caller's slice is never modified; AllPairs may run concurrently with
// other readers of edges (for example mst.Kruskal).
//
// Steps:
//  1. Apply options; validate Workers.
//  2. Compute potentials h via Bellman-Ford from a virtual source.
//  3. Reweight a private copy of edges.
//  4. Run Dijkstra from every source, sequentially or over a worker pool.
//  5. Unreweight each reachable entry into the matrix.
func AllPairs(edges []core.Edge, n int, opts ...Option) (*core.DistanceMatrix, error) {
	// 1) Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadWorkers, cfg.Workers)
	}

	// 2) Potentials; this is where negative cycles are rejected.
	h, err := bellmanford.Potentials(edges, n)
	if err != nil {
		return nil, fmt.Errorf("johnson: %w", err)
	}

	// 3) Reweight.
	reweighted, err := reweight(edges, h)
	if err != nil {
		return nil, err
	}
	g := dijkstra.NewGraph(reweighted, n)

	// 4) + 5) One Dijkstra per source, each writing only its own row.
	m := core.NewDistanceMatrix(n, cfg.Paths)
	solve := func(s int) error {
		return fillRow(m, g, h, s, cfg)
	}

	if cfg.Workers == 1 || n < 2 {
		for s := 0; s < n; s++ {
			if err := solve(s); err != nil {
				return nil, err
			}
		}

		return m, nil
	}

	var eg errgroup.Group
	eg.SetLimit(cfg.Workers)
	for s := 0; s < n; s++ {
		eg.Go(func() error { return solve(s) })
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return m, nil
}

// reweight returns a copy of edges with weight (w + h[u]) - h[v].
func reweight(edges []core.Edge, h []float64) ([]core.Edge, error) {
	out := make([]core.Edge, len(edges))
	for i, e := range edges {
		w := (e.Weight + h[e.From]) - h[e.To]
		if w < 0 {
			return nil, fmt.Errorf("%w: edge %d→%d weight %g became %g", ErrNegativeReweight, e.From, e.To, e.Weight, w)
		}
		out[i] = core.Edge{From: e.From, To: e.To, Weight: w}
	}

	return out, nil
}

// fillRow runs Dijkstra from s on the reweighted graph and stores the
// unreweighted distances (and predecessors, if tracked) in row s of m.
func fillRow(m *core.DistanceMatrix, g *dijkstra.Graph, h []float64, s int, cfg Options) error {
	dopts := []dijkstra.Option{dijkstra.WithStrategy(cfg.Strategy)}
	if cfg.Paths {
		dopts = append(dopts, dijkstra.WithReturnPath())
	}
	dist, prev, err := dijkstra.Dijkstra(g, s, dopts...)
	if err != nil {
		return fmt.Errorf("johnson: source %d: %w", s, err)
	}

	for t, d := range dist {
		v, ok := d.Value()
		if !ok {
			// Unreachable stays unreachable; never add potentials to it.
			m.Set(s, t, core.Unreachable())
			continue
		}
		if t == s {
			m.Set(s, t, core.Finite(0))
		} else {
			m.Set(s, t, core.Finite((v+h[t])-h[s]))
		}
		if prev != nil {
			m.SetPredecessor(s, t, prev[t])
		}
	}

	return nil
}
