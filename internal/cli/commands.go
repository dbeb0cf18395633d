// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/spanpath/core"
	"github.com/katalvlaran/spanpath/edgelist"
	"github.com/katalvlaran/spanpath/johnson"
	"github.com/katalvlaran/spanpath/mst"
)

func newSolveCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "solve [file]",
		Short: "Print the minimum spanning forest and all-pairs shortest paths",
		Long: `Solve reads a graph from file (or stdin) and prints its minimum spanning
forest followed by its shortest-path matrix. Both are computed concurrently
from the same edge list.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, g, err := prepare(cmd, o, args)
			if err != nil {
				return err
			}

			var (
				forest mst.Forest
				m      *core.DistanceMatrix
				pErr   error
			)
			var eg errgroup.Group
			eg.Go(func() error {
				var err error
				forest, err = runMST(cmd, cfg, g)
				return err
			})
			eg.Go(func() error {
				m, pErr = runPaths(cmd, cfg, g)
				if errors.Is(pErr, johnson.ErrNegativeCycle) {
					return nil
				}
				return pErr
			})
			if err := eg.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := edgelist.WriteForest(out, forest.Edges); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}

			return writePaths(cmd, m, pErr)
		},
	}
}

func newMSTCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "mst [file]",
		Short: "Print the minimum spanning forest",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, g, err := prepare(cmd, o, args)
			if err != nil {
				return err
			}
			forest, err := runMST(cmd, cfg, g)
			if err != nil {
				return err
			}

			return edgelist.WriteForest(cmd.OutOrStdout(), forest.Edges)
		},
	}
}

func newPathsCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "paths [file]",
		Short: "Print all-pairs shortest paths",
		Long: `Paths reads a graph from file (or stdin) and prints the shortest distance
for every ordered pair of vertices. A negative-weight cycle is reported
instead of a matrix and is not treated as a failure.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, g, err := prepare(cmd, o, args)
			if err != nil {
				return err
			}
			m, err := runPaths(cmd, cfg, g)

			return writePaths(cmd, m, err)
		},
	}
}

// prepare resolves the effective configuration and reads the input graph.
func prepare(cmd *cobra.Command, o *options, args []string) (Config, *edgelist.Graph, error) {
	logger := loggerFromContext(cmd.Context())

	file, err := loadConfig(o.configPath)
	if err != nil {
		return Config{}, nil, err
	}
	cfg := merge(file, o.flags, cmd.Flags())
	logger.Debug("config", "method", cfg.Method, "workers", cfg.Workers,
		"strategy", cfg.Strategy, "undirected", cfg.Undirected, "paths", cfg.Paths)

	g, err := readGraph(cmd, args)
	if err != nil {
		return Config{}, nil, err
	}
	logger.Debug("read graph", "vertices", g.N, "edges", len(g.Edges))

	return cfg, g, nil
}

// readGraph parses args[0], or the command's stdin when no file is given.
func readGraph(cmd *cobra.Command, args []string) (*edgelist.Graph, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	g, err := edgelist.Read(r)
	if err != nil {
		return nil, fmt.Errorf("read graph: %w", err)
	}

	return g, nil
}

func runMST(cmd *cobra.Command, cfg Config, g *edgelist.Graph) (mst.Forest, error) {
	prog := newProgress(loggerFromContext(cmd.Context()))
	forest, err := mst.Compute(g.Edges, g.N, cfg.mstOptions()...)
	if err != nil {
		return mst.Forest{}, err
	}
	prog.done("spanning forest", "method", cfg.Method,
		"edges", len(forest.Edges), "trees", forest.Components, "weight", forest.Weight)

	return forest, nil
}

func runPaths(cmd *cobra.Command, cfg Config, g *edgelist.Graph) (*core.DistanceMatrix, error) {
	opts, err := cfg.johnsonOptions()
	if err != nil {
		return nil, err
	}
	edges := g.Edges
	if cfg.Undirected {
		edges = core.Undirected(edges)
	}

	prog := newProgress(loggerFromContext(cmd.Context()))
	m, err := johnson.AllPairs(edges, g.N, opts...)
	if err != nil {
		return nil, err
	}
	prog.done("shortest paths", "vertices", m.Size(), "workers", cfg.Workers)

	return m, nil
}

// writePaths prints m, or the negative-cycle message when err reports one.
// Any other error is returned unchanged.
func writePaths(cmd *cobra.Command, m *core.DistanceMatrix, err error) error {
	out := cmd.OutOrStdout()
	switch {
	case errors.Is(err, johnson.ErrNegativeCycle):
		loggerFromContext(cmd.Context()).Warn("negative-weight cycle", "err", err)
		return edgelist.WriteNegativeCycle(out)
	case err != nil:
		return err
	}

	return edgelist.WriteMatrix(out, m)
}
