// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/spanpath/dijkstra"
	"github.com/katalvlaran/spanpath/johnson"
	"github.com/katalvlaran/spanpath/mst"
)

// Config holds the tunables shared by all commands. It can be loaded from a
// TOML file and is then overridden by explicitly set flags.
//
//	method     = "kruskal"   # or "prim"
//	workers    = 4
//	strategy   = "heap"      # or "scan"
//	undirected = true
//	paths      = false
type Config struct {
	Method     string `toml:"method"`
	Workers    int    `toml:"workers"`
	Strategy   string `toml:"strategy"`
	Undirected bool   `toml:"undirected"`
	Paths      bool   `toml:"paths"`
}

// defaultConfig mirrors the library defaults.
func defaultConfig() Config {
	return Config{
		Method:   mst.MethodKruskal,
		Workers:  1,
		Strategy: dijkstra.StrategyHeap.String(),
	}
}

// loadConfig decodes path over the defaults. Unknown keys are rejected so
// typos do not silently fall back to defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown keys %v", path, undecoded)
	}

	return cfg, nil
}

// bindFlags registers the Config flags on fs, defaulting to cfg.
func bindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.Method, "method", cfg.Method, "spanning forest algorithm: kruskal or prim")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "goroutines for per-source Dijkstra runs")
	fs.StringVar(&cfg.Strategy, "strategy", cfg.Strategy, "Dijkstra vertex selection: heap or scan")
	fs.BoolVar(&cfg.Undirected, "undirected", cfg.Undirected, "treat every edge as two-way for shortest paths")
	fs.BoolVar(&cfg.Paths, "paths", cfg.Paths, "print the vertex sequence of each shortest path")
}

// merge overlays the flags the user explicitly set onto file.
func merge(file, flags Config, fs *pflag.FlagSet) Config {
	out := file
	if fs.Changed("method") {
		out.Method = flags.Method
	}
	if fs.Changed("workers") {
		out.Workers = flags.Workers
	}
	if fs.Changed("strategy") {
		out.Strategy = flags.Strategy
	}
	if fs.Changed("undirected") {
		out.Undirected = flags.Undirected
	}
	if fs.Changed("paths") {
		out.Paths = flags.Paths
	}

	return out
}

// mstOptions converts cfg into mst options.
func (c Config) mstOptions() []mst.Option {
	return []mst.Option{mst.WithMethod(c.Method)}
}

// johnsonOptions converts cfg into johnson options.
func (c Config) johnsonOptions() ([]johnson.Option, error) {
	s, err := dijkstra.ParseStrategy(c.Strategy)
	if err != nil {
		return nil, err
	}
	opts := []johnson.Option{
		johnson.WithWorkers(c.Workers),
		johnson.WithStrategy(s),
	}
	if c.Paths {
		opts = append(opts, johnson.WithPaths())
	}

	return opts, nil
}
