// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
// It is typically called by the main package with values injected via
// ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// options carries the root-level flag values shared by every subcommand.
type options struct {
	verbose    bool
	configPath string
	flags      Config
}

// NewRootCmd builds the spanpath command tree.
//
// Logging goes to the command's stderr writer: info level by default,
// debug with --verbose. The logger is attached to the command context and
// retrieved with loggerFromContext.
func NewRootCmd() *cobra.Command {
	o := &options{flags: defaultConfig()}

	root := &cobra.Command{
		Use:   "spanpath",
		Short: "spanpath computes spanning forests and all-pairs shortest paths",
		Long: `spanpath reads a weighted graph as "numVertices numEdges" followed by
numEdges "origin destination weight" triples and prints its minimum spanning
forest (Kruskal or Prim) and its all-pairs shortest paths (Johnson).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if o.verbose {
				level = charmlog.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("spanpath %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	pf := root.PersistentFlags()
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVarP(&o.configPath, "config", "c", "", "TOML file with default settings")
	bindFlags(pf, &o.flags)

	root.AddCommand(newSolveCmd(o))
	root.AddCommand(newMSTCmd(o))
	root.AddCommand(newPathsCmd(o))

	return root
}

// Execute runs the spanpath CLI under ctx.
//
// Example:
//
//	func main() {
//	    cli.SetVersion("v1.0.0", "abc123", "2026-01-02")
//	    if err := cli.Execute(context.Background()); err != nil {
//	        os.Exit(1)
//	    }
//	}
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
