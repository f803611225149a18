package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/slateboard/slateboard/pkg/config"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with values
// injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the slateboard CLI with a background context.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the slateboard CLI and returns an error if any command
// fails. This is the main entry point for the CLI application; main passes a
// signal-aware context so long-running commands like serve shut down cleanly.
//
// The function sets up the root command with all subcommands (lanes, guides,
// snap, render, serve, edit), configures logging based on the --verbose flag,
// loads the config file, and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger and loaded config are attached to the context and accessible to
// all commands via loggerFromContext and configFromContext.
func ExecuteContext(ctx context.Context) error {
	var (
		verbose bool
		cfgPath string
	)

	root := &cobra.Command{
		Use:          "slateboard",
		Short:        "Slateboard computes swimlanes, alignment guides, and snapping for diagrams",
		Long:         `Slateboard is the geometry engine behind a diagram editor: it derives swimlane bands from lane definitions, assigns shapes to lanes, detects alignment guides and equal-spacing opportunities during drags, and snaps shapes into place.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))

			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("slateboard %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultFile, "path to the config file")

	root.AddCommand(newLanesCmd())
	root.AddCommand(newGuidesCmd())
	root.AddCommand(newSnapCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newEditCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
