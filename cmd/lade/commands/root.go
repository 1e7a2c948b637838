// Package commands implements the CLI commands for the lade bundle tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/lade-build/lade/internal/app"
	"github.com/lade-build/lade/internal/build"
	"github.com/lade-build/lade/internal/core/ports"
)

// CLI represents the command line interface for lade.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command

	configPath string
	jsonLog    bool
}

// Application represents the application logic interface.
type Application interface {
	Merge(ctx context.Context, opts app.MergeOptions) error
	Reconcile(ctx context.Context, opts app.ReconcileOptions) error
	Clean(ctx context.Context, opts app.CleanOptions) error
}

// New creates a new CLI instance with the given app and logger.
func New(a Application, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "lade",
		Short:         "Track, merge and reconcile build bundles across platforms",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		logger:  log,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "",
		"Path to the project configuration file (default lade.yaml)")
	rootCmd.PersistentFlags().BoolVar(&c.jsonLog, "json", false,
		"Log in JSON instead of pretty output")
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if c.jsonLog {
			if l, ok := c.logger.(interface{ SetJSON(bool) }); ok {
				l.SetJSON(true)
			}
		}
	}

	rootCmd.AddCommand(c.newMergeCmd())
	rootCmd.AddCommand(c.newReconcileCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
