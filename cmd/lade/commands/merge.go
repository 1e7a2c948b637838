package commands

import (
	"github.com/spf13/cobra"
	"github.com/lade-build/lade/internal/app"
)

func (c *CLI) newMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge",
		Short: "Merge compiler manifests into the catalog and stage bundles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Merge(cmd.Context(), app.MergeOptions{
				ConfigPath: c.configPath,
			})
		},
	}
}
