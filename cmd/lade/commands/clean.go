package commands

import (
	"github.com/spf13/cobra"
	"github.com/lade-build/lade/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove staged bundles and the persisted catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Clean(cmd.Context(), app.CleanOptions{
				ConfigPath: c.configPath,
			})
		},
	}
}
