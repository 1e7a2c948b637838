package commands

import (
	"github.com/spf13/cobra"
	"github.com/lade-build/lade/internal/app"
)

func (c *CLI) newReconcileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Determine which staged bundles still need uploading",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			watch, _ := cmd.Flags().GetBool("watch")
			return c.app.Reconcile(cmd.Context(), app.ReconcileOptions{
				ConfigPath: c.configPath,
				Watch:      watch,
			})
		},
	}
	cmd.Flags().BoolP("watch", "w", false, "Keep running and reconcile after every staging change")
	return cmd
}
