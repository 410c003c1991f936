package cli

import (
	"github.com/spf13/cobra"

	"github.com/comfort-hq/digital-catalogue/internal/settings"
)

// NewSettingsCommand creates the settings command group
func NewSettingsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect the display settings",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the remote display settings merged over the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := settings.NewStore(rootOpts.client(), rootOpts.Logger)
			if err := store.Load(cmd.Context()); err != nil {
				return err
			}
			return writeSettings(cmd.OutOrStdout(), rootOpts.Format, store.Current())
		},
	})
	return cmd
}
