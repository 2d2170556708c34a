package cli

import (
	"fmt"

	"pet-adoption/internal/app"
	"pet-adoption/internal/platform/config"

	"github.com/spf13/cobra"
)

func NewMigrateCommand(_ *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply SQL migrations for the configured storage driver",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := app.Migrate(cfg.Storage); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrations applied (driver=%s)\n", cfg.Storage.Driver)
			return nil
		},
	}
}
