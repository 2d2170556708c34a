package cli

import (
	"fmt"
	"slices"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RootOptions son los flags globales.
type RootOptions struct {
	Server  string // base URL de un server remoto; vacío => store local
	Format  string // "text" | "json"
	NoColor bool
}

var ValidFormats = []string{"text", "json"}

// NewRootCommand arma el comando raíz de petadopt.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "petadopt",
		Short: "Pet adoption list/detail service",
		Long: `petadopt sirve la lista de mascotas en adopción y su detalle por HTTP,
y permite consultarla desde la terminal (store local o un server remoto).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.NoColor {
				color.NoColor = true
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Server, "server", "", "base URL of a running petadopt server (default: client.base_url)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "disable colored output")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewPetsCommand(opts))
	cmd.AddCommand(NewAgeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))

	return cmd
}
