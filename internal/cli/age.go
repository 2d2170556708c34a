package cli

import (
	"fmt"
	"strconv"

	"pet-adoption/internal/domain/pets"

	"github.com/spf13/cobra"
)

func NewAgeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "age <years> [months]",
		Short: "Format an age the way the pet cards show it",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			years, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid years %q", args[0])
			}
			months := 0
			if len(args) == 2 {
				if months, err = strconv.Atoi(args[1]); err != nil {
					return fmt.Errorf("invalid months %q", args[1])
				}
			}
			return newPrinter(rootOpts, cmd.OutOrStdout()).age(years, months, pets.FormatAge(years, months))
		},
	}
}
