package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/datepicker/pkg/commands/options"
	"tableflip.dev/datepicker/pkg/runner/cal"
)

func addCal(topLevel *cobra.Command) {
	po := &options.PickerOptions{}

	cmd := &cobra.Command{
		Use:   "cal [year]",
		Short: "print a year of months with disabled dates marked",
		Example: `
pickdate cal
pickdate cal 2012 --lang de --disable-weekdays 0,6
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year := 0
			if len(args) == 1 {
				y, err := strconv.Atoi(args[0])
				if err != nil {
					return err
				}
				year = y
			}
			e, err := loadEnv(cmd, po, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.close()
			c := cal.Cal{Config: e.picker, Year: year, Out: cmd.OutOrStdout()}
			return c.Do(e.ctx)
		},
	}

	options.AddPickerArgs(cmd, po)

	topLevel.AddCommand(cmd)
}
