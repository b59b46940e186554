package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/datepicker/pkg/commands/options"
	"tableflip.dev/datepicker/pkg/runner/check"
)

func addCheck(topLevel *cobra.Command) {
	po := &options.PickerOptions{}

	cmd := &cobra.Command{
		Use:   "check dates...",
		Short: "tell whether dates can be picked",
		Example: `
pickdate check --disable-weekdays 0,6 03/10/2012 03/12/2012
pickdate check --end +1m --rule "FREQ=YEARLY;BYMONTH=12;BYMONTHDAY=25" 12/25/2026
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd, po, cmd.ErrOrStderr())
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.close()
			c := check.Check{Config: e.picker, Dates: args, Out: cmd.OutOrStdout()}
			return oo.HandleError(c.Do(e.ctx))
		},
	}

	options.AddPickerArgs(cmd, po)

	topLevel.AddCommand(cmd)
}
