package commands

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/datepicker/pkg/commands/options"
	"tableflip.dev/datepicker/pkg/runner/set"
)

func addSet(topLevel *cobra.Command) {
	po := &options.PickerOptions{}
	so := &options.SelectionOptions{}
	var appendDates bool
	var fromICS string

	cmd := &cobra.Command{
		Use:   "set [dates]",
		Short: "save dates under a name",
		Long: base.Wrap80("Save dates under a name. Dates are read in the configured format, " +
			"as ISO dates or as offsets from today such as +1w or -3d. Dates the constraints " +
			"exclude are reported and skipped."),
		Example: `
pickdate set 03/05/2012
pickdate set --name trip -m true +1d +2d +3d
pickdate set --name holidays -m true --from-ics holidays.ics
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && fromICS == "" {
				return errors.New("requires at least one date or --from-ics")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd, po, cmd.ErrOrStderr())
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.close()
			s := set.Set{
				Persistence: e.store,
				Name:        so.Resolved(e.cfg.Name),
				Config:      e.picker,
				Dates:       args,
				Append:      appendDates,
				Out:         cmd.OutOrStdout(),
			}
			if fromICS != "" {
				f, err := os.Open(fromICS)
				if err != nil {
					return oo.HandleError(err)
				}
				defer f.Close()
				s.ICS = f
			}
			return oo.HandleError(s.Do(e.ctx))
		},
	}

	options.AddPickerArgs(cmd, po)
	options.AddSelectionArgs(cmd, so)
	_ = cmd.RegisterFlagCompletionFunc("name", nameCompletions)
	cmd.Flags().BoolVarP(&appendDates, "append", "a", false, "Keep the dates already saved.")
	cmd.Flags().StringVar(&fromICS, "from-ics", "", "Import the all-day events of an iCalendar file.")
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
