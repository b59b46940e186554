package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/datepicker/pkg/commands/options"
	"tableflip.dev/datepicker/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	po := &options.PickerOptions{}
	so := &options.SelectionOptions{}
	var calendar bool

	cmd := &cobra.Command{
		Use:   "get",
		Short: "print a saved selection",
		Example: `
pickdate get
pickdate get --name trip --calendar
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd, po, cmd.ErrOrStderr())
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.close()
			g := get.Get{
				Persistence: e.store,
				Name:        so.Resolved(e.cfg.Name),
				Config:      e.picker,
				Calendar:    calendar,
				Out:         cmd.OutOrStdout(),
			}
			return oo.HandleError(g.Do(e.ctx))
		},
	}

	options.AddPickerArgs(cmd, po)
	options.AddSelectionArgs(cmd, so)
	_ = cmd.RegisterFlagCompletionFunc("name", nameCompletions)
	cmd.Flags().BoolVarP(&calendar, "calendar", "c", false, "Also print the month of the latest date.")
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
