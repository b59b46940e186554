package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/datepicker/pkg/commands/options"
	"tableflip.dev/datepicker/pkg/runner/clear"
)

func addClear(topLevel *cobra.Command) {
	so := &options.SelectionOptions{}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "forget a saved selection",
		Example: `
pickdate clear --name trip
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd, nil, cmd.ErrOrStderr())
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.close()
			c := clear.Clear{Persistence: e.store, Name: so.Resolved(e.cfg.Name), Out: cmd.OutOrStdout()}
			return oo.HandleError(c.Do(e.ctx))
		},
	}

	options.AddSelectionArgs(cmd, so)
	_ = cmd.RegisterFlagCompletionFunc("name", nameCompletions)

	topLevel.AddCommand(cmd)
}
