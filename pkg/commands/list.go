package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/datepicker/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "list saved selections",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd, nil, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.close()
			l := list.List{Persistence: e.store, Out: cmd.OutOrStdout()}
			return l.Do(e.ctx)
		},
	}

	topLevel.AddCommand(cmd)
}
