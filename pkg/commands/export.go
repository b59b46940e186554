package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/datepicker/pkg/commands/options"
	"tableflip.dev/datepicker/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	po := &options.PickerOptions{}
	so := &options.SelectionOptions{}
	eo := &options.ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "write a saved selection as text, JSON, YAML or iCalendar",
		Example: `
pickdate export -o json
pickdate export --name trip -o ics -f trip.ics
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := eo.Parsed()
			if err != nil {
				return err
			}
			e, err := loadEnv(cmd, po, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.close()
			w, done, err := eo.Writer()
			if err != nil {
				return err
			}
			if eo.File == "" {
				w = cmd.OutOrStdout()
			}
			x := export.Export{
				Persistence: e.store,
				Name:        so.Resolved(e.cfg.Name),
				Config:      e.picker,
				Format:      format,
				Out:         w,
			}
			if err := x.Do(e.ctx); err != nil {
				_ = done()
				return err
			}
			return done()
		},
	}

	options.AddPickerArgs(cmd, po)
	options.AddSelectionArgs(cmd, so)
	options.AddExportArgs(cmd, eo)
	_ = cmd.RegisterFlagCompletionFunc("name", nameCompletions)

	topLevel.AddCommand(cmd)
}
