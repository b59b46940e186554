package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/datepicker/pkg/commands/options"
	"tableflip.dev/datepicker/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	po := &options.PickerOptions{}
	so := &options.SelectionOptions{}
	var readOnly, inline, printText bool

	cmd := &cobra.Command{
		Use:   "ui [dates]",
		Short: "open the interactive date picker",
		Example: `
pickdate ui
pickdate ui --name trip -m true --disable-weekdays 0,6
pickdate ui --inline --print 03/05/2012
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd, po, nil)
			if err != nil {
				return err
			}
			defer e.close()
			i := ui.UI{
				Persistence: e.store,
				Name:        so.Resolved(e.cfg.Name),
				Config:      e.picker,
				Text:        strings.Join(args, e.picker.Separator),
				ReadOnly:    readOnly,
				Inline:      inline,
			}
			if printText {
				i.Out = cmd.OutOrStdout()
			}
			return i.Do(e.ctx)
		},
	}

	options.AddPickerArgs(cmd, po)
	options.AddSelectionArgs(cmd, so)
	cmd.Flags().BoolVar(&readOnly, "read-only", false, "The field cannot be typed into.")
	cmd.Flags().BoolVar(&inline, "inline", false, "Keep the calendar open.")
	cmd.Flags().BoolVarP(&printText, "print", "p", false, "Print the field when the picker exits.")

	topLevel.AddCommand(cmd)
}
