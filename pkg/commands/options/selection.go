package options

import (
	"github.com/spf13/cobra"
)

// SelectionOptions names the saved selection a command works on.
type SelectionOptions struct {
	Name string
}

func AddSelectionArgs(cmd *cobra.Command, o *SelectionOptions) {
	cmd.Flags().StringVarP(&o.Name, "name", "n", "",
		"Name of the saved selection. Defaults to the configured name.")
}

// Resolved returns the flag value, or fallback when the flag is unset.
func (o *SelectionOptions) Resolved(fallback string) string {
	if o.Name != "" {
		return o.Name
	}
	return fallback
}
