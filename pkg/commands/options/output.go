package options

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/datepicker/pkg/export"
)

// ExportOptions choose the rendering and destination of exported dates.
type ExportOptions struct {
	Format string
	File   string
}

func AddExportArgs(cmd *cobra.Command, o *ExportOptions) {
	cmd.Flags().StringVarP(&o.Format, "output", "o", "text",
		"Output format. One of 'text', 'json', 'yaml' or 'ics'.")
	cmd.Flags().StringVarP(&o.File, "file", "f", "",
		"Write to this file instead of stdout.")
}

// Writer opens the destination. The returned func closes it.
func (o *ExportOptions) Writer() (io.Writer, func() error, error) {
	if o.File == "" || o.File == "-" {
		return color.Output, func() error { return nil }, nil
	}
	f, err := os.Create(o.File)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func (o *ExportOptions) Parsed() (export.Format, error) {
	return export.ParseFormat(o.Format)
}
