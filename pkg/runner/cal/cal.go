// Package cal prints a year of month grids with the configured constraints.
package cal

import (
	"context"
	"io"

	"tableflip.dev/datepicker/pkg/caldate"
	"tableflip.dev/datepicker/pkg/picker"
	"tableflip.dev/datepicker/pkg/printers"
)

type Cal struct {
	Config picker.Config
	// Year defaults to the current year.
	Year int
	Out  io.Writer
}

func (c *Cal) Do(_ context.Context) error {
	year := c.Year
	if year == 0 {
		year = caldate.Today().Year()
	}
	p := picker.New(c.Config, picker.NewMemoryHost(""))
	pp := printers.New(c.Out)
	pp.Title(c.Config.Formatter.Locale().Tag.String())
	pp.Year(p, year)
	return nil
}
