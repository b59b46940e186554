// Package check reports whether dates can be picked under a configuration.
package check

import (
	"context"
	"fmt"
	"io"

	"tableflip.dev/datepicker/pkg/caldate"
	"tableflip.dev/datepicker/pkg/picker"
	"tableflip.dev/datepicker/pkg/printers"
)

// ErrUnselectable is returned when at least one date cannot be picked.
var ErrUnselectable = fmt.Errorf("check: some dates are not selectable")

type Check struct {
	Config picker.Config
	Dates  []string
	Out    io.Writer
	// Clock overrides today for relative dates.
	Clock func() caldate.Date
}

func (c *Check) Do(_ context.Context) error {
	var opts []picker.Option
	if c.Clock != nil {
		opts = append(opts, picker.WithClock(c.Clock))
	}
	p := picker.New(c.Config, picker.NewMemoryHost(""), opts...)
	dates := make([]caldate.Date, 0, len(c.Dates))
	for _, text := range c.Dates {
		d, err := p.ResolveDate(text)
		if err != nil {
			return err
		}
		dates = append(dates, d)
	}
	pp := printers.New(c.Out)
	pp.Check(p.Formatter(), p.Constraints(), dates...)
	for _, d := range dates {
		if !p.Constraints().IsSelectable(d) {
			return ErrUnselectable
		}
	}
	return nil
}
