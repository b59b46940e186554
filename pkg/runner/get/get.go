// Package get prints a saved selection.
package get

import (
	"context"
	"errors"
	"io"

	"cloudeng.io/logging/ctxlog"

	"tableflip.dev/datepicker/pkg/picker"
	"tableflip.dev/datepicker/pkg/printers"
	"tableflip.dev/datepicker/pkg/store"
)

type Get struct {
	Persistence store.Persistence
	Name        string
	Config      picker.Config
	// Calendar also prints the month of the latest date.
	Calendar bool
	Out      io.Writer
}

func (g *Get) Do(ctx context.Context) error {
	if g.Persistence == nil {
		return errors.New("can not get, no persistence")
	}
	rec, err := g.Persistence.Load(g.Name)
	if errors.Is(err, store.ErrNotFound) {
		ctxlog.Logger(ctx).Debug("no saved selection", "name", g.Name)
		rec = store.NewRecord(g.Name, nil)
	} else if err != nil {
		return err
	}
	dates, err := rec.Selection()
	if err != nil {
		return err
	}

	c := picker.New(g.Config, picker.NewMemoryHost(""), picker.WithLogger(ctxlog.Logger(ctx)))
	if err := c.SetDates(dates...); err != nil {
		return err
	}

	pp := printers.New(g.Out)
	pp.NewLine()
	pp.TitleWithCount(g.Name, len(c.Dates()))
	pp.Selection(c.Formatter(), c.Dates()...)
	if g.Calendar {
		pp.NewLine()
		pp.Month(c.Grid())
	}
	pp.NewLine()
	return nil
}
