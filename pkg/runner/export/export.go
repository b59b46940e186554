// Package export writes a saved selection as text, JSON, YAML or iCalendar.
package export

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/datepicker/pkg/export"
	"tableflip.dev/datepicker/pkg/picker"
	"tableflip.dev/datepicker/pkg/store"
)

type Export struct {
	Persistence store.Persistence
	Name        string
	Config      picker.Config
	Format      export.Format
	Out         io.Writer
}

func (e *Export) Do(_ context.Context) error {
	if e.Persistence == nil {
		return errors.New("can not export, no persistence")
	}
	rec, err := e.Persistence.Load(e.Name)
	if err != nil {
		return err
	}
	dates, err := rec.Selection()
	if err != nil {
		return err
	}
	return export.Write(e.Out, e.Format, export.Selection{
		Name:      rec.Name,
		Dates:     dates,
		Updated:   rec.Updated,
		Formatter: e.Config.Formatter,
		Separator: e.Config.Separator,
	})
}
