// Package set replaces or extends a saved selection.
package set

import (
	"context"
	"errors"
	"io"
	"slices"

	cerrors "cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"

	"tableflip.dev/datepicker/pkg/caldate"
	"tableflip.dev/datepicker/pkg/export"
	"tableflip.dev/datepicker/pkg/picker"
	"tableflip.dev/datepicker/pkg/printers"
	"tableflip.dev/datepicker/pkg/store"
)

type Set struct {
	Persistence store.Persistence
	Name        string
	Config      picker.Config
	// Dates are parsed like setter arguments: the configured format, ISO
	// dates and relative offsets such as +1w.
	Dates []string
	// ICS, when set, contributes the all-day events of a calendar.
	ICS io.Reader
	// Append keeps the dates already saved.
	Append bool
	Out    io.Writer
}

func (s *Set) Do(ctx context.Context) error {
	if s.Persistence == nil {
		return errors.New("can not set, no persistence")
	}
	logger := ctxlog.Logger(ctx)
	c := picker.New(s.Config, picker.NewMemoryHost(""), picker.WithLogger(logger))

	var requested []caldate.Date
	if s.Append {
		rec, err := s.Persistence.Load(s.Name)
		switch {
		case errors.Is(err, store.ErrNotFound):
		case err != nil:
			return err
		default:
			saved, err := rec.Selection()
			if err != nil {
				return err
			}
			requested = append(requested, saved...)
		}
	}

	var errs cerrors.M
	for _, text := range s.Dates {
		d, err := c.ResolveDate(text)
		if err != nil {
			errs.Append(err)
			continue
		}
		requested = append(requested, d)
	}
	if s.ICS != nil {
		imported, err := export.ReadICS(s.ICS)
		if err != nil {
			errs.Append(err)
		}
		logger.Debug("imported calendar", "dates", len(imported))
		requested = append(requested, imported...)
	}
	if err := errs.Err(); err != nil {
		return err
	}

	if err := c.SetDates(requested...); err != nil {
		return err
	}
	selected := c.Dates()

	pp := printers.New(s.Out)
	pp.NewLine()
	for _, d := range requested {
		if !slices.ContainsFunc(selected, d.Equal) {
			if reason := printers.Reason(c.Constraints(), d); reason != "" {
				pp.Error(&RejectedError{Date: d, Reason: reason})
			}
		}
	}
	if err := s.Persistence.Save(store.NewRecord(s.Name, selected)); err != nil {
		return err
	}
	pp.TitleWithCount(s.Name, len(selected))
	pp.Selection(c.Formatter(), selected...)
	pp.NewLine()
	return nil
}

// RejectedError reports a date the constraints kept out of the selection.
type RejectedError struct {
	Date   caldate.Date
	Reason string
}

func (e *RejectedError) Error() string {
	return "skipped " + e.Date.String() + ": " + e.Reason
}
