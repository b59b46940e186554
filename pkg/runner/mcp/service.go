// Package mcp serves saved selections and date checks over the Model Context
// Protocol.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"tableflip.dev/datepicker/pkg/caldate"
	"tableflip.dev/datepicker/pkg/picker"
	"tableflip.dev/datepicker/pkg/printers"
	"tableflip.dev/datepicker/pkg/store"
)

// Service coordinates persistence-backed operations that are shared by the MCP server.
type Service struct {
	Persistence store.Persistence
	Config      picker.Config
	// Clock overrides today for relative dates.
	Clock func() caldate.Date
}

// SelectionDTO is a transport-friendly projection of a saved selection.
type SelectionDTO struct {
	Name    string   `json:"name"`
	Dates   []string `json:"dates"`
	Text    string   `json:"text"`
	Count   int      `json:"count"`
	Updated string   `json:"updated,omitempty"`
}

// CheckDTO reports whether one date can be picked.
type CheckDTO struct {
	Date        string `json:"date"`
	Text        string `json:"text"`
	Weekday     string `json:"weekday"`
	Selectable  bool   `json:"selectable"`
	Highlighted bool   `json:"highlighted"`
	Reason      string `json:"reason,omitempty"`
}

// NewService builds a service wrapper using the provided persistence layer.
func NewService(p store.Persistence, cfg picker.Config) *Service {
	return &Service{Persistence: p, Config: cfg}
}

func (s *Service) controller() *picker.Controller {
	var opts []picker.Option
	if s.Clock != nil {
		opts = append(opts, picker.WithClock(s.Clock))
	}
	return picker.New(s.Config, picker.NewMemoryHost(""), opts...)
}

func (s *Service) dto(r *store.Record, c *picker.Controller) SelectionDTO {
	dto := SelectionDTO{Name: r.Name, Dates: r.Dates, Count: len(r.Dates)}
	if !r.Updated.IsZero() {
		dto.Updated = r.Updated.UTC().Format(time.RFC3339)
	}
	if dates, err := r.Selection(); err == nil {
		dto.Text = c.Formatter().Join(dates, s.Config.Separator)
	}
	return dto
}

// ListSelections returns every saved selection.
func (s *Service) ListSelections(ctx context.Context) ([]SelectionDTO, error) {
	if s.Persistence == nil {
		return nil, errors.New("persistence is not configured")
	}
	c := s.controller()
	var out []SelectionDTO
	for _, r := range s.Persistence.List(ctx) {
		out = append(out, s.dto(r, c))
	}
	return out, nil
}

// Selection returns the selection saved as name.
func (s *Service) Selection(_ context.Context, name string) (SelectionDTO, error) {
	if s.Persistence == nil {
		return SelectionDTO{}, errors.New("persistence is not configured")
	}
	r, err := s.Persistence.Load(strings.TrimSpace(name))
	if err != nil {
		return SelectionDTO{}, err
	}
	return s.dto(r, s.controller()), nil
}

// SetSelection saves dates as name, keeping the saved dates when
// appendDates is set. Dates the constraints exclude are returned as
// rejected checks.
func (s *Service) SetSelection(_ context.Context, name string, dates []string, appendDates bool) (SelectionDTO, []CheckDTO, error) {
	if s.Persistence == nil {
		return SelectionDTO{}, nil, errors.New("persistence is not configured")
	}
	name = strings.TrimSpace(name)
	c := s.controller()
	var requested []caldate.Date
	if appendDates {
		r, err := s.Persistence.Load(name)
		switch {
		case errors.Is(err, store.ErrNotFound):
		case err != nil:
			return SelectionDTO{}, nil, err
		default:
			saved, err := r.Selection()
			if err != nil {
				return SelectionDTO{}, nil, err
			}
			requested = append(requested, saved...)
		}
	}
	for _, text := range dates {
		d, err := c.ResolveDate(text)
		if err != nil {
			return SelectionDTO{}, nil, fmt.Errorf("invalid date %q: %w", text, err)
		}
		requested = append(requested, d)
	}
	if err := c.SetDates(requested...); err != nil {
		return SelectionDTO{}, nil, err
	}
	selected := c.Dates()
	var rejected []CheckDTO
	for _, d := range requested {
		if !slices.ContainsFunc(selected, d.Equal) && !c.Constraints().IsSelectable(d) {
			rejected = append(rejected, s.check(c, d))
		}
	}
	r := store.NewRecord(name, selected)
	if err := s.Persistence.Save(r); err != nil {
		return SelectionDTO{}, nil, err
	}
	return s.dto(r, c), rejected, nil
}

// ClearSelection removes the selection saved as name.
func (s *Service) ClearSelection(_ context.Context, name string) error {
	if s.Persistence == nil {
		return errors.New("persistence is not configured")
	}
	return s.Persistence.Delete(name)
}

// Check reports, for every date, whether it can be picked.
func (s *Service) Check(_ context.Context, dates []string) ([]CheckDTO, error) {
	c := s.controller()
	out := make([]CheckDTO, 0, len(dates))
	for _, text := range dates {
		d, err := c.ResolveDate(text)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", text, err)
		}
		out = append(out, s.check(c, d))
	}
	return out, nil
}

func (s *Service) check(c *picker.Controller, d caldate.Date) CheckDTO {
	cons := c.Constraints()
	return CheckDTO{
		Date:        d.String(),
		Text:        c.Formatter().Format(d),
		Weekday:     c.Formatter().Locale().Weekdays[d.Weekday()],
		Selectable:  cons.IsSelectable(d),
		Highlighted: cons.IsHighlighted(d),
		Reason:      printers.Reason(cons, d),
	}
}
