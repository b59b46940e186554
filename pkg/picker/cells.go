package picker

import (
	"tableflip.dev/datepicker/pkg/caldate"
	"tableflip.dev/datepicker/pkg/events"
	"tableflip.dev/datepicker/pkg/view"
)

// CellActivation is what a renderer reports when a grid cell is clicked.
// Zoom is the zoom of the grid the cell belongs to. OldMonth and NewMonth
// mark day cells from the months before and after the one on display.
type CellActivation struct {
	Zoom     view.Zoom
	Date     caldate.Date
	OldMonth bool
	NewMonth bool
}

// ActivateCell applies a click on a grid cell. Disabled cells are ignored.
func (c *Controller) ActivateCell(a CellActivation) {
	if !c.guard("cell") {
		return
	}
	defer c.leave()
	if a.Date.IsZero() || c.c.Cell(a.Zoom, a.Date).Disabled {
		return
	}
	c.view.ClearFocus()
	d := a.Date.In(c.cfg.Locale.Tag)
	cur := c.view.Cursor()
	lo, hi := c.c.Start(), c.c.End()

	switch a.Zoom {
	case view.Day:
		monthChanged := a.OldMonth || a.NewMonth || d.Month() != cur.Month() || d.Year() != cur.Year()
		yearChanged := d.Year() != cur.Year()
		c.view.SetCursor(d.Clamp(lo, hi))
		if yearChanged {
			c.trigger(events.YearChange, d)
		}
		if monthChanged {
			c.trigger(events.MonthChange, d)
		}
		c.activate(d, ScopeBoth)

	case view.Month:
		first := d.StartOfMonth()
		c.view.SetCursor(first.Clamp(lo, hi))
		c.trigger(events.MonthChange, first)
		c.immediate(first)
		if c.view.MinZoom() == view.Month {
			c.activate(first, ScopeBoth)
		} else {
			c.view.ChangeZoom(-1)
		}
		c.repaint()

	case view.Year, view.Decade, view.Century:
		moved := cur.WithYear(d.Year())
		c.view.SetCursor(moved.Clamp(lo, hi))
		switch a.Zoom {
		case view.Year:
			c.trigger(events.YearChange, moved)
		case view.Decade:
			c.trigger(events.DecadeChange, moved)
		default:
			c.trigger(events.CenturyChange, moved)
		}
		c.immediate(moved)
		if c.view.MinZoom() == view.Year {
			c.activate(moved, ScopeBoth)
		}
		c.view.ChangeZoom(-1)
		c.repaint()
	}
}

// immediate selects d after a month or year change when ImmediateUpdates is
// set, so the host text follows the view.
func (c *Controller) immediate(d caldate.Date) {
	if !c.cfg.ImmediateUpdates || !c.c.IsSelectable(d) {
		return
	}
	c.replace([]caldate.Date{d}, true)
	c.view.SetCursor(d)
}

// Page moves the view one page back (dir < 0) or forward. The cursor stays
// inside the range.
func (c *Controller) Page(dir int) {
	if !c.guard("page") {
		return
	}
	defer c.leave()
	if dir == 0 {
		return
	}
	if dir < 0 {
		dir = -1
	} else {
		dir = 1
	}
	p := c.view.Page(dir)
	cur := c.view.Cursor().Clamp(c.c.Start(), c.c.End())
	c.view.SetCursor(cur)
	switch p {
	case view.MonthPeriod:
		c.trigger(events.MonthChange, cur)
	case view.YearPeriod:
		c.trigger(events.YearChange, cur)
	}
	c.repaint()
}

// CanPage reports whether the page in direction dir overlaps the range.
func (c *Controller) CanPage(dir int) bool {
	s := c.view
	if dir < 0 {
		s.Page(-1)
	} else {
		s.Page(1)
	}
	lo, hi := s.Span()
	return !hi.Before(c.c.Start()) && !lo.After(c.c.End())
}

// ZoomOut shows the next coarser grid, as the header switch does.
func (c *Controller) ZoomOut() {
	if !c.guard("zoom") {
		return
	}
	defer c.leave()
	c.view.ChangeZoom(1)
	c.repaint()
}

// Today moves to today's day grid, or the nearest range bound when today is
// outside the range. With TodayLinked today is also selected when it is
// selectable.
func (c *Controller) Today() {
	if !c.guard("today") {
		return
	}
	defer c.leave()
	c.view.SetZoom(view.Day)
	today := c.today()
	scope := ScopeView
	if c.cfg.TodayButton == TodayLinked && c.c.IsSelectable(today) {
		scope = ScopeBoth
	}
	c.activate(today, scope)
}
