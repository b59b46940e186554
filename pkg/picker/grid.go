package picker

import (
	"fmt"
	"strconv"

	"tableflip.dev/datepicker/pkg/caldate"
	"tableflip.dev/datepicker/pkg/view"
)

// Cell is one rendered grid cell.
type Cell struct {
	Zoom  view.Zoom
	Date  caldate.Date
	Label string
	// Old and New mark cells before and after the period on display.
	Old bool
	New bool

	Selected    bool
	Focused     bool
	Today       bool
	Disabled    bool
	Highlighted bool
	// InSpan marks cells inside the span set with SetSpan.
	InSpan  bool
	Classes []string
	Tooltip string
}

// Activation returns the report the renderer sends when the cell is clicked.
func (cell Cell) Activation() CellActivation {
	return CellActivation{Zoom: cell.Zoom, Date: cell.Date, OldMonth: cell.Old, NewMonth: cell.New}
}

// Grid is everything a renderer needs to paint the current zoom.
type Grid struct {
	Zoom  view.Zoom
	Title string
	// Weekdays holds the column headers at the day zoom.
	Weekdays []string
	Rows     [][]Cell
	CanPrev  bool
	CanNext  bool
}

// Cell returns the cell holding d, if the grid shows it.
func (g Grid) Cell(d caldate.Date) (Cell, bool) {
	for _, row := range g.Rows {
		for _, cell := range row {
			lo, hi := view.CellSpan(g.Zoom, cell.Date)
			if d.Within(lo, hi) && !cell.Old && !cell.New {
				return cell, true
			}
		}
	}
	return Cell{}, false
}

// Grid builds the cells for the current zoom around the cursor.
func (c *Controller) Grid() Grid {
	z := c.view.Zoom()
	cur := c.view.Cursor()
	g := Grid{Zoom: z, CanPrev: c.CanPage(-1), CanNext: c.CanPage(1)}
	loc := c.cfg.Locale

	switch z {
	case view.Day:
		g.Title = fmt.Sprintf("%s %d", loc.MonthName(cur.Month()), cur.Year())
		for i := 0; i < 7; i++ {
			g.Weekdays = append(g.Weekdays, loc.WeekdaysMin[(int(c.cfg.WeekStart)+i)%7])
		}
		first := cur.StartOfMonth()
		offset := (int(first.Weekday()) - int(c.cfg.WeekStart) + 7) % 7
		d := first.AddDays(-offset)
		for r := 0; r < 6; r++ {
			row := make([]Cell, 7)
			for i := range row {
				cell := c.cell(z, d, strconv.Itoa(d.Day()))
				cell.Old = d.Before(first)
				cell.New = d.After(cur.EndOfMonth())
				row[i] = cell
				d = d.AddDays(1)
			}
			g.Rows = append(g.Rows, row)
		}

	case view.Month:
		g.Title = strconv.Itoa(cur.Year())
		for r := 0; r < 3; r++ {
			row := make([]Cell, 4)
			for i := range row {
				d := caldate.New(cur.Year(), 1, 1).AddMonths(r*4 + i)
				row[i] = c.cell(z, d, loc.MonthShort(d.Month()))
			}
			g.Rows = append(g.Rows, row)
		}

	default:
		lo, hi := view.Span(z, cur)
		g.Title = fmt.Sprintf("%d-%d", lo.Year(), hi.Year())
		width := (z - 1).NavStep()
		start := lo.Year() - width
		for r := 0; r < 3; r++ {
			row := make([]Cell, 4)
			for i := range row {
				year := start + (r*4+i)*width
				d := caldate.New(year, 1, 1)
				cell := c.cell(z, d, strconv.Itoa(year))
				cell.Old = year < lo.Year()
				cell.New = year > hi.Year()
				row[i] = cell
			}
			g.Rows = append(g.Rows, row)
		}
	}
	return g
}

func (c *Controller) cell(z view.Zoom, d caldate.Date, label string) Cell {
	d = d.In(c.cfg.Locale.Tag)
	st := c.c.Cell(z, d)
	lo, hi := view.CellSpan(z, d)
	cell := Cell{
		Zoom:        z,
		Date:        d,
		Label:       label,
		Disabled:    st.Disabled,
		Highlighted: st.Highlighted,
		Classes:     st.Classes,
		Tooltip:     st.Tooltip,
	}
	for _, sel := range c.dates.Dates() {
		if sel.Within(lo, hi) {
			cell.Selected = true
			break
		}
	}
	if focus, ok := c.view.Focus(); ok && focus.Within(lo, hi) {
		cell.Focused = true
	}
	if c.cfg.TodayHighlight && c.today().Within(lo, hi) {
		cell.Today = true
	}
	if s, e := c.span[0], c.span[1]; !s.IsZero() && !e.IsZero() {
		cell.InSpan = !hi.Before(s) && !lo.After(e)
	}
	return cell
}
