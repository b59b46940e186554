// Package calendar renders a picker grid with Lip Gloss.
package calendar

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/datepicker/pkg/picker"
	"tableflip.dev/datepicker/pkg/tui/theme"
	"tableflip.dev/datepicker/pkg/view"
)

// Options controls calendar rendering.
type Options struct {
	Theme theme.CalendarTheme
	// ShowOther renders the days of the neighbouring months.
	ShowOther bool
}

// DefaultOptions returns the styling used for calendar rendering.
func DefaultOptions() Options {
	return Options{Theme: theme.Default().Calendar, ShowOther: true}
}

// CellWidth is the rendered width of one cell at zoom z.
func CellWidth(z view.Zoom) int {
	switch z {
	case view.Day:
		return 2
	case view.Month, view.Year:
		return 4
	}
	return 9
}

// Width is the rendered width of g, title bar included.
func Width(g picker.Grid) int {
	if len(g.Rows) == 0 {
		return 0
	}
	return len(g.Rows[0])*(CellWidth(g.Zoom)+1) - 1
}

// Render produces the title bar, the weekday header at the day zoom and one
// line per grid row.
func Render(g picker.Grid, opts Options) string {
	if len(g.Rows) == 0 {
		return ""
	}
	th := opts.Theme
	w := CellWidth(g.Zoom)
	rowWidth := Width(g)

	prev, next := th.Nav.Render("‹"), th.Nav.Render("›")
	if !g.CanPrev {
		prev = th.NavDisabled.Render("‹")
	}
	if !g.CanNext {
		next = th.NavDisabled.Render("›")
	}
	title := th.Title.Width(rowWidth - 4).Align(lipgloss.Center).Render(g.Title)
	lines := []string{prev + " " + title + " " + next}

	if len(g.Weekdays) > 0 {
		heads := make([]string, len(g.Weekdays))
		for i, h := range g.Weekdays {
			heads[i] = th.Header.Width(w).Align(lipgloss.Right).Render(h)
		}
		lines = append(lines, strings.Join(heads, " "))
	}

	for _, row := range g.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = renderCell(cell, w, opts)
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func renderCell(cell picker.Cell, w int, opts Options) string {
	th := opts.Theme
	if (cell.Old || cell.New) && !opts.ShowOther {
		return strings.Repeat(" ", w)
	}
	style := th.Day
	if cell.Old || cell.New {
		style = th.Other
	}
	if cell.Highlighted {
		style = th.Highlighted.Inherit(style)
	}
	if cell.InSpan {
		style = th.InSpan.Inherit(style)
	}
	if cell.Today {
		style = th.Today.Inherit(style)
	}
	if cell.Focused {
		style = th.Focused.Inherit(style)
	}
	if cell.Selected {
		style = th.Selected.Inherit(style)
	}
	if cell.Disabled {
		style = th.Disabled.Inherit(style)
	}
	return style.Width(w).Align(lipgloss.Right).Render(cell.Label)
}

// At maps a column and row of the rendered body (below the title and header
// lines) to the grid cell there, for mouse clicks.
func At(g picker.Grid, x, y int) (picker.Cell, bool) {
	y -= 1
	if len(g.Weekdays) > 0 {
		y--
	}
	if y < 0 || y >= len(g.Rows) {
		return picker.Cell{}, false
	}
	w := CellWidth(g.Zoom) + 1
	col := x / w
	row := g.Rows[y]
	if x < 0 || col >= len(row) {
		return picker.Cell{}, false
	}
	return row[col], true
}
