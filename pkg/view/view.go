// Package view tracks the zoom level and the date cursor of a picker.
package view

import (
	"fmt"
	"strconv"
	"strings"

	"tableflip.dev/datepicker/pkg/caldate"
)

// Zoom is the granularity of the visible grid.
type Zoom int

const (
	Day Zoom = iota
	Month
	Year
	Decade
	Century
)

var zoomNames = []string{"days", "months", "years", "decades", "centuries"}

// navSteps is how far one page moves at each zoom: months at Day, years above.
var navSteps = []int{1, 1, 10, 100, 1000}

func (z Zoom) String() string {
	if z < Day || z > Century {
		return "zoom(" + strconv.Itoa(int(z)) + ")"
	}
	return zoomNames[z]
}

// NavStep returns the paging distance for the zoom level.
func (z Zoom) NavStep() int {
	if z < Day || z > Century {
		return 1
	}
	return navSteps[z]
}

// ParseZoom accepts a zoom name ("days" ... "centuries") or its index.
func ParseZoom(s string) (Zoom, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range zoomNames {
		if name == n || name == strings.TrimSuffix(n, "s") {
			return Zoom(i), nil
		}
	}
	if name == "century" {
		return Century, nil
	}
	if n, err := strconv.Atoi(name); err == nil && n >= int(Day) && n <= int(Century) {
		return Zoom(n), nil
	}
	return Day, fmt.Errorf("view: unknown zoom %q", s)
}

// Period is the named boundary crossed by a page at a given zoom.
type Period int

const (
	// NoPeriod means paging at this zoom has no boundary event.
	NoPeriod Period = iota
	MonthPeriod
	YearPeriod
)

// State is the zoom level, the cursor the grid is rendered around and the
// optional keyboard focus.
type State struct {
	zoom     Zoom
	min, max Zoom
	start    Zoom
	cursor   caldate.Date
	focus    caldate.Date
}

// New returns a state at start zoom, clamped into [min, max].
func New(start, min, max Zoom, cursor caldate.Date) State {
	if max < min {
		max = min
	}
	s := State{min: min, max: max, cursor: cursor}
	s.start = s.clamp(start)
	s.zoom = s.start
	return s
}

func (s State) clamp(z Zoom) Zoom {
	if z < s.min {
		return s.min
	}
	if z > s.max {
		return s.max
	}
	return z
}

// Zoom returns the current zoom.
func (s State) Zoom() Zoom { return s.zoom }

// MinZoom returns the lowest allowed zoom.
func (s State) MinZoom() Zoom { return s.min }

// MaxZoom returns the highest allowed zoom.
func (s State) MaxZoom() Zoom { return s.max }

// StartZoom returns the zoom restored by Reset.
func (s State) StartZoom() Zoom { return s.start }

// Cursor returns the date the grid is rendered around.
func (s State) Cursor() caldate.Date { return s.cursor }

// Focus returns the keyboard focus date, if any.
func (s State) Focus() (caldate.Date, bool) {
	return s.focus, !s.focus.IsZero()
}

// ChangeZoom moves the zoom by delta, clamped into [min, max].
func (s *State) ChangeZoom(delta int) {
	s.zoom = s.clamp(s.zoom + Zoom(delta))
}

// SetZoom jumps to z, clamped into [min, max].
func (s *State) SetZoom(z Zoom) {
	s.zoom = s.clamp(z)
}

// SetCursor moves the cursor.
func (s *State) SetCursor(d caldate.Date) { s.cursor = d }

// SetFocus sets the keyboard focus; the zero Date clears it.
func (s *State) SetFocus(d caldate.Date) { s.focus = d }

// ClearFocus leaves keyboard navigation mode.
func (s *State) ClearFocus() { s.focus = caldate.Date{} }

// Reset restores the start zoom and clears focus.
func (s *State) Reset() {
	s.zoom = s.start
	s.focus = caldate.Date{}
}

// Page moves the cursor one page in direction and reports which boundary
// notification applies.
func (s *State) Page(direction int) Period {
	step := s.zoom.NavStep() * direction
	if s.zoom == Day {
		s.cursor = s.cursor.AddMonths(step)
		return MonthPeriod
	}
	s.cursor = s.cursor.AddYears(step)
	if s.zoom == Month {
		return YearPeriod
	}
	return NoPeriod
}

// Span returns the first and last day covered by the grid at the current zoom.
func (s State) Span() (caldate.Date, caldate.Date) {
	return Span(s.zoom, s.cursor)
}

// Span returns the first and last day of the page shown at zoom around d.
func Span(z Zoom, d caldate.Date) (caldate.Date, caldate.Date) {
	switch z {
	case Day:
		return d.StartOfMonth(), d.EndOfMonth()
	case Month:
		return yearStart(d.Year()), yearEnd(d.Year())
	}
	width := z.NavStep()
	first := floorTo(d.Year(), width)
	return yearStart(first), yearEnd(first + width - 1)
}

// CellSpan returns the first and last day a single cell covers at zoom.
func CellSpan(z Zoom, d caldate.Date) (caldate.Date, caldate.Date) {
	switch z {
	case Day:
		return d, d
	case Month:
		return d.StartOfMonth(), d.EndOfMonth()
	case Year:
		return yearStart(d.Year()), yearEnd(d.Year())
	}
	width := (z - 1).NavStep()
	first := floorTo(d.Year(), width)
	return yearStart(first), yearEnd(first + width - 1)
}

func yearStart(y int) caldate.Date { return caldate.New(y, 1, 1) }

func yearEnd(y int) caldate.Date { return caldate.New(y, 12, 31) }

func floorTo(year, width int) int {
	q := year / width
	if year%width != 0 && year < 0 {
		q--
	}
	return q * width
}
