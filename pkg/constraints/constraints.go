// Package constraints decides which dates a picker may select and how each
// rendered cell is decorated.
package constraints

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"tableflip.dev/datepicker/pkg/caldate"
	"tableflip.dev/datepicker/pkg/view"
)

// Decoration is a predicate's opinion on a single rendered cell.
type Decoration struct {
	// Disabled marks the cell as not selectable.
	Disabled bool
	// Classes are extra style names for the renderer.
	Classes []string
	// Tooltip is shown for the cell when non-empty.
	Tooltip string
}

// Predicate is consulted once per rendered cell. Returning false means no
// opinion and leaves the default evaluation in place.
type Predicate func(caldate.Date) (Decoration, bool)

// CellState is the evaluated state of a rendered cell.
type CellState struct {
	Disabled    bool
	Highlighted bool
	Classes     []string
	Tooltip     string
}

// Constraints is an immutable snapshot. The With* methods return modified
// copies and never touch the receiver.
type Constraints struct {
	start, end       caldate.Date
	disabled         map[int64]caldate.Date
	disabledWeekdays Weekdays
	highlighted      Weekdays
	predicates       [view.Century + 1]Predicate
	rule             *recurrence
	cron             *cronRule
}

// New returns constraints open between caldate.Min and caldate.Max.
func New() Constraints {
	return Constraints{start: caldate.Min, end: caldate.Max}
}

// Start returns the first selectable day.
func (c Constraints) Start() caldate.Date { return c.start }

// End returns the last selectable day.
func (c Constraints) End() caldate.Date { return c.end }

// HasStart reports whether a lower bound other than the sentinel is set.
func (c Constraints) HasStart() bool { return !c.start.Equal(caldate.Min) }

// HasEnd reports whether an upper bound other than the sentinel is set.
func (c Constraints) HasEnd() bool { return !c.end.Equal(caldate.Max) }

// WithStart sets the lower bound. The zero Date resets it to caldate.Min.
func (c Constraints) WithStart(d caldate.Date) Constraints {
	if d.IsZero() {
		d = caldate.Min
	}
	c.start = d
	return c
}

// WithEnd sets the upper bound. The zero Date resets it to caldate.Max.
func (c Constraints) WithEnd(d caldate.Date) Constraints {
	if d.IsZero() {
		d = caldate.Max
	}
	c.end = d
	return c
}

// WithDisabledDates replaces the disabled date list.
func (c Constraints) WithDisabledDates(dates ...caldate.Date) Constraints {
	c.disabled = make(map[int64]caldate.Date, len(dates))
	for _, d := range dates {
		c.disabled[d.DayNumber()] = d
	}
	return c
}

// DisabledDates returns the disabled dates in calendar order.
func (c Constraints) DisabledDates() []caldate.Date {
	out := make([]caldate.Date, 0, len(c.disabled))
	for _, d := range c.disabled {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// WithDisabledWeekdays replaces the disabled weekdays.
func (c Constraints) WithDisabledWeekdays(w Weekdays) Constraints {
	c.disabledWeekdays = w
	return c
}

// DisabledWeekdays returns the disabled weekdays.
func (c Constraints) DisabledWeekdays() Weekdays { return c.disabledWeekdays }

// WithHighlightedWeekdays replaces the highlighted weekdays.
func (c Constraints) WithHighlightedWeekdays(w Weekdays) Constraints {
	c.highlighted = w
	return c
}

// HighlightedWeekdays returns the highlighted weekdays.
func (c Constraints) HighlightedWeekdays() Weekdays { return c.highlighted }

// WithPredicate installs the before-show hook for cells at zoom. A nil
// predicate removes it.
func (c Constraints) WithPredicate(z view.Zoom, p Predicate) Constraints {
	if z < view.Day || z > view.Century {
		return c
	}
	c.predicates[z] = p
	return c
}

// AllWeekdaysDisabled reports whether every day of the week is disabled.
func (c Constraints) AllWeekdaysDisabled() bool {
	return c.disabledWeekdays.Len() == 7
}

// InRange reports whether d lies within [Start, End].
func (c Constraints) InRange(d caldate.Date) bool {
	return d.Within(c.start, c.end)
}

// IsDisabled reports whether d is excluded by the date list, the disabled
// weekdays, the recurrence rule or the cron schedule. Range is not considered.
func (c Constraints) IsDisabled(d caldate.Date) bool {
	if c.disabledWeekdays.Has(d.Weekday()) {
		return true
	}
	if _, ok := c.disabled[d.DayNumber()]; ok {
		return true
	}
	if c.rule != nil && c.rule.matches(d) {
		return true
	}
	if c.cron != nil && c.cron.matches(d) {
		return true
	}
	return false
}

// IsSelectable reports whether d is in range and not disabled.
func (c Constraints) IsSelectable(d caldate.Date) bool {
	return c.InRange(d) && !c.IsDisabled(d)
}

// IsHighlighted reports whether d falls on a highlighted weekday.
func (c Constraints) IsHighlighted(d caldate.Date) bool {
	return c.highlighted.Has(d.Weekday())
}

// Cell evaluates a cell of the grid at zoom z. Cells above Day are disabled
// only when the whole period they cover is outside the range.
func (c Constraints) Cell(z view.Zoom, d caldate.Date) CellState {
	var st CellState
	if z == view.Day {
		st.Disabled = !c.IsSelectable(d)
		st.Highlighted = c.IsHighlighted(d)
	} else {
		lo, hi := view.CellSpan(z, d)
		st.Disabled = hi.Before(c.start) || lo.After(c.end)
	}
	if z < view.Day || z > view.Century {
		return st
	}
	if p := c.predicates[z]; p != nil {
		if dec, ok := p(d); ok {
			if dec.Disabled {
				st.Disabled = true
			}
			st.Classes = append(st.Classes, dec.Classes...)
			st.Tooltip = dec.Tooltip
		}
	}
	return st
}

func (c Constraints) String() string {
	var out strings.Builder
	if c.HasStart() || c.HasEnd() {
		fmt.Fprintf(&out, "range %s..%s", c.start, c.end)
	} else {
		out.WriteString("open range")
	}
	if len(c.disabled) > 0 {
		fmt.Fprintf(&out, ", %d disabled dates", len(c.disabled))
	}
	if c.disabledWeekdays.Len() > 0 {
		fmt.Fprintf(&out, ", disabled weekdays %s", c.disabledWeekdays)
	}
	if c.rule != nil {
		fmt.Fprintf(&out, ", rule %q", c.rule.text)
	}
	if c.cron != nil {
		fmt.Fprintf(&out, ", cron %q", c.cron.text)
	}
	return out.String()
}

// Weekdays is a set of days of the week.
type Weekdays uint8

// NewWeekdays builds a set from day numbers 0 (Sunday) to 6 (Saturday).
func NewWeekdays(days ...int) (Weekdays, error) {
	var w Weekdays
	for _, d := range days {
		if d < 0 || d > 6 {
			return 0, fmt.Errorf("constraints: weekday %d out of range 0-6", d)
		}
		w |= 1 << uint(d)
	}
	return w, nil
}

// Has reports whether day is in the set.
func (w Weekdays) Has(day time.Weekday) bool {
	return w&(1<<uint(day)) != 0
}

// Len returns the number of days in the set.
func (w Weekdays) Len() int {
	n := 0
	for d := time.Sunday; d <= time.Saturday; d++ {
		if w.Has(d) {
			n++
		}
	}
	return n
}

// Days returns the set as day numbers in ascending order.
func (w Weekdays) Days() []int {
	var out []int
	for d := time.Sunday; d <= time.Saturday; d++ {
		if w.Has(d) {
			out = append(out, int(d))
		}
	}
	return out
}

func (w Weekdays) String() string {
	names := make([]string, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if w.Has(d) {
			names = append(names, d.String()[:3])
		}
	}
	return strings.Join(names, ",")
}
