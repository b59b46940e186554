package constraints

import (
	"testing"
	"time"

	"tableflip.dev/datepicker/pkg/caldate"
	"tableflip.dev/datepicker/pkg/view"
)

func oct(day int) caldate.Date {
	return caldate.New(2012, time.October, day)
}

func TestDisabledWeekdays(t *testing.T) {
	w, err := NewWeekdays(1, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := New().WithDisabledWeekdays(w)
	for _, d := range []int{22, 26} {
		if c.IsSelectable(oct(d)) {
			t.Fatalf("expected Oct %d to be disabled", d)
		}
	}
	if !c.IsSelectable(oct(24)) {
		t.Fatalf("expected Oct 24 to be selectable")
	}
}

func TestHighlightedWeekdays(t *testing.T) {
	w, _ := NewWeekdays(1, 5)
	c := New().WithHighlightedWeekdays(w)
	if !c.IsHighlighted(oct(22)) || !c.IsHighlighted(oct(26)) {
		t.Fatalf("expected Monday and Friday highlighted")
	}
	if c.IsHighlighted(oct(24)) {
		t.Fatalf("did not expect Wednesday highlighted")
	}
	if !c.IsSelectable(oct(22)) {
		t.Fatalf("highlighting must not disable")
	}
}

func TestDisabledDatesExact(t *testing.T) {
	c := New().WithDisabledDates(oct(1), oct(10), oct(20))
	for d := 1; d <= 31; d++ {
		want := d == 1 || d == 10 || d == 20
		if got := !c.IsSelectable(oct(d)); got != want {
			t.Fatalf("Oct %d: disabled=%v, want %v", d, got, want)
		}
	}
	if got := len(c.DisabledDates()); got != 3 {
		t.Fatalf("expected 3 disabled dates, got %d", got)
	}
}

func TestWithDisabledDatesReplaces(t *testing.T) {
	c := New().WithDisabledDates(oct(1))
	c2 := c.WithDisabledDates(oct(2))
	if c2.IsDisabled(oct(1)) {
		t.Fatalf("disabled dates must be replaced, not appended")
	}
	if !c.IsDisabled(oct(1)) {
		t.Fatalf("receiver snapshot must not change")
	}
}

func TestRangeInclusive(t *testing.T) {
	c := New().WithStart(oct(5)).WithEnd(oct(10))
	if !c.IsSelectable(oct(5)) || !c.IsSelectable(oct(10)) {
		t.Fatalf("range bounds are inclusive")
	}
	if c.IsSelectable(oct(4)) || c.IsSelectable(oct(11)) {
		t.Fatalf("dates outside the range must not be selectable")
	}
	reset := c.WithStart(caldate.Date{})
	if !reset.Start().Equal(caldate.Min) {
		t.Fatalf("expected start reset to sentinel, got %s", reset.Start())
	}
}

func TestCellPredicate(t *testing.T) {
	c := New().WithPredicate(view.Day, func(d caldate.Date) (Decoration, bool) {
		if d.Day() == 13 {
			return Decoration{Disabled: true, Classes: []string{"unlucky"}, Tooltip: "nope"}, true
		}
		return Decoration{}, false
	})
	st := c.Cell(view.Day, oct(13))
	if !st.Disabled || st.Tooltip != "nope" || len(st.Classes) != 1 {
		t.Fatalf("unexpected cell state %+v", st)
	}
	if st := c.Cell(view.Day, oct(14)); st.Disabled || st.Tooltip != "" {
		t.Fatalf("no-opinion predicate changed the cell: %+v", st)
	}
	// predicates only affect rendered cells
	if !c.IsSelectable(oct(13)) {
		t.Fatalf("predicate must not change IsSelectable")
	}
}

func TestCellAboveDayUsesPeriodBounds(t *testing.T) {
	c := New().WithStart(caldate.New(2012, time.March, 15)).WithEnd(caldate.New(2014, time.June, 1))
	if st := c.Cell(view.Month, caldate.New(2012, time.March, 1)); st.Disabled {
		t.Fatalf("March 2012 overlaps the range")
	}
	if st := c.Cell(view.Month, caldate.New(2012, time.February, 1)); !st.Disabled {
		t.Fatalf("February 2012 is before the range")
	}
	if st := c.Cell(view.Year, caldate.New(2015, time.January, 1)); !st.Disabled {
		t.Fatalf("2015 is after the range")
	}
	if st := c.Cell(view.Decade, caldate.New(2010, time.January, 1)); st.Disabled {
		t.Fatalf("the 2010s overlap the range")
	}
}

func TestRecurrenceRule(t *testing.T) {
	c, err := New().WithRule("FREQ=MONTHLY;BYMONTHDAY=1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.IsSelectable(oct(1)) {
		t.Fatalf("expected the first of the month disabled")
	}
	if !c.IsSelectable(oct(2)) {
		t.Fatalf("expected Oct 2 selectable")
	}
	if _, err := New().WithRule("FREQ=SOMETIMES"); err == nil {
		t.Fatalf("expected error for invalid rule")
	}
}

func TestCronSchedule(t *testing.T) {
	c, err := New().WithCron("0 0 10,20 * *")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.IsSelectable(oct(10)) || c.IsSelectable(oct(20)) {
		t.Fatalf("expected the 10th and 20th disabled")
	}
	if !c.IsSelectable(oct(11)) {
		t.Fatalf("expected Oct 11 selectable")
	}
	if _, err := New().WithCron("not a cron"); err == nil {
		t.Fatalf("expected error for invalid cron")
	}
}

func TestNewWeekdaysRejectsOutOfRange(t *testing.T) {
	if _, err := NewWeekdays(7); err == nil {
		t.Fatalf("expected error for weekday 7")
	}
	w, _ := NewWeekdays(0, 6)
	if w.String() != "Sun,Sat" {
		t.Fatalf("unexpected string %q", w.String())
	}
}
