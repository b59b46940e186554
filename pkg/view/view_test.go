package view

import (
	"testing"
	"time"

	"tableflip.dev/datepicker/pkg/caldate"
)

func TestChangeZoomClamps(t *testing.T) {
	s := New(Day, Day, Year, caldate.New(2012, time.March, 5))
	for _, delta := range []int{1, 5, 100, -1, -50, 3, -2} {
		s.ChangeZoom(delta)
		if s.Zoom() < s.MinZoom() || s.Zoom() > s.MaxZoom() {
			t.Fatalf("zoom %v escaped [%v, %v] after delta %d", s.Zoom(), s.MinZoom(), s.MaxZoom(), delta)
		}
	}
	s.ChangeZoom(10)
	if s.Zoom() != Year {
		t.Fatalf("expected max zoom, got %v", s.Zoom())
	}
	s.ChangeZoom(-10)
	if s.Zoom() != Day {
		t.Fatalf("expected min zoom, got %v", s.Zoom())
	}
}

func TestNewClampsStart(t *testing.T) {
	s := New(Century, Day, Month, caldate.Date{})
	if s.Zoom() != Month || s.StartZoom() != Month {
		t.Fatalf("expected start clamped to months, got %v", s.Zoom())
	}
}

func TestPagePeriods(t *testing.T) {
	start := caldate.New(2012, time.March, 5)
	cases := []struct {
		zoom   Zoom
		dir    int
		want   caldate.Date
		period Period
	}{
		{Day, 1, caldate.New(2012, time.April, 5), MonthPeriod},
		{Month, -1, caldate.New(2011, time.March, 5), YearPeriod},
		{Year, 1, caldate.New(2022, time.March, 5), NoPeriod},
		{Decade, 1, caldate.New(2112, time.March, 5), NoPeriod},
		{Century, -1, caldate.New(1012, time.March, 5), NoPeriod},
	}
	for _, tc := range cases {
		s := New(tc.zoom, Day, Century, start)
		p := s.Page(tc.dir)
		if p != tc.period {
			t.Fatalf("%v: expected period %v, got %v", tc.zoom, tc.period, p)
		}
		if !s.Cursor().Equal(tc.want) {
			t.Fatalf("%v: expected cursor %s, got %s", tc.zoom, tc.want, s.Cursor())
		}
	}
}

func TestResetClearsFocus(t *testing.T) {
	s := New(Day, Day, Century, caldate.New(2012, time.March, 5))
	s.ChangeZoom(2)
	s.SetFocus(caldate.New(2012, time.March, 6))
	s.Reset()
	if s.Zoom() != Day {
		t.Fatalf("expected start zoom after reset, got %v", s.Zoom())
	}
	if _, ok := s.Focus(); ok {
		t.Fatalf("expected focus cleared")
	}
}

func TestParseZoom(t *testing.T) {
	for in, want := range map[string]Zoom{
		"days": Day, "month": Month, "YEARS": Year, "decades": Decade,
		"centuries": Century, "century": Century, "2": Year,
	} {
		got, err := ParseZoom(in)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: expected %v, got %v", in, want, got)
		}
	}
	if _, err := ParseZoom("weeks"); err == nil {
		t.Fatalf("expected error for unknown zoom")
	}
}

func TestSpans(t *testing.T) {
	d := caldate.New(2012, time.March, 5)
	lo, hi := Span(Year, d)
	if lo.Year() != 2010 || hi.Year() != 2019 {
		t.Fatalf("year page: %s..%s", lo, hi)
	}
	lo, hi = CellSpan(Decade, d)
	if lo.Year() != 2010 || hi.Year() != 2019 {
		t.Fatalf("decade cell: %s..%s", lo, hi)
	}
	lo, hi = CellSpan(Century, d)
	if lo.Year() != 2000 || hi.Year() != 2099 {
		t.Fatalf("century cell: %s..%s", lo, hi)
	}
}
