package timeutil

import (
	"testing"
	"time"

	"tableflip.dev/datepicker/pkg/caldate"
)

func TestParseOffsetKeywords(t *testing.T) {
	today := caldate.New(2012, time.March, 5)
	for in, want := range map[string]caldate.Date{
		"today":     today,
		"Tomorrow":  caldate.New(2012, time.March, 6),
		"yesterday": caldate.New(2012, time.March, 4),
	} {
		got, err := Resolve(in, today)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
		if !got.Equal(want) {
			t.Fatalf("%q: expected %s, got %s", in, want, got)
		}
	}
}

func TestParseOffsetComposite(t *testing.T) {
	off, err := ParseOffset("+1w2d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if off.Days != 9 {
		t.Fatalf("expected 9 days, got %+v", off)
	}
	off, err = ParseOffset("-1y6m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if off.Years != -1 || off.Months != -6 {
		t.Fatalf("unexpected offset %+v", off)
	}
	if off.String() != "-1y-6m" {
		t.Fatalf("unexpected label %s", off.String())
	}
}

func TestApplyClampsMonthEnd(t *testing.T) {
	got, err := Resolve("+1m", caldate.New(2012, time.January, 31))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(caldate.New(2012, time.February, 29)) {
		t.Fatalf("expected Feb 29, got %s", got)
	}
}

func TestParseOffsetInvalid(t *testing.T) {
	for _, in := range []string{"noop", "+", "+3q", "+d"} {
		if _, err := ParseOffset(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
	if IsRelative("03/05/2012") {
		t.Fatalf("absolute date reported as relative")
	}
	if !IsRelative("-3d") {
		t.Fatalf("expected -3d to be relative")
	}
}
