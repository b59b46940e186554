package dateformat

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/datepicker/pkg/caldate"
)

func TestParseStrict(t *testing.T) {
	f := New("MM/DD/YYYY", English)
	d, err := f.Parse("03/05/2012")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Equal(caldate.New(2012, time.March, 5)) {
		t.Fatalf("unexpected date %s", d)
	}
	for _, bad := range []string{"3/5/2012", "03/05/12", "03/05/2012 ", "02/30/2012", "13/01/2012", "", "foo"} {
		if _, err := f.Parse(bad); err == nil {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}

func TestParseErrorCarriesContext(t *testing.T) {
	f := New("DD.MM.YYYY", German)
	_, err := f.Parse("31.02.2012")
	var ide *InvalidDateError
	if !errors.As(err, &ide) {
		t.Fatalf("expected InvalidDateError, got %v", err)
	}
	if ide.Text != "31.02.2012" || ide.Format != "DD.MM.YYYY" || ide.Locale != "de" {
		t.Fatalf("unexpected error fields %+v", ide)
	}
}

func TestRoundTrip(t *testing.T) {
	cases := []struct {
		layout string
		loc    Locale
		texts  []string
	}{
		{"MM/DD/YYYY", English, []string{"03/05/2012", "12/31/1999", "02/29/2000"}},
		{"M/D/YY", English, []string{"3/5/12", "12/31/99", "1/1/00"}},
		{"dddd, MMMM Do YYYY", English, []string{"Monday, March 5th 2012", "Thursday, November 22nd 2012"}},
		{"D. MMMM YYYY", German, []string{"5. März 2012", "1. Dezember 2000"}},
		{"YYYY-MM-DD [week]", English, []string{"2012-03-05 week"}},
	}
	for _, tc := range cases {
		f := New(tc.layout, tc.loc)
		for _, text := range tc.texts {
			d, err := f.Parse(text)
			if err != nil {
				t.Fatalf("%s: %q: unexpected error %v", tc.layout, text, err)
			}
			if got := f.Format(d); got != text {
				t.Fatalf("%s: round trip %q -> %q", tc.layout, text, got)
			}
		}
	}
}

func TestVariableWidthRejectsLeadingZero(t *testing.T) {
	f := New("M/D/YYYY", English)
	if _, err := f.Parse("03/5/2012"); err == nil {
		t.Fatalf("expected leading zero to be rejected for M")
	}
}

func TestWeekdayMismatch(t *testing.T) {
	f := New("ddd YYYY-MM-DD", English)
	if _, err := f.Parse("Tue 2012-03-05"); err == nil {
		t.Fatalf("expected weekday mismatch to be rejected")
	}
	if _, err := f.Parse("Mon 2012-03-05"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTwoDigitYearPivot(t *testing.T) {
	f := New("YY", English)
	for text, want := range map[string]int{"68": 2068, "69": 1969, "00": 2000} {
		d, err := f.Parse(text)
		if err != nil {
			t.Fatalf("%q: %v", text, err)
		}
		if d.Year() != want {
			t.Fatalf("%q: expected %d, got %d", text, want, d.Year())
		}
	}
}

func TestResolve(t *testing.T) {
	f := New("", BritishEnglish)
	d, err := f.Resolve("05/03/2012")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Month() != time.March || d.Day() != 5 {
		t.Fatalf("expected day-first parsing, got %s", d)
	}
	d, err = f.Resolve(time.Date(2012, time.March, 5, 23, 0, 0, 0, time.UTC))
	if err != nil || !d.Equal(caldate.New(2012, time.March, 5)) {
		t.Fatalf("unexpected time resolution %s, %v", d, err)
	}
	if d.Locale() != BritishEnglish.Tag {
		t.Fatalf("expected locale stamp, got %v", d.Locale())
	}
	var ide *InvalidDateError
	if _, err := f.Resolve(42); !errors.As(err, &ide) || ide.Value != 42 {
		t.Fatalf("expected InvalidDateError with value, got %v", err)
	}
}

func TestSplitJoin(t *testing.T) {
	f := New("MM/DD/YYYY", English)
	dates, err := f.ParseList("03/05/2012,03/14/2012,", ",")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dates) != 2 {
		t.Fatalf("expected 2 dates, got %d", len(dates))
	}
	if got := f.Join(dates, ","); got != "03/05/2012,03/14/2012" {
		t.Fatalf("unexpected join %q", got)
	}
	if got := Split("03/05/2012", ""); len(got) != 1 {
		t.Fatalf("empty separator must not split, got %v", got)
	}
}

func TestLocalesLookup(t *testing.T) {
	locs := DefaultLocales()
	for in, want := range map[string]string{"de-AT": "de", "en-GB": "en-GB", "en-US": "en", "ja": "en", "": "en"} {
		loc, err := locs.Lookup(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if loc.Tag.String() != want {
			t.Fatalf("%q: expected %s, got %s", in, want, loc.Tag)
		}
	}
	if _, err := locs.Lookup("not a tag!"); err == nil {
		t.Fatalf("expected malformed tag to fail")
	}
	custom := English
	custom.Layout = "YYYY-MM-DD"
	loc, _ := locs.With(custom).Lookup("en")
	if loc.Layout != "YYYY-MM-DD" {
		t.Fatalf("expected With to replace the en locale")
	}
}
