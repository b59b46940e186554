package caldate

import (
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestAddMonthsClampsDay(t *testing.T) {
	cases := []struct {
		from Date
		n    int
		want Date
	}{
		{New(2012, time.January, 31), 1, New(2012, time.February, 29)},
		{New(2013, time.January, 31), 1, New(2013, time.February, 28)},
		{New(2012, time.March, 31), -1, New(2012, time.February, 29)},
		{New(2012, time.December, 15), 1, New(2013, time.January, 15)},
		{New(2012, time.January, 15), -1, New(2011, time.December, 15)},
		{New(2012, time.January, 15), -25, New(2009, time.December, 15)},
	}
	for _, tc := range cases {
		if got := tc.from.AddMonths(tc.n); !got.Equal(tc.want) {
			t.Fatalf("%s + %d months: expected %s, got %s", tc.from, tc.n, tc.want, got)
		}
	}
}

func TestAddYearsLeapDay(t *testing.T) {
	got := New(2012, time.February, 29).AddYears(1)
	if want := New(2013, time.February, 28); !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestAddUnits(t *testing.T) {
	d := New(2012, time.March, 5)
	if got := d.Add(1, Week); !got.Equal(New(2012, time.March, 12)) {
		t.Fatalf("week step: %s", got)
	}
	if got := d.Add(-1, Day); !got.Equal(New(2012, time.March, 4)) {
		t.Fatalf("day step: %s", got)
	}
	if got := d.Add(10, Year); !got.Equal(New(2022, time.March, 5)) {
		t.Fatalf("year step: %s", got)
	}
}

func TestEqualityIgnoresLocale(t *testing.T) {
	a := New(2012, time.March, 5).In(language.German)
	b := New(2012, time.March, 5)
	if !a.Equal(b) {
		t.Fatalf("expected %s == %s regardless of locale", a, b)
	}
	if a.DayNumber() != b.DayNumber() {
		t.Fatalf("day numbers differ: %d vs %d", a.DayNumber(), b.DayNumber())
	}
	if a.Locale() != language.German {
		t.Fatalf("expected locale to be carried, got %v", a.Locale())
	}
}

func TestFromTimeUsesUTCDay(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	local := time.Date(2012, time.March, 5, 22, 0, 0, 0, loc)
	if got := FromTime(local); !got.Equal(New(2012, time.March, 6)) {
		t.Fatalf("expected UTC day 2012-03-06, got %s", got)
	}
}

func TestDayNumberBeforeEpoch(t *testing.T) {
	if got := New(1969, time.December, 31).DayNumber(); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
	if got := New(1970, time.January, 2).DayNumber(); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}

func TestSentinelsAndClamp(t *testing.T) {
	if Min.Year() != 0 || Max.Year() != 2200 {
		t.Fatalf("unexpected sentinels %s..%s", Min, Max)
	}
	lo, hi := New(2012, time.March, 1), New(2012, time.March, 31)
	if got := New(2012, time.April, 2).Clamp(lo, hi); !got.Equal(hi) {
		t.Fatalf("expected clamp to %s, got %s", hi, got)
	}
	if !New(2012, time.March, 1).Within(lo, hi) {
		t.Fatalf("bounds are inclusive")
	}
}

func TestParseISO(t *testing.T) {
	d, err := Parse("2012-10-20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.String() != "2012-10-20" {
		t.Fatalf("unexpected string %q", d.String())
	}
	if _, err := Parse("2012-02-30"); err == nil {
		t.Fatalf("expected error for invalid day")
	}
}
