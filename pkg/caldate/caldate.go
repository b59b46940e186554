// Package caldate provides an immutable calendar day value used throughout the
// picker. All values are normalized to midnight UTC so that dates compare on
// the same basis regardless of the locale used to display them.
package caldate

import (
	"time"

	"golang.org/x/text/language"
)

// Unit is a step size used when moving a Date.
type Unit int

const (
	// Day moves by calendar days.
	Day Unit = iota
	// Week moves by seven days.
	Week
	// Month moves by calendar months, clamping the day of month.
	Month
	// Year moves by calendar years, clamping the day of month.
	Year
)

func (u Unit) String() string {
	switch u {
	case Day:
		return "day"
	case Week:
		return "week"
	case Month:
		return "month"
	case Year:
		return "year"
	}
	return "unknown"
}

const layoutISO = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

var (
	// Min is the open-ended lower bound used when no range start is set.
	Min = New(0, time.January, 1)
	// Max is the open-ended upper bound used when no range end is set.
	Max = New(2200, time.December, 31)
)

// Date is a calendar day. The zero value reports IsZero and stands for "no
// date". Equality and ordering ignore the locale tag.
type Date struct {
	t    time.Time
	lang language.Tag
}

// New returns the date for year, month and day. Out of range values are
// normalized the way time.Date normalizes them.
func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime converts t to UTC and truncates it to its calendar day.
func FromTime(t time.Time) Date {
	u := t.UTC()
	return New(u.Year(), u.Month(), u.Day())
}

// Today returns the current UTC calendar day.
func Today() Date {
	return FromTime(time.Now())
}

// Parse reads an ISO-8601 calendar date (2006-01-02).
func Parse(s string) (Date, error) {
	t, err := time.Parse(layoutISO, s)
	if err != nil {
		return Date{}, err
	}
	return FromTime(t), nil
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Year returns the year.
func (d Date) Year() int { return d.t.Year() }

// Month returns the month.
func (d Date) Month() time.Month { return d.t.Month() }

// Day returns the day of month.
func (d Date) Day() int { return d.t.Day() }

// Weekday returns the day of week.
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time { return d.t }

// Locale returns the locale tag the date carries for formatting.
func (d Date) Locale() language.Tag { return d.lang }

// In returns a copy of d stamped with the given locale.
func (d Date) In(tag language.Tag) Date {
	d.lang = tag
	return d
}

// DayNumber returns the number of days since 1970-01-01. It is a stable key
// for calendar-day equality.
func (d Date) DayNumber() int64 {
	s := d.t.Unix()
	if s < 0 && s%secondsPerDay != 0 {
		return s/secondsPerDay - 1
	}
	return s / secondsPerDay
}

// AddDays returns d moved by n days.
func (d Date) AddDays(n int) Date {
	d.t = d.t.AddDate(0, 0, n)
	return d
}

// AddMonths returns d moved by n months. The day of month is clamped to the
// length of the target month, so Jan 31 plus one month is the last of Feb.
func (d Date) AddMonths(n int) Date {
	total := d.t.Year()*12 + int(d.t.Month()) - 1 + n
	year := floorDiv(total, 12)
	month := time.Month(total-year*12) + 1
	day := min(d.t.Day(), DaysIn(year, month))
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), lang: d.lang}
}

// AddYears returns d moved by n years, clamping Feb 29 when needed.
func (d Date) AddYears(n int) Date {
	return d.AddMonths(12 * n)
}

// Add moves d by n units.
func (d Date) Add(n int, unit Unit) Date {
	switch unit {
	case Week:
		return d.AddDays(7 * n)
	case Month:
		return d.AddMonths(n)
	case Year:
		return d.AddYears(n)
	}
	return d.AddDays(n)
}

// WithYear returns d in another year with the same month and clamped day.
func (d Date) WithYear(year int) Date {
	return d.AddYears(year - d.Year())
}

// WithMonth returns d in another month of the same year with clamped day.
func (d Date) WithMonth(month time.Month) Date {
	return d.AddMonths(int(month) - int(d.Month()))
}

// StartOfMonth returns the first day of d's month.
func (d Date) StartOfMonth() Date {
	return Date{t: time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC), lang: d.lang}
}

// EndOfMonth returns the last day of d's month.
func (d Date) EndOfMonth() Date {
	return Date{t: time.Date(d.Year(), d.Month(), DaysIn(d.Year(), d.Month()), 0, 0, 0, 0, time.UTC), lang: d.lang}
}

// Compare returns -1, 0 or 1 comparing calendar days.
func (d Date) Compare(o Date) int {
	return d.t.Compare(o.t)
}

// Equal reports calendar-day equality.
func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

// Before reports whether d is an earlier day than o.
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

// After reports whether d is a later day than o.
func (d Date) After(o Date) bool { return d.t.After(o.t) }

// Within reports whether lo <= d <= hi.
func (d Date) Within(lo, hi Date) bool {
	return !d.Before(lo) && !d.After(hi)
}

// Clamp returns d limited to [lo, hi].
func (d Date) Clamp(lo, hi Date) Date {
	if d.Before(lo) {
		return lo.In(d.lang)
	}
	if d.After(hi) {
		return hi.In(d.lang)
	}
	return d
}

// String renders the date as 2006-01-02.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(layoutISO)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
