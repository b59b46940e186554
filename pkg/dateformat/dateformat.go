// Package dateformat parses and formats calendar dates with moment style
// layouts such as "MM/DD/YYYY" or "dddd, MMMM Do YYYY".
package dateformat

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"tableflip.dev/datepicker/pkg/caldate"
)

// InvalidDateError reports text that does not match a layout, or a value that
// is neither a date nor a string.
type InvalidDateError struct {
	Text   string
	Format string
	Locale string
	// Value is set when an unsupported value was resolved.
	Value any
}

func (e *InvalidDateError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("dateformat: cannot resolve %T %v as a date", e.Value, e.Value)
	}
	return fmt.Sprintf("dateformat: invalid date %q for format %q (%s)", e.Text, e.Format, e.Locale)
}

type kind int

const (
	literal kind = iota
	year4
	year2
	monthLong
	monthShort
	month2
	month1
	dayOrdinal
	day2
	day1
	weekdayLong
	weekdayShort
	weekdayMin
)

// Order matters: longer tokens of the same letter come first.
var tokenTable = []struct {
	text string
	kind kind
}{
	{"YYYY", year4},
	{"YY", year2},
	{"MMMM", monthLong},
	{"MMM", monthShort},
	{"MM", month2},
	{"M", month1},
	{"Do", dayOrdinal},
	{"DD", day2},
	{"D", day1},
	{"dddd", weekdayLong},
	{"ddd", weekdayShort},
	{"dd", weekdayMin},
}

type token struct {
	kind kind
	text string
}

func tokenize(layout string) []token {
	var out []token
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			out = append(out, token{kind: literal, text: lit.String()})
			lit.Reset()
		}
	}
	for i := 0; i < len(layout); {
		if layout[i] == '[' {
			if end := strings.IndexByte(layout[i:], ']'); end > 0 {
				lit.WriteString(layout[i+1 : i+end])
				i += end + 1
				continue
			}
		}
		matched := false
		for _, t := range tokenTable {
			if strings.HasPrefix(layout[i:], t.text) {
				flush()
				out = append(out, token{kind: t.kind, text: t.text})
				i += len(t.text)
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		r, size := utf8.DecodeRuneInString(layout[i:])
		lit.WriteRune(r)
		i += size
	}
	flush()
	return out
}

// Formatter formats and strictly parses dates for one layout and locale.
// The zero value is not usable; call New.
type Formatter struct {
	layout string
	tokens []token
	locale Locale
	now    func() caldate.Date
}

// New returns a formatter for layout. An empty layout uses the locale's
// default layout.
func New(layout string, loc Locale) *Formatter {
	if layout == "" {
		layout = loc.Layout
	}
	if layout == "" {
		layout = English.Layout
	}
	return &Formatter{layout: layout, tokens: tokenize(layout), locale: loc, now: caldate.Today}
}

// Layout returns the layout string.
func (f *Formatter) Layout() string { return f.layout }

// Locale returns the locale used for names.
func (f *Formatter) Locale() Locale { return f.locale }

// Format renders d using the layout.
func (f *Formatter) Format(d caldate.Date) string {
	if d.IsZero() {
		return ""
	}
	var b strings.Builder
	for _, t := range f.tokens {
		switch t.kind {
		case literal:
			b.WriteString(t.text)
		case year4:
			fmt.Fprintf(&b, "%04d", d.Year())
		case year2:
			fmt.Fprintf(&b, "%02d", ((d.Year()%100)+100)%100)
		case monthLong:
			b.WriteString(f.locale.Months[d.Month()-1])
		case monthShort:
			b.WriteString(f.locale.MonthsShort[d.Month()-1])
		case month2:
			fmt.Fprintf(&b, "%02d", int(d.Month()))
		case month1:
			b.WriteString(strconv.Itoa(int(d.Month())))
		case dayOrdinal:
			b.WriteString(strconv.Itoa(d.Day()))
			b.WriteString(f.locale.ordinal(d.Day()))
		case day2:
			fmt.Fprintf(&b, "%02d", d.Day())
		case day1:
			b.WriteString(strconv.Itoa(d.Day()))
		case weekdayLong:
			b.WriteString(f.locale.Weekdays[d.Weekday()])
		case weekdayShort:
			b.WriteString(f.locale.WeekdaysShort[d.Weekday()])
		case weekdayMin:
			b.WriteString(f.locale.WeekdaysMin[d.Weekday()])
		}
	}
	return b.String()
}

func (f *Formatter) invalid(text string) error {
	return &InvalidDateError{Text: text, Format: f.layout, Locale: f.locale.Tag.String()}
}

// Parse reads text strictly: every token must match with its exact width and
// nothing may be left over. The result must be a real calendar day. Parts the
// layout does not mention default to the current year, January and the 1st.
func (f *Formatter) Parse(text string) (caldate.Date, error) {
	year, month, day := -1, -1, -1
	weekday := -1
	rest := text
	for _, t := range f.tokens {
		var n int
		var ok bool
		switch t.kind {
		case literal:
			if !strings.HasPrefix(rest, t.text) {
				return caldate.Date{}, f.invalid(text)
			}
			rest = rest[len(t.text):]
			continue
		case year4:
			n, rest, ok = digits(rest, 4, 4)
			year = n
		case year2:
			n, rest, ok = digits(rest, 2, 2)
			if n > 68 {
				year = 1900 + n
			} else {
				year = 2000 + n
			}
		case month2:
			n, rest, ok = digits(rest, 2, 2)
			month = n
		case month1:
			n, rest, ok = digits(rest, 1, 2)
			month = n
		case day2:
			n, rest, ok = digits(rest, 2, 2)
			day = n
		case day1:
			n, rest, ok = digits(rest, 1, 2)
			day = n
		case dayOrdinal:
			n, rest, ok = digits(rest, 1, 2)
			if ok {
				suffix := f.locale.ordinal(n)
				if ok = strings.HasPrefix(rest, suffix); ok {
					rest = rest[len(suffix):]
				}
			}
			day = n
		case monthLong:
			n, rest, ok = name(rest, f.locale.Months[:])
			month = n + 1
		case monthShort:
			n, rest, ok = name(rest, f.locale.MonthsShort[:])
			month = n + 1
		case weekdayLong:
			weekday, rest, ok = name(rest, f.locale.Weekdays[:])
		case weekdayShort:
			weekday, rest, ok = name(rest, f.locale.WeekdaysShort[:])
		case weekdayMin:
			weekday, rest, ok = name(rest, f.locale.WeekdaysMin[:])
		}
		if !ok {
			return caldate.Date{}, f.invalid(text)
		}
	}
	if rest != "" {
		return caldate.Date{}, f.invalid(text)
	}
	if year < 0 {
		year = f.now().Year()
	}
	if month < 0 {
		month = 1
	}
	if day < 0 {
		day = 1
	}
	if month < 1 || month > 12 || day < 1 || day > caldate.DaysIn(year, time.Month(month)) {
		return caldate.Date{}, f.invalid(text)
	}
	d := caldate.New(year, time.Month(month), day)
	if weekday >= 0 && time.Weekday(weekday) != d.Weekday() {
		return caldate.Date{}, f.invalid(text)
	}
	return d.In(f.locale.Tag), nil
}

// Resolve turns a caldate.Date, a time.Time or a string into a date stamped
// with the formatter's locale. Dates are not re-parsed.
func (f *Formatter) Resolve(v any) (caldate.Date, error) {
	switch v := v.(type) {
	case caldate.Date:
		if v.IsZero() {
			return caldate.Date{}, &InvalidDateError{Format: f.layout, Locale: f.locale.Tag.String(), Value: v}
		}
		return v.In(f.locale.Tag), nil
	case time.Time:
		if v.IsZero() {
			return caldate.Date{}, &InvalidDateError{Format: f.layout, Locale: f.locale.Tag.String(), Value: v}
		}
		return caldate.FromTime(v).In(f.locale.Tag), nil
	case string:
		return f.Parse(v)
	}
	return caldate.Date{}, &InvalidDateError{Format: f.layout, Locale: f.locale.Tag.String(), Value: v}
}

// Split breaks host text into per-date tokens. An empty separator means the
// whole text is a single token. Empty tokens are dropped.
func Split(text, sep string) []string {
	var parts []string
	if sep == "" {
		parts = []string{text}
	} else {
		parts = strings.Split(text, sep)
	}
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Join formats dates and joins them with sep. If sep can occur inside a
// formatted date the result cannot be split back unambiguously.
func (f *Formatter) Join(dates []caldate.Date, sep string) string {
	parts := make([]string, 0, len(dates))
	for _, d := range dates {
		parts = append(parts, f.Format(d))
	}
	return strings.Join(parts, sep)
}

// ParseList splits text on sep and parses every token. The first failure is
// returned.
func (f *Formatter) ParseList(text, sep string) ([]caldate.Date, error) {
	var out []caldate.Date
	for _, part := range Split(text, sep) {
		d, err := f.Parse(part)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func digits(s string, minWidth, maxWidth int) (int, string, bool) {
	n := 0
	for n < maxWidth && n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n < minWidth {
		return 0, s, false
	}
	// variable width tokens take no leading zero
	if n > minWidth && minWidth < maxWidth && s[0] == '0' {
		return 0, s, false
	}
	v, err := strconv.Atoi(s[:n])
	if err != nil {
		return 0, s, false
	}
	return v, s[n:], true
}

// name matches the longest entry of names at the start of s.
func name(s string, names []string) (int, string, bool) {
	best, bestLen := -1, 0
	for i, n := range names {
		if len(n) > bestLen && len(s) >= len(n) && s[:len(n)] == n {
			best, bestLen = i, len(n)
		}
	}
	if best < 0 {
		return 0, s, false
	}
	return best, s[bestLen:], true
}
