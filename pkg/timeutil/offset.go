// Package timeutil parses relative calendar offsets such as "today", "+1w2d"
// or "-3m" used in date valued configuration.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"tableflip.dev/datepicker/pkg/caldate"
)

var (
	segmentPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitMap        = map[string]caldate.Unit{
		"d":      caldate.Day,
		"day":    caldate.Day,
		"days":   caldate.Day,
		"w":      caldate.Week,
		"wk":     caldate.Week,
		"wks":    caldate.Week,
		"week":   caldate.Week,
		"weeks":  caldate.Week,
		"m":      caldate.Month,
		"mo":     caldate.Month,
		"month":  caldate.Month,
		"months": caldate.Month,
		"y":      caldate.Year,
		"yr":     caldate.Year,
		"yrs":    caldate.Year,
		"year":   caldate.Year,
		"years":  caldate.Year,
	}
	keywords = map[string]Offset{
		"today":     {},
		"now":       {},
		"tomorrow":  {Days: 1},
		"yesterday": {Days: -1},
	}
)

// Offset is a signed distance in calendar units. Years and months are
// applied before days so month-end clamping happens first.
type Offset struct {
	Years  int
	Months int
	Days   int
}

// IsRelative reports whether input looks like an offset rather than an
// absolute date.
func IsRelative(input string) bool {
	s := strings.ToLower(strings.TrimSpace(input))
	if _, ok := keywords[s]; ok {
		return true
	}
	return strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-")
}

// ParseOffset parses "today", "tomorrow", "yesterday" or a signed sequence
// of segments like "+1w2d" or "-1y6m".
func ParseOffset(input string) (Offset, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if off, ok := keywords[trimmed]; ok {
		return off, nil
	}
	sign := 1
	switch {
	case strings.HasPrefix(trimmed, "+"):
		trimmed = trimmed[1:]
	case strings.HasPrefix(trimmed, "-"):
		sign = -1
		trimmed = trimmed[1:]
	default:
		return Offset{}, fmt.Errorf("timeutil: offset %q must start with + or -", input)
	}
	if strings.TrimSpace(trimmed) == "" {
		return Offset{}, fmt.Errorf("timeutil: empty offset %q", input)
	}

	var off Offset
	remaining := trimmed
	for len(remaining) > 0 {
		matches := segmentPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return Offset{}, fmt.Errorf("timeutil: invalid offset segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return Offset{}, fmt.Errorf("timeutil: invalid offset value %q: %w", matches[1], err)
		}
		unit, ok := unitMap[matches[2]]
		if !ok {
			return Offset{}, fmt.Errorf("timeutil: unsupported offset unit %q", matches[2])
		}
		value *= sign
		switch unit {
		case caldate.Day:
			off.Days += value
		case caldate.Week:
			off.Days += 7 * value
		case caldate.Month:
			off.Months += value
		case caldate.Year:
			off.Years += value
		}
		remaining = remaining[len(matches[0]):]
	}
	return off, nil
}

// Apply moves d by the offset.
func (o Offset) Apply(d caldate.Date) caldate.Date {
	return d.AddMonths(12*o.Years + o.Months).AddDays(o.Days)
}

// String renders the offset compactly, "today" when it is empty.
func (o Offset) String() string {
	if o == (Offset{}) {
		return "today"
	}
	var parts []string
	add := func(n int, label string) {
		if n == 0 {
			return
		}
		if n > 0 {
			parts = append(parts, fmt.Sprintf("+%d%s", n, label))
		} else {
			parts = append(parts, fmt.Sprintf("%d%s", n, label))
		}
	}
	add(o.Years, "y")
	add(o.Months, "m")
	weeks, days := o.Days/7, o.Days%7
	add(weeks, "w")
	add(days, "d")
	return strings.Join(parts, "")
}

// Resolve returns today moved by the offset in input.
func Resolve(input string, today caldate.Date) (caldate.Date, error) {
	off, err := ParseOffset(input)
	if err != nil {
		return caldate.Date{}, err
	}
	return off.Apply(today), nil
}
