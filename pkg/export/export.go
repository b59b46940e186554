// Package export writes a selection as text, JSON, YAML or an iCalendar
// file, and reads all-day events back from iCalendar input.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"gopkg.in/yaml.v3"

	"tableflip.dev/datepicker/pkg/caldate"
	"tableflip.dev/datepicker/pkg/dateformat"
)

// Format is an output format.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
	ICS  Format = "ics"
)

// ParseFormat accepts a format name; "ical" is an alias for ics.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", Text:
		return Text, nil
	case JSON, YAML, ICS:
		return f, nil
	case "ical":
		return ICS, nil
	}
	return "", fmt.Errorf("export: unknown format %q, want text, json, yaml or ics", s)
}

// Selection is what gets exported.
type Selection struct {
	Name    string
	Dates   []caldate.Date
	Updated time.Time
	// Formatter renders Text and the text field of JSON and YAML; nil means
	// ISO dates only.
	Formatter *dateformat.Formatter
	Separator string
}

// Document is the JSON and YAML shape.
type Document struct {
	Name    string    `json:"name" yaml:"name"`
	Dates   []string  `json:"dates" yaml:"dates"`
	Text    string    `json:"text,omitempty" yaml:"text,omitempty"`
	Updated time.Time `json:"updated,omitzero" yaml:"updated,omitempty"`
}

// Document returns the JSON and YAML shape of s.
func (s Selection) Document() Document {
	doc := Document{Name: s.Name, Dates: make([]string, 0, len(s.Dates)), Updated: s.Updated}
	for _, d := range s.Dates {
		doc.Dates = append(doc.Dates, d.String())
	}
	if s.Formatter != nil {
		doc.Text = s.Formatter.Join(s.Dates, s.separator())
	}
	return doc
}

func (s Selection) separator() string {
	if s.Separator == "" {
		return ","
	}
	return s.Separator
}

// Write renders s to w in format f.
func Write(w io.Writer, f Format, s Selection) error {
	switch f {
	case Text, "":
		for _, d := range s.Dates {
			line := d.String()
			if s.Formatter != nil {
				line = s.Formatter.Format(d)
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s.Document())
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s.Document()); err != nil {
			return fmt.Errorf("export: yaml: %w", err)
		}
		return enc.Close()
	case ICS:
		_, err := io.WriteString(w, Calendar(s).Serialize())
		return err
	}
	return fmt.Errorf("export: unknown format %q", f)
}

const productID = "-//tableflip.dev//pickdate//EN"

// Calendar builds an iCalendar with one all-day VEVENT per date.
func Calendar(s Selection) *ical.Calendar {
	stamp := s.Updated
	if stamp.IsZero() {
		stamp = time.Now()
	}
	stamp = stamp.UTC()
	name := s.Name
	if name == "" {
		name = "selection"
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	cal.SetName(name)
	for _, d := range s.Dates {
		ev := cal.AddEvent(fmt.Sprintf("%s-%s@pickdate", d.String(), slug(name)))
		ev.SetDtStampTime(stamp)
		ev.SetSummary(name)
		ev.SetAllDayStartAt(d.Time())
		ev.SetAllDayEndAt(d.AddDays(1).Time())
	}
	return cal
}

func slug(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		}
		return '-'
	}, s)
}

// ReadICS returns the start days of every all-day event in r, sorted and
// without duplicates. Timed events are skipped.
func ReadICS(r io.Reader) ([]caldate.Date, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("export: parse ics: %w", err)
	}
	seen := make(map[int64]caldate.Date)
	for _, ve := range cal.Events() {
		p := ve.GetProperty(ical.ComponentPropertyDtStart)
		if p == nil {
			continue
		}
		val := strings.TrimSpace(p.Value)
		if strings.Contains(val, "T") || len(val) != 8 {
			continue
		}
		t, err := time.Parse("20060102", val)
		if err != nil {
			return nil, fmt.Errorf("export: DTSTART %q: %w", val, err)
		}
		d := caldate.FromTime(t)
		seen[d.DayNumber()] = d
	}
	if len(seen) == 0 {
		return nil, errors.New("export: no all-day events found")
	}
	out := make([]caldate.Date, 0, len(seen))
	for _, d := range seen {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out, nil
}
