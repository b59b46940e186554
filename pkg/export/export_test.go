package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"tableflip.dev/datepicker/pkg/caldate"
	"tableflip.dev/datepicker/pkg/dateformat"
)

func sample() Selection {
	return Selection{
		Name:      "trip",
		Dates:     []caldate.Date{caldate.New(2012, time.March, 14), caldate.New(2012, time.March, 5)},
		Updated:   time.Date(2012, time.March, 1, 12, 0, 0, 0, time.UTC),
		Formatter: dateformat.New("MM/DD/YYYY", dateformat.English),
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": Text, "JSON": JSON, "yaml": YAML, "ical": ICS, "ics": ICS} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("csv"); err == nil {
		t.Fatalf("expected an error for csv")
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Text, sample()); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.String() != "03/14/2012\n03/05/2012\n" {
		t.Fatalf("unexpected text %q", buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, JSON, sample()); err != nil {
		t.Fatalf("write: %v", err)
	}
	var doc Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Name != "trip" || len(doc.Dates) != 2 || doc.Dates[0] != "2012-03-14" {
		t.Fatalf("unexpected document %+v", doc)
	}
	if doc.Text != "03/14/2012,03/05/2012" {
		t.Fatalf("unexpected text %q", doc.Text)
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, YAML, sample()); err != nil {
		t.Fatalf("write: %v", err)
	}
	var doc struct {
		Name  string   `yaml:"name"`
		Dates []string `yaml:"dates"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Name != "trip" || len(doc.Dates) != 2 || doc.Dates[1] != "2012-03-05" {
		t.Fatalf("unexpected document %+v from %s", doc, buf.String())
	}
}

func TestWriteICS(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, ICS, sample()); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	if n := strings.Count(out, "BEGIN:VEVENT"); n != 2 {
		t.Fatalf("expected one VEVENT per date, got %d in\n%s", n, out)
	}
	if !strings.Contains(out, "DTSTART;VALUE=DATE:20120305") {
		t.Fatalf("expected an all-day start for Mar 5 in\n%s", out)
	}
	if !strings.Contains(out, "DTEND;VALUE=DATE:20120306") {
		t.Fatalf("expected the end on the following day in\n%s", out)
	}

	got, err := ReadICS(strings.NewReader(out))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 2 || !got[0].Equal(caldate.New(2012, time.March, 5)) {
		t.Fatalf("unexpected dates %v", got)
	}
}

func TestReadICSSkipsTimedEvents(t *testing.T) {
	in := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//test//EN",
		"BEGIN:VEVENT",
		"UID:a",
		"DTSTAMP:20120301T000000Z",
		"DTSTART:20120305T090000Z",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:b",
		"DTSTAMP:20120301T000000Z",
		"DTSTART;VALUE=DATE:20120307",
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}, "\r\n")
	got, err := ReadICS(strings.NewReader(in))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 1 || !got[0].Equal(caldate.New(2012, time.March, 7)) {
		t.Fatalf("unexpected dates %v", got)
	}
}
