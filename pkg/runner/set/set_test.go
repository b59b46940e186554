package set

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"tableflip.dev/datepicker/pkg/caldate"
	"tableflip.dev/datepicker/pkg/picker"
	"tableflip.dev/datepicker/pkg/store"
)

type dir string

func (d dir) BasePath() string { return string(d) }

func resolve(t *testing.T, mutate func(*picker.Options)) picker.Config {
	t.Helper()
	opts := picker.DefaultOptions()
	opts.Multidate.Enabled = true
	if mutate != nil {
		mutate(&opts)
	}
	cfg, err := picker.Resolver{Today: caldate.New(2012, time.March, 5)}.Resolve(opts)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	return cfg
}

func TestSetSavesSelectableDates(t *testing.T) {
	p, err := store.Open(dir(t.TempDir()))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	var out bytes.Buffer
	s := &Set{
		Persistence: p,
		Name:        "trip",
		Config:      resolve(t, func(o *picker.Options) { o.DaysOfWeek.Disabled = []int{0, 6} }),
		Dates:       []string{"03/05/2012", "2012-03-10", "03/07/2012"},
		Out:         &out,
	}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("set: %v", err)
	}
	rec, err := p.Load("trip")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if strings.Join(rec.Dates, ",") != "2012-03-05,2012-03-07" {
		t.Fatalf("unexpected saved dates %v", rec.Dates)
	}
	if !strings.Contains(out.String(), "skipped 2012-03-10: weekday saturday disabled") {
		t.Fatalf("expected the weekend date reported\n%s", out.String())
	}

	s = &Set{Persistence: p, Name: "trip", Config: s.Config, Dates: []string{"03/08/2012"}, Append: true, Out: &out}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("append: %v", err)
	}
	rec, _ = p.Load("trip")
	if len(rec.Dates) != 3 {
		t.Fatalf("expected three dates after append, got %v", rec.Dates)
	}
}

func TestSetImportsICS(t *testing.T) {
	p, err := store.Open(dir(t.TempDir()))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ics := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//test//EN",
		"BEGIN:VEVENT",
		"UID:a",
		"DTSTART;VALUE=DATE:20120312",
		"DTEND;VALUE=DATE:20120313",
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}, "\r\n")
	s := &Set{Persistence: p, Name: "cal", Config: resolve(t, nil), ICS: strings.NewReader(ics), Out: &bytes.Buffer{}}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("set: %v", err)
	}
	rec, _ := p.Load("cal")
	if strings.Join(rec.Dates, ",") != "2012-03-12" {
		t.Fatalf("unexpected dates %v", rec.Dates)
	}
}

func TestSetRejectsBadInput(t *testing.T) {
	p, err := store.Open(dir(t.TempDir()))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	s := &Set{Persistence: p, Name: "bad", Config: resolve(t, nil), Dates: []string{"soon", "later"}, Out: &bytes.Buffer{}}
	err = s.Do(context.Background())
	if err == nil || !strings.Contains(err.Error(), "soon") || !strings.Contains(err.Error(), "later") {
		t.Fatalf("expected both bad dates reported, got %v", err)
	}
	if _, err := p.Load("bad"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("nothing must be saved, got %v", err)
	}
}
