package picker

import (
	"errors"
	"strings"
	"testing"
	"time"

	"tableflip.dev/datepicker/pkg/caldate"
	"tableflip.dev/datepicker/pkg/view"
)

func resolveWith(t *testing.T, mutate func(*Options)) (Config, error) {
	t.Helper()
	opts := DefaultOptions()
	mutate(&opts)
	return Resolver{Today: caldate.New(2012, time.March, 5)}.Resolve(opts)
}

func TestResolveCapacity(t *testing.T) {
	for _, tc := range []struct {
		enabled any
		limit   int
		want    int
	}{
		{false, 0, 1},
		{nil, 0, 1},
		{true, 0, 0},
		{3, 0, 3},
		{"4", 0, 4},
		{"true", 0, 0},
		{float64(2), 0, 2},
		{true, 5, 5},
		{false, 5, 5},
	} {
		cfg, err := resolveWith(t, func(o *Options) {
			o.Multidate.Enabled = tc.enabled
			o.Multidate.Limit = tc.limit
		})
		if err != nil {
			t.Fatalf("%v/%d: unexpected error: %v", tc.enabled, tc.limit, err)
		}
		if cfg.Capacity != tc.want {
			t.Fatalf("%v/%d: capacity %d, want %d", tc.enabled, tc.limit, cfg.Capacity, tc.want)
		}
	}
	if _, err := resolveWith(t, func(o *Options) { o.Multidate.Enabled = "maybe" }); err == nil {
		t.Fatalf("expected an error for multidate.enabled=maybe")
	}
}

func TestResolveLocaleAndFormat(t *testing.T) {
	cfg, err := resolveWith(t, func(o *Options) { o.Lang = "de-AT" })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Formatter.Layout() != "DD.MM.YYYY" {
		t.Fatalf("expected the German default layout, got %q", cfg.Formatter.Layout())
	}
	if got := cfg.Formatter.Format(caldate.New(2012, time.March, 5)); got != "05.03.2012" {
		t.Fatalf("unexpected format %q", got)
	}
	cfg, err = resolveWith(t, func(o *Options) { o.Format = "YYYY-MM-DD" })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Formatter.Layout() != "YYYY-MM-DD" {
		t.Fatalf("explicit format must win, got %q", cfg.Formatter.Layout())
	}
}

func TestResolveRelativeDates(t *testing.T) {
	cfg, err := resolveWith(t, func(o *Options) {
		o.Date.Start = "-1w"
		o.Date.End = "+1m"
		o.Date.Default = "tomorrow"
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Constraints.Start().Equal(caldate.New(2012, time.February, 27)) {
		t.Fatalf("unexpected start %s", cfg.Constraints.Start())
	}
	if !cfg.Constraints.End().Equal(caldate.New(2012, time.April, 5)) {
		t.Fatalf("unexpected end %s", cfg.Constraints.End())
	}
	if !cfg.Default.Equal(caldate.New(2012, time.March, 6)) {
		t.Fatalf("unexpected default %s", cfg.Default)
	}
}

func TestResolveZoomsAndWeek(t *testing.T) {
	cfg, err := resolveWith(t, func(o *Options) {
		o.View.Start = "decades"
		o.View.Min = "months"
		o.View.Max = "years"
		o.Week.Start = 8
		o.Today.Button = "linked"
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.StartZoom != view.Year || cfg.MinZoom != view.Month || cfg.MaxZoom != view.Year {
		t.Fatalf("unexpected zooms %v %v %v", cfg.StartZoom, cfg.MinZoom, cfg.MaxZoom)
	}
	if cfg.WeekStart != time.Monday {
		t.Fatalf("expected week start wrapped to Monday, got %v", cfg.WeekStart)
	}
	if cfg.TodayButton != TodayLinked {
		t.Fatalf("unexpected today button %v", cfg.TodayButton)
	}
}

func TestResolveRuleAndCron(t *testing.T) {
	cfg, err := resolveWith(t, func(o *Options) {
		o.Date.Rule = "FREQ=WEEKLY;BYDAY=SA,SU"
		o.Date.Cron = "0 9 1 * *"
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := cfg.Constraints
	if !c.IsDisabled(caldate.New(2012, time.March, 10)) {
		t.Fatalf("expected Saturday disabled by the rule")
	}
	if !c.IsDisabled(caldate.New(2012, time.April, 1)) {
		t.Fatalf("expected the first of the month disabled by cron")
	}
	if c.IsDisabled(caldate.New(2012, time.March, 7)) {
		t.Fatalf("Wednesday must stay enabled")
	}
}

func TestResolveReportsEveryProblem(t *testing.T) {
	_, err := resolveWith(t, func(o *Options) {
		o.Date.Start = "03/20/2012"
		o.Date.End = "03/10/2012"
		o.Date.Disabled = []string{"soon", "03/11/2012", "later"}
		o.DaysOfWeek.Disabled = []int{7}
		o.View.Min = "weeks"
		o.Today.Button = "sometimes"
	})
	if err == nil {
		t.Fatalf("expected an error")
	}
	var ce *ConfigurationError
	if !errors.As(err, &ce) {
		t.Fatalf("expected a ConfigurationError in %v", err)
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected a ParseError in %v", err)
	}
	for _, field := range []string{"date.start", "daysOfWeek.disabled", "view.min", "today.button"} {
		if !strings.Contains(err.Error(), "invalid "+field+" ") {
			t.Fatalf("expected %s reported in %v", field, err)
		}
	}
}

func TestResolveRequiresSeparatorForMultidate(t *testing.T) {
	_, err := resolveWith(t, func(o *Options) {
		o.Multidate.Enabled = true
		o.Multidate.Separator = ""
	})
	var ce *ConfigurationError
	if !errors.As(err, &ce) || ce.Field != "multidate.separator" {
		t.Fatalf("expected a multidate.separator error, got %v", err)
	}
	if _, err := resolveWith(t, func(o *Options) { o.Multidate.Separator = "" }); err != nil {
		t.Fatalf("single select needs no separator: %v", err)
	}
}
