package picker

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/errors"

	"tableflip.dev/datepicker/pkg/caldate"
	"tableflip.dev/datepicker/pkg/constraints"
	"tableflip.dev/datepicker/pkg/dateformat"
	"tableflip.dev/datepicker/pkg/timeutil"
	"tableflip.dev/datepicker/pkg/view"
)

// Options is the raw, user facing configuration. It decodes from viper with
// the mapstructure tags below. Resolve turns it into a validated Config.
type Options struct {
	Lang             string            `mapstructure:"lang"`
	Format           string            `mapstructure:"format"`
	Autoclose        bool              `mapstructure:"autoclose"`
	ToggleActive     bool              `mapstructure:"toggleActive"`
	ForceParse       bool              `mapstructure:"forceParse"`
	EnableOnReadonly bool              `mapstructure:"enableOnReadonly"`
	ImmediateUpdates bool              `mapstructure:"immediateUpdates"`
	Title            string            `mapstructure:"title"`
	Keyboard         KeyboardOptions   `mapstructure:"keyboard"`
	Today            TodayOptions      `mapstructure:"today"`
	View             ViewOptions       `mapstructure:"view"`
	Multidate        MultidateOptions  `mapstructure:"multidate"`
	Week             WeekOptions       `mapstructure:"week"`
	Date             DateOptions       `mapstructure:"date"`
	DaysOfWeek       DaysOfWeekOptions `mapstructure:"daysOfWeek"`
}

type KeyboardOptions struct {
	Navigation bool `mapstructure:"navigation"`
}

type TodayOptions struct {
	// Button is "", "false", "true" or "linked".
	Button    string `mapstructure:"button"`
	Highlight bool   `mapstructure:"highlight"`
}

type ViewOptions struct {
	Start string `mapstructure:"start"`
	Min   string `mapstructure:"min"`
	Max   string `mapstructure:"max"`
}

type MultidateOptions struct {
	// Enabled is false, true (no limit) or a positive selection cap. It is
	// untyped so that YAML and environment values keep their shape.
	Enabled   any    `mapstructure:"enabled"`
	Limit     int    `mapstructure:"limit"`
	Separator string `mapstructure:"separator"`
}

type WeekOptions struct {
	Start int `mapstructure:"start"`
}

// DateOptions values are absolute dates in the configured format, ISO dates
// or relative offsets such as "today" or "+2w".
type DateOptions struct {
	Start    string   `mapstructure:"start"`
	End      string   `mapstructure:"end"`
	Default  string   `mapstructure:"default"`
	Disabled []string `mapstructure:"disabled"`
	// Rule is an RFC 5545 RRULE; matching days are disabled.
	Rule string `mapstructure:"rule"`
	// Cron is a five field cron expression; days it fires on are disabled.
	Cron string `mapstructure:"cron"`
	// Count is an alias for multidate.limit.
	Count int `mapstructure:"count"`
	// Toggle is an alias for toggleActive.
	Toggle bool `mapstructure:"toggle"`
}

type DaysOfWeekOptions struct {
	Disabled    []int `mapstructure:"disabled"`
	Highlighted []int `mapstructure:"highlighted"`
}

// DefaultOptions returns the defaults every picker starts from.
func DefaultOptions() Options {
	return Options{
		Lang:             "en",
		ForceParse:       true,
		EnableOnReadonly: true,
		Keyboard:         KeyboardOptions{Navigation: true},
		View:             ViewOptions{Start: "days", Min: "days", Max: "centuries"},
		Multidate:        MultidateOptions{Enabled: false, Separator: ","},
	}
}

// TodayButton controls the today action.
type TodayButton int

const (
	// TodayOff hides the today action.
	TodayOff TodayButton = iota
	// TodayView moves the view to today without selecting it.
	TodayView
	// TodayLinked moves the view to today and selects it.
	TodayLinked
)

func (b TodayButton) String() string {
	switch b {
	case TodayView:
		return "true"
	case TodayLinked:
		return "linked"
	}
	return "false"
}

// Config is the immutable, resolved configuration of a controller.
type Config struct {
	Locale    dateformat.Locale
	Formatter *dateformat.Formatter
	Separator string
	// Capacity is 1 for single select, 0 for unlimited, N for a cap.
	Capacity           int
	ToggleActive       bool
	Autoclose          bool
	ForceParse         bool
	KeyboardNavigation bool
	EnableOnReadonly   bool
	ImmediateUpdates   bool
	TodayButton        TodayButton
	TodayHighlight     bool
	StartZoom          view.Zoom
	MinZoom            view.Zoom
	MaxZoom            view.Zoom
	WeekStart          time.Weekday
	// Default is the cursor when nothing is selected; zero means today.
	Default     caldate.Date
	Constraints constraints.Constraints
	Title       string
}

// MultiSelect reports whether more than one date may be selected.
func (c Config) MultiSelect() bool { return c.Capacity != 1 }

// Resolver resolves Options against a set of locales and a reference day
// for relative offsets. The zero value uses the built-in locales and today.
type Resolver struct {
	Locales dateformat.Locales
	Today   caldate.Date
	// Predicates are installed per zoom level; they cannot come from files.
	Predicates map[view.Zoom]constraints.Predicate
}

// Resolve resolves opts with the zero Resolver.
func Resolve(opts Options) (Config, error) {
	return Resolver{}.Resolve(opts)
}

// Resolve validates every option and returns the first-class configuration.
// All problems are reported together.
func (r Resolver) Resolve(opts Options) (Config, error) {
	locales := r.Locales
	if locales.Len() == 0 {
		locales = dateformat.DefaultLocales()
	}
	today := r.Today
	if today.IsZero() {
		today = caldate.Today()
	}

	var errs errors.M
	cfg := Config{
		Separator:          opts.Multidate.Separator,
		ToggleActive:       opts.ToggleActive || opts.Date.Toggle,
		Autoclose:          opts.Autoclose,
		ForceParse:         opts.ForceParse,
		KeyboardNavigation: opts.Keyboard.Navigation,
		EnableOnReadonly:   opts.EnableOnReadonly,
		ImmediateUpdates:   opts.ImmediateUpdates,
		TodayHighlight:     opts.Today.Highlight,
		Title:              opts.Title,
	}

	loc, err := locales.Lookup(opts.Lang)
	if err != nil {
		errs.Append(&ConfigurationError{Field: "lang", Value: opts.Lang, Err: err})
		loc = dateformat.English
	}
	cfg.Locale = loc
	cfg.Formatter = dateformat.New(opts.Format, loc)

	capacity, err := resolveCapacity(opts.Multidate, opts.Date.Count)
	if err != nil {
		errs.Append(err)
	}
	cfg.Capacity = capacity
	if capacity != 1 && cfg.Separator == "" {
		errs.Append(&ConfigurationError{Field: "multidate.separator", Value: `""`,
			Err: fmt.Errorf("a separator is required when more than one date can be selected")})
	}

	switch strings.ToLower(strings.TrimSpace(opts.Today.Button)) {
	case "", "false":
		cfg.TodayButton = TodayOff
	case "true":
		cfg.TodayButton = TodayView
	case "linked":
		cfg.TodayButton = TodayLinked
	default:
		errs.Append(&ConfigurationError{Field: "today.button", Value: opts.Today.Button,
			Err: fmt.Errorf("want one of false, true, linked")})
	}

	cfg.MinZoom = resolveZoom(&errs, "view.min", opts.View.Min, view.Day)
	cfg.MaxZoom = resolveZoom(&errs, "view.max", opts.View.Max, view.Century)
	cfg.StartZoom = resolveZoom(&errs, "view.start", opts.View.Start, view.Day)
	if cfg.MaxZoom < cfg.MinZoom {
		errs.Append(&ConfigurationError{Field: "view.max", Value: opts.View.Max,
			Err: fmt.Errorf("below view.min %v", cfg.MinZoom)})
	}
	cfg.StartZoom = max(cfg.MinZoom, min(cfg.StartZoom, cfg.MaxZoom))

	cfg.WeekStart = time.Weekday(((opts.Week.Start % 7) + 7) % 7)

	c := constraints.New()
	start := resolveOptionDate(&errs, cfg.Formatter, "date.start", opts.Date.Start, today)
	end := resolveOptionDate(&errs, cfg.Formatter, "date.end", opts.Date.End, today)
	c = c.WithStart(start).WithEnd(end)
	if c.Start().After(c.End()) {
		errs.Append(&ConfigurationError{Field: "date.start", Value: opts.Date.Start,
			Err: fmt.Errorf("%s is after date.end %s", c.Start(), c.End())})
	}
	cfg.Default = resolveOptionDate(&errs, cfg.Formatter, "date.default", opts.Date.Default, today)

	if len(opts.Date.Disabled) > 0 {
		values := make([]any, len(opts.Date.Disabled))
		for i, s := range opts.Date.Disabled {
			values[i] = s
		}
		dates, err := parseDisabled(cfg.Formatter, values, today)
		if err != nil {
			errs.Append(err)
		}
		c = c.WithDisabledDates(dates...)
	}

	w, err := constraints.NewWeekdays(opts.DaysOfWeek.Disabled...)
	if err != nil {
		errs.Append(&ConfigurationError{Field: "daysOfWeek.disabled", Value: opts.DaysOfWeek.Disabled, Err: err})
	}
	c = c.WithDisabledWeekdays(w)
	w, err = constraints.NewWeekdays(opts.DaysOfWeek.Highlighted...)
	if err != nil {
		errs.Append(&ConfigurationError{Field: "daysOfWeek.highlighted", Value: opts.DaysOfWeek.Highlighted, Err: err})
	}
	c = c.WithHighlightedWeekdays(w)

	if c2, err := c.WithRule(opts.Date.Rule); err != nil {
		errs.Append(&ConfigurationError{Field: "date.rule", Value: opts.Date.Rule, Err: err})
	} else {
		c = c2
	}
	if c2, err := c.WithCron(opts.Date.Cron); err != nil {
		errs.Append(&ConfigurationError{Field: "date.cron", Value: opts.Date.Cron, Err: err})
	} else {
		c = c2
	}
	for z, p := range r.Predicates {
		c = c.WithPredicate(z, p)
	}
	cfg.Constraints = c

	if err := errs.Err(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func resolveCapacity(m MultidateOptions, count int) (int, error) {
	limit := m.Limit
	if limit == 0 {
		limit = count
	}
	if limit < 0 {
		return 1, &ConfigurationError{Field: "multidate.limit", Value: limit, Err: fmt.Errorf("must not be negative")}
	}
	enabled, n, err := multidateEnabled(m.Enabled)
	if err != nil {
		return 1, &ConfigurationError{Field: "multidate.enabled", Value: m.Enabled, Err: err}
	}
	switch {
	case n > 0:
		return n, nil
	case limit > 0:
		return limit, nil
	case enabled:
		return 0, nil
	}
	return 1, nil
}

// multidateEnabled interprets false, true or a positive integer in any of
// the shapes a decoder may hand over.
func multidateEnabled(v any) (bool, int, error) {
	switch v := v.(type) {
	case nil:
		return false, 0, nil
	case bool:
		return v, 0, nil
	case int:
		return intEnabled(v)
	case int64:
		return intEnabled(int(v))
	case float64:
		return intEnabled(int(v))
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		switch s {
		case "", "false":
			return false, 0, nil
		case "true":
			return true, 0, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return false, 0, fmt.Errorf("want false, true or a number")
		}
		return intEnabled(n)
	}
	return false, 0, fmt.Errorf("unsupported type %T", v)
}

func intEnabled(n int) (bool, int, error) {
	if n < 0 {
		return false, 0, fmt.Errorf("must not be negative")
	}
	return n > 0, n, nil
}

func resolveZoom(errs *errors.M, field, value string, def view.Zoom) view.Zoom {
	if strings.TrimSpace(value) == "" {
		return def
	}
	z, err := view.ParseZoom(value)
	if err != nil {
		errs.Append(&ConfigurationError{Field: field, Value: value, Err: err})
		return def
	}
	return z
}

func resolveOptionDate(errs *errors.M, f *dateformat.Formatter, field, value string, today caldate.Date) caldate.Date {
	if strings.TrimSpace(value) == "" {
		return caldate.Date{}
	}
	d, err := parseConfigDate(f, value, today)
	if err != nil {
		errs.Append(&ConfigurationError{Field: field, Value: value, Err: err})
	}
	return d
}

// parseConfigDate accepts relative offsets, the configured format, then ISO.
func parseConfigDate(f *dateformat.Formatter, value string, today caldate.Date) (caldate.Date, error) {
	if timeutil.IsRelative(value) {
		return timeutil.Resolve(value, today)
	}
	d, err := f.Parse(value)
	if err == nil {
		return d, nil
	}
	if iso, isoErr := caldate.Parse(value); isoErr == nil {
		return iso.In(f.Locale().Tag), nil
	}
	return caldate.Date{}, err
}

// parseDisabled resolves every element and reports all failures together.
func parseDisabled(f *dateformat.Formatter, values []any, today caldate.Date) ([]caldate.Date, error) {
	var errs errors.M
	out := make([]caldate.Date, 0, len(values))
	for _, v := range values {
		var d caldate.Date
		var err error
		if s, ok := v.(string); ok {
			d, err = parseConfigDate(f, s, today)
		} else {
			d, err = f.Resolve(v)
		}
		if err != nil {
			errs.Append(err)
			continue
		}
		out = append(out, d)
	}
	if err := errs.Err(); err != nil {
		return nil, &ParseError{Err: err}
	}
	return out, nil
}
