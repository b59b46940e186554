package constraints

import (
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/teambition/rrule-go"

	"tableflip.dev/datepicker/pkg/caldate"
)

// ruleEpoch anchors recurrence rules that carry no DTSTART of their own.
var ruleEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

const day = 24 * time.Hour

type recurrence struct {
	text string
	rule *rrule.RRule
}

func (r *recurrence) matches(d caldate.Date) bool {
	start := d.Time()
	return len(r.rule.Between(start, start.Add(day-time.Nanosecond), true)) > 0
}

// WithRule disables every day produced by an RFC 5545 recurrence rule such
// as "FREQ=MONTHLY;BYMONTHDAY=1". Without DTSTART the rule is anchored at
// 2000-01-01. An empty rule removes it.
func (c Constraints) WithRule(text string) (Constraints, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		c.rule = nil
		return c, nil
	}
	r, err := rrule.StrToRRule(text)
	if err != nil {
		return c, fmt.Errorf("constraints: recurrence rule %q: %w", text, err)
	}
	if !strings.Contains(strings.ToUpper(text), "DTSTART") {
		r.DTStart(ruleEpoch)
	}
	c.rule = &recurrence{text: text, rule: r}
	return c, nil
}

// Rule returns the recurrence rule text, empty when none is set.
func (c Constraints) Rule() string {
	if c.rule == nil {
		return ""
	}
	return c.rule.text
}

type cronRule struct {
	text     string
	schedule cron.Schedule
}

func (r *cronRule) matches(d caldate.Date) bool {
	start := d.Time()
	next := r.schedule.Next(start.Add(-time.Second))
	return !next.IsZero() && next.Before(start.Add(day))
}

// WithCron disables every day on which a standard five field cron expression
// fires at least once, e.g. "0 0 1,15 * *" for the 1st and 15th. Expressions
// are evaluated in UTC. An empty expression removes it.
func (c Constraints) WithCron(spec string) (Constraints, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		c.cron = nil
		return c, nil
	}
	s, err := cron.ParseStandard(spec)
	if err != nil {
		return c, fmt.Errorf("constraints: cron %q: %w", spec, err)
	}
	c.cron = &cronRule{text: spec, schedule: s}
	return c, nil
}

// Cron returns the cron expression, empty when none is set.
func (c Constraints) Cron() string {
	if c.cron == nil {
		return ""
	}
	return c.cron.text
}
