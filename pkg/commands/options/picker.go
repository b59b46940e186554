package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/datepicker/pkg/picker"
)

// PickerOptions override picker settings from the config file.
type PickerOptions struct {
	Format     string
	Lang       string
	Start      string
	End        string
	Disabled   []string
	Weekdays   []int
	Multidate  string
	WeekStart  int
	Rule       string
	Cron       string
	Autoclose  bool
	ForceParse bool
}

func AddPickerArgs(cmd *cobra.Command, o *PickerOptions) {
	f := cmd.Flags()
	f.StringVar(&o.Format, "format", "", "Date format, for example YYYY-MM-DD.")
	f.StringVar(&o.Lang, "lang", "", "Locale of names and the default format.")
	f.StringVar(&o.Start, "start", "", "Earliest selectable date; accepts offsets like -1w.")
	f.StringVar(&o.End, "end", "", "Latest selectable date; accepts offsets like +3m.")
	f.StringSliceVar(&o.Disabled, "disable", nil, "Dates that cannot be selected.")
	f.IntSliceVar(&o.Weekdays, "disable-weekdays", nil, "Weekdays that cannot be selected, 0 is Sunday.")
	f.StringVarP(&o.Multidate, "multidate", "m", "", "true for any number of dates, or a cap.")
	f.IntVar(&o.WeekStart, "week-start", 0, "First day of the week, 0 is Sunday.")
	f.StringVar(&o.Rule, "rule", "", "RRULE of dates that cannot be selected.")
	f.StringVar(&o.Cron, "cron", "", "Cron spec of days that cannot be selected.")
	f.BoolVar(&o.Autoclose, "autoclose", false, "Close the picker after a pick.")
	f.BoolVar(&o.ForceParse, "force-parse", false, "Rewrite the field when the picker closes.")
}

// Apply copies every flag the user set onto opts.
func (o *PickerOptions) Apply(cmd *cobra.Command, opts *picker.Options) {
	f := cmd.Flags()
	set := func(name string) bool {
		fl := f.Lookup(name)
		return fl != nil && fl.Changed
	}
	if set("format") {
		opts.Format = o.Format
	}
	if set("lang") {
		opts.Lang = o.Lang
	}
	if set("start") {
		opts.Date.Start = o.Start
	}
	if set("end") {
		opts.Date.End = o.End
	}
	if set("disable") {
		opts.Date.Disabled = o.Disabled
	}
	if set("disable-weekdays") {
		opts.DaysOfWeek.Disabled = o.Weekdays
	}
	if set("multidate") {
		opts.Multidate.Enabled = o.Multidate
	}
	if set("week-start") {
		opts.Week.Start = o.WeekStart
	}
	if set("rule") {
		opts.Date.Rule = o.Rule
	}
	if set("cron") {
		opts.Date.Cron = o.Cron
	}
	if set("autoclose") {
		opts.Autoclose = o.Autoclose
	}
	if set("force-parse") {
		opts.ForceParse = o.ForceParse
	}
}
