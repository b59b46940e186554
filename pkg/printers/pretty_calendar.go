package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/datepicker/pkg/caldate"
	"tableflip.dev/datepicker/pkg/constraints"
	"tableflip.dev/datepicker/pkg/dateformat"
	"tableflip.dev/datepicker/pkg/picker"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints a day grid. Selected days are bold and reversed, disabled
// days faint, highlighted days underlined and today bold. Days of the
// neighbouring months are left blank.
func (pp *PrettyPrint) Month(g picker.Grid) {
	tf := pp.color(color.FgWhite, color.Italic)
	mid := (width - len(g.Title)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(pp.Out, "%s%s\n", strings.Repeat(" ", mid), g.Title)

	h := pp.color(color.Faint)
	_, _ = h.Fprintln(pp.Out, strings.TrimRight(fmt.Sprintf("%-3s%-3s%-3s%-3s%-3s%-3s%-3s", toAny(g.Weekdays)...), " "))

	for _, row := range g.Rows {
		var line strings.Builder
		blank := true
		for _, cell := range row {
			if cell.Old || cell.New {
				line.WriteString("   ")
				continue
			}
			blank = false
			line.WriteString(pp.cellColor(cell).Sprintf("%2s", cell.Label))
			line.WriteString(" ")
		}
		if blank {
			continue
		}
		_, _ = fmt.Fprintln(pp.Out, strings.TrimRight(line.String(), " "))
	}
	_, _ = fmt.Fprintln(pp.Out, "")
}

func toAny(ss []string) []any {
	out := make([]any, 7)
	for i := range out {
		if i < len(ss) {
			out[i] = ss[i]
		} else {
			out[i] = ""
		}
	}
	return out
}

func (pp *PrettyPrint) cellColor(cell picker.Cell) *color.Color {
	var attrs []color.Attribute
	switch {
	case cell.Selected:
		attrs = append(attrs, color.Bold, color.ReverseVideo)
	case cell.Disabled:
		attrs = append(attrs, color.Faint, color.CrossedOut)
	case cell.Today:
		attrs = append(attrs, color.Bold, color.FgHiWhite)
	default:
		attrs = append(attrs, color.FgWhite)
	}
	if cell.Highlighted {
		attrs = append(attrs, color.Underline)
	}
	return pp.color(attrs...)
}

// Check prints, per date, whether it can be selected and why not.
func (pp *PrettyPrint) Check(f *dateformat.Formatter, c constraints.Constraints, dates ...caldate.Date) {
	bold := pp.color(color.Bold)
	ok := pp.color(color.FgGreen)
	no := pp.color(color.FgRed)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Date"), bold.Sprint("Day"), bold.Sprint("Selectable"), bold.Sprint("Highlighted"), bold.Sprint("Reason"))
	for _, d := range dates {
		sel := ok.Sprint("yes")
		if !c.IsSelectable(d) {
			sel = no.Sprint("no")
		}
		hl := ""
		if c.IsHighlighted(d) {
			hl = "yes"
		}
		tbl.AddRow(f.Format(d), f.Locale().WeekdaysShort[d.Weekday()], sel, hl, Reason(c, d))
	}
	_, _ = fmt.Fprintln(pp.Out, tbl)
}

// Reason explains why d is not selectable, empty when it is.
func Reason(c constraints.Constraints, d caldate.Date) string {
	switch {
	case d.Before(c.Start()):
		return "before " + c.Start().String()
	case d.After(c.End()):
		return "after " + c.End().String()
	case c.DisabledWeekdays().Has(d.Weekday()):
		return "weekday " + strings.ToLower(d.Weekday().String()) + " disabled"
	}
	for _, x := range c.DisabledDates() {
		if x.Equal(d) {
			return "date disabled"
		}
	}
	if c.IsDisabled(d) {
		return "recurring"
	}
	return ""
}

// Year prints the twelve months of year from the controller's grid.
func (pp *PrettyPrint) Year(c *picker.Controller, year int) {
	for m := time.January; m <= time.December; m++ {
		c.ActivateDate(caldate.New(year, m, 1), picker.ScopeView)
		pp.Month(c.Grid())
	}
}
