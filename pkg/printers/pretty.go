// Package printers renders selections, month grids and tables for the CLI.
package printers

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"tableflip.dev/datepicker/pkg/caldate"
	"tableflip.dev/datepicker/pkg/dateformat"
)

type PrettyPrint struct {
	Out io.Writer
	// Plain disables colour. New sets it when Out is not a terminal.
	Plain bool
}

// New returns a printer for w; nil means color.Output.
func New(w io.Writer) *PrettyPrint {
	if w == nil {
		w = color.Output
	}
	return &PrettyPrint{Out: w, Plain: !IsTerminal(w)}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	if w == color.Output {
		return !color.NoColor
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (pp *PrettyPrint) color(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if pp.Plain {
		c.DisableColor()
	}
	return c
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.Out, "")
}

func (pp *PrettyPrint) Title(title string) {
	_, _ = pp.color(color.Bold, color.Underline).Fprintln(pp.Out, title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := pp.color(color.Bold, color.Underline)
	c := pp.color(color.Faint)

	_, _ = t.Fprint(pp.Out, title)
	_, _ = c.Fprintf(pp.Out, " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.Out, " date")
	default:
		_, _ = c.Fprintln(pp.Out, " dates")
	}
}

// Selection prints one date per line in selection order, formatted with f
// and followed by the weekday.
func (pp *PrettyPrint) Selection(f *dateformat.Formatter, dates ...caldate.Date) {
	if len(dates) == 0 {
		_, _ = pp.color(color.Faint, color.Italic).Fprint(pp.Out, " none\n\n")
		return
	}

	t := pp.color()
	y := pp.color(color.FgHiYellow, color.Italic, color.Faint)
	days := f.Locale().Weekdays
	for i, d := range dates {
		_, _ = y.Fprintf(pp.Out, "%2d  ", i+1)
		_, _ = t.Fprintf(pp.Out, "%s %s\n", f.Format(d), days[d.Weekday()])
	}
	_, _ = t.Fprintln(pp.Out, "")
}

// Error prints err the way HandleError does for non JSON output.
func (pp *PrettyPrint) Error(err error) {
	msg := strings.TrimSpace(err.Error())
	_, _ = pp.color(color.FgRed).Fprintln(pp.Out, msg)
}
