package calendar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/datepicker/pkg/picker"
	"tableflip.dev/datepicker/pkg/view"
)

func grid(t *testing.T, text string) (*picker.Controller, picker.Grid) {
	t.Helper()
	cfg, err := picker.Resolve(picker.DefaultOptions())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	c := picker.New(cfg, picker.NewMemoryHost(text))
	return c, c.Grid()
}

func TestRenderDays(t *testing.T) {
	_, g := grid(t, "03/05/2012")
	out := ansi.Strip(Render(g, DefaultOptions()))
	lines := strings.Split(out, "\n")
	if len(lines) != 8 {
		t.Fatalf("expected title, header and six weeks, got %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "March 2012") {
		t.Fatalf("unexpected title %q", lines[0])
	}
	if strings.TrimSpace(lines[1]) != "Su Mo Tu We Th Fr Sa" {
		t.Fatalf("unexpected header %q", lines[1])
	}
	if lines[2] != "26 27 28 29  1  2  3" {
		t.Fatalf("unexpected first week %q", lines[2])
	}
}

func TestRenderHidesOtherMonths(t *testing.T) {
	_, g := grid(t, "03/05/2012")
	opts := DefaultOptions()
	opts.ShowOther = false
	lines := strings.Split(ansi.Strip(Render(g, opts)), "\n")
	if lines[2] != "             1  2  3" {
		t.Fatalf("unexpected first week %q", lines[2])
	}
}

func TestRenderMonths(t *testing.T) {
	c, _ := grid(t, "03/05/2012")
	c.ZoomOut()
	lines := strings.Split(ansi.Strip(Render(c.Grid(), DefaultOptions())), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected title and three rows, got %d", len(lines))
	}
	if lines[1] != " Jan  Feb  Mar  Apr" {
		t.Fatalf("unexpected row %q", lines[1])
	}
}

func TestAt(t *testing.T) {
	_, g := grid(t, "03/05/2012")
	cell, ok := At(g, 3*1+1, 3)
	if !ok || cell.Label != "5" {
		t.Fatalf("expected Mar 5 under the pointer, got %+v", cell)
	}
	if _, ok := At(g, 0, 0); ok {
		t.Fatalf("the title line holds no cell")
	}
	if g.Zoom != view.Day {
		t.Fatalf("unexpected zoom")
	}
}
