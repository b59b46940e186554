package picker

import (
	"strings"
	"testing"
	"time"

	"tableflip.dev/datepicker/pkg/caldate"
	"tableflip.dev/datepicker/pkg/constraints"
	"tableflip.dev/datepicker/pkg/view"
)

func TestDayGrid(t *testing.T) {
	c, _ := newPicker(t, "03/05/2012", nil)
	g := c.Grid()
	if g.Title != "March 2012" {
		t.Fatalf("unexpected title %q", g.Title)
	}
	if strings.Join(g.Weekdays, " ") != "Su Mo Tu We Th Fr Sa" {
		t.Fatalf("unexpected headers %v", g.Weekdays)
	}
	if len(g.Rows) != 6 || len(g.Rows[0]) != 7 {
		t.Fatalf("expected a 6x7 grid")
	}
	first := g.Rows[0][0]
	if !first.Date.Equal(caldate.New(2012, time.February, 26)) || !first.Old {
		t.Fatalf("expected the grid to open on Feb 26, got %s old=%v", first.Date, first.Old)
	}
	last := g.Rows[5][6]
	if !last.New {
		t.Fatalf("expected the last cell to be in April, got %s", last.Date)
	}
	cell, ok := g.Cell(march(5))
	if !ok || !cell.Selected || cell.Label != "5" {
		t.Fatalf("expected Mar 5 selected, got %+v", cell)
	}
	if cell.Activation().Date != cell.Date {
		t.Fatalf("activation must carry the cell date")
	}
}

func TestDayGridWeekStart(t *testing.T) {
	c, _ := newPicker(t, "03/05/2012", func(o *Options) { o.Week.Start = 1 })
	g := c.Grid()
	if g.Weekdays[0] != "Mo" || g.Weekdays[6] != "Su" {
		t.Fatalf("unexpected headers %v", g.Weekdays)
	}
	if !g.Rows[0][0].Date.Equal(caldate.New(2012, time.February, 27)) {
		t.Fatalf("expected Monday Feb 27 first, got %s", g.Rows[0][0].Date)
	}
}

func TestTodayHighlight(t *testing.T) {
	c, _ := newPicker(t, "", func(o *Options) { o.Today.Highlight = true })
	cell, _ := c.Grid().Cell(refToday)
	if !cell.Today {
		t.Fatalf("expected today marked")
	}
	c2, _ := newPicker(t, "", nil)
	if cell, _ := c2.Grid().Cell(refToday); cell.Today {
		t.Fatalf("today must not be marked without highlight")
	}
}

func TestMonthGrid(t *testing.T) {
	c, _ := newPicker(t, "03/05/2012", nil)
	c.ZoomOut()
	g := c.Grid()
	if g.Title != "2012" || len(g.Rows) != 3 || len(g.Rows[0]) != 4 {
		t.Fatalf("unexpected month grid %q %dx%d", g.Title, len(g.Rows), len(g.Rows[0]))
	}
	if g.Rows[0][2].Label != "Mar" || !g.Rows[0][2].Selected {
		t.Fatalf("expected Mar selected, got %+v", g.Rows[0][2])
	}
	if g.Rows[0][1].Selected {
		t.Fatalf("Feb must not be selected")
	}
}

func TestYearGrid(t *testing.T) {
	c, _ := newPicker(t, "03/05/2012", nil)
	c.ZoomOut()
	c.ZoomOut()
	g := c.Grid()
	if g.Title != "2010-2019" {
		t.Fatalf("unexpected title %q", g.Title)
	}
	first, last := g.Rows[0][0], g.Rows[2][3]
	if first.Label != "2009" || !first.Old || last.Label != "2020" || !last.New {
		t.Fatalf("unexpected edges %+v %+v", first, last)
	}
	if cell, _ := g.Cell(caldate.New(2012, time.July, 1)); !cell.Selected || cell.Label != "2012" {
		t.Fatalf("expected 2012 selected, got %+v", cell)
	}
}

func TestGridPaging(t *testing.T) {
	c, _ := newPicker(t, "03/05/2012", func(o *Options) {
		o.Date.Start = "03/01/2012"
		o.Date.End = "05/31/2012"
	})
	g := c.Grid()
	if g.CanPrev || !g.CanNext {
		t.Fatalf("unexpected paging %v %v", g.CanPrev, g.CanNext)
	}
	cell, _ := g.Cell(march(1))
	if cell.Disabled {
		t.Fatalf("range start is inclusive")
	}
	if !g.Rows[0][0].Disabled {
		t.Fatalf("Feb 26 is outside the range")
	}
}

func TestGridPredicate(t *testing.T) {
	opts := DefaultOptions()
	r := Resolver{
		Today: refToday,
		Predicates: map[view.Zoom]constraints.Predicate{
			view.Day: func(d caldate.Date) (constraints.Decoration, bool) {
				if d.Day() == 15 {
					return constraints.Decoration{Disabled: true, Classes: []string{"payday"}, Tooltip: "closed"}, true
				}
				return constraints.Decoration{}, false
			},
		},
	}
	cfg, err := r.Resolve(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := New(cfg, NewMemoryHost("03/05/2012"), WithClock(func() caldate.Date { return refToday }))
	cell, _ := c.Grid().Cell(march(15))
	if !cell.Disabled || cell.Tooltip != "closed" || len(cell.Classes) != 1 {
		t.Fatalf("expected predicate decoration, got %+v", cell)
	}
	c.ActivateCell(cell.Activation())
	if d, _ := c.Date(); !d.Equal(march(5)) {
		t.Fatalf("predicate disabled cell must not select")
	}
}
