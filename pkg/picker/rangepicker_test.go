package picker

import (
	"testing"

	"tableflip.dev/datepicker/pkg/caldate"
	"tableflip.dev/datepicker/pkg/events"
)

func newRange(t *testing.T, start, end string) (*RangePicker, *MemoryHost, *MemoryHost) {
	t.Helper()
	opts := DefaultOptions()
	cfg, err := Resolver{Today: refToday}.Resolve(opts)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	sh, eh := NewMemoryHost(start), NewMemoryHost(end)
	rp := NewRange(cfg, sh, eh, WithClock(func() caldate.Date { return refToday }))
	rp.Start().Show()
	rp.End().Show()
	return rp, sh, eh
}

func TestRangeBoundsFollowSelection(t *testing.T) {
	rp, _, eh := newRange(t, "03/05/2012", "")
	if !rp.End().Constraints().Start().Equal(march(5)) {
		t.Fatalf("expected the end picker to start at Mar 5, got %s", rp.End().Constraints().Start())
	}
	clickDay(rp.End(), march(3))
	if eh.Text() != "" {
		t.Fatalf("end before start must not be selectable, got %q", eh.Text())
	}
	clickDay(rp.End(), march(10))
	if !rp.Start().Constraints().End().Equal(march(10)) {
		t.Fatalf("expected the start picker to end at Mar 10, got %s", rp.Start().Constraints().End())
	}
	lo, hi := rp.Range()
	if !lo.Equal(march(5)) || !hi.Equal(march(10)) {
		t.Fatalf("unexpected range %s..%s", lo, hi)
	}
	cell, _ := rp.Start().Grid().Cell(march(7))
	if !cell.InSpan {
		t.Fatalf("expected Mar 7 inside the span")
	}
	if cell, _ := rp.Start().Grid().Cell(march(12)); !cell.Disabled || cell.InSpan {
		t.Fatalf("expected Mar 12 past the start picker's end, got %+v", cell)
	}
}

func TestRangeClearRestoresBounds(t *testing.T) {
	rp, _, _ := newRange(t, "03/05/2012", "03/10/2012")
	rp.End().Clear()
	if rp.Start().Constraints().HasEnd() {
		t.Fatalf("clearing the end must lift the start picker's bound")
	}
	rp.Clear()
	if rp.End().Constraints().HasStart() {
		t.Fatalf("clearing the start must lift the end picker's bound")
	}
	if len(rp.Dates()) != 0 {
		t.Fatalf("expected no dates, got %v", rp.Dates())
	}
}

func TestRangeOnAndDispose(t *testing.T) {
	rp, _, _ := newRange(t, "", "")
	var seen []events.ComponentID
	off := rp.On(events.DateChange, func(ev events.Event) { seen = append(seen, ev.Component) })
	clickDay(rp.Start(), march(5))
	clickDay(rp.End(), march(9))
	if len(seen) != 2 || seen[0] != "start" || seen[1] != "end" {
		t.Fatalf("unexpected components %v", seen)
	}
	off()
	rp.Dispose()
	if rp.IsShown() {
		t.Fatalf("dispose hides both pickers")
	}
	if err := rp.Start().SetDates(march(6)); err != ErrDisposed {
		t.Fatalf("expected ErrDisposed, got %v", err)
	}
}
