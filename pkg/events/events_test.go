package events

import (
	"strings"
	"testing"
	"time"

	"tableflip.dev/datepicker/pkg/caldate"
)

func TestEmitOrder(t *testing.T) {
	var e Emitter
	var got []string
	e.On(DateChange, func(Event) { got = append(got, "a") })
	e.OnAny(func(ev Event) { got = append(got, "any:"+string(ev.Type)) })
	e.On(DateChange, func(Event) { got = append(got, "b") })
	e.On(Hide, func(Event) { got = append(got, "hide") })

	e.Emit(Event{Type: DateChange})
	if strings.Join(got, " ") != "a any:changeDate b" {
		t.Fatalf("unexpected order %v", got)
	}
}

func TestUnsubscribe(t *testing.T) {
	var e Emitter
	calls := 0
	off := e.On(Show, func(Event) { calls++ })
	e.Emit(Event{Type: Show})
	off()
	off()
	e.Emit(Event{Type: Show})
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
	if e.Len() != 0 {
		t.Fatalf("expected no handlers, got %d", e.Len())
	}
}

func TestUnsubscribeDuringEmit(t *testing.T) {
	var e Emitter
	var offB func()
	calls := 0
	e.On(Show, func(Event) { offB() })
	offB = e.On(Show, func(Event) { calls++ })
	e.Emit(Event{Type: Show})
	e.Emit(Event{Type: Show})
	if calls != 1 {
		t.Fatalf("expected removal to apply from the next emit, got %d calls", calls)
	}
}

func TestCmd(t *testing.T) {
	ev := Event{Component: "picker", Type: MonthChange, Date: caldate.New(2012, time.April, 1)}
	msg := Cmd(ev)()
	got, ok := msg.(Event)
	if !ok {
		t.Fatalf("expected Event msg, got %T", msg)
	}
	if got.Type != MonthChange || !got.Date.Equal(ev.Date) {
		t.Fatalf("unexpected event %+v", got)
	}
	if !strings.Contains(got.Describe(), `date:"2012-04-01"`) {
		t.Fatalf("unexpected description %s", got.Describe())
	}
}
