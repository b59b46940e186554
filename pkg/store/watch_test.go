package store

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"cloudeng.io/logging/ctxlog"

	"tableflip.dev/datepicker/pkg/caldate"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func TestPersistenceWatchEmitsSelectionChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Open(testConfig{path: base})
	if err != nil {
		t.Fatalf("open persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe to directories before storing.
	time.Sleep(50 * time.Millisecond)

	r := NewRecord("trip", []caldate.Date{caldate.New(2012, time.March, 5)})
	if err := p.Save(r); err != nil {
		t.Fatalf("save record: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventSelectionsInvalidated {
				return
			}
			if evt.Name != "trip" {
				t.Fatalf("expected selection 'trip', got %q", evt.Name)
			}
			return
		case <-deadline:
			t.Fatal("timed out waiting for selection change event")
		}
	}
}

func TestEventThrottleCoalesces(t *testing.T) {
	th := newEventThrottle(10 * time.Millisecond)
	defer th.Stop()
	got := make(chan Event, 8)
	send := func(ev Event) { got <- ev }
	for i := 0; i < 5; i++ {
		th.Enqueue(Event{Type: EventSelectionChanged, Name: "a"}, send)
	}
	select {
	case ev := <-got:
		if ev.Name != "a" {
			t.Fatalf("unexpected event %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for flush")
	}
	select {
	case ev := <-got:
		t.Fatalf("expected one event per burst, got another %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestWatchErrorIsLogged(t *testing.T) {
	var buf bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))
	ev := watchError(ctx, errors.New("queue overflow"))
	if ev.Type != EventSelectionsInvalidated {
		t.Fatalf("expected every selection invalidated, got %v", ev.Type)
	}
	if !strings.Contains(buf.String(), "queue overflow") || !strings.Contains(buf.String(), "store: watcher error") {
		t.Fatalf("expected the error logged, got %q", buf.String())
	}
}
