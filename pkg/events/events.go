// Package events carries picker notifications to listeners and, through Cmd,
// into a bubbletea program.
package events

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/datepicker/pkg/caldate"
)

// ComponentID identifies the picker instance emitting events.
type ComponentID string

// Type names an event.
type Type string

const (
	Show          Type = "show"
	Hide          Type = "hide"
	DateChange    Type = "changeDate"
	DateClear     Type = "clearDate"
	MonthChange   Type = "changeMonth"
	YearChange    Type = "changeYear"
	DecadeChange  Type = "changeDecade"
	CenturyChange Type = "changeCentury"
)

// Event is the payload handed to listeners. It doubles as a tea.Msg.
type Event struct {
	Component ComponentID
	Type      Type
	// Date is the zero Date when the event has no single date.
	Date  caldate.Date
	Dates []caldate.Date
}

// Describe renders the event in a human-friendly format for logs.
func (e Event) Describe() string {
	dates := make([]string, len(e.Dates))
	for i, d := range e.Dates {
		dates[i] = d.String()
	}
	return fmt.Sprintf(`component:%q type:%q date:%q dates:%q`, e.Component, e.Type, e.Date, strings.Join(dates, ","))
}

// Cmd wraps ev into a tea.Cmd for callers that want to surface it as part of
// an Update result.
func Cmd(ev Event) tea.Cmd {
	return func() tea.Msg {
		return ev
	}
}

// Handler receives events.
type Handler func(Event)

type subscription struct {
	id      int
	typ     Type
	handler Handler
}

// Emitter dispatches events synchronously in registration order. The zero
// value is ready to use. It is not safe for concurrent use.
type Emitter struct {
	next int
	subs []subscription
}

// On registers h for events of type t. The returned func unsubscribes.
func (e *Emitter) On(t Type, h Handler) func() {
	return e.add(t, h)
}

// OnAny registers h for every event type.
func (e *Emitter) OnAny(h Handler) func() {
	return e.add("", h)
}

func (e *Emitter) add(t Type, h Handler) func() {
	e.next++
	id := e.next
	e.subs = append(e.subs, subscription{id: id, typ: t, handler: h})
	return func() {
		for i, s := range e.subs {
			if s.id == id {
				e.subs = append(e.subs[:i:i], e.subs[i+1:]...)
				return
			}
		}
	}
}

// Emit calls every matching handler. Handlers added or removed while an
// event is being delivered take effect from the next Emit.
func (e *Emitter) Emit(ev Event) {
	subs := e.subs
	for _, s := range subs {
		if s.typ == "" || s.typ == ev.Type {
			s.handler(ev)
		}
	}
}

// Len returns the number of registered handlers.
func (e *Emitter) Len() int { return len(e.subs) }

// Reset drops every handler.
func (e *Emitter) Reset() { e.subs = nil }
