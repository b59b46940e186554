package picker

import (
	"tableflip.dev/datepicker/pkg/caldate"
	"tableflip.dev/datepicker/pkg/events"
)

// Widget is what the host integration layer drives, whether it holds one
// controller or a linked pair.
type Widget interface {
	Show()
	Hide()
	IsShown() bool
	Dates() []caldate.Date
	Clear()
	On(events.Type, events.Handler) func()
	Dispose()
}

var (
	_ Widget = (*Controller)(nil)
	_ Widget = (*RangePicker)(nil)
)

// RangePicker links a start and an end controller. Picking a start date
// bounds the end picker from below and picking an end date bounds the start
// picker from above.
type RangePicker struct {
	start *Controller
	end   *Controller
	base  [2]caldate.Date
	offs  []func()
}

// NewRange builds both controllers from cfg. The hosts are the two fields.
func NewRange(cfg Config, startHost, endHost Host, opts ...Option) *RangePicker {
	rp := &RangePicker{
		start: New(cfg, startHost, append(opts, WithID("start"))...),
		end:   New(cfg, endHost, append(opts, WithID("end"))...),
	}
	rp.base = [2]caldate.Date{rp.start.Constraints().Start(), rp.end.Constraints().End()}

	fromStart := func(ev events.Event) {
		if ev.Component == rp.start.id {
			rp.bound(rp.end, ev, true)
		}
	}
	fromEnd := func(ev events.Event) {
		if ev.Component == rp.end.id {
			rp.bound(rp.start, ev, false)
		}
	}
	rp.offs = append(rp.offs,
		rp.start.On(events.DateChange, fromStart),
		rp.start.On(events.DateClear, fromStart),
		rp.end.On(events.DateChange, fromEnd),
		rp.end.On(events.DateClear, fromEnd),
	)
	rp.bound(rp.end, events.Event{Date: lastOf(rp.start)}, true)
	rp.bound(rp.start, events.Event{Date: lastOf(rp.end)}, false)
	return rp
}

func lastOf(c *Controller) caldate.Date {
	d, _ := c.Date()
	return d
}

// bound moves the lower (or upper) bound of other to the event's date, or
// back to the configured bound when the selection was cleared.
func (rp *RangePicker) bound(other *Controller, ev events.Event, lower bool) {
	var err error
	switch {
	case lower && ev.Date.IsZero():
		err = other.SetRangeStart(rp.base[0])
	case lower:
		err = other.SetRangeStart(ev.Date)
	case ev.Date.IsZero():
		err = other.SetRangeEnd(rp.base[1])
	default:
		err = other.SetRangeEnd(ev.Date)
	}
	if err != nil {
		other.logger.Warn("picker: range bound not applied", "component", other.id, "err", err)
	}
	rp.updateSpan()
}

func (rp *RangePicker) updateSpan() {
	lo, _ := rp.start.Date()
	hi, _ := rp.end.Date()
	rp.start.SetSpan(lo, hi)
	rp.end.SetSpan(lo, hi)
}

// Start returns the start controller.
func (rp *RangePicker) Start() *Controller { return rp.start }

// End returns the end controller.
func (rp *RangePicker) End() *Controller { return rp.end }

// Range returns the selected start and end; zero values mean unset.
func (rp *RangePicker) Range() (caldate.Date, caldate.Date) {
	return lastOf(rp.start), lastOf(rp.end)
}

// Show shows the start picker.
func (rp *RangePicker) Show() { rp.start.Show() }

// Hide hides both pickers.
func (rp *RangePicker) Hide() {
	rp.start.Hide()
	rp.end.Hide()
}

func (rp *RangePicker) IsShown() bool { return rp.start.IsShown() || rp.end.IsShown() }

// Dates returns the start and end selections that are set, in that order.
func (rp *RangePicker) Dates() []caldate.Date {
	var out []caldate.Date
	if d, ok := rp.start.Date(); ok {
		out = append(out, d)
	}
	if d, ok := rp.end.Date(); ok {
		out = append(out, d)
	}
	return out
}

// Clear clears both pickers.
func (rp *RangePicker) Clear() {
	rp.start.Clear()
	rp.end.Clear()
}

// On registers h on both controllers.
func (rp *RangePicker) On(t events.Type, h events.Handler) func() {
	a := rp.start.On(t, h)
	b := rp.end.On(t, h)
	return func() {
		a()
		b()
	}
}

// Dispose unlinks and disposes both controllers.
func (rp *RangePicker) Dispose() {
	for _, off := range rp.offs {
		off()
	}
	rp.offs = nil
	rp.start.Dispose()
	rp.end.Dispose()
}
