// Package picker implements the selection and navigation state machine of a
// calendar date picker. A Controller reconciles host text, keys, cell
// activations and paste with an ordered selection and a view cursor.
package picker

import (
	"fmt"
	"log/slog"
	"strings"

	"tableflip.dev/datepicker/pkg/caldate"
	"tableflip.dev/datepicker/pkg/constraints"
	"tableflip.dev/datepicker/pkg/dateformat"
	"tableflip.dev/datepicker/pkg/dateset"
	"tableflip.dev/datepicker/pkg/events"
	"tableflip.dev/datepicker/pkg/view"
)

// maxDepth bounds nested calls made from event listeners.
const maxDepth = 8

// maxScan bounds the corrective day steps of Navigate.
const maxScan = 3660

// Scope says what ActivateDate changes.
type Scope int

const (
	// ScopeBoth toggles the date and moves the cursor to it.
	ScopeBoth Scope = iota
	// ScopeDate only toggles the date.
	ScopeDate
	// ScopeView only moves the cursor.
	ScopeView
)

func (s Scope) date() bool { return s != ScopeView }
func (s Scope) view() bool { return s != ScopeDate }

func (s Scope) String() string {
	switch s {
	case ScopeDate:
		return "date"
	case ScopeView:
		return "view"
	}
	return "both"
}

// Controller is a single picker instance. It is not safe for concurrent use.
type Controller struct {
	id       events.ComponentID
	cfg      Config
	c        constraints.Constraints
	host     Host
	renderer Renderer
	emitter  *events.Emitter
	logger   *slog.Logger
	today    func() caldate.Date

	dates    *dateset.Set
	view     view.State
	shown    bool
	span     [2]caldate.Date
	depth    int
	disposed bool
	offs     []func()
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger; events are logged at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithRenderer sets the renderer asked to repaint.
func WithRenderer(r Renderer) Option {
	return func(c *Controller) { c.renderer = r }
}

// WithEmitter shares an emitter between controllers.
func WithEmitter(e *events.Emitter) Option {
	return func(c *Controller) { c.emitter = e }
}

// WithClock overrides how today is determined.
func WithClock(fn func() caldate.Date) Option {
	return func(c *Controller) { c.today = fn }
}

// WithID names the controller in events and logs.
func WithID(id events.ComponentID) Option {
	return func(c *Controller) { c.id = id }
}

// New builds a controller bound to host and loads the initial selection from
// the host text. Unparseable text is logged and leaves the selection empty.
func New(cfg Config, host Host, opts ...Option) *Controller {
	c := &Controller{
		id:     "picker",
		host:   host,
		today:  caldate.Today,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.emitter == nil {
		c.emitter = &events.Emitter{}
	}
	if cfg.Formatter == nil {
		if cfg.Locale.Layout == "" {
			cfg.Locale = dateformat.English
		}
		cfg.Formatter = dateformat.New("", cfg.Locale)
	}
	// a hand-built Config without a separator cannot round-trip several
	// dates through the host text
	if cfg.Capacity < 0 || (cfg.Capacity == 0 && cfg.Separator == "") {
		cfg.Capacity = 1
	}
	if cfg.MaxZoom < cfg.MinZoom {
		cfg.MaxZoom = cfg.MinZoom
	}
	// a zero Constraints has zero bounds; map them to the sentinels
	cfg.Constraints = cfg.Constraints.WithStart(cfg.Constraints.Start()).WithEnd(cfg.Constraints.End())
	c.cfg = cfg
	c.c = cfg.Constraints
	c.dates = dateset.New(cfg.Capacity)
	c.view = view.New(cfg.StartZoom, cfg.MinZoom, cfg.MaxZoom, c.defaultDate())

	dates, err := c.parseHost()
	if err != nil {
		c.logger.Warn("picker: ignoring initial host text", "component", c.id, "err", err)
	}
	for _, d := range dates {
		if c.c.IsSelectable(d) {
			c.dates.Push(d)
		}
	}
	c.resolveCursor()
	if host.Inline() {
		c.shown = true
		host.NotifyVisibility(true)
	}
	return c
}

// ID returns the component id.
func (c *Controller) ID() events.ComponentID { return c.id }

// Config returns the resolved configuration the controller was built with.
func (c *Controller) Config() Config { return c.cfg }

// Constraints returns the current constraint snapshot.
func (c *Controller) Constraints() constraints.Constraints { return c.c }

// Formatter returns the date formatter.
func (c *Controller) Formatter() *dateformat.Formatter { return c.cfg.Formatter }

// IsShown reports whether the picker is visible.
func (c *Controller) IsShown() bool { return c.shown }

// Dates returns the selection in selection order.
func (c *Controller) Dates() []caldate.Date { return c.dates.Dates() }

// Date returns the most recently selected date.
func (c *Controller) Date() (caldate.Date, bool) { return c.dates.Last() }

// Text returns the selection formatted and joined with the separator.
func (c *Controller) Text() string {
	return c.cfg.Formatter.Join(c.dates.Dates(), c.cfg.Separator)
}

// View returns a copy of the view state.
func (c *Controller) View() view.State { return c.view }

// On registers a listener. Listeners registered here are dropped by Dispose.
func (c *Controller) On(t events.Type, h events.Handler) func() {
	off := c.emitter.On(t, h)
	c.offs = append(c.offs, off)
	return off
}

// Dispose hides the picker and unregisters listeners added through On.
// Every later call is a no-op or returns ErrDisposed.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	if c.shown {
		c.shown = false
		c.host.NotifyVisibility(false)
	}
	for _, off := range c.offs {
		off()
	}
	c.offs = nil
	c.disposed = true
}

func (c *Controller) enter() error {
	if c.disposed {
		return ErrDisposed
	}
	if c.depth >= maxDepth {
		return ErrReentrant
	}
	c.depth++
	return nil
}

func (c *Controller) leave() { c.depth-- }

// guard is enter for operations without an error result.
func (c *Controller) guard(op string) bool {
	if err := c.enter(); err != nil {
		c.logger.Warn("picker: dropped call", "component", c.id, "op", op, "err", err)
		return false
	}
	return true
}

func (c *Controller) defaultDate() caldate.Date {
	d := c.cfg.Default
	if d.IsZero() {
		d = c.today()
	}
	return d.Clamp(c.c.Start(), c.c.End()).In(c.cfg.Locale.Tag)
}

func (c *Controller) repaint() {
	if c.renderer != nil {
		c.renderer.Repaint()
	}
}

func (c *Controller) writeHost() {
	c.host.SetText(c.Text())
}

// trigger emits t. A zero alt means the event carries the last selection.
func (c *Controller) trigger(t events.Type, alt caldate.Date) {
	date := alt
	if date.IsZero() {
		date, _ = c.dates.Last()
	}
	ev := events.Event{Component: c.id, Type: t, Date: date, Dates: c.dates.Dates()}
	c.logger.Debug("picker event", "event", ev.Describe())
	c.emitter.Emit(ev)
}

// Show makes the picker visible. Read-only hosts stay hidden unless
// EnableOnReadonly is set.
func (c *Controller) Show() {
	if !c.guard("show") {
		return
	}
	defer c.leave()
	if c.host.ReadOnly() && !c.cfg.EnableOnReadonly {
		return
	}
	if c.shown {
		return
	}
	c.shown = true
	c.host.NotifyVisibility(true)
	c.repaint()
	c.trigger(events.Show, caldate.Date{})
}

// Hide closes the picker, resetting zoom and focus. With ForceParse the host
// text is parsed again and rewritten in canonical form.
func (c *Controller) Hide() {
	if !c.guard("hide") {
		return
	}
	defer c.leave()
	if c.host.Inline() || !c.shown {
		return
	}
	c.shown = false
	c.host.NotifyVisibility(false)
	c.view.Reset()
	if c.cfg.ForceParse && c.host.Text() != "" {
		if err := c.resync(); err != nil {
			c.logger.Debug("picker: keeping selection on hide", "component", c.id, "err", err)
		}
		c.writeHost()
	}
	c.repaint()
	c.trigger(events.Hide, caldate.Date{})
}

// ActivateDate is the central mutation used by clicks and the today action.
func (c *Controller) ActivateDate(d caldate.Date, scope Scope) {
	if !c.guard("activate") {
		return
	}
	defer c.leave()
	c.activate(d, scope)
}

func (c *Controller) activate(d caldate.Date, scope Scope) {
	d = d.In(c.cfg.Locale.Tag)
	c.view.ClearFocus()
	if scope.date() {
		c.toggle(d)
	}
	if scope.view() {
		c.view.SetCursor(d.Clamp(c.c.Start(), c.c.End()))
	}
	c.repaint()
	c.writeHost()
	if scope != ScopeView {
		c.trigger(events.DateChange, caldate.Date{})
	}
	if c.cfg.Autoclose && scope.date() {
		c.Hide()
	}
}

// toggle adds or removes d. A selected date is removed when more than one
// selection is allowed or ToggleActive is set; otherwise single select
// replaces the selection.
func (c *Controller) toggle(d caldate.Date) {
	idx := c.dates.Contains(d)
	switch {
	case idx != -1:
		if c.cfg.MultiSelect() || c.cfg.ToggleActive {
			c.dates.Remove(idx)
		}
	case !c.cfg.MultiSelect():
		c.dates.Clear()
		c.dates.Push(d)
	default:
		c.dates.Push(d)
	}
}

// Navigate steps from by n units and then by single days in the same
// direction until it finds a selectable date. It reports false once a step
// leaves the range.
func (c *Controller) Navigate(n int, unit caldate.Unit, from caldate.Date) (caldate.Date, bool) {
	if n == 0 {
		return caldate.Date{}, false
	}
	step := 1
	if n < 0 {
		step = -1
	}
	m := from.Add(n, unit)
	for i := 0; i <= maxScan; i++ {
		if !c.c.InRange(m) {
			return caldate.Date{}, false
		}
		if !c.c.IsDisabled(m) {
			return m, true
		}
		m = m.AddDays(step)
	}
	return caldate.Date{}, false
}

func (c *Controller) parseHost() ([]caldate.Date, error) {
	sep := ""
	if c.cfg.MultiSelect() {
		sep = c.cfg.Separator
	}
	return c.cfg.Formatter.ParseList(c.host.Text(), sep)
}

// Resync re-derives the selection from the host text without rewriting it.
// Dates that are not selectable are dropped. A parse failure returns an
// *dateformat.InvalidDateError and changes nothing.
func (c *Controller) Resync() error {
	if err := c.enter(); err != nil {
		return err
	}
	defer c.leave()
	return c.resync()
}

// InputChanged is called after the user edits the host text.
func (c *Controller) InputChanged() error {
	return c.Resync()
}

func (c *Controller) resync() error {
	dates, err := c.parseHost()
	if err != nil {
		return err
	}
	c.replace(dates, false)
	return nil
}

// replace installs dates as the selection, keeping only selectable ones, and
// emits DateChange or DateClear when the selection changed.
func (c *Controller) replace(dates []caldate.Date, rewrite bool) {
	old := c.dates.Copy()
	next := dateset.New(c.cfg.Capacity)
	for _, d := range dates {
		if d.IsZero() || !c.c.IsSelectable(d) {
			continue
		}
		next.Push(d.In(c.cfg.Locale.Tag))
	}
	c.dates = next
	c.resolveCursor()
	if rewrite {
		c.writeHost()
	}
	c.repaint()
	if next.Len() > 0 && !old.Equal(next) {
		c.trigger(events.DateChange, caldate.Date{})
	}
	if next.Len() == 0 && old.Len() > 0 {
		c.trigger(events.DateClear, caldate.Date{})
	}
}

func (c *Controller) resolveCursor() {
	cur := c.view.Cursor()
	switch last, ok := c.dates.Last(); {
	case ok:
		c.view.SetCursor(last)
	case cur.Before(c.c.Start()):
		c.view.SetCursor(c.c.Start())
	case cur.After(c.c.End()):
		c.view.SetCursor(c.c.End())
	default:
		c.view.SetCursor(c.defaultDate())
	}
}

// SetDates replaces the selection and writes the host text.
func (c *Controller) SetDates(dates ...caldate.Date) error {
	values := make([]any, 0, len(dates))
	for _, d := range dates {
		if !d.IsZero() {
			values = append(values, d)
		}
	}
	return c.setValues(values)
}

// SetDateStrings parses texts in the configured format and replaces the
// selection. Empty strings are skipped.
func (c *Controller) SetDateStrings(texts ...string) error {
	values := make([]any, 0, len(texts))
	for _, s := range texts {
		if s != "" {
			values = append(values, s)
		}
	}
	return c.setValues(values)
}

func (c *Controller) setValues(values []any) error {
	if err := c.enter(); err != nil {
		return err
	}
	defer c.leave()
	dates := make([]caldate.Date, 0, len(values))
	for _, v := range values {
		d, err := c.cfg.Formatter.Resolve(v)
		if err != nil {
			return err
		}
		dates = append(dates, d)
	}
	c.replace(dates, true)
	return nil
}

// Paste sets the selection from clipboard text, split on the separator when
// more than one date may be selected.
func (c *Controller) Paste(text string) error {
	if err := c.enter(); err != nil {
		return err
	}
	defer c.leave()
	sep := ""
	if c.cfg.MultiSelect() {
		sep = c.cfg.Separator
	}
	dates, err := c.cfg.Formatter.ParseList(strings.TrimSpace(text), sep)
	if err != nil {
		return err
	}
	c.replace(dates, true)
	return nil
}

// Clear empties the selection and the host text.
func (c *Controller) Clear() {
	if !c.guard("clear") {
		return
	}
	defer c.leave()
	c.replace(nil, true)
	if c.cfg.Autoclose {
		c.Hide()
	}
}

// resolveBound turns a setter argument into a date. nil, "" and the zero
// Date mean no bound.
func (c *Controller) resolveBound(field string, v any) (caldate.Date, error) {
	switch b := v.(type) {
	case nil:
		return caldate.Date{}, nil
	case string:
		if strings.TrimSpace(b) == "" {
			return caldate.Date{}, nil
		}
		d, err := parseConfigDate(c.cfg.Formatter, b, c.today())
		if err != nil {
			return caldate.Date{}, &ConfigurationError{Field: field, Value: v, Err: err}
		}
		return d, nil
	case caldate.Date:
		if b.IsZero() {
			return caldate.Date{}, nil
		}
	}
	d, err := c.cfg.Formatter.Resolve(v)
	if err != nil {
		return caldate.Date{}, &ConfigurationError{Field: field, Value: v, Err: err}
	}
	return d, nil
}

// SetRangeStart sets the first selectable date. v is a caldate.Date,
// time.Time, string or nil to remove the bound.
func (c *Controller) SetRangeStart(v any) error {
	if err := c.enter(); err != nil {
		return err
	}
	defer c.leave()
	d, err := c.resolveBound("date.start", v)
	if err != nil {
		return err
	}
	return c.apply(c.c.WithStart(d))
}

// SetRangeEnd sets the last selectable date.
func (c *Controller) SetRangeEnd(v any) error {
	if err := c.enter(); err != nil {
		return err
	}
	defer c.leave()
	d, err := c.resolveBound("date.end", v)
	if err != nil {
		return err
	}
	return c.apply(c.c.WithEnd(d))
}

// SetDisabledDates replaces the disabled date list. Every element is parsed
// before anything changes; failures are reported together in a *ParseError.
func (c *Controller) SetDisabledDates(values ...any) error {
	if err := c.enter(); err != nil {
		return err
	}
	defer c.leave()
	dates, err := parseDisabled(c.cfg.Formatter, values, c.today())
	if err != nil {
		return err
	}
	return c.apply(c.c.WithDisabledDates(dates...))
}

// SetDisabledWeekdays replaces the disabled days of the week (0 is Sunday).
func (c *Controller) SetDisabledWeekdays(days ...int) error {
	if err := c.enter(); err != nil {
		return err
	}
	defer c.leave()
	w, err := constraints.NewWeekdays(days...)
	if err != nil {
		return &ConfigurationError{Field: "daysOfWeek.disabled", Value: days, Err: err}
	}
	return c.apply(c.c.WithDisabledWeekdays(w))
}

// SetHighlightedWeekdays replaces the highlighted days of the week.
func (c *Controller) SetHighlightedWeekdays(days ...int) error {
	if err := c.enter(); err != nil {
		return err
	}
	defer c.leave()
	w, err := constraints.NewWeekdays(days...)
	if err != nil {
		return &ConfigurationError{Field: "daysOfWeek.highlighted", Value: days, Err: err}
	}
	return c.apply(c.c.WithHighlightedWeekdays(w))
}

// apply validates and swaps in a new snapshot, then drops selections the
// new snapshot no longer allows.
func (c *Controller) apply(next constraints.Constraints) error {
	if next.Start().After(next.End()) {
		return &ConfigurationError{Field: "date.start", Value: next.Start(),
			Err: fmt.Errorf("after date.end %s", next.End())}
	}
	c.c = next
	before := c.dates.Len()
	current := c.dates.Dates()
	kept := 0
	for _, d := range current {
		if next.IsSelectable(d) {
			kept++
		}
	}
	c.replace(current, kept != before)
	return nil
}

// SetSpan marks the dates between lo and hi as a range in the grid. Zero
// values clear it.
func (c *Controller) SetSpan(lo, hi caldate.Date) {
	c.span = [2]caldate.Date{lo, hi}
	c.repaint()
}

// Snapshot is a read-only view of the controller for renderers.
type Snapshot struct {
	ID          events.ComponentID
	Shown       bool
	Zoom        view.Zoom
	Cursor      caldate.Date
	Focus       caldate.Date
	Dates       []caldate.Date
	Text        string
	Title       string
	Constraints constraints.Constraints
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	focus, _ := c.view.Focus()
	return Snapshot{
		ID:          c.id,
		Shown:       c.shown,
		Zoom:        c.view.Zoom(),
		Cursor:      c.view.Cursor(),
		Focus:       focus,
		Dates:       c.dates.Dates(),
		Text:        c.Text(),
		Title:       c.cfg.Title,
		Constraints: c.c,
	}
}

// ResolveDate parses v the way setters do: relative offsets, the configured
// format, ISO dates, caldate.Date and time.Time.
func (c *Controller) ResolveDate(v any) (caldate.Date, error) {
	if s, ok := v.(string); ok {
		return parseConfigDate(c.cfg.Formatter, s, c.today())
	}
	return c.cfg.Formatter.Resolve(v)
}
