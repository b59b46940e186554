// Package app is the Bubble Tea front end of the picker: a date field with
// the calendar under it.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/datepicker/pkg/caldate"
	"tableflip.dev/datepicker/pkg/events"
	"tableflip.dev/datepicker/pkg/picker"
	"tableflip.dev/datepicker/pkg/store"
	"tableflip.dev/datepicker/pkg/tui/components/calendar"
	"tableflip.dev/datepicker/pkg/tui/components/eventviewer"
	"tableflip.dev/datepicker/pkg/tui/components/help"
	"tableflip.dev/datepicker/pkg/tui/theme"
	"tableflip.dev/datepicker/pkg/tui/ui"
	"tableflip.dev/datepicker/pkg/tui/ui/overlay"
)

// Options configures the model.
type Options struct {
	Config picker.Config
	// Text is the initial field content. When empty and Store is set the
	// saved selection called Name is loaded instead.
	Text     string
	ReadOnly bool
	Inline   bool

	Store store.Persistence
	Name  string

	Theme  *theme.Theme
	Logger *slog.Logger
	// Clock overrides today.
	Clock func() caldate.Date
	// Clipboard reads the system clipboard.
	Clipboard func() (string, error)
}

type (
	watchStartedMsg struct {
		ch     <-chan store.Event
		cancel context.CancelFunc
		err    error
	}
	watchEventMsg struct {
		event store.Event
	}
	watchStoppedMsg struct{}
	loadedMsg       struct {
		dates []caldate.Date
		err   error
	}
	savedMsg struct {
		err error
	}
	pasteMsg struct {
		text string
		err  error
	}
)

// Model is the Bubble Tea model. It is the picker's Host and Renderer.
type Model struct {
	picker *picker.Controller
	input  textinput.Model
	theme  theme.Theme
	logger *slog.Logger

	readOnly bool
	inline   bool
	visible  bool
	repaints int

	store       store.Persistence
	name        string
	ctx         context.Context
	cancel      context.CancelFunc
	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
	loadOnStart bool
	syncing     bool
	needSave    bool

	pending   []events.Event
	status    string
	statusErr bool

	help      *help.Model
	log       *eventviewer.Model
	overlay   ui.Component
	clipboard func() (string, error)

	width  int
	height int
}

var (
	_ picker.Host     = (*Model)(nil)
	_ picker.Renderer = (*Model)(nil)
)

// New creates the model and binds a picker controller to it.
func New(opts Options) *Model {
	th := theme.Default()
	if opts.Theme != nil {
		th = *opts.Theme
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	name := opts.Name
	if name == "" {
		name = "default"
	}
	read := opts.Clipboard
	if read == nil {
		read = clipboard.ReadAll
	}

	ti := textinput.New()
	ti.Placeholder = opts.Config.Formatter.Layout()
	ti.CharLimit = 512
	ti.Prompt = ""
	ti.VirtualCursor = true
	ti.Styles.Cursor.Color = lipgloss.Color("212")
	ti.Styles.Cursor.Shape = tea.CursorBlock
	ti.Styles.Cursor.Blink = false
	ti.SetValue(opts.Text)
	ti.CursorEnd()
	if !opts.ReadOnly {
		ti.Focus()
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		input:       ti,
		theme:       th,
		logger:      logger,
		readOnly:    opts.ReadOnly,
		inline:      opts.Inline,
		store:       opts.Store,
		name:        name,
		ctx:         ctx,
		cancel:      cancel,
		loadOnStart: opts.Store != nil && opts.Text == "",
		help:        help.New(60, 20),
		log:         eventviewer.NewModel(200),
		clipboard:   read,
	}

	em := &events.Emitter{}
	em.OnAny(m.collect)
	popts := []picker.Option{
		picker.WithRenderer(m),
		picker.WithEmitter(em),
		picker.WithLogger(logger),
	}
	if opts.Clock != nil {
		popts = append(popts, picker.WithClock(opts.Clock))
	}
	m.picker = picker.New(opts.Config, m, popts...)
	m.picker.Show()
	m.pending = nil
	return m
}

// Picker exposes the bound controller.
func (m *Model) Picker() *picker.Controller { return m.picker }

// Text implements picker.Host.
func (m *Model) Text() string { return m.input.Value() }

// SetText implements picker.Host.
func (m *Model) SetText(s string) {
	m.input.SetValue(s)
	m.input.CursorEnd()
}

// ReadOnly implements picker.Host.
func (m *Model) ReadOnly() bool { return m.readOnly }

// Inline implements picker.Host.
func (m *Model) Inline() bool { return m.inline }

// NotifyVisibility implements picker.Host.
func (m *Model) NotifyVisibility(shown bool) { m.visible = shown }

// Repaint implements picker.Renderer. Bubble Tea redraws after every
// Update, so this only counts requests.
func (m *Model) Repaint() { m.repaints++ }

func (m *Model) collect(ev events.Event) {
	m.pending = append(m.pending, ev)
	if (ev.Type == events.DateChange || ev.Type == events.DateClear) && !m.syncing {
		m.needSave = true
	}
}

// Init loads the saved selection and starts watching the store.
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.loadOnStart {
		cmds = append(cmds, m.loadCmd())
	}
	cmds = append(cmds, startWatchCmd(m.ctx, m.store))
	return tea.Batch(cmds...)
}

// Update routes messages to the picker and the panels.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetSize(min(msg.Width-4, 72), msg.Height-2)
		m.log.SetSize(min(msg.Width-4, 80), max(msg.Height/2, 6))
	case tea.KeyPressMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case tea.MouseClickMsg:
		m.handleClick(msg.Mouse())
	case tea.MouseWheelMsg:
		if m.overlay != nil {
			var cmd tea.Cmd
			m.overlay, cmd = m.overlay.Update(msg)
			cmds = append(cmds, cmd)
		}
	case events.Event:
		m.log.Append(eventviewer.FromEvent(msg))
		m.logger.Debug("picker event", "event", msg.Describe())
	case pasteMsg:
		if msg.err != nil {
			m.setError(msg.err)
			break
		}
		if err := m.picker.Paste(msg.text); err != nil {
			m.setError(err)
		}
	case loadedMsg:
		m.applyLoaded(msg)
	case savedMsg:
		if msg.err != nil {
			m.setError(msg.err)
		}
	case watchStartedMsg:
		if msg.err != nil {
			m.logger.Warn("store watch unavailable", "err", msg.err)
			break
		}
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		cmds = append(cmds, m.waitForWatch())
	case watchEventMsg:
		if msg.event.Type == store.EventSelectionsInvalidated || msg.event.Name == m.name {
			m.log.Append(eventviewer.Entry{Source: "store", Summary: msg.event.Type.String(), Detail: msg.event.Name})
			cmds = append(cmds, m.loadCmd())
		}
		cmds = append(cmds, m.waitForWatch())
	case watchStoppedMsg:
		m.stopWatch()
	}

	cmds = append(cmds, m.flush()...)
	return m, tea.Batch(cmds...)
}

// flush turns the events emitted while handling a message into commands.
func (m *Model) flush() []tea.Cmd {
	var cmds []tea.Cmd
	for _, ev := range m.pending {
		cmds = append(cmds, events.Cmd(ev))
		if ev.Type == events.DateChange || ev.Type == events.DateClear {
			m.setStatus(m.describeSelection())
		}
	}
	m.pending = nil
	if m.needSave {
		m.needSave = false
		cmds = append(cmds, m.saveCmd())
	}
	return cmds
}

var pickerKeys = map[string]picker.Key{
	"left":        {Code: picker.ArrowLeft},
	"right":       {Code: picker.ArrowRight},
	"up":          {Code: picker.ArrowUp},
	"down":        {Code: picker.ArrowDown},
	"shift+left":  {Code: picker.ArrowLeft, Shift: true},
	"shift+right": {Code: picker.ArrowRight, Shift: true},
	"shift+up":    {Code: picker.ArrowUp, Shift: true},
	"shift+down":  {Code: picker.ArrowDown, Shift: true},
	"ctrl+left":   {Code: picker.ArrowLeft, Ctrl: true},
	"ctrl+right":  {Code: picker.ArrowRight, Ctrl: true},
	"ctrl+up":     {Code: picker.ArrowUp, Ctrl: true},
	"ctrl+down":   {Code: picker.ArrowDown, Ctrl: true},
	"enter":       {Code: picker.Enter},
	"esc":         {Code: picker.Escape},
	"tab":         {Code: picker.Tab},
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	k := msg.String()
	if m.overlay != nil {
		switch k {
		case "ctrl+c", "ctrl+q":
			return m.quit()
		case "esc", "?", "q":
			m.overlay = nil
			return nil
		case "ctrl+e":
			m.toggleOverlay(m.log)
			return nil
		}
		var cmd tea.Cmd
		m.overlay, cmd = m.overlay.Update(msg)
		return cmd
	}

	switch k {
	case "ctrl+c", "ctrl+q":
		return m.quit()
	case "?":
		m.toggleOverlay(m.help)
		return nil
	case "ctrl+e":
		m.toggleOverlay(m.log)
		return nil
	case "pgup":
		m.picker.Page(-1)
		return nil
	case "pgdown":
		m.picker.Page(1)
		return nil
	case "home":
		m.picker.Today()
		return nil
	case "ctrl+u":
		m.picker.ZoomOut()
		return nil
	case "ctrl+x":
		m.picker.Clear()
		return nil
	case "ctrl+v":
		return m.pasteCmd()
	}

	if pk, ok := pickerKeys[k]; ok && m.picker.KeyDown(pk) {
		return nil
	}
	if m.readOnly {
		return nil
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		if err := m.picker.InputChanged(); err != nil {
			m.setError(err)
		} else {
			m.setStatus("")
		}
	}
	return cmd
}

func (m *Model) toggleOverlay(c ui.Component) {
	if m.overlay == c {
		m.overlay = nil
		return
	}
	m.overlay = c
}

func (m *Model) quit() tea.Cmd {
	m.stopWatch()
	m.cancel()
	return tea.Quit
}

// calendarTop is the first screen row of the calendar.
func (m *Model) calendarTop() int {
	top := 2
	if m.picker.Config().Title != "" {
		top++
	}
	return top
}

func (m *Model) handleClick(mouse tea.Mouse) {
	if m.overlay != nil || mouse.Button != tea.MouseLeft {
		return
	}
	top := m.calendarTop()
	if mouse.Y == top-2 {
		m.picker.Show()
		return
	}
	if !m.visible {
		return
	}
	g := m.picker.Grid()
	y := mouse.Y - top
	if y == 0 {
		switch w := calendar.Width(g); {
		case mouse.X == 0:
			m.picker.Page(-1)
		case mouse.X == w-1:
			m.picker.Page(1)
		case mouse.X > 0 && mouse.X < w-1:
			m.picker.ZoomOut()
		}
		return
	}
	if cell, ok := calendar.At(g, mouse.X, y); ok {
		m.picker.ActivateCell(cell.Activation())
		return
	}
	if m.picker.Config().TodayButton != picker.TodayOff && y == m.calendarHeight(g) {
		m.picker.Today()
	}
}

func (m *Model) calendarHeight(g picker.Grid) int {
	h := 1 + len(g.Rows)
	if len(g.Weekdays) > 0 {
		h++
	}
	return h
}

func (m *Model) pasteCmd() tea.Cmd {
	read := m.clipboard
	return func() tea.Msg {
		text, err := read()
		return pasteMsg{text: text, err: err}
	}
}

func (m *Model) loadCmd() tea.Cmd {
	st, name := m.store, m.name
	if st == nil {
		return nil
	}
	return func() tea.Msg {
		rec, err := st.Load(name)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return loadedMsg{}
			}
			return loadedMsg{err: err}
		}
		dates, err := rec.Selection()
		return loadedMsg{dates: dates, err: err}
	}
}

func (m *Model) applyLoaded(msg loadedMsg) {
	if msg.err != nil {
		m.setError(msg.err)
		return
	}
	if slices.EqualFunc(msg.dates, m.picker.Dates(), caldate.Date.Equal) {
		return
	}
	m.syncing = true
	defer func() { m.syncing = false }()
	if len(msg.dates) == 0 {
		m.picker.Clear()
		return
	}
	if err := m.picker.SetDates(msg.dates...); err != nil {
		m.setError(err)
	}
}

func (m *Model) saveCmd() tea.Cmd {
	st := m.store
	if st == nil {
		return nil
	}
	rec := store.NewRecord(m.name, m.picker.Dates())
	return func() tea.Msg {
		return savedMsg{err: st.Save(rec)}
	}
}

func startWatchCmd(parent context.Context, st store.Persistence) tea.Cmd {
	if st == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := st.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}

func (m *Model) describeSelection() string {
	dates := m.picker.Dates()
	switch len(dates) {
	case 0:
		return "nothing selected"
	case 1:
		return "1 date selected"
	}
	return fmt.Sprintf("%d dates selected", len(dates))
}

// Status is the footer message.
func (m *Model) Status() string { return m.status }

// View renders the field, the calendar and the footer, with any open panel
// drawn over them.
func (m *Model) View() string {
	th := m.theme
	var lines []string
	if title := m.picker.Config().Title; title != "" {
		lines = append(lines, th.Panel.Title.Render(title))
	}
	field := th.Input.Text.Render(m.input.View())
	if m.readOnly {
		field = th.Input.ReadOnly.Render(m.input.Value())
	}
	lines = append(lines, th.Input.Prompt.Render("date ")+field, "")

	if m.visible {
		g := m.picker.Grid()
		lines = append(lines, calendar.Render(g, calendar.Options{Theme: th.Calendar, ShowOther: true}))
		if m.picker.Config().TodayButton != picker.TodayOff {
			lines = append(lines, th.Calendar.Nav.Render("[today]"))
		}
		if tip := m.focusTooltip(g); tip != "" {
			lines = append(lines, th.Footer.Help.Render(m.wrap(tip)))
		}
	}

	lines = append(lines, "")
	if m.status != "" {
		style := th.Footer.Status
		if m.statusErr {
			style = th.Footer.Error
		}
		lines = append(lines, style.Render(m.wrap(m.status)))
	}
	lines = append(lines, th.Footer.Help.Render("? help  ctrl+e events  ctrl+q quit"))
	base := strings.Join(lines, "\n")

	if m.overlay == nil {
		return base
	}
	w, h := m.width, m.height
	if w <= 0 || h <= 0 {
		return base + "\n" + m.overlay.View()
	}
	return overlay.Compose(base, w, h, m.overlay.View(), overlay.Centered)
}

func (m *Model) focusTooltip(g picker.Grid) string {
	focus, ok := m.picker.View().Focus()
	if !ok {
		return ""
	}
	cell, ok := g.Cell(focus)
	if !ok {
		return ""
	}
	return cell.Tooltip
}

func (m *Model) wrap(s string) string {
	if m.width <= 0 {
		return s
	}
	return wordwrap.String(s, m.width)
}

// Run launches the interactive picker and returns the final model.
func Run(ctx context.Context, opts Options) (*Model, error) {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	m, _ := final.(*Model)
	return m, nil
}
