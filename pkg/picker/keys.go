package picker

import (
	"tableflip.dev/datepicker/pkg/caldate"
	"tableflip.dev/datepicker/pkg/events"
	"tableflip.dev/datepicker/pkg/view"
)

// KeyCode is a key the controller understands.
type KeyCode int

const (
	KeyOther KeyCode = iota
	ArrowLeft
	ArrowRight
	ArrowUp
	ArrowDown
	Enter
	Escape
	Tab
)

func (k KeyCode) String() string {
	switch k {
	case ArrowLeft:
		return "left"
	case ArrowRight:
		return "right"
	case ArrowUp:
		return "up"
	case ArrowDown:
		return "down"
	case Enter:
		return "enter"
	case Escape:
		return "esc"
	case Tab:
		return "tab"
	}
	return "other"
}

// Key is a key press with its modifiers.
type Key struct {
	Code  KeyCode
	Shift bool
	Ctrl  bool
}

func (k Key) arrow() bool {
	return k.Code >= ArrowLeft && k.Code <= ArrowDown
}

func (k Key) vertical() bool {
	return k.Code == ArrowUp || k.Code == ArrowDown
}

// KeyDown handles a key press and reports whether it was consumed, in which
// case the host should not apply its own default for the key.
func (c *Controller) KeyDown(k Key) bool {
	if !c.guard("keydown") {
		return false
	}
	defer c.leave()

	if !c.shown {
		if k.Code == ArrowDown || k.Code == Escape {
			c.Show()
			return true
		}
		return false
	}

	focus, hasFocus := c.view.Focus()
	if !hasFocus {
		focus = c.view.Cursor()
	}

	switch {
	case k.Code == Escape:
		if hasFocus {
			c.view.ClearFocus()
			c.snapCursor()
			c.repaint()
		} else {
			c.Hide()
		}
		return true

	case k.arrow():
		return c.arrow(k, focus)

	case k.Code == Enter:
		target := focus
		if !hasFocus {
			if last, ok := c.dates.Last(); ok {
				target = last
			}
		}
		changed := false
		// a selected date can always be toggled off; anything else must be pickable
		if c.cfg.KeyboardNavigation && (c.dates.Contains(target) != -1 || c.c.IsSelectable(target)) {
			c.toggle(target.In(c.cfg.Locale.Tag))
			changed = true
		}
		c.view.ClearFocus()
		c.snapCursor()
		c.writeHost()
		c.repaint()
		if changed {
			if c.dates.Len() > 0 {
				c.trigger(events.DateChange, caldate.Date{})
			} else {
				c.trigger(events.DateClear, caldate.Date{})
			}
		}
		if c.cfg.Autoclose {
			c.Hide()
		}
		return true

	case k.Code == Tab:
		c.view.ClearFocus()
		c.snapCursor()
		c.repaint()
		c.Hide()
		return false
	}
	return false
}

func (c *Controller) snapCursor() {
	if last, ok := c.dates.Last(); ok {
		c.view.SetCursor(last)
	}
}

func (c *Controller) arrow(k Key, focus caldate.Date) bool {
	if !c.cfg.KeyboardNavigation || c.c.AllWeekdaysDisabled() {
		return false
	}
	dir := 1
	if k.Code == ArrowLeft || k.Code == ArrowUp {
		dir = -1
	}

	var (
		dest   caldate.Date
		ok     bool
		period events.Type
	)
	switch c.view.Zoom() {
	case view.Day:
		switch {
		case k.Ctrl:
			dest, ok = c.Navigate(dir, caldate.Year, focus)
			period = events.YearChange
		case k.Shift:
			dest, ok = c.Navigate(dir, caldate.Month, focus)
			period = events.MonthChange
		case !k.vertical():
			dest, ok = c.Navigate(dir, caldate.Day, focus)
		case !c.c.DisabledWeekdays().Has(focus.Weekday()):
			dest, ok = c.Navigate(dir, caldate.Week, focus)
		}
	case view.Month:
		if k.vertical() {
			dir *= 4
		}
		dest, ok = c.Navigate(dir, caldate.Month, focus)
	case view.Year:
		if k.vertical() {
			dir *= 4
		}
		dest, ok = c.Navigate(dir, caldate.Year, focus)
	}
	if !ok {
		return false
	}
	dest = dest.In(c.cfg.Locale.Tag)
	c.view.SetFocus(dest)
	c.view.SetCursor(dest)
	if period != "" {
		c.trigger(period, dest)
	}
	c.writeHost()
	c.repaint()
	return true
}
