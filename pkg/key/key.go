// Package key lists the key bindings of the interactive picker.
package key

import "strings"

// Binding is one key or chord and what it does.
type Binding struct {
	Keys    []string
	Meaning string
	// Hidden bindings are handled only while the picker is hidden.
	Hidden bool
}

// Display joins the keys for a help line.
func (b Binding) Display() string {
	return strings.Join(b.Keys, "/")
}

var defaults = []Binding{
	{Keys: []string{"left", "right"}, Meaning: "previous / next day"},
	{Keys: []string{"up", "down"}, Meaning: "previous / next week"},
	{Keys: []string{"shift+left", "shift+right"}, Meaning: "previous / next month"},
	{Keys: []string{"ctrl+left", "ctrl+right"}, Meaning: "previous / next year"},
	{Keys: []string{"enter"}, Meaning: "select the focused date"},
	{Keys: []string{"esc"}, Meaning: "drop focus, then close"},
	{Keys: []string{"tab"}, Meaning: "close and leave the field"},
	{Keys: []string{"pgup", "pgdown"}, Meaning: "previous / next page"},
	{Keys: []string{"ctrl+u"}, Meaning: "zoom out"},
	{Keys: []string{"home"}, Meaning: "go to today"},
	{Keys: []string{"ctrl+x"}, Meaning: "clear the selection"},
	{Keys: []string{"ctrl+v"}, Meaning: "paste dates from the clipboard"},
	{Keys: []string{"?"}, Meaning: "toggle this help"},
	{Keys: []string{"ctrl+e"}, Meaning: "toggle the event log"},
	{Keys: []string{"ctrl+c", "ctrl+q"}, Meaning: "quit"},
	{Keys: []string{"down", "esc"}, Meaning: "open the picker", Hidden: true},
}

// Default returns the bindings in display order.
func Default() []Binding {
	out := make([]Binding, len(defaults))
	copy(out, defaults)
	return out
}

// Lookup returns the first shown binding that handles k.
func Lookup(k string) (Binding, bool) {
	for _, b := range defaults {
		if b.Hidden {
			continue
		}
		for _, name := range b.Keys {
			if name == k {
				return b, true
			}
		}
	}
	return Binding{}, false
}
