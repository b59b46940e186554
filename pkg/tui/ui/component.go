// Package ui holds the contracts shared by the picker's panels.
package ui

import tea "github.com/charmbracelet/bubbletea/v2"

// Component is a resizable panel the app can show on top of the calendar.
type Component interface {
	Update(tea.Msg) (Component, tea.Cmd)
	View() string
	SetSize(width, height int)
}
