// Package theme holds the Lip Gloss styles of the picker UI.
package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Calendar CalendarTheme
	Footer   FooterTheme
	Panel    PanelTheme
	Input    InputTheme
}

// CalendarTheme styles the grid cells. Cell styles are layered in the order
// Day, Highlighted, InSpan, Today, Focused, Selected, Disabled.
type CalendarTheme struct {
	Title       lipgloss.Style
	Header      lipgloss.Style
	Nav         lipgloss.Style
	NavDisabled lipgloss.Style
	Day         lipgloss.Style
	Other       lipgloss.Style
	Selected    lipgloss.Style
	Focused     lipgloss.Style
	Today       lipgloss.Style
	Disabled    lipgloss.Style
	Highlighted lipgloss.Style
	InSpan      lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// InputTheme styles the host text field.
type InputTheme struct {
	Prompt   lipgloss.Style
	Text     lipgloss.Style
	ReadOnly lipgloss.Style
}

// Palette is the handful of colours the theme is derived from.
type Palette struct {
	Accent     colorful.Color
	Foreground colorful.Color
	Background colorful.Color
	Muted      colorful.Color
	Warn       colorful.Color
}

// DarkPalette is used on dark terminals.
var DarkPalette = Palette{
	Accent:     mustHex("#7D56F4"),
	Foreground: mustHex("#E4E4E4"),
	Background: mustHex("#1C1C1C"),
	Muted:      mustHex("#767676"),
	Warn:       mustHex("#FF5F5F"),
}

// LightPalette is used on light terminals.
var LightPalette = Palette{
	Accent:     mustHex("#5A3FC0"),
	Foreground: mustHex("#262626"),
	Background: mustHex("#FAFAFA"),
	Muted:      mustHex("#8A8A8A"),
	Warn:       mustHex("#D70000"),
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Default picks the palette from the terminal background.
func Default() Theme {
	if termenv.HasDarkBackground() {
		return New(DarkPalette)
	}
	return New(LightPalette)
}

// New derives every style from p. Softer tones are blended in Lab space
// between the accent and the background.
func New(p Palette) Theme {
	soft := p.Accent.BlendLab(p.Background, 0.55).Clamped()
	faint := p.Foreground.BlendLab(p.Background, 0.6).Clamped()

	day := lipgloss.NewStyle().Foreground(p.Foreground)
	return Theme{
		Calendar: CalendarTheme{
			Title:       lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
			Header:      lipgloss.NewStyle().Bold(true).Foreground(p.Muted),
			Nav:         lipgloss.NewStyle().Foreground(p.Accent),
			NavDisabled: lipgloss.NewStyle().Foreground(faint),
			Day:         day,
			Other:       lipgloss.NewStyle().Foreground(faint),
			Selected:    lipgloss.NewStyle().Bold(true).Foreground(p.Background).Background(p.Accent),
			Focused:     lipgloss.NewStyle().Reverse(true),
			Today:       lipgloss.NewStyle().Bold(true).Underline(true),
			Disabled:    lipgloss.NewStyle().Foreground(faint).Strikethrough(true),
			Highlighted: lipgloss.NewStyle().Foreground(p.Accent),
			InSpan:      lipgloss.NewStyle().Background(soft),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(p.Muted),
			Status: lipgloss.NewStyle().Foreground(p.Muted).Italic(true),
			Error:  lipgloss.NewStyle().Foreground(p.Warn),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(soft).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
		Input: InputTheme{
			Prompt:   lipgloss.NewStyle().Foreground(p.Accent),
			Text:     lipgloss.NewStyle().Foreground(p.Foreground),
			ReadOnly: lipgloss.NewStyle().Foreground(p.Muted),
		},
	}
}
