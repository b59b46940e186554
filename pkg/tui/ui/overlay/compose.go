// Package overlay draws one rendered view on top of another.
package overlay

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Placement positions the foreground. Horizontal and Vertical follow
// lipgloss positions, so 0 is left or top and 1 is right or bottom. Margins
// push the foreground away from the edge it is anchored to.
type Placement struct {
	Horizontal lipgloss.Position
	Vertical   lipgloss.Position
	MarginX    int
	MarginY    int
}

// Centered places the foreground in the middle of the background.
var Centered = Placement{Horizontal: lipgloss.Center, Vertical: lipgloss.Center}

// Compose overlays foreground atop background, a width x height canvas. The
// background stays visible around the foreground on every line.
func Compose(background string, width, height int, foreground string, p Placement) string {
	bg := canvas(background, width, height)
	if foreground == "" || width <= 0 || height <= 0 {
		return strings.Join(bg, "\n")
	}
	fg := strings.Split(foreground, "\n")
	fw := 0
	for _, line := range fg {
		fw = max(fw, ansi.StringWidth(line))
	}
	fw = min(fw, width)
	fh := min(len(fg), height)

	x := offset(width, fw, float64(p.Horizontal), p.MarginX)
	y := offset(height, fh, float64(p.Vertical), p.MarginY)

	for row := range fh {
		line := bg[y+row]
		bg[y+row] = ansi.Cut(line, 0, x) + pad(fg[row], fw) + ansi.Cut(line, x+fw, width)
	}
	return strings.Join(bg, "\n")
}

func canvas(view string, width, height int) []string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = pad(lines[i], width)
	}
	return lines
}

func pad(s string, width int) string {
	w := ansi.StringWidth(s)
	if w > width {
		return ansi.Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", width-w)
}

func offset(total, size int, pos float64, margin int) int {
	free := total - size
	o := int(math.Round(float64(free) * pos))
	switch {
	case pos <= 0:
		o += margin
	case pos >= 1:
		o -= margin
	}
	return max(0, min(o, free))
}
