package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss/v2"
)

func TestComposeCentered(t *testing.T) {
	bg := strings.Join([]string{"..........", "..........", ".........."}, "\n")
	got := Compose(bg, 10, 3, "ab\ncd", Centered)
	want := strings.Join([]string{"..........", "....ab....", "....cd...."}, "\n")
	if got != want {
		t.Fatalf("unexpected composition\n%s\nwant\n%s", got, want)
	}
}

func TestComposeAnchoredWithMargin(t *testing.T) {
	got := Compose("", 6, 2, "xy", Placement{Horizontal: lipgloss.Right, Vertical: lipgloss.Bottom, MarginX: 1})
	want := "      \n   xy "
	if got != want {
		t.Fatalf("unexpected composition %q", got)
	}
}

func TestComposeClipsForeground(t *testing.T) {
	got := Compose("abc", 3, 1, "0123456", Placement{})
	if got != "012" {
		t.Fatalf("expected the foreground clipped, got %q", got)
	}
}
