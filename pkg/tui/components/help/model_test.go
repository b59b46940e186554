package help

import (
	"strings"
	"testing"
)

func TestMarkdownListsBindings(t *testing.T) {
	md := Markdown()
	for _, want := range []string{"| `pgup` `pgdown` | previous / next page |", "(while closed)"} {
		if !strings.Contains(md, want) {
			t.Fatalf("expected %q in\n%s", want, md)
		}
	}
}

func TestViewRendersInsideFrame(t *testing.T) {
	m := New(10, 4)
	if m.width != 32 || m.height != 8 {
		t.Fatalf("expected minimum size, got %dx%d", m.width, m.height)
	}
	m.SetSize(70, 30)
	out := m.View()
	if !strings.Contains(out, "Keys") || !strings.Contains(out, "╭") {
		t.Fatalf("unexpected help view\n%s", out)
	}
}
