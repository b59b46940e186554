package picker

// Host is the text surface a picker is bound to.
type Host interface {
	Text() string
	SetText(string)
	ReadOnly() bool
	// Inline hosts are always visible and cannot be hidden.
	Inline() bool
	NotifyVisibility(shown bool)
}

// Renderer draws the grid. Repaint is fire and forget.
type Renderer interface {
	Repaint()
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func()

// Repaint calls f.
func (f RendererFunc) Repaint() { f() }

// MemoryHost is a Host backed by a string. It is what headless callers and
// tests bind a controller to.
type MemoryHost struct {
	text     string
	readOnly bool
	inline   bool
	visible  bool
	writes   int
}

// NewMemoryHost returns a host holding text.
func NewMemoryHost(text string) *MemoryHost {
	return &MemoryHost{text: text}
}

func (h *MemoryHost) Text() string { return h.text }

func (h *MemoryHost) SetText(s string) {
	h.text = s
	h.writes++
}

// Type replaces the text the way a user editing the field would, without
// counting as a programmatic write.
func (h *MemoryHost) Type(s string) { h.text = s }

func (h *MemoryHost) ReadOnly() bool { return h.readOnly }

func (h *MemoryHost) SetReadOnly(v bool) { h.readOnly = v }

func (h *MemoryHost) Inline() bool { return h.inline }

func (h *MemoryHost) SetInline(v bool) { h.inline = v }

func (h *MemoryHost) NotifyVisibility(shown bool) { h.visible = shown }

// Visible reports the last visibility notification.
func (h *MemoryHost) Visible() bool { return h.visible }

// Writes counts SetText calls.
func (h *MemoryHost) Writes() int { return h.writes }
