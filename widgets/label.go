package widgets

import (
	"github.com/michaelborgmann/InstructUI/backend"
	"github.com/michaelborgmann/InstructUI/runtime"
)

// Label renders a single line of text in its bounds.
type Label struct {
	Base
	text  string
	style backend.Style
}

// NewLabel creates a label.
func NewLabel(text string) *Label {
	return &Label{text: text, style: backend.DefaultStyle()}
}

// SetText updates the label text.
func (l *Label) SetText(text string) {
	if l == nil {
		return
	}
	l.text = text
}

// Text returns the current text.
func (l *Label) Text() string {
	if l == nil {
		return ""
	}
	return l.text
}

// SetStyle sets the label style.
func (l *Label) SetStyle(style backend.Style) {
	if l == nil {
		return
	}
	l.style = style
}

// Render draws the label.
func (l *Label) Render(ctx runtime.RenderContext) {
	bounds := l.Bounds()
	if bounds.Empty() {
		return
	}
	ctx.Buffer.SetString(bounds.X, bounds.Y, l.text, l.style)
}
