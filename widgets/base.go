// Package widgets provides the small widget base the tour overlay
// builds on, plus a label for simple host content.
package widgets

import "github.com/michaelborgmann/InstructUI/runtime"

// Base provides bounds bookkeeping for widgets.
// Embed this in widget structs to get default implementations.
type Base struct {
	bounds runtime.Rect
}

// Layout stores the assigned bounds.
func (b *Base) Layout(bounds runtime.Rect) {
	if b == nil {
		return
	}
	b.bounds = bounds
}

// Bounds returns the widget's assigned bounds.
func (b *Base) Bounds() runtime.Rect {
	if b == nil {
		return runtime.Rect{}
	}
	return b.bounds
}

// HandleMessage returns Unhandled by default.
func (b *Base) HandleMessage(msg runtime.Message) runtime.HandleResult {
	return runtime.Unhandled()
}
