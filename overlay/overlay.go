// Package overlay renders the tour presentation: a dimmed mask with a
// cutout around the current step's highlight frame, a message box
// placed relative to it, and the tap/skip input surface.
package overlay

import (
	"github.com/michaelborgmann/InstructUI/backend"
	"github.com/michaelborgmann/InstructUI/guide"
	"github.com/michaelborgmann/InstructUI/markup"
	"github.com/michaelborgmann/InstructUI/runtime"
	"github.com/michaelborgmann/InstructUI/widgets"
)

// Styles configures how the overlay paints.
type Styles struct {
	// Dim rewrites the style of masked cells. The cutout keeps the
	// original style.
	Dim func(backend.Style) backend.Style
	// Border outlines the cutout.
	Border backend.Style
	// Message paints message box text.
	Message backend.Style
	// SkipHint paints the skip control.
	SkipHint backend.Style
}

// DefaultStyles dims masked content and keeps everything else in the
// terminal default.
func DefaultStyles() Styles {
	return Styles{
		Dim: func(style backend.Style) backend.Style {
			style.Dim = true
			return style
		},
		Border:   backend.Style{Bold: true},
		Message:  backend.Style{Reverse: true},
		SkipHint: backend.Style{Dim: true, Underline: true},
	}
}

// DefaultSkipLabel is the skip control text when none is configured.
const DefaultSkipLabel = "✕ Skip tour"

// Config configures an Overlay.
type Config struct {
	Controller *guide.Controller
	Styles     *Styles
	SkipLabel  string
}

// Overlay presents the controller's current step. Push it as a modal
// layer above the host UI; it renders nothing while the tour is
// inactive. Presentation is resolved from the controller on every
// render and never triggers speech.
type Overlay struct {
	widgets.Component
	controller *guide.Controller
	styles     Styles
	skipLabel  string
	skipBounds runtime.Rect
	wasActive  bool
}

// New creates an overlay over the given controller.
func New(cfg Config) *Overlay {
	styles := DefaultStyles()
	if cfg.Styles != nil {
		styles = *cfg.Styles
	}
	label := cfg.SkipLabel
	if label == "" {
		label = DefaultSkipLabel
	}
	return &Overlay{
		controller: cfg.Controller,
		styles:     styles,
		skipLabel:  label,
	}
}

// Bind subscribes the overlay to step transitions so each one
// triggers a repaint. When the tour deactivates, the overlay pops its
// own layer so the host UI gets input back.
func (o *Overlay) Bind(services runtime.Services) {
	o.Component.Bind(services)
	if o.controller == nil {
		return
	}
	o.wasActive = o.controller.Active()
	o.Observe(o.controller, func() {
		active := o.controller.Active()
		if o.wasActive && !active {
			o.Post(runtime.CommandMsg{Command: runtime.PopOverlay{}})
		}
		o.wasActive = active
	})
}

// Render draws mask, cutout border, message box, and skip hint.
func (o *Overlay) Render(ctx runtime.RenderContext) {
	if o == nil || ctx.Buffer == nil {
		return
	}
	o.skipBounds = runtime.Rect{}
	step, ok := o.controller.Current()
	if !ok {
		return
	}
	bounds := o.Bounds()
	if bounds.Empty() {
		return
	}

	cutout := step.HighlightFrame.Intersect(bounds)
	o.renderMask(ctx.Buffer, bounds, cutout)
	if !cutout.Empty() {
		o.renderBorder(ctx.Buffer, bounds, cutout)
	}
	o.renderMessage(ctx.Buffer, bounds, step)
	o.renderSkipHint(ctx.Buffer, bounds)
}

// renderMask dims everything in bounds except the cutout, painting
// the four rectangles around it.
func (o *Overlay) renderMask(buf *runtime.Buffer, bounds, cutout runtime.Rect) {
	dim := o.styles.Dim
	if dim == nil {
		return
	}
	if cutout.Empty() {
		buf.Restyle(bounds, dim)
		return
	}
	top := runtime.Rect{X: bounds.X, Y: bounds.Y, Width: bounds.Width, Height: cutout.Y - bounds.Y}
	bottom := runtime.Rect{
		X: bounds.X, Y: cutout.Y + cutout.Height,
		Width: bounds.Width, Height: bounds.Y + bounds.Height - (cutout.Y + cutout.Height),
	}
	left := runtime.Rect{X: bounds.X, Y: cutout.Y, Width: cutout.X - bounds.X, Height: cutout.Height}
	right := runtime.Rect{
		X: cutout.X + cutout.Width, Y: cutout.Y,
		Width: bounds.X + bounds.Width - (cutout.X + cutout.Width), Height: cutout.Height,
	}
	for _, r := range []runtime.Rect{top, bottom, left, right} {
		if !r.Empty() {
			buf.Restyle(r, dim)
		}
	}
}

// renderBorder outlines the cutout one cell outside it, clipped to
// bounds.
func (o *Overlay) renderBorder(buf *runtime.Buffer, bounds, cutout runtime.Rect) {
	style := o.styles.Border
	x1 := cutout.X - 1
	y1 := cutout.Y - 1
	x2 := cutout.X + cutout.Width
	y2 := cutout.Y + cutout.Height

	set := func(x, y int, r rune) {
		if bounds.Contains(x, y) {
			buf.Set(x, y, r, style)
		}
	}
	for x := cutout.X; x < cutout.X+cutout.Width; x++ {
		set(x, y1, '─')
		set(x, y2, '─')
	}
	for y := cutout.Y; y < cutout.Y+cutout.Height; y++ {
		set(x1, y, '│')
		set(x2, y, '│')
	}
	set(x1, y1, '┌')
	set(x2, y1, '┐')
	set(x1, y2, '└')
	set(x2, y2, '┘')
}

// renderMessage places the message box above or below the highlight
// frame per the step, clamped into bounds.
func (o *Overlay) renderMessage(buf *runtime.Buffer, bounds runtime.Rect, step guide.Step) {
	if step.Message == "" {
		return
	}
	maxWidth := bounds.Width - 4
	if maxWidth < 1 {
		return
	}
	lines := markup.Render(step.Message, o.styles.Message)
	if natural := markup.MaxWidth(lines); natural < maxWidth {
		maxWidth = natural
	}
	lines = markup.Wrap(lines, maxWidth)
	if len(lines) == 0 {
		return
	}

	boxWidth := markup.MaxWidth(lines) + 2
	boxHeight := len(lines)
	frame := step.HighlightFrame.Intersect(bounds)

	x := frame.X
	if frame.Empty() {
		x = bounds.X + (bounds.Width-boxWidth)/2
	}
	x = clamp(x, bounds.X, bounds.X+bounds.Width-boxWidth)

	var y int
	switch {
	case frame.Empty():
		y = bounds.Y + (bounds.Height-boxHeight)/2
	case step.MessageBelow:
		y = frame.Y + frame.Height + 2
	default:
		y = frame.Y - boxHeight - 2
	}
	y = clamp(y, bounds.Y, bounds.Y+bounds.Height-boxHeight)

	for i, line := range lines {
		row := runtime.Rect{X: x, Y: y + i, Width: boxWidth, Height: 1}
		buf.Fill(row, ' ', o.styles.Message)
		col := x + 1
		for _, span := range line {
			buf.SetString(col, y+i, span.Text, span.Style)
			col += markup.Width(markup.Line{span})
		}
	}
}

// renderSkipHint draws the skip control in the bottom-right corner
// and records its hit region.
func (o *Overlay) renderSkipHint(buf *runtime.Buffer, bounds runtime.Rect) {
	width := markup.Width(markup.Line{{Text: o.skipLabel}})
	if width == 0 || width > bounds.Width {
		return
	}
	x := bounds.X + bounds.Width - width - 1
	y := bounds.Y + bounds.Height - 1
	buf.SetString(x, y, o.skipLabel, o.styles.SkipHint)
	o.skipBounds = runtime.Rect{X: x, Y: y, Width: width, Height: 1}
}

// HandleMessage turns taps and keys into tour commands. While the
// tour is inactive the overlay consumes nothing.
func (o *Overlay) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if o == nil || !o.presenting() {
		return runtime.Unhandled()
	}
	switch m := msg.(type) {
	case runtime.MouseMsg:
		if m.Action != backend.MousePress || m.Button != backend.MouseLeft {
			return runtime.Unhandled()
		}
		if o.skipBounds.Contains(m.X, m.Y) {
			return runtime.Handled(guide.Skip{})
		}
		return runtime.Handled(guide.Advance{})
	case runtime.KeyMsg:
		switch {
		case m.Key == backend.KeyEnter:
			return runtime.Handled(guide.Advance{})
		case m.Key == backend.KeyRune && m.Rune == ' ':
			return runtime.Handled(guide.Advance{})
		case m.Key == backend.KeyEscape:
			return runtime.Handled(guide.Skip{})
		}
	}
	return runtime.Unhandled()
}

// presenting reports whether a step currently resolves.
func (o *Overlay) presenting() bool {
	_, ok := o.controller.Current()
	return ok
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
