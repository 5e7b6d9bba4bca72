package runtime

import (
	"github.com/mattn/go-runewidth"

	"github.com/michaelborgmann/InstructUI/backend"
)

// Cell is a single character cell.
type Cell = backend.Cell

// Buffer is a 2D grid of cells widgets render into. The whole buffer
// is flushed to the backend after each render pass.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer with the given dimensions.
func NewBuffer(w, h int) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b := &Buffer{cells: make([]Cell, w*h), width: w, height: h}
	b.Clear()
	return b
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (w, h int) {
	return b.width, b.height
}

// Resize changes the buffer dimensions and clears the content.
func (b *Buffer) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b.cells = make([]Cell, w*h)
	b.width = w
	b.height = h
	b.Clear()
}

// Clear fills the buffer with spaces and the default style.
func (b *Buffer) Clear() {
	b.Fill(Rect{0, 0, b.width, b.height}, ' ', backend.DefaultStyle())
}

// Get returns the cell at (x, y), or a zero cell out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Set writes one cell, ignoring out-of-bounds positions.
func (b *Buffer) Set(x, y int, r rune, style backend.Style) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// Fill paints a rectangle with one rune and style, clipped to the
// buffer.
func (b *Buffer) Fill(r Rect, ch rune, style backend.Style) {
	clipped := r.Intersect(Rect{0, 0, b.width, b.height})
	for y := clipped.Y; y < clipped.Y+clipped.Height; y++ {
		row := y * b.width
		for x := clipped.X; x < clipped.X+clipped.Width; x++ {
			b.cells[row+x] = Cell{Rune: ch, Style: style}
		}
	}
}

// SetString writes text starting at (x, y), advancing by display
// width so wide runes occupy two cells.
func (b *Buffer) SetString(x, y int, text string, style backend.Style) {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		b.Set(x, y, r, style)
		if w == 2 {
			b.Set(x+1, y, ' ', style)
		}
		x += w
		if x >= b.width {
			return
		}
	}
}

// Restyle rewrites the style of every cell in the rect, keeping the
// runes. The overlay uses it to dim content it does not own.
func (b *Buffer) Restyle(r Rect, fn func(backend.Style) backend.Style) {
	if fn == nil {
		return
	}
	clipped := r.Intersect(Rect{0, 0, b.width, b.height})
	for y := clipped.Y; y < clipped.Y+clipped.Height; y++ {
		row := y * b.width
		for x := clipped.X; x < clipped.X+clipped.Width; x++ {
			b.cells[row+x].Style = fn(b.cells[row+x].Style)
		}
	}
}

// Row returns the cells of row y, or nil out of bounds.
func (b *Buffer) Row(y int) []Cell {
	if y < 0 || y >= b.height {
		return nil
	}
	return b.cells[y*b.width : (y+1)*b.width]
}

// RenderContext provides context to widgets during rendering.
type RenderContext struct {
	Buffer  *Buffer
	Bounds  Rect // Widget's allocated bounds
	Focused bool // Is the containing layer the top layer?
}

// Sub creates a context for a child widget with adjusted bounds.
func (ctx RenderContext) Sub(bounds Rect) RenderContext {
	return RenderContext{Buffer: ctx.Buffer, Bounds: bounds, Focused: ctx.Focused}
}

// Clear fills the context bounds with spaces in the given style.
func (ctx RenderContext) Clear(style backend.Style) {
	if ctx.Buffer == nil {
		return
	}
	ctx.Buffer.Fill(ctx.Bounds, ' ', style)
}
