// Package backend abstracts the terminal a tour overlay is drawn on.
package backend

// Color is a 24-bit RGB color. The zero value means "terminal default".
type Color struct {
	R, G, B uint8
	set     bool
}

// RGB builds a concrete color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, set: true}
}

// Valid reports whether the color is concrete rather than the default.
func (c Color) Valid() bool {
	return c.set
}

// Style describes how a cell is painted.
type Style struct {
	FG        Color
	BG        Color
	Bold      bool
	Dim       bool
	Italic    bool
	Underline bool
	Reverse   bool
}

// DefaultStyle returns the terminal default style.
func DefaultStyle() Style {
	return Style{}
}

// Cell is a single character cell.
type Cell struct {
	Rune  rune
	Style Style
}
