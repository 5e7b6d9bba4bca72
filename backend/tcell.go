package backend

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// TcellBackend drives a real terminal through tcell.
type TcellBackend struct {
	screen tcell.Screen
}

// NewTcellBackend creates an uninitialized tcell backend.
func NewTcellBackend() *TcellBackend {
	return &TcellBackend{}
}

// Init acquires and initializes the terminal screen.
func (t *TcellBackend) Init() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	t.screen = screen
	return nil
}

// Fini releases the terminal.
func (t *TcellBackend) Fini() {
	if t == nil || t.screen == nil {
		return
	}
	t.screen.Fini()
	t.screen = nil
}

// Size returns the terminal dimensions.
func (t *TcellBackend) Size() (w, h int) {
	if t == nil || t.screen == nil {
		return 0, 0
	}
	return t.screen.Size()
}

// PollEvent blocks for the next input event.
// Returns nil for events the runtime does not consume.
func (t *TcellBackend) PollEvent() Event {
	if t == nil || t.screen == nil {
		return nil
	}
	switch ev := t.screen.PollEvent().(type) {
	case *tcell.EventKey:
		return convertKey(ev)
	case *tcell.EventMouse:
		return convertMouse(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return ResizeEvent{Width: w, Height: h}
	default:
		return nil
	}
}

// SetContent writes one cell.
func (t *TcellBackend) SetContent(x, y int, r rune, style Style) {
	if t == nil || t.screen == nil {
		return
	}
	t.screen.SetContent(x, y, r, nil, toTcellStyle(style))
}

// Show flushes pending output to the terminal.
func (t *TcellBackend) Show() {
	if t == nil || t.screen == nil {
		return
	}
	t.screen.Show()
}

// HideCursor hides the hardware cursor.
func (t *TcellBackend) HideCursor() {
	if t == nil || t.screen == nil {
		return
	}
	t.screen.HideCursor()
}

func toTcellStyle(style Style) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(toTcellColor(style.FG)).
		Background(toTcellColor(style.BG))
	if style.Bold {
		st = st.Bold(true)
	}
	if style.Dim {
		st = st.Dim(true)
	}
	if style.Italic {
		st = st.Italic(true)
	}
	if style.Underline {
		st = st.Underline(true)
	}
	if style.Reverse {
		st = st.Reverse(true)
	}
	return st
}

func toTcellColor(c Color) tcell.Color {
	if !c.Valid() {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func convertKey(ev *tcell.EventKey) KeyEvent {
	key := KeyEvent{
		Alt:   ev.Modifiers()&tcell.ModAlt != 0,
		Ctrl:  ev.Modifiers()&tcell.ModCtrl != 0,
		Shift: ev.Modifiers()&tcell.ModShift != 0,
	}
	switch ev.Key() {
	case tcell.KeyEnter:
		key.Key = KeyEnter
	case tcell.KeyEscape:
		key.Key = KeyEscape
	case tcell.KeyTab:
		key.Key = KeyTab
	case tcell.KeyBacktab:
		key.Key = KeyBacktab
	case tcell.KeyUp:
		key.Key = KeyUp
	case tcell.KeyDown:
		key.Key = KeyDown
	case tcell.KeyLeft:
		key.Key = KeyLeft
	case tcell.KeyRight:
		key.Key = KeyRight
	default:
		key.Key = KeyRune
		key.Rune = ev.Rune()
	}
	return key
}

func convertMouse(ev *tcell.EventMouse) MouseEvent {
	x, y := ev.Position()
	mouse := MouseEvent{X: x, Y: y, Action: MouseMove}
	switch {
	case ev.Buttons()&tcell.Button1 != 0:
		mouse.Button = MouseLeft
		mouse.Action = MousePress
	case ev.Buttons()&tcell.Button2 != 0:
		mouse.Button = MouseMiddle
		mouse.Action = MousePress
	case ev.Buttons()&tcell.Button3 != 0:
		mouse.Button = MouseRight
		mouse.Action = MousePress
	case ev.Buttons()&tcell.WheelUp != 0:
		mouse.Button = MouseWheelUp
		mouse.Action = MousePress
	case ev.Buttons()&tcell.WheelDown != 0:
		mouse.Button = MouseWheelDown
		mouse.Action = MousePress
	}
	return mouse
}
