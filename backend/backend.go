package backend

// Event is an input event produced by a backend.
type Event interface {
	isEvent()
}

// Key identifies a non-rune key press.
type Key int

const (
	KeyRune Key = iota
	KeyEnter
	KeyEscape
	KeyTab
	KeyBacktab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// KeyEvent is a key press.
type KeyEvent struct {
	Key   Key
	Rune  rune
	Alt   bool
	Ctrl  bool
	Shift bool
}

func (KeyEvent) isEvent() {}

// MouseButton identifies which mouse button was involved.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// MouseAction identifies what happened with the mouse.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseMove
)

// MouseEvent is a pointer event in screen coordinates.
type MouseEvent struct {
	X, Y   int
	Button MouseButton
	Action MouseAction
}

func (MouseEvent) isEvent() {}

// ResizeEvent reports a new terminal size.
type ResizeEvent struct {
	Width  int
	Height int
}

func (ResizeEvent) isEvent() {}

// Backend is a terminal the overlay runtime draws to.
type Backend interface {
	Init() error
	Fini()
	Size() (w, h int)
	PollEvent() Event
	SetContent(x, y int, r rune, style Style)
	Show()
	HideCursor()
}
