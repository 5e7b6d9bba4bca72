package runtime

import "github.com/michaelborgmann/InstructUI/backend"

// Message represents an event flowing into the UI.
// Messages come from terminal input or from application goroutines.
type Message interface {
	isMessage()
}

// KeyMsg represents a keyboard input event.
type KeyMsg struct {
	Key   backend.Key
	Rune  rune
	Alt   bool
	Ctrl  bool
	Shift bool
}

func (KeyMsg) isMessage() {}

// MouseMsg represents a mouse input event.
type MouseMsg struct {
	X, Y   int
	Button backend.MouseButton
	Action backend.MouseAction
}

func (MouseMsg) isMessage() {}

// ResizeMsg indicates the terminal size changed.
type ResizeMsg struct {
	Width  int
	Height int
}

func (ResizeMsg) isMessage() {}

// InvalidateMsg wakes the event loop to flush state and re-render.
type InvalidateMsg struct{}

func (InvalidateMsg) isMessage() {}

// UserMsg carries an application-defined payload through the loop.
type UserMsg struct {
	Data any
}

func (UserMsg) isMessage() {}

// CommandMsg carries a command into the loop from code that has no
// message to handle, e.g. a subscription callback.
type CommandMsg struct {
	Command Command
}

func (CommandMsg) isMessage() {}
