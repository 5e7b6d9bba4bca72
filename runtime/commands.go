package runtime

// Command represents an intent emitted by widgets.
// Commands bubble up from widgets through the screen to the app.
type Command interface {
	Command()
}

// Quit signals the application should exit.
type Quit struct{}

func (Quit) Command() {}

// PushOverlay requests a layer be pushed above the current UI.
type PushOverlay struct {
	Widget Widget
	Modal  bool // If true, blocks input to layers below
}

func (PushOverlay) Command() {}

// PopOverlay requests the top layer be dismissed.
type PopOverlay struct{}

func (PopOverlay) Command() {}
