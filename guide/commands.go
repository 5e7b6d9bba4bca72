package guide

// Advance is the typed "present the next step" signal. The overlay
// emits it on tap; the embedding app routes it to a controller.
type Advance struct{}

// Command marks Advance as a runtime command.
func (Advance) Command() {}

// Skip is the typed "terminate the tour" signal.
type Skip struct{}

// Command marks Skip as a runtime command.
func (Skip) Command() {}
