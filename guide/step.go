// Package guide holds the tour model: immutable steps and the
// controller that walks a user through them.
package guide

import (
	"github.com/oklog/ulid/v2"

	"github.com/michaelborgmann/InstructUI/runtime"
)

// Step is one stop in a guided tour. Steps are values; build
// variations with the With methods instead of mutating.
type Step struct {
	// ID is an opaque unique identifier.
	ID string
	// Message is the text shown in the message box and spoken aloud.
	Message string
	// HighlightFrame is the screen region cut out of the dimming
	// mask. A zero-area frame is valid and highlights nothing.
	HighlightFrame runtime.Rect
	// MessageBelow places the message box under the highlight frame
	// instead of above it.
	MessageBelow bool
	// ScrollTarget optionally names an element the embedding app
	// should scroll into view before presenting the step.
	ScrollTarget string
}

// NewStep creates a step with a fresh ULID id.
func NewStep(message string, frame runtime.Rect) Step {
	return Step{
		ID:             ulid.Make().String(),
		Message:        message,
		HighlightFrame: frame,
	}
}

// WithID returns a copy using the supplied id. An empty id keeps the
// generated one.
func (s Step) WithID(id string) Step {
	if id != "" {
		s.ID = id
	}
	return s
}

// WithMessageBelow returns a copy with the message placed below the
// highlight frame.
func (s Step) WithMessageBelow() Step {
	s.MessageBelow = true
	return s
}

// WithScrollTarget returns a copy naming a scroll target.
func (s Step) WithScrollTarget(id string) Step {
	s.ScrollTarget = id
	return s
}
