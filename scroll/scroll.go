// Package scroll bridges the tour to a host's scrolling surface so a
// step can bring its target into view before it is presented.
package scroll

import "github.com/michaelborgmann/InstructUI/anchor"

// Controller provides scroll control over a host surface.
type Controller interface {
	ScrollBy(dx, dy int)
	ScrollTo(x, y int)
}

// AnchorScroller resolves a step's scroll target against an anchor
// registry and asks the host to scroll there. It implements
// guide.Scroller. An unresolved target is a no-op; no position is
// fabricated.
type AnchorScroller struct {
	controller Controller
	registry   *anchor.Registry
}

// NewAnchorScroller creates a scroller over the host controller.
func NewAnchorScroller(controller Controller, registry *anchor.Registry) *AnchorScroller {
	return &AnchorScroller{controller: controller, registry: registry}
}

// ScrollTo scrolls the host to the frame last reported for targetID.
func (s *AnchorScroller) ScrollTo(targetID string) {
	if s == nil || s.controller == nil || s.registry == nil {
		return
	}
	frame, ok := s.registry.Resolve(targetID)
	if !ok {
		return
	}
	s.controller.ScrollTo(frame.X, frame.Y)
}

// ControllerFunc adapts a function into a Controller that only
// supports absolute scrolling.
type ControllerFunc func(x, y int)

// ScrollTo calls the wrapped function.
func (f ControllerFunc) ScrollTo(x, y int) {
	if f == nil {
		return
	}
	f(x, y)
}

// ScrollBy is unsupported on the func adapter.
func (f ControllerFunc) ScrollBy(dx, dy int) {}

var _ Controller = ControllerFunc(nil)
