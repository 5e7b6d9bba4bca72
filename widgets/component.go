package widgets

import (
	"github.com/michaelborgmann/InstructUI/runtime"
	"github.com/michaelborgmann/InstructUI/state"
)

// Component is the base for widgets that react to tour state. It keeps
// the bound services and tears down its observations on Unbind.
//
// Observations are dispatched on the app's event loop and every
// callback ends in a repaint request, so an observing widget redraws
// whenever the state it watches moves.
type Component struct {
	Base
	services runtime.Services
	subs     state.Subscriptions
}

// Bind attaches app services.
func (c *Component) Bind(services runtime.Services) {
	if c == nil {
		return
	}
	c.services = services
	c.subs.SetScheduler(services.Scheduler())
}

// Unbind drops every observation and the service handle.
func (c *Component) Unbind() {
	if c == nil {
		return
	}
	c.subs.Clear()
	c.services = runtime.Services{}
}

// Post sends a message into the app loop.
func (c *Component) Post(msg runtime.Message) bool {
	if c == nil {
		return false
	}
	return c.services.Post(msg)
}

// Invalidate requests a render pass.
func (c *Component) Invalidate() {
	if c == nil {
		return
	}
	c.services.Invalidate()
}

// Observe watches sub until Unbind. fn runs on the event loop and a
// repaint follows it; pass nil when the repaint is all you need.
func (c *Component) Observe(sub state.Subscribable, fn func()) {
	if c == nil {
		return
	}
	c.subs.Observe(sub, func() {
		if fn != nil {
			fn()
		}
		c.services.Invalidate()
	})
}
