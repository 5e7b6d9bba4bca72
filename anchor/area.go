package anchor

import "github.com/michaelborgmann/InstructUI/runtime"

// Area wraps a widget and reports its laid-out bounds to a registry
// under a fixed id on every layout pass.
type Area struct {
	id       string
	registry *Registry
	child    runtime.Widget
	bounds   runtime.Rect
}

// NewArea creates an anchored wrapper around child.
func NewArea(id string, registry *Registry, child runtime.Widget) *Area {
	return &Area{id: id, registry: registry, child: child}
}

// ID returns the anchor id.
func (a *Area) ID() string {
	if a == nil {
		return ""
	}
	return a.id
}

// Layout stores the bounds, reports them, and lays out the child.
func (a *Area) Layout(bounds runtime.Rect) {
	if a == nil {
		return
	}
	a.bounds = bounds
	if a.registry != nil {
		a.registry.Report(a.id, bounds)
	}
	if a.child != nil {
		a.child.Layout(bounds)
	}
}

// Bounds returns the last laid-out bounds.
func (a *Area) Bounds() runtime.Rect {
	if a == nil {
		return runtime.Rect{}
	}
	return a.bounds
}

// Render draws the child.
func (a *Area) Render(ctx runtime.RenderContext) {
	if a == nil || a.child == nil {
		return
	}
	a.child.Render(ctx)
}

// HandleMessage forwards to the child.
func (a *Area) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if a == nil || a.child == nil {
		return runtime.Unhandled()
	}
	return a.child.HandleMessage(msg)
}

// ChildWidgets exposes the wrapped child for tree walks.
func (a *Area) ChildWidgets() []runtime.Widget {
	if a == nil || a.child == nil {
		return nil
	}
	return []runtime.Widget{a.child}
}
