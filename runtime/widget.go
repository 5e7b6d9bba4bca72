package runtime

// HandleResult reports how a widget responded to a message.
type HandleResult struct {
	Handled  bool
	Commands []Command
}

// Handled marks a message as consumed.
func Handled(cmds ...Command) HandleResult {
	return HandleResult{Handled: true, Commands: cmds}
}

// Unhandled lets a message keep bubbling.
func Unhandled() HandleResult {
	return HandleResult{}
}

// Widget is anything the screen can lay out, render, and route
// messages to.
type Widget interface {
	Layout(bounds Rect)
	Render(ctx RenderContext)
	HandleMessage(msg Message) HandleResult
}

// ChildProvider exposes a widget's children for tree walks.
type ChildProvider interface {
	ChildWidgets() []Widget
}

// BoundsProvider exposes a widget's laid-out bounds.
type BoundsProvider interface {
	Bounds() Rect
}

// Bindable widgets receive app services when mounted into a screen.
type Bindable interface {
	Bind(services Services)
}

// Unbindable widgets release app services when removed.
type Unbindable interface {
	Unbind()
}

// BindTree calls Bind on widgets that implement Bindable.
func BindTree(root Widget, services Services) {
	if root == nil {
		return
	}
	if b, ok := root.(Bindable); ok {
		b.Bind(services)
	}
	if children, ok := root.(ChildProvider); ok {
		for _, child := range children.ChildWidgets() {
			BindTree(child, services)
		}
	}
}

// UnbindTree calls Unbind on widgets that implement Unbindable.
// Children unbind before their parent.
func UnbindTree(root Widget) {
	if root == nil {
		return
	}
	if children, ok := root.(ChildProvider); ok {
		for _, child := range children.ChildWidgets() {
			UnbindTree(child)
		}
	}
	if u, ok := root.(Unbindable); ok {
		u.Unbind()
	}
}
