package runtime

// Layer is one entry in the screen's layer stack. The tour overlay is
// pushed as a modal layer above the host UI.
type Layer struct {
	Root  Widget
	Modal bool // If true, blocks input to layers below
}

// Screen manages the layer stack and the shared render buffer.
type Screen struct {
	width, height int
	layers        []*Layer
	buffer        *Buffer
	services      Services
}

// NewScreen creates a screen with the given dimensions.
func NewScreen(w, h int) *Screen {
	return &Screen{width: w, height: h, buffer: NewBuffer(w, h)}
}

// SetServices configures app services for bindable widgets.
func (s *Screen) SetServices(services Services) {
	s.services = services
}

// Size returns the screen dimensions.
func (s *Screen) Size() (w, h int) {
	return s.width, s.height
}

// Buffer returns the shared render buffer.
func (s *Screen) Buffer() *Buffer {
	return s.buffer
}

// Resize changes the dimensions and re-lays-out every layer.
func (s *Screen) Resize(w, h int) {
	s.width = w
	s.height = h
	s.buffer.Resize(w, h)
	bounds := Rect{0, 0, w, h}
	for _, layer := range s.layers {
		if layer.Root != nil {
			layer.Root.Layout(bounds)
		}
	}
}

// SetRoot sets the root widget of the base layer, creating the base
// layer on first use.
func (s *Screen) SetRoot(root Widget) {
	var old Widget
	if len(s.layers) == 0 {
		s.layers = append(s.layers, &Layer{Root: root})
	} else {
		old = s.layers[0].Root
		s.layers[0].Root = root
	}
	if old != nil {
		UnbindTree(old)
	}
	if root != nil {
		BindTree(root, s.services)
		root.Layout(Rect{0, 0, s.width, s.height})
	}
}

// Root returns the base layer's root widget.
func (s *Screen) Root() Widget {
	if len(s.layers) == 0 {
		return nil
	}
	return s.layers[0].Root
}

// PushLayer adds a layer on top of the stack.
func (s *Screen) PushLayer(root Widget, modal bool) {
	s.layers = append(s.layers, &Layer{Root: root, Modal: modal})
	if root != nil {
		BindTree(root, s.services)
		root.Layout(Rect{0, 0, s.width, s.height})
	}
}

// PopLayer removes the top layer. The base layer cannot be popped.
func (s *Screen) PopLayer() bool {
	if len(s.layers) <= 1 {
		return false
	}
	top := s.layers[len(s.layers)-1]
	s.layers = s.layers[:len(s.layers)-1]
	if top.Root != nil {
		UnbindTree(top.Root)
	}
	return true
}

// TopLayer returns the topmost layer, or nil when empty.
func (s *Screen) TopLayer() *Layer {
	if len(s.layers) == 0 {
		return nil
	}
	return s.layers[len(s.layers)-1]
}

// LayerCount returns the number of layers.
func (s *Screen) LayerCount() int {
	return len(s.layers)
}

// Render draws all layers into the buffer, bottom to top.
func (s *Screen) Render() {
	s.buffer.Clear()
	bounds := Rect{0, 0, s.width, s.height}
	for i, layer := range s.layers {
		if layer.Root == nil {
			continue
		}
		ctx := RenderContext{
			Buffer:  s.buffer,
			Bounds:  bounds,
			Focused: i == len(s.layers)-1,
		}
		layer.Root.Render(ctx)
	}
}

// HandleMessage dispatches a message top layer first. A modal layer
// stops bubbling whether or not it handled the message.
func (s *Screen) HandleMessage(msg Message) HandleResult {
	for i := len(s.layers) - 1; i >= 0; i-- {
		layer := s.layers[i]
		if layer.Root == nil {
			continue
		}
		result := layer.Root.HandleMessage(msg)
		var rest []Command
		for _, cmd := range result.Commands {
			if !s.handleCommand(cmd) {
				rest = append(rest, cmd)
			}
		}
		result.Commands = rest
		if result.Handled {
			return result
		}
		if layer.Modal {
			break
		}
	}
	return Unhandled()
}

// ExecuteCommand runs a layer-stack command. Returns false for
// commands the screen does not own.
func (s *Screen) ExecuteCommand(cmd Command) bool {
	return s.handleCommand(cmd)
}

// handleCommand consumes layer-stack commands, leaving the rest for
// the app.
func (s *Screen) handleCommand(cmd Command) bool {
	switch c := cmd.(type) {
	case PushOverlay:
		s.PushLayer(c.Widget, c.Modal)
		return true
	case PopOverlay:
		s.PopLayer()
		return true
	default:
		return false
	}
}
