package runtime

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/michaelborgmann/InstructUI/backend"
	"github.com/michaelborgmann/InstructUI/state"
)

// UpdateFunc handles a message and returns true if a render is needed.
type UpdateFunc func(app *App, msg Message) bool

// CommandHandler handles commands not consumed by the screen.
// Return true if the command requires a render.
type CommandHandler func(cmd Command) bool

// AppConfig configures a runtime App.
type AppConfig struct {
	Backend        backend.Backend
	Root           Widget
	Update         UpdateFunc
	CommandHandler CommandHandler
	MessageBuffer  int
	StateQueue     *state.Queue
}

// App runs a widget tree against a terminal backend on a single
// event-loop goroutine.
type App struct {
	backend        backend.Backend
	screen         *Screen
	root           Widget
	update         UpdateFunc
	commandHandler CommandHandler
	messages       chan Message
	stateQueue     *state.Queue

	// running is shared with the poll goroutine.
	running atomic.Bool
	dirty   bool
}

// NewApp creates a new App from config.
func NewApp(cfg AppConfig) *App {
	bufferSize := cfg.MessageBuffer
	if bufferSize <= 0 {
		bufferSize = 128
	}
	queue := cfg.StateQueue
	if queue == nil {
		queue = state.NewQueue()
	}
	return &App{
		backend:        cfg.Backend,
		root:           cfg.Root,
		update:         cfg.Update,
		commandHandler: cfg.CommandHandler,
		messages:       make(chan Message, bufferSize),
		stateQueue:     queue,
	}
}

// Screen returns the active screen, if initialized.
func (a *App) Screen() *Screen {
	return a.screen
}

// StateQueue returns the app's state queue.
func (a *App) StateQueue() *state.Queue {
	if a == nil {
		return nil
	}
	return a.stateQueue
}

// Post sends a message to the event loop, dropping it if the queue is
// full.
func (a *App) Post(msg Message) {
	_ = a.TryPost(msg)
}

// TryPost sends a message to the event loop without blocking.
func (a *App) TryPost(msg Message) bool {
	if a == nil || a.messages == nil || msg == nil {
		return false
	}
	select {
	case a.messages <- msg:
		return true
	default:
		return false
	}
}

// Invalidate wakes the event loop for a render pass.
func (a *App) Invalidate() {
	a.Post(InvalidateMsg{})
}

// Run starts the event loop until quit or context cancellation.
func (a *App) Run(ctx context.Context) error {
	if a.backend == nil {
		return errors.New("backend is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := a.backend.Init(); err != nil {
		return fmt.Errorf("init backend: %w", err)
	}
	defer a.backend.Fini()

	a.backend.HideCursor()
	w, h := a.backend.Size()
	a.screen = NewScreen(w, h)
	a.screen.SetServices(a.Services())
	if a.root != nil {
		a.screen.SetRoot(a.root)
	}
	if a.update == nil {
		a.update = DefaultUpdate
	}

	a.running.Store(true)
	a.dirty = true

	go a.pollEvents()

	for a.running.Load() {
		select {
		case <-ctx.Done():
			a.running.Store(false)
		case msg := <-a.messages:
			if a.update(a, msg) {
				a.dirty = true
			}
		}
		if !a.running.Load() {
			continue
		}
		if a.stateQueue.Flush() > 0 {
			a.dirty = true
		}
		if a.dirty {
			a.render()
			a.dirty = false
		}
	}
	return ctx.Err()
}

// DefaultUpdate routes input messages into the widget tree.
func DefaultUpdate(app *App, msg Message) bool {
	if app == nil || app.screen == nil {
		return false
	}
	switch m := msg.(type) {
	case ResizeMsg:
		app.screen.Resize(m.Width, m.Height)
		return true
	case InvalidateMsg:
		return true
	case CommandMsg:
		if m.Command == nil {
			return false
		}
		if app.screen.ExecuteCommand(m.Command) {
			return true
		}
		return app.handleCommand(m.Command)
	default:
		return app.dispatchMessage(msg)
	}
}

func (a *App) dispatchMessage(msg Message) bool {
	result := a.screen.HandleMessage(msg)
	dirty := result.Handled
	for _, cmd := range result.Commands {
		if a.handleCommand(cmd) {
			dirty = true
		}
	}
	return dirty
}

func (a *App) handleCommand(cmd Command) bool {
	switch cmd.(type) {
	case Quit:
		a.running.Store(false)
		return false
	default:
		if a.commandHandler != nil {
			return a.commandHandler(cmd)
		}
		return false
	}
}

// ExecuteCommand runs a command through the app handler.
func (a *App) ExecuteCommand(cmd Command) bool {
	if a == nil {
		return false
	}
	return a.handleCommand(cmd)
}

func (a *App) pollEvents() {
	for a.running.Load() {
		ev := a.backend.PollEvent()
		if ev == nil {
			continue
		}
		switch e := ev.(type) {
		case backend.KeyEvent:
			a.Post(KeyMsg{Key: e.Key, Rune: e.Rune, Alt: e.Alt, Ctrl: e.Ctrl, Shift: e.Shift})
		case backend.MouseEvent:
			a.Post(MouseMsg{X: e.X, Y: e.Y, Button: e.Button, Action: e.Action})
		case backend.ResizeEvent:
			a.Post(ResizeMsg{Width: e.Width, Height: e.Height})
		}
	}
}

func (a *App) render() {
	if a.screen == nil {
		return
	}
	a.screen.Render()

	buf := a.screen.Buffer()
	_, h := buf.Size()
	if rowWriter, ok := a.backend.(backend.RowWriter); ok {
		for y := 0; y < h; y++ {
			rowWriter.SetRow(y, 0, buf.Row(y))
		}
	} else {
		for y := 0; y < h; y++ {
			for x, cell := range buf.Row(y) {
				a.backend.SetContent(x, y, cell.Rune, cell.Style)
			}
		}
	}
	a.backend.Show()
}
