package runtime

import "github.com/michaelborgmann/InstructUI/state"

// Services exposes app-level scheduling and messaging to bound
// widgets.
type Services struct {
	app *App
}

// Services returns a service handle for the app.
func (a *App) Services() Services {
	return Services{app: a}
}

// Post sends a message into the app loop.
func (s Services) Post(msg Message) bool {
	if s.app == nil {
		return false
	}
	return s.app.TryPost(msg)
}

// Invalidate requests a render pass.
func (s Services) Invalidate() {
	if s.app == nil {
		return
	}
	s.app.Invalidate()
}

// Scheduler returns a scheduler that defers callbacks onto the event
// loop and wakes it. Widgets observe signals through it so state is
// read on the loop goroutine.
func (s Services) Scheduler() state.Scheduler {
	if s.app == nil {
		return nil
	}
	app := s.app
	return state.SchedulerFunc(func(fn func()) {
		app.stateQueue.Schedule(fn)
		app.Invalidate()
	})
}
