package guide

import (
	"sync"

	"github.com/michaelborgmann/InstructUI/runtime"
	"github.com/michaelborgmann/InstructUI/state"
)

// NoStep is the index value meaning no step is active.
const NoStep = -1

// Scroller brings a named element into view. Like Speaker it is fire
// and forget; the controller does not wait for the scroll to finish.
type Scroller interface {
	ScrollTo(targetID string)
}

// Controller owns the current-step index of a tour. The step slice
// belongs to the embedding application; the controller only indexes
// into it, and tolerates an index that has fallen out of range by
// presenting nothing.
type Controller struct {
	mu       sync.Mutex
	steps    []Step
	speaker  Speaker
	scroller Scroller
	index    *state.Signal[int]
}

// NewController creates a controller over steps. A nil speaker mutes
// the tour.
func NewController(steps []Step, speaker Speaker) *Controller {
	if speaker == nil {
		speaker = Muted
	}
	return &Controller{
		steps:   steps,
		speaker: speaker,
		index:   state.NewSignal(NoStep),
	}
}

// SetSteps replaces the step sequence for a new tour run. The stored
// index is untouched; presentation re-resolves against the new slice.
func (c *Controller) SetSteps(steps []Step) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.steps = steps
	c.mu.Unlock()
}

// SetScroller installs the scrolling collaborator.
func (c *Controller) SetScroller(scroller Scroller) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.scroller = scroller
	c.mu.Unlock()
}

// Steps returns the current step sequence.
func (c *Controller) Steps() []Step {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.steps
}

// Start activates the tour at the given index. The index is stored
// even when out of range; presentation then resolves to no step and
// nothing is spoken.
func (c *Controller) Start(index int) {
	if c == nil {
		return
	}
	c.transition(index)
}

// Advance moves to the next step, or deactivates past the last one.
// Advancing while inactive is a no-op: only a concrete current index
// can be incremented.
func (c *Controller) Advance() {
	if c == nil {
		return
	}
	current := c.index.Get()
	if current == NoStep {
		return
	}
	next := current + 1
	c.mu.Lock()
	count := len(c.steps)
	c.mu.Unlock()
	if next < count {
		c.transition(next)
		return
	}
	c.index.Set(NoStep)
}

// Skip terminates the tour from any state. Skipping while already
// inactive changes nothing and notifies nobody.
func (c *Controller) Skip() {
	if c == nil {
		return
	}
	if c.index.Get() == NoStep {
		return
	}
	c.index.Set(NoStep)
}

// Active reports whether a current index is set, in range or not.
func (c *Controller) Active() bool {
	if c == nil {
		return false
	}
	return c.index.Get() != NoStep
}

// CurrentIndex returns the stored index, and false when inactive.
func (c *Controller) CurrentIndex() (int, bool) {
	if c == nil {
		return NoStep, false
	}
	index := c.index.Get()
	return index, index != NoStep
}

// Current resolves the presented step. Pure and side-effect free so
// renderers may call it every frame: an inactive or out-of-range
// index yields no step, never a panic and never speech.
func (c *Controller) Current() (Step, bool) {
	if c == nil {
		return Step{}, false
	}
	index := c.index.Get()
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.steps) {
		return Step{}, false
	}
	return c.steps[index], true
}

// Subscribe registers a listener notified on every index change,
// including re-entering the same index via Start.
func (c *Controller) Subscribe(fn func()) func() {
	if c == nil {
		return func() {}
	}
	return c.index.Subscribe(fn)
}

// SubscribeWithScheduler registers a listener dispatched through a
// scheduler.
func (c *Controller) SubscribeWithScheduler(scheduler state.Scheduler, fn func()) func() {
	if c == nil {
		return func() {}
	}
	return c.index.SubscribeWithScheduler(scheduler, fn)
}

// HandleCommand routes tour commands to the controller. Returns true
// when the command was one of ours.
func (c *Controller) HandleCommand(cmd runtime.Command) bool {
	switch cmd.(type) {
	case Advance:
		c.Advance()
		return true
	case Skip:
		c.Skip()
		return true
	default:
		return false
	}
}

// transition stores the index and fires per-step side effects when
// the index resolves to a step.
func (c *Controller) transition(index int) {
	c.index.Set(index)
	c.mu.Lock()
	var step Step
	resolved := index >= 0 && index < len(c.steps)
	if resolved {
		step = c.steps[index]
	}
	speaker := c.speaker
	scroller := c.scroller
	c.mu.Unlock()
	if !resolved {
		return
	}
	if scroller != nil && step.ScrollTarget != "" {
		scroller.ScrollTo(step.ScrollTarget)
	}
	speaker.Speak(step.Message)
}
