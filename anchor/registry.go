// Package anchor collects screen-space frames reported by named UI
// elements so tours can be built against live geometry.
package anchor

import (
	"sync"

	"github.com/michaelborgmann/InstructUI/runtime"
	"github.com/michaelborgmann/InstructUI/state"
)

// Report pairs an element id with its current frame.
type Report struct {
	ID    string
	Frame runtime.Rect
}

// CollisionFunc is called when a batch contains the same id twice.
// Diagnostic only; the later report still wins.
type CollisionFunc func(id string, prev, next runtime.Rect)

// Registry aggregates frame reports into a single id-to-frame
// mapping. The last report for an id is authoritative; duplicates
// overwrite, they never merge.
type Registry struct {
	mu          sync.Mutex
	frames      map[string]runtime.Rect
	onCollision CollisionFunc
	revision    *state.Signal[uint64]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		frames:   make(map[string]runtime.Rect),
		revision: state.NewSignal[uint64](0),
	}
}

// SetCollisionFunc installs a hook for duplicate ids within one
// Aggregate batch. Intended for debug builds; leave unset in
// production.
func (r *Registry) SetCollisionFunc(fn CollisionFunc) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.onCollision = fn
	r.mu.Unlock()
}

// Report records that the element identified by id currently
// occupies frame, superseding any previous report for that id.
func (r *Registry) Report(id string, frame runtime.Rect) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.frames[id] = frame
	r.mu.Unlock()
	r.bump()
}

// Aggregate applies a batch of reports in order. When the batch
// repeats an id, the later entry wins and the collision hook fires.
func (r *Registry) Aggregate(reports []Report) {
	if r == nil || len(reports) == 0 {
		return
	}
	r.mu.Lock()
	hook := r.onCollision
	seen := make(map[string]runtime.Rect, len(reports))
	type collision struct {
		id         string
		prev, next runtime.Rect
	}
	var collisions []collision
	for _, report := range reports {
		if prev, dup := seen[report.ID]; dup && hook != nil {
			collisions = append(collisions, collision{report.ID, prev, report.Frame})
		}
		seen[report.ID] = report.Frame
		r.frames[report.ID] = report.Frame
	}
	r.mu.Unlock()

	for _, c := range collisions {
		hook(c.id, c.prev, c.next)
	}
	r.bump()
}

// Snapshot returns a copy of the current mapping.
func (r *Registry) Snapshot() map[string]runtime.Rect {
	if r == nil {
		return map[string]runtime.Rect{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]runtime.Rect, len(r.frames))
	for id, frame := range r.frames {
		out[id] = frame
	}
	return out
}

// Resolve looks up the frame last reported for id. The second result
// is false when the id has never reported; no frame is fabricated.
func (r *Registry) Resolve(id string) (runtime.Rect, bool) {
	if r == nil {
		return runtime.Rect{}, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	frame, ok := r.frames[id]
	return frame, ok
}

// Reset drops every recorded frame.
func (r *Registry) Reset() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.frames = make(map[string]runtime.Rect)
	r.mu.Unlock()
	r.bump()
}

// Len returns the number of ids with a recorded frame.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}

// Subscribe registers a listener notified after every mutation.
func (r *Registry) Subscribe(fn func()) func() {
	if r == nil {
		return func() {}
	}
	return r.revision.Subscribe(fn)
}

func (r *Registry) bump() {
	r.revision.Update(func(v uint64) uint64 { return v + 1 })
}
