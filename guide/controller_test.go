package guide

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/michaelborgmann/InstructUI/runtime"
)

type recordingSpeaker struct {
	spoken []string
}

func (r *recordingSpeaker) Speak(text string) {
	r.spoken = append(r.spoken, text)
}

type recordingScroller struct {
	targets []string
}

func (r *recordingScroller) ScrollTo(targetID string) {
	r.targets = append(r.targets, targetID)
}

func twoSteps() []Step {
	return []Step{
		NewStep("first step", runtime.Rect{X: 1, Y: 1, Width: 4, Height: 2}),
		NewStep("second step", runtime.Rect{X: 6, Y: 6, Width: 4, Height: 2}),
	}
}

func TestController_StartPresentsAndSpeaks(t *testing.T) {
	speaker := &recordingSpeaker{}
	c := NewController(twoSteps(), speaker)

	c.Start(0)

	step, ok := c.Current()
	require.True(t, ok)
	require.Equal(t, "first step", step.Message)
	require.Equal(t, []string{"first step"}, speaker.spoken)
}

func TestController_AdvanceWalksThenDeactivates(t *testing.T) {
	speaker := &recordingSpeaker{}
	c := NewController(twoSteps(), speaker)

	c.Start(0)
	c.Advance()

	step, ok := c.Current()
	require.True(t, ok)
	require.Equal(t, "second step", step.Message)
	require.Equal(t, []string{"first step", "second step"}, speaker.spoken)

	c.Advance()

	_, ok = c.Current()
	require.False(t, ok)
	require.False(t, c.Active())
	require.Equal(t, []string{"first step", "second step"}, speaker.spoken,
		"deactivating must not speak")
}

func TestController_AdvanceWhileInactiveIsNoOp(t *testing.T) {
	speaker := &recordingSpeaker{}
	c := NewController(twoSteps(), speaker)

	c.Advance()

	require.False(t, c.Active())
	require.Empty(t, speaker.spoken)
}

func TestController_SkipFromAnyStateAndIdempotent(t *testing.T) {
	speaker := &recordingSpeaker{}
	c := NewController(twoSteps(), speaker)

	c.Start(0)
	c.Skip()
	require.False(t, c.Active())

	// Advance after skip stays inactive.
	c.Advance()
	require.False(t, c.Active())

	notified := 0
	defer c.Subscribe(func() { notified++ })()
	c.Skip()
	require.False(t, c.Active())
	require.Zero(t, notified, "skip while inactive must not notify")
}

func TestController_StartOutOfRangeStoresIndexPresentsNothing(t *testing.T) {
	speaker := &recordingSpeaker{}
	c := NewController(nil, speaker)

	c.Start(0)

	index, active := c.CurrentIndex()
	require.True(t, active, "stored index remains set")
	require.Equal(t, 0, index)
	_, ok := c.Current()
	require.False(t, ok)
	require.Empty(t, speaker.spoken, "unresolved step must not speak")
}

func TestController_SetStepsRevivesStoredIndex(t *testing.T) {
	speaker := &recordingSpeaker{}
	c := NewController(nil, speaker)

	c.Start(1)
	_, ok := c.Current()
	require.False(t, ok)

	c.SetSteps(twoSteps())
	step, ok := c.Current()
	require.True(t, ok)
	require.Equal(t, "second step", step.Message)
}

func TestController_CurrentIsPure(t *testing.T) {
	speaker := &recordingSpeaker{}
	c := NewController(twoSteps(), speaker)
	c.Start(0)

	for i := 0; i < 10; i++ {
		_, _ = c.Current()
	}
	require.Equal(t, []string{"first step"}, speaker.spoken,
		"resolution must never re-trigger speech")
}

func TestController_RestartSameIndexSpeaksAgain(t *testing.T) {
	speaker := &recordingSpeaker{}
	c := NewController(twoSteps(), speaker)

	c.Start(0)
	c.Start(0)

	require.Equal(t, []string{"first step", "first step"}, speaker.spoken)
}

func TestController_SubscribeSeesEveryTransition(t *testing.T) {
	c := NewController(twoSteps(), nil)
	notified := 0
	defer c.Subscribe(func() { notified++ })()

	c.Start(0)
	c.Advance()
	c.Skip()

	require.Equal(t, 3, notified)
}

func TestController_ScrollTargetFiresBeforeSpeech(t *testing.T) {
	speaker := &recordingSpeaker{}
	scroller := &recordingScroller{}
	steps := []Step{
		NewStep("scroll me", runtime.Rect{}).WithScrollTarget("bottom-button"),
		NewStep("no target", runtime.Rect{}),
	}
	c := NewController(steps, speaker)
	c.SetScroller(scroller)

	c.Start(0)
	c.Advance()

	require.Equal(t, []string{"bottom-button"}, scroller.targets)
	require.Equal(t, []string{"scroll me", "no target"}, speaker.spoken)
}

func TestController_HandleCommand(t *testing.T) {
	c := NewController(twoSteps(), nil)
	c.Start(0)

	require.True(t, c.HandleCommand(Advance{}))
	index, _ := c.CurrentIndex()
	require.Equal(t, 1, index)

	require.True(t, c.HandleCommand(Skip{}))
	require.False(t, c.Active())

	require.False(t, c.HandleCommand(runtime.Quit{}))
}

func TestController_NilSpeakerMutes(t *testing.T) {
	c := NewController(twoSteps(), nil)
	c.Start(0)

	step, ok := c.Current()
	require.True(t, ok)
	require.Equal(t, "first step", step.Message)
}
