package guide

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/michaelborgmann/InstructUI/runtime"
)

func TestNewStep_AssignsUniqueIDs(t *testing.T) {
	a := NewStep("a", runtime.Rect{})
	b := NewStep("b", runtime.Rect{})

	require.NotEmpty(t, a.ID)
	require.NotEmpty(t, b.ID)
	require.NotEqual(t, a.ID, b.ID)
}

func TestStep_WithMethodsCopy(t *testing.T) {
	frame := runtime.Rect{X: 2, Y: 3, Width: 10, Height: 1}
	base := NewStep("hello", frame)

	below := base.WithMessageBelow()
	scrolled := base.WithScrollTarget("cta")
	renamed := base.WithID("custom")

	require.False(t, base.MessageBelow)
	require.Empty(t, base.ScrollTarget)
	require.NotEqual(t, "custom", base.ID)

	require.True(t, below.MessageBelow)
	require.Equal(t, "cta", scrolled.ScrollTarget)
	require.Equal(t, "custom", renamed.ID)
	require.Equal(t, frame, below.HighlightFrame)
}

func TestStep_WithIDKeepsGeneratedOnEmpty(t *testing.T) {
	step := NewStep("a", runtime.Rect{})
	same := step.WithID("")
	require.Equal(t, step.ID, same.ID)
}

func TestStep_ZeroAreaFrameIsValid(t *testing.T) {
	step := NewStep("degenerate", runtime.Rect{X: 5, Y: 5})
	c := NewController([]Step{step}, nil)
	c.Start(0)

	got, ok := c.Current()
	require.True(t, ok)
	require.True(t, got.HighlightFrame.Empty())
}
