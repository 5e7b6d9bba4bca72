package markup

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/michaelborgmann/InstructUI/backend"
)

func TestRender_PlainText(t *testing.T) {
	base := backend.DefaultStyle()
	lines := Render("tap the button", base)

	require.Len(t, lines, 1)
	require.Equal(t, "tap the button", lines[0].Text())
	for _, span := range lines[0] {
		require.Equal(t, base, span.Style)
	}
}

func TestRender_EmphasisAndStrong(t *testing.T) {
	base := backend.DefaultStyle()
	lines := Render("a *soft* and **hard** nudge", base)

	require.Len(t, lines, 1)
	require.Equal(t, "a soft and hard nudge", lines[0].Text())

	styles := map[string]backend.Style{}
	for _, span := range lines[0] {
		styles[span.Text] = span.Style
	}
	require.True(t, styles["soft"].Italic)
	require.False(t, styles["soft"].Bold)
	require.True(t, styles["hard"].Bold)
}

func TestRender_CodeSpan(t *testing.T) {
	lines := Render("run `make test` now", backend.DefaultStyle())

	require.Len(t, lines, 1)
	var code *Span
	for i, span := range lines[0] {
		if span.Text == "make test" {
			code = &lines[0][i]
		}
	}
	require.NotNil(t, code)
	require.True(t, code.Style.Reverse)
}

func TestRender_FencedCodeBlock(t *testing.T) {
	message := "Install it:\n\n```go\npackage main\n```"
	lines := Render(message, backend.DefaultStyle())

	require.GreaterOrEqual(t, len(lines), 3)
	require.Equal(t, "Install it:", lines[0].Text())

	var found bool
	for _, line := range lines {
		if line.Text() == "package main" {
			found = true
			require.NotEmpty(t, line)
			require.True(t, line[0].Style.FG.Valid(), "code tokens get highlight colors")
		}
	}
	require.True(t, found)
}

func TestRender_FencedCodeBlockMultiline(t *testing.T) {
	message := "```go\npackage main\n\nfunc main() {}\n```"
	lines := Render(message, backend.DefaultStyle())

	require.Len(t, lines, 3)
	require.Equal(t, "package main", lines[0].Text())
	require.Equal(t, "", lines[1].Text())
	require.Equal(t, "func main() {}", lines[2].Text())
}

func TestRender_Paragraphs(t *testing.T) {
	lines := Render("first\n\nsecond", backend.DefaultStyle())

	require.Len(t, lines, 3)
	require.Equal(t, "first", lines[0].Text())
	require.Empty(t, lines[1])
	require.Equal(t, "second", lines[2].Text())
}

func TestRender_List(t *testing.T) {
	lines := Render("- one\n- two", backend.DefaultStyle())

	require.Len(t, lines, 2)
	require.Equal(t, "• one", lines[0].Text())
	require.Equal(t, "• two", lines[1].Text())
}

func TestWrap_Widths(t *testing.T) {
	lines := Render("the quick brown fox jumps over the lazy dog", backend.DefaultStyle())
	wrapped := Wrap(lines, 10)

	require.NotEmpty(t, wrapped)
	for _, line := range wrapped {
		require.LessOrEqual(t, Width(line), 10)
	}
}

func TestWrap_SplitsOverlongWords(t *testing.T) {
	lines := []Line{{{Text: "antidisestablishmentarianism"}}}
	wrapped := Wrap(lines, 8)

	require.Greater(t, len(wrapped), 1)
	for _, line := range wrapped {
		require.LessOrEqual(t, Width(line), 8)
	}
}

func TestWrap_WideRunesAtNarrowWidth(t *testing.T) {
	wrapped := Wrap([]Line{{{Text: "日本"}}}, 1)

	require.Len(t, wrapped, 2)
	require.Equal(t, "日", wrapped[0].Text())
	require.Equal(t, "本", wrapped[1].Text())
}

func TestWrap_SingleWideRuneOverflows(t *testing.T) {
	wrapped := Wrap([]Line{{{Text: "界"}}}, 1)

	require.Len(t, wrapped, 1)
	require.Equal(t, "界", wrapped[0].Text())
}

func TestWrap_NonPositiveWidth(t *testing.T) {
	lines := Render("anything", backend.DefaultStyle())
	require.Nil(t, Wrap(lines, 0))
	require.Nil(t, Wrap(lines, -3))
}

func TestWrap_KeepsBlankLines(t *testing.T) {
	wrapped := Wrap([]Line{{}, {{Text: "x"}}}, 10)
	require.Len(t, wrapped, 2)
	require.Empty(t, wrapped[0])
}

func TestMaxWidth(t *testing.T) {
	lines := []Line{
		{{Text: "ab"}},
		{{Text: "abcd"}},
		{},
	}
	require.Equal(t, 4, MaxWidth(lines))
}

func TestWidth_WideRunes(t *testing.T) {
	require.Equal(t, 4, Width(Line{{Text: "日本"}}))
}
