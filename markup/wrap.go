package markup

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/michaelborgmann/InstructUI/backend"
)

// Width returns the display width of a line.
func Width(line Line) int {
	w := 0
	for _, span := range line {
		w += runewidth.StringWidth(span.Text)
	}
	return w
}

// MaxWidth returns the widest line's display width.
func MaxWidth(lines []Line) int {
	widest := 0
	for _, line := range lines {
		if w := Width(line); w > widest {
			widest = w
		}
	}
	return widest
}

// Wrap word-wraps lines to the given display width. Words wider than
// the width are split mid-word. A non-positive width yields nothing.
func Wrap(lines []Line, width int) []Line {
	if width <= 0 {
		return nil
	}
	var out []Line
	for _, line := range lines {
		out = append(out, wrapLine(line, width)...)
	}
	return out
}

func wrapLine(line Line, width int) []Line {
	if len(line) == 0 {
		return []Line{{}}
	}

	var wrapped []Line
	var cur Line
	curWidth := 0

	flush := func() {
		wrapped = append(wrapped, cur)
		cur = nil
		curWidth = 0
	}
	emit := func(word string, style backend.Style) {
		cur = append(cur, Span{Text: word, Style: style})
		curWidth += runewidth.StringWidth(word)
	}

	for _, span := range line {
		for _, word := range splitWords(span.Text) {
			wordWidth := runewidth.StringWidth(word)
			pad := 0
			if curWidth > 0 {
				pad = 1
			}
			if curWidth+pad+wordWidth <= width {
				if pad > 0 {
					emit(" ", span.Style)
				}
				emit(word, span.Style)
				continue
			}
			if curWidth > 0 {
				flush()
			}
			// Hard-split words that cannot fit on their own line.
			for wordWidth > width {
				head, tail := splitAt(word, width)
				emit(head, span.Style)
				flush()
				word = tail
				wordWidth = runewidth.StringWidth(word)
			}
			if word != "" {
				emit(word, span.Style)
			}
		}
	}
	if curWidth > 0 || len(wrapped) == 0 {
		flush()
	}
	return wrapped
}

func splitWords(text string) []string {
	return strings.Fields(text)
}

// splitAt cuts a word so the head's display width fits the limit.
// The head always contains at least one rune, so a rune wider than
// the limit overflows instead of stalling the caller.
func splitAt(word string, width int) (head, tail string) {
	w := 0
	for i, r := range word {
		rw := runewidth.RuneWidth(r)
		if w+rw > width && i > 0 {
			return word[:i], word[i:]
		}
		w += rw
	}
	return word, ""
}
