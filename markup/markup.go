// Package markup renders tour messages into styled terminal spans.
// Messages are treated as a small markdown subset: emphasis, strong,
// inline code, and fenced code blocks with syntax highlighting.
package markup

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/michaelborgmann/InstructUI/backend"
)

// Span is a run of text in one style.
type Span struct {
	Text  string
	Style backend.Style
}

// Line is a sequence of spans on one row.
type Line []Span

// Text flattens a line back to its plain text.
func (l Line) Text() string {
	var sb strings.Builder
	for _, span := range l {
		sb.WriteString(span.Text)
	}
	return sb.String()
}

// CodeTheme is the chroma style used for fenced code blocks.
var CodeTheme = "monokai"

// Render parses a message and produces styled lines. Plain text comes
// back in the base style; parse oddities degrade to plain text rather
// than failing.
func Render(message string, base backend.Style) []Line {
	src := []byte(message)
	doc := goldmark.New().Parser().Parse(text.NewReader(src))
	r := &renderer{src: src, base: base}
	r.blocks(doc)
	r.flush()
	return r.lines
}

type renderer struct {
	src   []byte
	base  backend.Style
	lines []Line
	cur   Line
	open  bool
}

func (r *renderer) append(text string, style backend.Style) {
	if text == "" {
		return
	}
	r.open = true
	r.cur = append(r.cur, Span{Text: text, Style: style})
}

func (r *renderer) flush() {
	if !r.open {
		return
	}
	r.lines = append(r.lines, r.cur)
	r.cur = nil
	r.open = false
}

func (r *renderer) blank() {
	r.flush()
	r.lines = append(r.lines, Line{})
}

func (r *renderer) blocks(n ast.Node) {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if child != n.FirstChild() {
			r.blank()
		}
		switch b := child.(type) {
		case *ast.Paragraph, *ast.TextBlock:
			r.inlines(child, r.base)
			r.flush()
		case *ast.Heading:
			style := r.base
			style.Bold = true
			r.inlines(child, style)
			r.flush()
		case *ast.FencedCodeBlock:
			lang := string(b.Language(r.src))
			r.lines = append(r.lines, highlightCode(blockText(b, r.src), lang, r.base)...)
		case *ast.CodeBlock:
			r.lines = append(r.lines, highlightCode(blockText(b, r.src), "", r.base)...)
		case *ast.List:
			r.list(b)
		default:
			r.inlines(child, r.base)
			r.flush()
		}
	}
}

func (r *renderer) list(list *ast.List) {
	first := true
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		if !first {
			r.flush()
		}
		first = false
		r.append("• ", r.base)
		for block := item.FirstChild(); block != nil; block = block.NextSibling() {
			r.inlines(block, r.base)
		}
		r.flush()
	}
}

func (r *renderer) inlines(n ast.Node, style backend.Style) {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch inline := child.(type) {
		case *ast.Text:
			r.append(string(inline.Segment.Value(r.src)), style)
			if inline.HardLineBreak() {
				r.flush()
			} else if inline.SoftLineBreak() {
				r.append(" ", style)
			}
		case *ast.Emphasis:
			emphasized := style
			if inline.Level >= 2 {
				emphasized.Bold = true
			} else {
				emphasized.Italic = true
			}
			r.inlines(inline, emphasized)
		case *ast.CodeSpan:
			code := style
			code.Reverse = true
			r.append(nodeText(inline, r.src), code)
		case *ast.Link:
			linked := style
			linked.Underline = true
			r.inlines(inline, linked)
		case *ast.AutoLink:
			linked := style
			linked.Underline = true
			r.append(string(inline.URL(r.src)), linked)
		default:
			r.inlines(child, style)
		}
	}
}

// nodeText collects the raw text of an inline node's children.
func nodeText(n ast.Node, src []byte) string {
	var sb strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			sb.Write(t.Segment.Value(src))
		}
	}
	return sb.String()
}

// blockText collects the raw lines of a code block.
func blockText(n ast.Node, src []byte) string {
	var sb strings.Builder
	segments := n.Lines()
	for i := 0; i < segments.Len(); i++ {
		seg := segments.At(i)
		sb.Write(seg.Value(src))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// highlightCode tokenizes a code block with chroma and maps token
// colors onto backend styles. Unknown languages fall back to a plain
// lexer; the block still renders.
func highlightCode(code, lang string, base backend.Style) []Line {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)
	theme := styles.Get(CodeTheme)
	if theme == nil {
		theme = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return plainLines(code, base)
	}

	var lines []Line
	var cur Line
	for token := iterator(); token != chroma.EOF; token = iterator() {
		style := tokenStyle(theme.Get(token.Type), base)
		parts := strings.Split(token.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, cur)
				cur = nil
			}
			if part != "" {
				cur = append(cur, Span{Text: part, Style: style})
			}
		}
	}
	lines = append(lines, cur)
	return lines
}

func tokenStyle(entry chroma.StyleEntry, base backend.Style) backend.Style {
	style := base
	if entry.Colour.IsSet() {
		style.FG = backend.RGB(entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue())
	}
	if entry.Bold == chroma.Yes {
		style.Bold = true
	}
	if entry.Italic == chroma.Yes {
		style.Italic = true
	}
	if entry.Underline == chroma.Yes {
		style.Underline = true
	}
	return style
}

func plainLines(text string, style backend.Style) []Line {
	var lines []Line
	for _, raw := range strings.Split(text, "\n") {
		if raw == "" {
			lines = append(lines, Line{})
			continue
		}
		lines = append(lines, Line{{Text: raw, Style: style}})
	}
	return lines
}
