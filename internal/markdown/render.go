package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const defaultWrap = 100

var (
	codeBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 1)

	codeTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)

	lineNumberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// Renderer turns split segments into styled terminal output. The zero value
// is not usable; construct with NewRenderer.
type Renderer struct {
	width         int
	codeTheme     string
	markdownStyle string // glamour standard style name, "auto" picks by background
	color         bool

	term *glamour.TermRenderer
}

// NewRenderer builds a Renderer for the given output width. codeTheme is a
// chroma style name and markdownStyle a glamour style name; unknown names
// fall back to defaults. color false disables syntax highlighting, which is
// also the degradation path when the terminal cannot be probed.
func NewRenderer(width int, codeTheme, markdownStyle string, color bool) *Renderer {
	if width <= 0 {
		width = defaultWrap
	}
	r := &Renderer{
		width:         width,
		codeTheme:     codeTheme,
		markdownStyle: markdownStyle,
		color:         color,
	}

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if markdownStyle == "" || markdownStyle == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(markdownStyle))
	}
	// A nil term renderer degrades every prose segment to plain text.
	r.term, _ = glamour.NewTermRenderer(opts...)

	return r
}

// Render produces the styled output for segments, in order. Prose segments
// get heading normalization and markdown formatting followed by a blank
// line; code segments get a bordered, line-numbered block. Rendering never
// fails: anything the underlying renderers reject comes out as plain text.
func (r *Renderer) Render(segments []Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		switch seg.Kind {
		case Prose:
			b.WriteString(r.renderProse(seg.Body))
		case Code:
			b.WriteString(r.renderCode(seg.Lang, seg.Body))
		}
	}
	return b.String()
}

// RenderResponse splits text and renders the result.
func (r *Renderer) RenderResponse(text string) string {
	return r.Render(Split(text))
}

func (r *Renderer) renderProse(body string) string {
	md := NormalizeHeadings(body)
	if r.term != nil {
		if out, err := r.term.Render(md); err == nil {
			return out + "\n"
		}
	}
	return md + "\n\n"
}

func (r *Renderer) renderCode(lang, body string) string {
	title := lang
	if title == "" {
		title = "text"
	}

	numbered := numberLines(r.highlight(lang, body))
	block := codeTitleStyle.Render(title) + "\n" + numbered
	return codeBoxStyle.Render(block) + "\n\n"
}

// highlight runs body through chroma keyed by lang. Unknown languages use
// the fallback lexer; any tokenizer or formatter error returns the body
// unhighlighted.
func (r *Renderer) highlight(lang, body string) string {
	if !r.color {
		return body
	}

	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(r.codeTheme)
	if style == nil {
		style = styles.Fallback
	}

	it, err := lexer.Tokenise(nil, body)
	if err != nil {
		return body
	}

	var buf bytes.Buffer
	if err := formatters.Get("terminal256").Format(&buf, style, it); err != nil {
		return body
	}
	// Chroma mirrors the input's trailing newline; strip it so line counts
	// match the body.
	return strings.TrimSuffix(buf.String(), "\n")
}

// numberLines prefixes each line with a right-aligned line number gutter.
// Lines are never soft-wrapped; long lines may exceed the viewport width.
func numberLines(code string) string {
	lines := strings.Split(code, "\n")
	pad := len(fmt.Sprintf("%d", len(lines)))

	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		gutter := fmt.Sprintf("%*d", pad, i+1)
		b.WriteString(lineNumberStyle.Render(gutter))
		b.WriteString("  ")
		b.WriteString(line)
	}
	return b.String()
}
