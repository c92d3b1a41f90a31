// Package markdown splits assistant responses into prose and fenced code
// segments and renders them for the terminal.
package markdown

import "strings"

// Kind discriminates segment variants.
type Kind int

const (
	// Prose is ordinary markdown text.
	Prose Kind = iota
	// Code is the body of a fenced code block.
	Code
)

// Segment is one chunk of a split response: either markdown prose or a
// fenced code block with an optional language tag.
type Segment struct {
	Kind Kind
	Body string
	Lang string // set only for Code, may be empty
}

// Split partitions text into alternating Prose and Code segments.
//
// A fence opens on a line that starts with ``` followed by an optional
// language tag (word characters only) and closes on a line that is exactly
// ``` after trailing-space trim. An opening fence with no close is not a
// code block: it stays in the surrounding prose verbatim. Whitespace-only
// prose is dropped, and a single trailing newline is stripped from each
// code body.
func Split(text string) []Segment {
	lines := strings.Split(text, "\n")

	var segments []Segment
	var prose []string

	flushProse := func() {
		chunk := strings.Join(prose, "\n")
		if strings.TrimSpace(chunk) != "" {
			segments = append(segments, Segment{Kind: Prose, Body: chunk})
		}
		prose = prose[:0]
	}

	for i := 0; i < len(lines); i++ {
		lang, ok := openingFence(lines[i])
		if !ok {
			prose = append(prose, lines[i])
			continue
		}

		end := closingFenceAfter(lines, i)
		if end < 0 {
			// Unterminated fence: everything from here on is prose.
			prose = append(prose, lines[i])
			continue
		}

		flushProse()
		segments = append(segments, Segment{
			Kind: Code,
			Lang: lang,
			Body: strings.Join(lines[i+1:end], "\n"),
		})
		i = end
	}
	flushProse()

	return segments
}

// openingFence reports whether line opens a fence, returning the language tag.
// The tag may be followed only by trailing spaces or tabs.
func openingFence(line string) (string, bool) {
	rest, ok := strings.CutPrefix(line, "```")
	if !ok {
		return "", false
	}
	rest = strings.TrimRight(rest, " \t")
	for _, r := range rest {
		if !isWordChar(r) {
			return "", false
		}
	}
	return rest, true
}

// closingFenceAfter returns the index of the first closing fence line after
// open, or -1 if the fence never closes.
func closingFenceAfter(lines []string, open int) int {
	for j := open + 1; j < len(lines); j++ {
		if strings.TrimRight(lines[j], " \t") == "```" {
			return j
		}
	}
	return -1
}

func isWordChar(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
