// Package browser implements the interactive session browser: pagination,
// raw keystroke decoding, and the view state machine driving the redraw loop.
package browser

import "strings"

// Page is the result of paginating content for one viewport.
type Page struct {
	Visible    string // the lines currently in view, newline-joined
	TotalLines int
	Offset     int // the clamped offset actually applied
}

// Paginate slices content to the viewport. Lines are counted by a naive
// newline split, so a terminal newline contributes one trailing empty line.
// The requested offset is clamped to [0, max(0, total-height)]; a height of
// zero or less shows no lines. Paginate is pure and cannot fail.
func Paginate(content string, offset, height int) Page {
	lines := strings.Split(content, "\n")
	total := len(lines)

	if height < 0 {
		height = 0
	}

	maxOffset := total - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}

	end := offset + height
	if end > total {
		end = total
	}

	return Page{
		Visible:    strings.Join(lines[offset:end], "\n"),
		TotalLines: total,
		Offset:     offset,
	}
}
