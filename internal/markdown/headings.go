package markdown

import (
	"regexp"
	"strings"
)

var headingLine = regexp.MustCompile(`^#+\s+(.*)`)

// NormalizeHeadings rewrites markdown heading lines to bold text so the
// terminal renderer left-aligns them instead of drawing heading chrome.
// A line whose # run is not followed by whitespace is left untouched.
func NormalizeHeadings(md string) string {
	lines := strings.Split(md, "\n")
	for i, line := range lines {
		if m := headingLine.FindStringSubmatch(line); m != nil {
			lines[i] = "**" + m[1] + "**"
		}
	}
	return strings.Join(lines, "\n")
}
