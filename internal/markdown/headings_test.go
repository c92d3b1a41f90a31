package markdown

import "testing"

func TestNormalizeHeadings(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"h1", "# Title\nbody", "**Title**\nbody"},
		{"h3", "### Deep Title", "**Deep Title**"},
		{"no space after hash", "#notitle", "#notitle"},
		{"hash mid-line untouched", "see # below", "see # below"},
		{"list and emphasis preserved", "- item *em*", "- item *em*"},
		{"mixed", "# A\ntext\n## B", "**A**\ntext\n**B**"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeHeadings(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
