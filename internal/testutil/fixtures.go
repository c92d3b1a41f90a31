// Package testutil provides test helper utilities for wharf tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TempTree creates a temporary directory with the given files and returns
// its path. Files is a map of relative path -> content. Directories are
// created as needed. The directory is cleaned up when the test finishes.
func TempTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()

	for relPath, content := range files {
		absPath := filepath.Join(dir, relPath)
		if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
			t.Fatalf("creating directory for %s: %v", relPath, err)
		}
		if err := os.WriteFile(absPath, []byte(content), 0644); err != nil {
			t.Fatalf("writing %s: %v", relPath, err)
		}
	}

	return dir
}

// ClaudeSessionJSONL builds the content of a Claude session transcript with
// a metadata header line followed by one user and one assistant message.
func ClaudeSessionJSONL(summary, cwd, branch, userText, assistantText string) string {
	lines := []string{
		`{"type":"summary","summary":"` + summary + `","cwd":"` + cwd + `","gitBranch":"` + branch + `"}`,
		`{"type":"user","message":{"role":"user","content":[{"type":"text","text":"` + userText + `"}]}}`,
		`{"type":"assistant","message":{"role":"assistant","content":[{"type":"text","text":"` + assistantText + `"}]}}`,
	}
	return strings.Join(lines, "\n") + "\n"
}
