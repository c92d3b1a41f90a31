package session

import (
	"regexp"
	"testing"
	"time"
)

func sampleSessions() []Session {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return []Session{
		{ID: "aaa", Summary: "fix auth bug", Timestamp: base},
		{ID: "bbb", Summary: "add login page", Timestamp: base.AddDate(0, 0, 5)},
		{ID: "agent-ccc", Summary: "background refactor", Timestamp: base.AddDate(0, 0, 10), IsAgent: true},
	}
}

func TestFilterZeroValuePassesEverything(t *testing.T) {
	got := Filter{}.Apply(sampleSessions())
	if len(got) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(got))
	}
}

func TestFilterSince(t *testing.T) {
	f := Filter{Since: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)}
	got := f.Apply(sampleSessions())
	if len(got) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(got))
	}
	if got[0].ID != "bbb" {
		t.Errorf("expected bbb first, got %s", got[0].ID)
	}
}

func TestFilterBefore(t *testing.T) {
	f := Filter{Before: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)}
	got := f.Apply(sampleSessions())
	if len(got) != 1 || got[0].ID != "aaa" {
		t.Fatalf("expected only aaa, got %v", got)
	}
}

func TestFilterSearchIsCaseInsensitiveRegex(t *testing.T) {
	f := Filter{Search: regexp.MustCompile(`(?i)AUTH`)}
	got := f.Apply(sampleSessions())
	if len(got) != 1 || got[0].ID != "aaa" {
		t.Fatalf("expected only aaa, got %v", got)
	}
}

func TestFilterAgentsOnly(t *testing.T) {
	got := Filter{AgentsOnly: true}.Apply(sampleSessions())
	if len(got) != 1 || !got[0].IsAgent {
		t.Fatalf("expected the single agent session, got %v", got)
	}
}

func TestFilterMainOnly(t *testing.T) {
	got := Filter{MainOnly: true}.Apply(sampleSessions())
	if len(got) != 2 {
		t.Fatalf("expected 2 main sessions, got %d", len(got))
	}
	for _, s := range got {
		if s.IsAgent {
			t.Errorf("agent session %s leaked through MainOnly", s.ID)
		}
	}
}

func TestMessageTextJoinsParts(t *testing.T) {
	m := Message{Role: RoleAssistant, Parts: []string{"first", "second"}}
	if m.Text() != "first\nsecond" {
		t.Errorf("Text: got %q", m.Text())
	}
}

func TestParseRole(t *testing.T) {
	if ParseRole("user") != RoleUser {
		t.Error("user should parse to RoleUser")
	}
	if ParseRole("assistant") != RoleAssistant {
		t.Error("assistant should parse to RoleAssistant")
	}
	if ParseRole("tool_result") != RoleUnknown {
		t.Error("unrecognized roles should parse to RoleUnknown")
	}
}
