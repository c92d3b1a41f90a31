package provider

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/wharf-dev/wharf/internal/session"
	"github.com/wharf-dev/wharf/internal/testutil"
)

func TestClaudeSessionsParsesTranscripts(t *testing.T) {
	workdir := "/home/dev/project"
	enc := encodeDir(workdir)

	root := testutil.TempTree(t, map[string]string{
		filepath.Join("projects", enc, "abc12345-6789.jsonl"): testutil.ClaudeSessionJSONL(
			"fix the login flow", workdir, "main", "please fix login", "done, see diff"),
		filepath.Join("projects", enc, "agent-def.jsonl"): testutil.ClaudeSessionJSONL(
			"background cleanup", workdir, "main", "clean up", "ok"),
	})

	sessions, err := NewClaude(root).Sessions(workdir)
	if err != nil {
		t.Fatalf("Sessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}

	byID := map[string]session.Session{}
	for _, s := range sessions {
		byID[s.ID] = s
	}

	main, ok := byID["abc12345-6789"]
	if !ok {
		t.Fatal("missing session abc12345-6789")
	}
	if main.Summary != "fix the login flow" {
		t.Errorf("Summary: got %q", main.Summary)
	}
	if main.Dir != workdir || main.GitBranch != "main" {
		t.Errorf("metadata: dir=%q branch=%q", main.Dir, main.GitBranch)
	}
	if main.IsAgent {
		t.Error("abc12345 should not be an agent session")
	}
	if len(main.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(main.Messages))
	}
	if main.Messages[0].Role != session.RoleUser || main.Messages[0].Text() != "please fix login" {
		t.Errorf("message 0: %+v", main.Messages[0])
	}
	if main.Messages[1].Role != session.RoleAssistant {
		t.Errorf("message 1 role: %v", main.Messages[1].Role)
	}

	agent, ok := byID["agent-def"]
	if !ok {
		t.Fatal("missing session agent-def")
	}
	if !agent.IsAgent {
		t.Error("agent- prefix must mark the session as agent")
	}
}

func TestClaudeSessionsEmptyForUnknownDirectory(t *testing.T) {
	root := testutil.TempTree(t, nil)
	sessions, err := NewClaude(root).Sessions("/nowhere/special")
	if err != nil {
		t.Fatalf("Sessions: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("expected no sessions, got %d", len(sessions))
	}
}

func TestClaudeSkipsUnparseableFiles(t *testing.T) {
	workdir := "/home/dev/project"
	enc := encodeDir(workdir)
	root := testutil.TempTree(t, map[string]string{
		filepath.Join("projects", enc, "good.jsonl"): testutil.ClaudeSessionJSONL(
			"ok", workdir, "", "hi", "hello"),
		filepath.Join("projects", enc, "broken.jsonl"): "not json at all\n",
	})

	sessions, err := NewClaude(root).Sessions(workdir)
	if err != nil {
		t.Fatalf("Sessions: %v", err)
	}
	if len(sessions) != 1 || sessions[0].ID != "good" {
		t.Errorf("expected only the good session, got %+v", sessions)
	}
}

func TestClaudeResumeCommand(t *testing.T) {
	c := NewClaude("/tmp/claude")

	args, err := c.ResumeCommand("abc", false)
	if err != nil {
		t.Fatalf("ResumeCommand: %v", err)
	}
	want := []string{"claude", "--resume", "abc"}
	if len(args) != len(want) {
		t.Fatalf("args: got %v", args)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("args[%d]: got %q, want %q", i, args[i], want[i])
		}
	}

	forked, err := c.ResumeCommand("abc", true)
	if err != nil {
		t.Fatalf("ResumeCommand fork: %v", err)
	}
	if forked[len(forked)-1] != "--fork-session" {
		t.Errorf("fork args: got %v", forked)
	}
}

func TestClaudeLogPath(t *testing.T) {
	c := NewClaude("/tmp/claude")
	want := filepath.Join("/tmp/claude", "bg-agents", "logs", "abc.log")
	if got := c.LogPath("abc"); got != want {
		t.Errorf("LogPath: got %q, want %q", got, want)
	}
}

func TestEncodeDir(t *testing.T) {
	if got := encodeDir("/home/dev/project"); got != "-home-dev-project" {
		t.Errorf("encodeDir: got %q", got)
	}
	if got := decodeDir("-home-dev-project"); got != "/home/dev/project" {
		t.Errorf("decodeDir: got %q", got)
	}
}

func TestAllProjectsGroupsByDirectory(t *testing.T) {
	root := testutil.TempTree(t, map[string]string{
		filepath.Join("projects", "-home-dev-alpha", "a1.jsonl"): testutil.ClaudeSessionJSONL(
			"alpha work", "/home/dev/alpha", "main", "hi", "hello"),
		filepath.Join("projects", "-home-dev-beta", "b1.jsonl"): testutil.ClaudeSessionJSONL(
			"beta work", "/home/dev/beta", "main", "hi", "hello"),
	})

	// Make beta the older project so the ordering is deterministic.
	old := time.Now().Add(-time.Hour)
	if err := os.Chtimes(filepath.Join(root, "projects", "-home-dev-beta", "b1.jsonl"), old, old); err != nil {
		t.Fatal(err)
	}

	projects, err := NewClaude(root).AllProjects()
	if err != nil {
		t.Fatalf("AllProjects: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}
	if projects[0].Dir != "/home/dev/alpha" {
		t.Errorf("projects[0].Dir: got %q", projects[0].Dir)
	}
	if projects[1].Dir != "/home/dev/beta" {
		t.Errorf("projects[1].Dir: got %q", projects[1].Dir)
	}
	if len(projects[0].Sessions) != 1 || projects[0].Sessions[0].ID != "a1" {
		t.Errorf("projects[0].Sessions: got %+v", projects[0].Sessions)
	}
}

func TestAllProjectsEmptyForMissingRoot(t *testing.T) {
	projects, err := NewClaude(t.TempDir()).AllProjects()
	if err != nil {
		t.Fatalf("AllProjects: %v", err)
	}
	if len(projects) != 0 {
		t.Errorf("expected no projects, got %d", len(projects))
	}
}

func TestClaudeAvailable(t *testing.T) {
	bin := t.TempDir()
	path := filepath.Join(bin, "claude")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", bin)

	got, err := NewClaude(t.TempDir()).Available()
	if err != nil {
		t.Fatalf("Available: %v", err)
	}
	if got != path {
		t.Errorf("Available: got %q, want %q", got, path)
	}
}

func TestClaudeAvailableMissingBinary(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if _, err := NewClaude(t.TempDir()).Available(); err == nil {
		t.Error("expected an error when the binary is not on PATH")
	}
}
