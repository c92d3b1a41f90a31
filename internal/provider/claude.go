package provider

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wharf-dev/wharf/internal/session"
)

// Claude reads Claude Code sessions: one JSONL file per session under
// <root>/projects/<encoded working directory>/.
type Claude struct {
	root string
}

// NewClaude returns a Claude provider rooted at dir (normally ~/.claude).
func NewClaude(dir string) *Claude {
	return &Claude{root: dir}
}

func (c *Claude) Name() string { return "claude" }

func (c *Claude) Available() (string, error) {
	return exec.LookPath("claude")
}

// encodeDir maps a working directory to its storage directory name
// (path separators become dashes).
func encodeDir(path string) string {
	return strings.ReplaceAll(path, "/", "-")
}

// decodeDir reverses encodeDir. Lossy when a directory name itself contains
// a dash; the transcript's cwd field takes precedence where available.
func decodeDir(name string) string {
	return strings.ReplaceAll(name, "-", "/")
}

func (c *Claude) projectDir(dir string) string {
	return filepath.Join(c.root, "projects", encodeDir(dir))
}

func (c *Claude) Sessions(dir string) ([]session.Session, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving directory: %w", err)
	}
	return c.sessionsIn(c.projectDir(abs))
}

// sessionsIn loads every session file in one storage directory, newest
// first.
func (c *Claude) sessionsIn(dir string) ([]session.Session, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.jsonl"))
	if err != nil {
		return nil, fmt.Errorf("listing session files: %w", err)
	}

	var sessions []session.Session
	for _, f := range files {
		s, err := c.parseSessionFile(f)
		if err != nil {
			// Unparseable files are skipped, matching a store that other
			// processes write to concurrently.
			continue
		}
		sessions = append(sessions, s)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Timestamp.After(sessions[j].Timestamp)
	})
	return sessions, nil
}

// AllProjects enumerates every recorded working directory, newest session
// first across projects.
func (c *Claude) AllProjects() ([]Project, error) {
	entries, err := os.ReadDir(filepath.Join(c.root, "projects"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	var projects []Project
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		sessions, err := c.sessionsIn(filepath.Join(c.root, "projects", e.Name()))
		if err != nil || len(sessions) == 0 {
			continue
		}
		dir := decodeDir(e.Name())
		if d := sessions[0].Dir; d != "" {
			dir = d
		}
		projects = append(projects, Project{Dir: dir, Sessions: sessions})
	}

	sort.Slice(projects, func(i, j int) bool {
		return projects[i].Sessions[0].Timestamp.After(projects[j].Sessions[0].Timestamp)
	})
	return projects, nil
}

// transcriptLine is one line of a Claude session JSONL file. The first line
// usually carries the session metadata; user/assistant lines carry message
// content parts.
type transcriptLine struct {
	Type      string `json:"type"`
	Summary   string `json:"summary"`
	Cwd       string `json:"cwd"`
	GitBranch string `json:"gitBranch"`
	Message   struct {
		Role    string `json:"role"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"message"`
}

func (c *Claude) parseSessionFile(path string) (session.Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return session.Session{}, fmt.Errorf("open session file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return session.Session{}, fmt.Errorf("stat session file: %w", err)
	}

	id := strings.TrimSuffix(filepath.Base(path), ".jsonl")
	s := session.Session{
		ID:        id,
		Summary:   "No summary",
		Timestamp: info.ModTime(),
		IsAgent:   strings.HasPrefix(id, "agent-"),
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	first := true
	for scanner.Scan() {
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		var line transcriptLine
		if err := json.Unmarshal([]byte(raw), &line); err != nil {
			if first {
				return session.Session{}, fmt.Errorf("parse session header: %w", err)
			}
			continue // tolerate damaged lines mid-file
		}

		if first {
			first = false
			if line.Summary != "" {
				s.Summary = line.Summary
			}
			s.Dir = line.Cwd
			s.GitBranch = line.GitBranch
		}

		if line.Type != "user" && line.Type != "assistant" {
			continue
		}
		msg := session.Message{Role: session.ParseRole(line.Message.Role)}
		for _, part := range line.Message.Content {
			if part.Type == "text" {
				msg.Parts = append(msg.Parts, part.Text)
			}
		}
		s.Messages = append(s.Messages, msg)
	}
	if err := scanner.Err(); err != nil {
		return session.Session{}, fmt.Errorf("read session file: %w", err)
	}

	return s, nil
}

func (c *Claude) ResumeCommand(id string, fork bool) ([]string, error) {
	args := []string{"claude", "--resume", id}
	if fork {
		args = append(args, "--fork-session")
	}
	return args, nil
}

func (c *Claude) LogPath(id string) string {
	return filepath.Join(c.root, "bg-agents", "logs", id+".log")
}
