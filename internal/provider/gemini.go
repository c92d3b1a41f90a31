package provider

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"time"

	"github.com/wharf-dev/wharf/internal/session"
)

// Gemini reads Gemini CLI sessions: one JSON file per session under
// <root>/tmp/<sha256 of working directory>/chats/.
type Gemini struct {
	root string
}

// NewGemini returns a Gemini provider rooted at dir (normally ~/.gemini).
func NewGemini(dir string) *Gemini {
	return &Gemini{root: dir}
}

func (g *Gemini) Name() string { return "gemini" }

func (g *Gemini) Available() (string, error) {
	return exec.LookPath("gemini")
}

func hashDir(path string) string {
	sum := sha256.Sum256([]byte(path))
	return hex.EncodeToString(sum[:])
}

func (g *Gemini) chatsDir(dir string) string {
	return filepath.Join(g.root, "tmp", hashDir(dir), "chats")
}

func (g *Gemini) Sessions(dir string) ([]session.Session, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving directory: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(g.chatsDir(abs), "session-*.json"))
	if err != nil {
		return nil, fmt.Errorf("listing session files: %w", err)
	}

	var sessions []session.Session
	for _, f := range files {
		s, err := g.parseSessionFile(f)
		if err != nil {
			continue
		}
		sessions = append(sessions, s)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Timestamp.After(sessions[j].Timestamp)
	})
	return sessions, nil
}

// chatFile is the Gemini session JSON layout.
type chatFile struct {
	SessionID string `json:"sessionId"`
	StartTime string `json:"startTime"`
	Messages  []struct {
		Type    string `json:"type"`
		Content string `json:"content"`
	} `json:"messages"`
}

const summaryLimit = 100

func (g *Gemini) parseSessionFile(path string) (session.Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return session.Session{}, fmt.Errorf("read session file: %w", err)
	}

	var chat chatFile
	if err := json.Unmarshal(data, &chat); err != nil {
		return session.Session{}, fmt.Errorf("parse session file: %w", err)
	}

	id := chat.SessionID
	if id == "" {
		base := filepath.Base(path)
		id = base[:len(base)-len(filepath.Ext(base))]
	}

	s := session.Session{
		ID:      id,
		Summary: "No summary",
	}

	if t, err := time.Parse(time.RFC3339, chat.StartTime); err == nil {
		s.Timestamp = t
	} else if info, err := os.Stat(path); err == nil {
		s.Timestamp = info.ModTime()
	}

	for _, m := range chat.Messages {
		s.Messages = append(s.Messages, session.Message{
			Role:  session.ParseRole(m.Type),
			Parts: []string{m.Content},
		})
	}

	// The summary is the first user message, truncated.
	for _, m := range chat.Messages {
		if m.Type == "user" {
			s.Summary = truncate(m.Content, summaryLimit)
			break
		}
	}

	return s, nil
}

// truncate shortens s to n characters. Counting runes keeps a multi-byte
// character from being cut in half at the limit.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

func (g *Gemini) ResumeCommand(id string, fork bool) ([]string, error) {
	if fork {
		return nil, ErrForkUnsupported
	}
	return []string{"gemini", "-r", id}, nil
}

func (g *Gemini) LogPath(id string) string {
	return filepath.Join(g.root, "bg-agents", "logs", id+".log")
}
