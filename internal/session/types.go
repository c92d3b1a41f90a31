// Package session defines the read-only model for recorded AI conversations.
package session

import (
	"strings"
	"time"
)

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleUnknown   Role = "unknown"
)

// ParseRole maps a raw role string from a transcript file to a Role.
func ParseRole(s string) Role {
	switch s {
	case "user":
		return RoleUser
	case "assistant":
		return RoleAssistant
	default:
		return RoleUnknown
	}
}

// Message is a single conversation turn. Parts holds the already-extracted
// text content in source order.
type Message struct {
	Role  Role
	Parts []string
}

// Text joins the message's text parts with newlines.
func (m Message) Text() string {
	return strings.Join(m.Parts, "\n")
}

// Session is a recorded conversation transcript. Sessions are immutable once
// loaded; the browser never reorders or mutates them.
type Session struct {
	ID        string
	Summary   string
	Dir       string // working directory the session was recorded in, may be empty
	GitBranch string // may be empty
	Timestamp time.Time
	IsAgent   bool
	Messages  []Message
}

// ShortID returns the first 8 characters of the session id for display.
func (s Session) ShortID() string {
	if len(s.ID) > 8 {
		return s.ID[:8]
	}
	return s.ID
}

// Kind returns a display label for the session type.
func (s Session) Kind() string {
	if s.IsAgent {
		return "AGENT"
	}
	return "MAIN"
}
