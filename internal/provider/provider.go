// Package provider locates and parses session transcripts for the supported
// AI CLI backends. The browser itself is provider-agnostic: it only ever
// sees the session model this package produces.
package provider

import (
	"errors"
	"fmt"

	"github.com/wharf-dev/wharf/internal/session"
)

// ErrForkUnsupported is returned by ResumeCommand when the backend has no
// fork facility. Callers report it to the user; it is never fatal.
var ErrForkUnsupported = errors.New("session forking not supported by this provider")

// Provider is one AI CLI backend. Implementations are constructed with
// explicit root directories so tests and config can relocate them.
type Provider interface {
	// Name is the short provider name, matching its binary.
	Name() string

	// Available resolves the provider's binary on PATH. An error means
	// browsing recorded transcripts still works but resume and fork will
	// fail.
	Available() (string, error)

	// Sessions returns all sessions recorded for the working directory,
	// sorted newest-first. A directory with no recorded sessions yields an
	// empty slice, not an error.
	Sessions(dir string) ([]session.Session, error)

	// ResumeCommand returns the argv to resume (or fork) a session
	// interactively. Returns ErrForkUnsupported when fork is requested but
	// unavailable.
	ResumeCommand(id string, fork bool) ([]string, error)

	// LogPath returns the path of the background-agent log for a session.
	// The file may not exist; absence is a normal outcome.
	LogPath(id string) string
}

// Project groups the sessions recorded for one working directory.
type Project struct {
	Dir      string
	Sessions []session.Session
}

// Lister is the optional capability of enumerating sessions across every
// recorded working directory. Gemini stores sessions under a one-way hash
// of the directory, so only claude implements it.
type Lister interface {
	AllProjects() ([]Project, error)
}

// ByName returns the provider registered under name, rooted at root
// (the provider's config directory, e.g. ~/.claude).
func ByName(name, root string) (Provider, error) {
	switch name {
	case "claude":
		return NewClaude(root), nil
	case "gemini":
		return NewGemini(root), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", name)
	}
}
