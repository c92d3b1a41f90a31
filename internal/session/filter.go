package session

import (
	"regexp"
	"time"
)

// Filter narrows a session list by date range, summary pattern, and type.
// Zero-value fields are inactive.
type Filter struct {
	Since      time.Time
	Before     time.Time
	Search     *regexp.Regexp
	AgentsOnly bool
	MainOnly   bool
}

// Apply returns the sessions matching the filter, preserving input order.
func (f Filter) Apply(sessions []Session) []Session {
	var out []Session
	for _, s := range sessions {
		if !f.Since.IsZero() && s.Timestamp.Before(f.Since) {
			continue
		}
		if !f.Before.IsZero() && s.Timestamp.After(f.Before) {
			continue
		}
		if f.Search != nil && !f.Search.MatchString(s.Summary) {
			continue
		}
		if f.AgentsOnly && !s.IsAgent {
			continue
		}
		if f.MainOnly && s.IsAgent {
			continue
		}
		out = append(out, s)
	}
	return out
}
