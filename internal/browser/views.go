package browser

import (
	"fmt"
	"strings"

	runewidth "github.com/mattn/go-runewidth"

	"github.com/wharf-dev/wharf/internal/session"
)

const (
	idWidth      = 10
	kindWidth    = 7
	summaryWidth = 60
	dateFormat   = "2006-01-02 15:04"
)

// ListTable renders the session list as styled rows, one line per session,
// with the selected row marked. selected < 0 renders without a marker (the
// non-interactive listing).
func ListTable(sessions []session.Session, selected int) string {
	var b strings.Builder

	b.WriteString(HelpStyle.Render(fmt.Sprintf("%-2s%-*s %-*s %-*s %s",
		"", idWidth, "ID", kindWidth, "TYPE", summaryWidth, "SUMMARY", "DATE")))

	for i, s := range sessions {
		b.WriteByte('\n')

		kind := MainStyle.Render(s.Kind())
		if s.IsAgent {
			kind = AgentStyle.Render(s.Kind())
		}

		id := s.ShortID()
		row := fmt.Sprintf("%s%s %s%s %-*s %s",
			IDStyle.Render(id), strings.Repeat(" ", idWidth-len(id)),
			kind, strings.Repeat(" ", kindWidth-len(s.Kind())),
			summaryWidth, runewidth.Truncate(s.Summary, summaryWidth, "..."),
			DateStyle.Render(s.Timestamp.Format(dateFormat)))

		if i == selected {
			b.WriteString(SelectedStyle.Render("> ") + row)
		} else {
			b.WriteString("  " + row)
		}
	}

	return b.String()
}

// detailContent builds the detail view body for a session: a metadata block
// followed by the full conversation, with assistant responses rendered as
// markdown and highlighted code fences.
func (b *Browser) detailContent(s session.Session) string {
	var sb strings.Builder

	field := func(label, value string) {
		if value == "" {
			value = "Unknown"
		}
		sb.WriteString(LabelStyle.Render(label+":") + " " + value + "\n")
	}

	field("Session ID", s.ID)
	if s.IsAgent {
		field("Type", "Agent")
	} else {
		field("Type", "Main Session")
	}
	field("Summary", s.Summary)
	field("Working Directory", s.Dir)
	field("Git Branch", s.GitBranch)
	field("Last Modified", s.Timestamp.Format("2006-01-02 15:04:05"))
	field("Messages", fmt.Sprintf("%d", len(s.Messages)))

	sb.WriteString(HelpStyle.Render(strings.Repeat("─", 60)) + "\n\n")

	if len(s.Messages) == 0 {
		sb.WriteString(HelpStyle.Render("No conversation content recorded for this session."))
		return sb.String()
	}

	for _, msg := range s.Messages {
		text := msg.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		sb.WriteString(RoleStyle.Render(strings.ToUpper(string(msg.Role))+":") + "\n")
		if msg.Role == session.RoleAssistant {
			sb.WriteString(b.renderer.RenderResponse(text))
		} else {
			sb.WriteString(text + "\n\n")
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

// logsContent builds the logs view body, or a placeholder when no log
// content exists for the session.
func (b *Browser) logsContent(s session.Session) string {
	if b.logs == nil {
		return HelpStyle.Render("No log source configured.")
	}
	content, ok := b.logs.Logs(s.ID)
	if !ok || strings.TrimSpace(content) == "" {
		return HelpStyle.Render(fmt.Sprintf("No logs found for session %s.", s.ShortID()))
	}
	return strings.TrimRight(content, "\n")
}

// header returns the title and key help lines for the current view.
func (b *Browser) header() string {
	switch b.state.View {
	case ViewDetail:
		return TitleStyle.Render("Session Details") + "\n" +
			HelpStyle.Render("↑/↓: Scroll | PgUp/PgDn: Page | n/p: Next/Prev | l: Logs | b: Back | r: Resume | f: Fork | q: Quit")
	case ViewLogs:
		return TitleStyle.Render("Session Logs") + "\n" +
			HelpStyle.Render("↑/↓: Scroll | PgUp/PgDn: Page | n/p: Next/Prev | b: Back | r: Resume | f: Fork | q: Quit")
	default:
		return TitleStyle.Render("AI Session Browser: "+b.dir) + "\n" +
			HelpStyle.Render("↑/↓: Navigate | Enter/v: View Details | r: Resume | f: Fork | q: Quit")
	}
}

// statusLine summarizes scroll position and surfaces transient messages.
func (b *Browser) statusLine(page Page, height int) string {
	if b.status != "" {
		return ErrorStyle.Render(b.status)
	}

	first := page.Offset + 1
	last := page.Offset + height
	if last > page.TotalLines {
		last = page.TotalLines
	}
	if page.TotalLines == 0 || height <= 0 {
		first, last = 0, 0
	}
	return StatusStyle.Render(fmt.Sprintf("lines %d-%d of %d", first, last, page.TotalLines))
}
