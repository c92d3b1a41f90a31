package browser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/wharf-dev/wharf/internal/log"
	"github.com/wharf-dev/wharf/internal/markdown"
	"github.com/wharf-dev/wharf/internal/session"
)

// Resumer resolves a session id into the argv of an interactive resume (or
// fork) invocation. The browser never runs the command itself; it hands the
// argv back through the Outcome after the loop has exited.
type Resumer interface {
	ResumeCommand(id string, fork bool) ([]string, error)
}

// LogSource supplies the full log content for a session id. ok is false
// when no content exists, which is a normal outcome.
type LogSource interface {
	Logs(id string) (content string, ok bool)
}

// Outcome is what the browse loop decided: quit, or resume/fork the given
// session by running Argv.
type Outcome struct {
	Action  Action
	Session session.Session
	Argv    []string
}

// Options configures a Browser. Zero-value fields get defaults.
type Options struct {
	Resumer        Resumer
	Logs           LogSource
	Renderer       *markdown.Renderer
	Events         *log.Logger // optional event log, failures are ignored
	Input          *os.File    // defaults to os.Stdin
	Output         io.Writer   // defaults to os.Stdout
	FallbackHeight int         // viewport height when the size probe fails
}

// Browser owns the interactive browse loop over a fixed session list. The
// loop is strictly synchronous: read one key, mutate state, repaint.
type Browser struct {
	sessions []session.Session
	dir      string

	resumer  Resumer
	logs     LogSource
	renderer *markdown.Renderer
	events   *log.Logger

	in             *os.File
	out            io.Writer
	fallbackHeight int
	size           func() (width, height int, err error)

	state  *State
	status string

	detailCache map[string]string
}

const defaultFallbackHeight = 24

// New builds a Browser over sessions recorded for dir. Sessions must
// already be sorted newest-first; the browser does not re-sort.
func New(sessions []session.Session, dir string, opts Options) *Browser {
	b := &Browser{
		sessions:       sessions,
		dir:            dir,
		resumer:        opts.Resumer,
		logs:           opts.Logs,
		renderer:       opts.Renderer,
		events:         opts.Events,
		in:             opts.Input,
		out:            opts.Output,
		fallbackHeight: opts.FallbackHeight,
		state:          NewState(len(sessions)),
		detailCache:    make(map[string]string),
	}
	if b.in == nil {
		b.in = os.Stdin
	}
	if b.out == nil {
		b.out = os.Stdout
	}
	if b.renderer == nil {
		b.renderer = markdown.NewRenderer(0, "", "auto", true)
	}
	if b.fallbackHeight <= 0 {
		b.fallbackHeight = defaultFallbackHeight
	}
	b.size = func() (int, int, error) {
		return term.GetSize(int(b.in.Fd()))
	}
	return b
}

// Run enters the interactive loop. If the input cannot be put into raw mode
// the browser degrades to a single non-interactive listing and returns
// immediately. The previous terminal mode is restored on every exit path,
// including signals.
func (b *Browser) Run() (Outcome, error) {
	if len(b.sessions) == 0 {
		fmt.Fprintln(b.out, "No sessions found for this directory")
		return Outcome{Action: ActionQuit}, nil
	}

	fd := int(b.in.Fd())
	if !term.IsTerminal(fd) {
		b.printListing()
		return Outcome{Action: ActionQuit}, nil
	}

	prev, err := term.MakeRaw(fd)
	if err != nil {
		// Raw input unavailable: degrade, never crash.
		b.printListing()
		return Outcome{Action: ActionQuit}, nil
	}
	defer func() { _ = term.Restore(fd, prev) }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		if _, ok := <-sigCh; ok {
			_ = term.Restore(fd, prev)
			os.Exit(130)
		}
	}()

	b.logEvent(log.LogEvent{Event: log.EventBrowserStarted, Directory: b.dir, Sessions: len(b.sessions)})

	outcome, err := b.loop(NewDecoder(b.in))

	// Leave the last frame behind rather than a half-drawn screen.
	b.writeRaw("\x1b[2J\x1b[H")
	return outcome, err
}

// loop runs the read-key → mutate → repaint cycle until a terminal action.
func (b *Browser) loop(d *Decoder) (Outcome, error) {
	for {
		height := b.viewportHeight()
		content := b.content()

		if b.state.View == ViewList {
			b.keepSelectionVisible(height)
		}
		b.state.ClampOffset(content, height)

		b.draw(content, height)

		ev, err := d.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Outcome{Action: ActionQuit}, nil
			}
			return Outcome{Action: ActionQuit}, fmt.Errorf("reading key: %w", err)
		}

		b.status = ""
		before := b.state.View
		switch action := b.state.Handle(ev, height); action {
		case ActionQuit:
			b.logEvent(log.LogEvent{Event: log.EventBrowserExited})
			return Outcome{Action: ActionQuit}, nil
		case ActionResume, ActionFork:
			if outcome, ok := b.resolveResume(action); ok {
				return outcome, nil
			}
		}

		if b.state.View != before {
			sel := b.sessions[b.state.Selected]
			switch b.state.View {
			case ViewDetail:
				b.logEvent(log.LogEvent{Event: log.EventSessionViewed, SessionID: sel.ID})
			case ViewLogs:
				b.logEvent(log.LogEvent{Event: log.EventLogsViewed, SessionID: sel.ID})
			}
		}
	}
}

// resolveResume asks the resumer for the invocation. A not-supported or
// failing resume is reported on the status line and the loop continues in
// its current view.
func (b *Browser) resolveResume(action Action) (Outcome, bool) {
	sel := b.sessions[b.state.Selected]

	if b.resumer == nil {
		b.status = "Resume is not available here"
		return Outcome{}, false
	}

	argv, err := b.resumer.ResumeCommand(sel.ID, action == ActionFork)
	if err != nil {
		b.status = err.Error()
		return Outcome{}, false
	}

	event := log.EventSessionResumed
	if action == ActionFork {
		event = log.EventSessionForked
	}
	b.logEvent(log.LogEvent{Event: event, SessionID: sel.ID})

	return Outcome{Action: action, Session: sel, Argv: argv}, true
}

// content builds the full (unpaginated) body for the current view.
func (b *Browser) content() string {
	sel := b.sessions[b.state.Selected]
	switch b.state.View {
	case ViewDetail:
		if cached, ok := b.detailCache[sel.ID]; ok {
			return cached
		}
		content := b.detailContent(sel)
		b.detailCache[sel.ID] = content
		return content
	case ViewLogs:
		return b.logsContent(sel)
	default:
		return ListTable(b.sessions, b.state.Selected)
	}
}

// viewportHeight derives the content height from the terminal size,
// reserving rows for the header and status chrome. Falls back to the
// configured constant when the size probe fails.
func (b *Browser) viewportHeight() int {
	rows := b.fallbackHeight
	if _, h, err := b.size(); err == nil && h > 0 {
		rows = h
	}

	const chrome = 4 // title, help, separator, status line
	height := rows - chrome
	if height < 1 {
		height = 1
	}
	return height
}

// keepSelectionVisible scrolls the list view just enough that the selected
// row stays inside the viewport.
func (b *Browser) keepSelectionVisible(height int) {
	row := b.state.Selected + 1 // the list content has one header line
	if row < b.state.Offset {
		b.state.Offset = row
	}
	if row >= b.state.Offset+height {
		b.state.Offset = row - height + 1
	}
}

// draw clears the screen and repaints the current view in full. Partial
// repaints are never used, so no stale content can survive a view switch.
func (b *Browser) draw(content string, height int) {
	page := Paginate(content, b.state.Offset, height)

	var frame strings.Builder
	frame.WriteString("\x1b[2J\x1b[H")
	frame.WriteString(toRawLines(b.header()))
	frame.WriteString("\r\n\r\n")
	frame.WriteString(toRawLines(page.Visible))
	frame.WriteString("\r\n")
	frame.WriteString(toRawLines(b.statusLine(page, height)))

	b.writeRaw(frame.String())
}

func (b *Browser) writeRaw(s string) {
	_, _ = io.WriteString(b.out, s)
}

// toRawLines converts newlines for raw-mode output, where the terminal no
// longer translates LF to CRLF.
func toRawLines(s string) string {
	return strings.ReplaceAll(s, "\n", "\r\n")
}

// printListing is the non-interactive degradation: one full session table.
func (b *Browser) printListing() {
	fmt.Fprintln(b.out, TitleStyle.Render("Sessions for "+b.dir))
	fmt.Fprintln(b.out, ListTable(b.sessions, -1))
	fmt.Fprintln(b.out, HelpStyle.Render("Interactive mode unavailable (stdin is not a terminal)"))
}

func (b *Browser) logEvent(ev log.LogEvent) {
	if b.events == nil {
		return
	}
	ev.Directory = b.dir
	_ = b.events.Append(ev)
}
