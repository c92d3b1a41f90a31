package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wharf-dev/wharf/internal/config"
	"github.com/wharf-dev/wharf/internal/log"
	"github.com/wharf-dev/wharf/internal/provider"
	"github.com/wharf-dev/wharf/internal/session"
)

var forkFlag bool

var resumeCmd = &cobra.Command{
	Use:   "resume <session-id>",
	Short: "Resume a session without the browser",
	Long: `Resumes the given session directly. The id may be a full session id
or the shortened prefix shown in the list view; prefixes are matched
against the sessions recorded for the current directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runResume,
}

func init() {
	resumeCmd.Flags().BoolVar(&forkFlag, "fork", false, "Fork into a new session instead of continuing")
}

func runResume(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolving home directory: %w", err)
	}
	cfg := config.Load(home)

	prov, err := selectedProvider(cfg, home)
	if err != nil {
		return err
	}
	if _, err := prov.Available(); err != nil {
		return fmt.Errorf("%s binary not found on PATH", prov.Name())
	}

	id := args[0]
	workdir := ""
	if s, ok := findByPrefix(prov, id); ok {
		id = s.ID
		workdir = s.Dir
	}

	argv, err := prov.ResumeCommand(id, forkFlag)
	if err != nil {
		if errors.Is(err, provider.ErrForkUnsupported) {
			return fmt.Errorf("%s does not support forking sessions", prov.Name())
		}
		return err
	}

	if events, logErr := log.NewLogger(config.Dir(home)); logErr == nil {
		event := log.EventSessionResumed
		if forkFlag {
			event = log.EventSessionForked
		}
		_ = events.Append(log.LogEvent{Event: event, Provider: prov.Name(), SessionID: id})
	}

	return runInteractive(argv, workdir)
}

// findByPrefix looks the id up among the current directory's sessions so a
// short id from the list view resolves to the full one. A miss is fine: the
// id is then passed to the provider untouched.
func findByPrefix(prov provider.Provider, id string) (session.Session, bool) {
	cwd, err := os.Getwd()
	if err != nil {
		return session.Session{}, false
	}
	sessions, err := prov.Sessions(cwd)
	if err != nil {
		return session.Session{}, false
	}
	for _, s := range sessions {
		if s.ID == id || strings.HasPrefix(s.ID, id) {
			return s, true
		}
	}
	return session.Session{}, false
}
