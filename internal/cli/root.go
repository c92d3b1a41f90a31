// Package cli defines Cobra command definitions for the wharf CLI.
// This file contains the root command, which launches the session browser.
package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wharf-dev/wharf/internal/browser"
	"github.com/wharf-dev/wharf/internal/config"
	"github.com/wharf-dev/wharf/internal/log"
	"github.com/wharf-dev/wharf/internal/markdown"
	"github.com/wharf-dev/wharf/internal/provider"
	"github.com/wharf-dev/wharf/internal/session"
)

var (
	providerFlag string
	sinceFlag    string
	beforeFlag   string
	searchFlag   string
	agentsOnly   bool
	mainOnly     bool
	listMode     bool
	allProjects  bool
	version      = "dev" // set via ldflags at build time
)

var rootCmd = &cobra.Command{
	Use:   "wharf [directory]",
	Short: "Browse, inspect, and resume AI CLI sessions",
	Long: `Wharf lists the Claude Code or Gemini CLI sessions recorded for a
directory, lets you read each conversation with rendered markdown and
highlighted code blocks, and resumes or forks a session in place.`,
	Args:          cobra.MaximumNArgs(1),
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runBrowse,
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&providerFlag, "provider", "", "AI provider to use: claude or gemini (default from config)")

	rootCmd.Flags().StringVar(&sinceFlag, "since", "", "Only sessions since date (YYYY-MM-DD)")
	rootCmd.Flags().StringVar(&beforeFlag, "before", "", "Only sessions before date (YYYY-MM-DD)")
	rootCmd.Flags().StringVar(&searchFlag, "search", "", "Filter sessions by summary (regex, case-insensitive)")
	rootCmd.Flags().BoolVar(&agentsOnly, "agents-only", false, "Show only agent sessions")
	rootCmd.Flags().BoolVar(&mainOnly, "main-only", false, "Show only main sessions")
	rootCmd.Flags().BoolVar(&listMode, "list", false, "Non-interactive list mode")
	rootCmd.Flags().BoolVar(&allProjects, "all", false, "List sessions from all directories, grouped by project")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(logsCmd)
}

// selectedProvider resolves the provider from the flag and config.
func selectedProvider(cfg *config.Config, home string) (provider.Provider, error) {
	name := providerFlag
	if name == "" {
		name = cfg.Provider
	}
	return provider.ByName(name, cfg.ProviderRoot(name, home))
}

func runBrowse(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolving home directory: %w", err)
	}
	cfg := config.Load(home)

	prov, err := selectedProvider(cfg, home)
	if err != nil {
		return err
	}
	if _, availErr := prov.Available(); availErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s binary not found on PATH; resume and fork will fail\n", prov.Name())
	}

	filter, err := filterFromFlags()
	if err != nil {
		return err
	}

	if allProjects {
		return listAllProjects(prov, filter)
	}

	dir := ""
	if len(args) > 0 {
		dir = args[0]
	} else if dir, err = os.Getwd(); err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}
	if dir, err = filepath.Abs(dir); err != nil {
		return fmt.Errorf("resolving directory: %w", err)
	}

	sessions, err := prov.Sessions(dir)
	if err != nil {
		return fmt.Errorf("loading sessions: %w", err)
	}

	sessions = filter.Apply(sessions)

	if len(sessions) == 0 {
		fmt.Printf("No sessions found for %s\n", dir)
		fmt.Printf("Try running '%s' in this directory first to create sessions\n", prov.Name())
		return nil
	}

	if listMode {
		fmt.Println(browser.ListTable(sessions, -1))
		return nil
	}

	// Event log failures only cost history, never the browse.
	events, logErr := log.NewLogger(config.Dir(home))
	if logErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: event log unavailable: %v\n", logErr)
		events = nil
	}

	b := browser.New(sessions, dir, browser.Options{
		Resumer:        prov,
		Logs:           providerLogs{prov},
		Renderer:       newRenderer(cfg),
		Events:         events,
		FallbackHeight: cfg.Display.FallbackHeight,
	})

	outcome, err := b.Run()
	if err != nil {
		return err
	}

	switch outcome.Action {
	case browser.ActionResume, browser.ActionFork:
		verb := "Resuming"
		if outcome.Action == browser.ActionFork {
			verb = "Forking"
		}
		fmt.Printf("\n%s session %s...\n\n", verb, outcome.Session.ShortID())
		return runInteractive(outcome.Argv, outcome.Session.Dir)
	}
	return nil
}

// listAllProjects prints one session table per recorded working directory,
// with the filters applied per group.
func listAllProjects(prov provider.Provider, filter session.Filter) error {
	lister, ok := prov.(provider.Lister)
	if !ok {
		return fmt.Errorf("%s cannot enumerate sessions across directories", prov.Name())
	}

	projects, err := lister.AllProjects()
	if err != nil {
		return fmt.Errorf("listing projects: %w", err)
	}

	shown := 0
	for _, p := range projects {
		sessions := filter.Apply(p.Sessions)
		if len(sessions) == 0 {
			continue
		}
		if shown > 0 {
			fmt.Println()
		}
		shown++
		fmt.Println(browser.TitleStyle.Render(p.Dir))
		fmt.Println(browser.ListTable(sessions, -1))
	}
	if shown == 0 {
		fmt.Println("No sessions found")
	}
	return nil
}

func filterFromFlags() (session.Filter, error) {
	var f session.Filter

	if sinceFlag != "" {
		t, err := time.Parse("2006-01-02", sinceFlag)
		if err != nil {
			return f, fmt.Errorf("invalid --since date %q: %w", sinceFlag, err)
		}
		f.Since = t
	}
	if beforeFlag != "" {
		t, err := time.Parse("2006-01-02", beforeFlag)
		if err != nil {
			return f, fmt.Errorf("invalid --before date %q: %w", beforeFlag, err)
		}
		f.Before = t
	}
	if searchFlag != "" {
		re, err := regexp.Compile("(?i)" + searchFlag)
		if err != nil {
			return f, fmt.Errorf("invalid --search pattern: %w", err)
		}
		f.Search = re
	}
	f.AgentsOnly = agentsOnly
	f.MainOnly = mainOnly
	return f, nil
}

// newRenderer builds the markdown renderer sized to the terminal.
func newRenderer(cfg *config.Config) *markdown.Renderer {
	width := 100
	color := false
	if term.IsTerminal(int(os.Stdout.Fd())) {
		color = true
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	return markdown.NewRenderer(width, cfg.Display.CodeTheme, cfg.Display.MarkdownStyle, color)
}

// runInteractive runs argv with the terminal attached, in the session's
// original working directory when it still exists.
func runInteractive(argv []string, workdir string) error {
	if len(argv) == 0 {
		return nil
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if workdir != "" {
		if info, err := os.Stat(workdir); err == nil && info.IsDir() {
			cmd.Dir = workdir
		}
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", argv[0], err)
	}
	return nil
}

// providerLogs adapts a provider's log files to the browser's LogSource.
type providerLogs struct {
	p provider.Provider
}

func (l providerLogs) Logs(id string) (string, bool) {
	data, err := os.ReadFile(l.p.LogPath(id))
	if err != nil {
		return "", false
	}
	return string(data), true
}
