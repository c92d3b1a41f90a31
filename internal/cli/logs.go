package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wharf-dev/wharf/internal/config"
	"github.com/wharf-dev/wharf/internal/log"
)

var logLines int

var logsCmd = &cobra.Command{
	Use:   "logs <session-id>",
	Short: "Print the log file recorded for a session",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogs,
}

func init() {
	logsCmd.Flags().IntVarP(&logLines, "lines", "n", 50, "Number of trailing lines to print (0 for the whole file)")
}

func runLogs(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolving home directory: %w", err)
	}
	cfg := config.Load(home)

	prov, err := selectedProvider(cfg, home)
	if err != nil {
		return err
	}

	id := args[0]
	if s, ok := findByPrefix(prov, id); ok {
		id = s.ID
	}

	content, ok := providerLogs{prov}.Logs(id)
	if !ok {
		fmt.Printf("No logs found for session %s\n", id)
		return nil
	}

	if events, logErr := log.NewLogger(config.Dir(home)); logErr == nil {
		_ = events.Append(log.LogEvent{Event: log.EventLogsViewed, Provider: prov.Name(), SessionID: id})
	}

	fmt.Print(lastLines(content, logLines))
	return nil
}

// lastLines keeps the final n lines of content. n <= 0 means everything.
func lastLines(content string, n int) string {
	if n <= 0 {
		return content
	}
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	if len(lines) <= n {
		return content
	}
	return strings.Join(lines[len(lines)-n:], "\n") + "\n"
}
