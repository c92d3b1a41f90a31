package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wharf-dev/wharf/internal/config"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render markdown from stdin with highlighted code blocks",
	Long: `Reads assistant-style markdown from stdin and writes the rendered
form to stdout, with fenced code blocks syntax highlighted. Useful for
piping transcript excerpts or testing display settings.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("render reads from stdin; pipe markdown in")
	}

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolving home directory: %w", err)
	}
	cfg := config.Load(home)

	fmt.Print(newRenderer(cfg).RenderResponse(string(input)))
	return nil
}
