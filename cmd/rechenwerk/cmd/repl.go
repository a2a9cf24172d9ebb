package cmd

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/msto63/rechenwerk/internal/tui/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive parser console",
	Long: `Starts an interactive console that parses each entered line and
shows the resulting trees or the diagnostic.

Commands:
  :tokens <src>  - show the token sequence
  :clear         - clear the output
  :help          - show help
  :q, exit       - quit

Navigation:
  Up/Down   - history
  PgUp/PgDn - scroll
  Ctrl+C    - quit`,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	// Log lines would corrupt the alt screen.
	engine, err := newEngine(appConfig, logger.WithOutput(io.Discard))
	if err != nil {
		return err
	}

	p := tea.NewProgram(repl.New(engine), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "repl error: %v\n", err)
		return errReported
	}
	return nil
}
