// ABOUTME: TUI subcommand
// ABOUTME: Launches the full-screen terminal interface
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/harperreed/proxvenda/store"
	"github.com/harperreed/proxvenda/tui"
)

// TUICommand starts the interactive terminal interface on a state snapshot.
func TUICommand(s *store.Store, args []string) error {
	st, err := s.Load()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	p := tea.NewProgram(tui.NewModel(st), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI failed: %w", err)
	}

	return nil
}
