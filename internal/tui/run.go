package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/plucky/plucky/internal/types"
)

// Run starts the interactive match browser. rescanFunc re-runs the scan
// that produced matches; it may be nil when rescanning is not possible
// (for example when input came from stdin).
func Run(matches []types.Match, rescanFunc func() ([]types.Match, error)) error {
	m := NewModel(matches, rescanFunc)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
