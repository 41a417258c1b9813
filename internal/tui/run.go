package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cartlens/cartlens/internal/model"
)

// Run starts the interactive dashboard over an already-loaded dataset
// and blocks until the user quits.
func Run(lines []model.OrderLine) error {
	p := tea.NewProgram(newModel(lines), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}
	return nil
}
