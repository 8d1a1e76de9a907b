package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ndri/hallbook/internal/booking"
	"github.com/ndri/hallbook/internal/config"
)

// Run starts the interactive day view.
func Run(svc *booking.Service, cfg *config.Config) error {
	p := tea.NewProgram(New(svc, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
