package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds precomputed lipgloss styles derived from a Theme.
type Styles struct {
	Title       lipgloss.Style
	Header      lipgloss.Style
	Row         lipgloss.Style
	RowSelected lipgloss.Style
	Booked      lipgloss.Style
	Free        lipgloss.Style
	Muted       lipgloss.Style
	Warning     lipgloss.Style
	Status      lipgloss.Style
	Error       lipgloss.Style
	Modal       lipgloss.Style
	ModalTitle  lipgloss.Style
	FieldLabel  lipgloss.Style
	FieldFocus  lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles derives Styles from the provided Theme.
func NewStyles(t Theme) *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Accent)),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Fg)),
		Row: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Fg)),
		RowSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Fg)).
			Background(lipgloss.Color(t.Selection)),
		Booked: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Booked)),
		Free: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Free)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Free)),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Accent)).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Accent)).
			MarginBottom(1),
		FieldLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)),
		FieldFocus: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)),
	}
}
