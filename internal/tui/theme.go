// Package tui provides the interactive day view for hallbook.
package tui

import "strings"

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name      string
	Bg        string // base background
	Fg        string // primary foreground
	FgMuted   string // secondary text
	Accent    string // title, borders
	Booked    string // booked slot rows
	Free      string // free windows
	Warning   string // confirm prompts, errors
	Selection string // cursor row background
}

var themes = map[string]Theme{
	"mocha": {
		Name:      "mocha",
		Bg:        "#1e1e2e",
		Fg:        "#cdd6f4",
		FgMuted:   "#6c7086",
		Accent:    "#89b4fa",
		Booked:    "#89dceb",
		Free:      "#a6e3a1",
		Warning:   "#f9e2af",
		Selection: "#45475a",
	},
	"latte": {
		Name:      "latte",
		Bg:        "#eff1f5",
		Fg:        "#4c4f69",
		FgMuted:   "#9ca0b0",
		Accent:    "#1e66f5",
		Booked:    "#179299",
		Free:      "#40a02b",
		Warning:   "#df8e1d",
		Selection: "#ccd0da",
	},
}

// LoadTheme returns the named theme, falling back to mocha.
func LoadTheme(name string) Theme {
	if t, ok := themes[strings.ToLower(name)]; ok {
		return t
	}
	return themes["mocha"]
}

// AvailableThemes returns the list of theme names.
func AvailableThemes() []string {
	return []string{"mocha", "latte"}
}

// IsAvailableTheme returns true if name is a known theme.
func IsAvailableTheme(name string) bool {
	_, ok := themes[strings.ToLower(name)]
	return ok
}
