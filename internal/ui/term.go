package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Booked slots: bold cyan
	colorBooked = color.New(color.FgCyan, color.Bold)

	// Free slots: green
	colorFree = color.New(color.FgGreen)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Warnings and rejections: yellow
	colorWarn = color.New(color.FgYellow)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// formatBooked formats text for a booked slot.
func formatBooked(s string) string {
	return colorBooked.Sprint(s)
}

// formatFree formats text for a free window.
func formatFree(s string) string {
	return colorFree.Sprint(s)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatWarn formats text for warnings.
func formatWarn(s string) string {
	return colorWarn.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
