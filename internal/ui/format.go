package ui

import (
	"fmt"

	"github.com/ndri/hallbook/internal/booking"
)

// PrintBookingRow prints a single booking row with consistent formatting.
func PrintBookingRow(b *booking.Booking, maxDescWidth int) {
	desc := b.Description
	if maxDescWidth > 3 && len(desc) > maxDescWidth {
		desc = desc[:maxDescWidth-3] + "..."
	}

	duration := formatMuted(FormatDuration(b.Duration()))
	fmt.Printf("  #%-4d %s  %s  %s  %s\n",
		b.ID,
		formatBooked(fmt.Sprintf("%s-%s", b.Start, b.End)),
		duration,
		b.BookedBy,
		formatMuted(desc),
	)
}

// FormatDuration renders minutes as "1h30m", "45m" or "2h".
func FormatDuration(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh%dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

// descWidth returns the description column width for the current terminal.
func descWidth() int {
	// Base: "  #1234 HH:MM-HH:MM  1h30m  " plus a name column.
	overhead := 50
	available := termWidth() - overhead
	if available < 20 {
		return 20
	}
	return available
}
