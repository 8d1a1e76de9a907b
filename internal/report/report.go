// Package report serializes bookings to the line-oriented export format
// consumed by external reporting tools.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ndri/hallbook/internal/booking"
)

// DefaultPath is where Export writes when no path is configured.
const DefaultPath = "bookings_report.txt"

// Write serializes bookings to w, one line per booking. The field order
// is a durable contract: ID, Date, Start Time, End Time, Booked By,
// Description. Bookings are written in the order given; callers sort.
func Write(w io.Writer, bookings []*booking.Booking) error {
	for _, b := range bookings {
		_, err := fmt.Fprintf(w, "ID: %d, Date: %s, Start Time: %s, End Time: %s, Booked By: %s, Description: %s\n",
			b.ID,
			b.Date.Format("2006-01-02"),
			b.Start,
			b.End,
			b.BookedBy,
			b.Description,
		)
		if err != nil {
			return fmt.Errorf("writing report line: %w", err)
		}
	}
	return nil
}

// Export writes the report for bookings to the given file path,
// replacing any previous report.
func Export(path string, bookings []*booking.Booking) error {
	if path == "" {
		path = DefaultPath
	}

	var sb strings.Builder
	if err := Write(&sb, bookings); err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("writing report file: %w", err)
	}
	return nil
}
