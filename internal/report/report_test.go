package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ndri/hallbook/internal/booking"
)

func testBookings(t *testing.T) []*booking.Booking {
	t.Helper()
	date, err := time.ParseInLocation("2006-01-02", "2025-01-09", time.Local)
	if err != nil {
		t.Fatalf("failed to parse date: %v", err)
	}
	return []*booking.Booking{
		{ID: 1, Date: date, Start: "09:00", End: "10:00", BookedBy: "Alice", Description: "Team sync"},
		{ID: 2, Date: date, Start: "14:00", End: "15:30", BookedBy: "Bob", Description: ""},
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, testBookings(t)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	want := "ID: 1, Date: 2025-01-09, Start Time: 09:00, End Time: 10:00, Booked By: Alice, Description: Team sync\n" +
		"ID: 2, Date: 2025-01-09, Start Time: 14:00, End Time: 15:30, Booked By: Bob, Description: \n"
	if got := buf.String(); got != want {
		t.Errorf("report mismatch:\ngot:\n%swant:\n%s", got, want)
	}
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty report has content: %q", buf.String())
	}
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	if err := Export(path, testBookings(t)); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading exported report: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "ID: 1, Date: 2025-01-09,") {
		t.Errorf("unexpected first line: %q", lines[0])
	}
}
