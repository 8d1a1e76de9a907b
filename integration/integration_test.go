package integration

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ndri/hallbook/internal/booking"
	"github.com/ndri/hallbook/internal/db"
	"github.com/ndri/hallbook/internal/report"
)

// newTestService wires a Service to a real SQLite store with the clock
// pinned so date policy checks are deterministic.
func newTestService(t *testing.T) *booking.Service {
	t.Helper()
	repo, err := db.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	now := func() time.Time {
		return time.Date(2025, 1, 9, 10, 30, 0, 0, time.Local)
	}
	return booking.NewServiceAt(repo, now)
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		t.Fatalf("failed to parse date %q: %v", s, err)
	}
	return d
}

func TestBookingLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	b, err := svc.Create(ctx, "2025-01-10", "9:00 AM", "10:30 AM", "Alice", "Quarterly review")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if b.Start != "09:00" || b.End != "10:30" {
		t.Errorf("stored times %s-%s, want canonical 09:00-10:30", b.Start, b.End)
	}

	// Overlap across the stored booking is rejected.
	_, err = svc.Create(ctx, "2025-01-10", "10:00 AM", "11:00 AM", "Bob", "")
	if !errors.Is(err, booking.ErrSlotConflict) {
		t.Errorf("overlapping create error = %v, want ErrSlotConflict", err)
	}

	// Back-to-back is admitted.
	adj, err := svc.Create(ctx, "2025-01-10", "10:30 AM", "11:30 AM", "Bob", "")
	if err != nil {
		t.Fatalf("adjacent create failed: %v", err)
	}

	sched, err := svc.Schedule(ctx, day(t, "2025-01-10"))
	if err != nil {
		t.Fatalf("Schedule failed: %v", err)
	}
	if len(sched) != 2 {
		t.Fatalf("schedule has %d bookings, want 2", len(sched))
	}
	if sched[0].ID != b.ID || sched[1].ID != adj.ID {
		t.Errorf("schedule order %d,%d, want %d,%d", sched[0].ID, sched[1].ID, b.ID, adj.ID)
	}

	// Cancel frees the slot for rebooking.
	if err := svc.Cancel(ctx, b.ID); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	if err := svc.Cancel(ctx, b.ID); !errors.Is(err, booking.ErrNotFound) {
		t.Errorf("second cancel error = %v, want ErrNotFound", err)
	}
	if _, err := svc.Create(ctx, "2025-01-10", "9:30 AM", "10:30 AM", "Carol", ""); err != nil {
		t.Errorf("rebooking freed slot failed: %v", err)
	}
}

func TestDatePolicyAgainstStore(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// Clock is pinned to 2025-01-09; same-day booking is allowed.
	if _, err := svc.Create(ctx, "2025-01-09", "2:00 PM", "3:00 PM", "Alice", ""); err != nil {
		t.Errorf("same-day create failed: %v", err)
	}

	_, err := svc.Create(ctx, "2025-01-08", "2:00 PM", "3:00 PM", "Alice", "")
	if !errors.Is(err, booking.ErrPastDate) {
		t.Errorf("past-date create error = %v, want ErrPastDate", err)
	}
}

func TestReportFromStore(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "2025-01-10", "9:00 AM", "10:00 AM", "Alice", "Sync"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Create(ctx, "2025-01-10", "1:00 PM", "2:00 PM", "Bob", ""); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	all, err := svc.AllBookings(ctx)
	if err != nil {
		t.Fatalf("AllBookings failed: %v", err)
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, all); err != nil {
		t.Fatalf("report.Write failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("report has %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "Booked By: Alice") || !strings.Contains(lines[0], "Start Time: 09:00") {
		t.Errorf("unexpected report line: %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "Description: ") {
		t.Errorf("empty description rendered oddly: %q", lines[1])
	}
}

func TestAvailabilityAgainstStore(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "2025-01-10", "10:00 AM", "12:00 PM", "Alice", ""); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	free, err := svc.Availability(ctx, day(t, "2025-01-10"), "08:00", "18:00")
	if err != nil {
		t.Fatalf("Availability failed: %v", err)
	}

	want := []booking.Window{
		{Start: "08:00", End: "10:00"},
		{Start: "12:00", End: "18:00"},
	}
	if len(free) != len(want) {
		t.Fatalf("got %d windows, want %d: %+v", len(free), len(want), free)
	}
	for i, w := range want {
		if free[i] != w {
			t.Errorf("window %d = %+v, want %+v", i, free[i], w)
		}
	}
}
