package booking

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/ndri/hallbook/internal/dateutil"
)

// Service is the admission check for candidate bookings. Every booking
// enters the store through Create and leaves it through Cancel; nothing
// else mutates bookings, which is what keeps the per-date intervals
// pairwise non-overlapping.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a booking service over the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// NewServiceAt is like NewService but with an injected clock, used by
// tests to pin "today".
func NewServiceAt(repo Repository, now func() time.Time) *Service {
	return &Service{repo: repo, now: now}
}

// Create validates a candidate booking and commits it if the slot is free.
// date is "YYYY-MM-DD" (empty means today); start and end are 12-hour
// display strings like "9:00 AM".
//
// Rejections, in order: ErrPastDate for dates before today (booking for
// today is allowed; an earlier variant of this rule also rejected
// same-day bookings), ErrMissingField, ErrInvalidTimeFormat,
// ErrInvalidInterval, ErrSlotConflict. A rejected candidate leaves the
// store untouched.
func (s *Service) Create(ctx context.Context, date, start, end, bookedBy, description string) (*Booking, error) {
	day, err := dateutil.ParseDate(date)
	if err != nil {
		return nil, err
	}
	if day.Before(dateutil.TruncateToDay(s.now())) {
		return nil, fmt.Errorf("%w: %s", ErrPastDate, day.Format("2006-01-02"))
	}

	if strings.TrimSpace(bookedBy) == "" || start == "" || end == "" {
		return nil, ErrMissingField
	}

	startC, err := NormalizeTime(start)
	if err != nil {
		return nil, fmt.Errorf("start time: %w", err)
	}
	endC, err := NormalizeTime(end)
	if err != nil {
		return nil, fmt.Errorf("end time: %w", err)
	}

	if endC <= startC {
		return nil, fmt.Errorf("%w: %s-%s", ErrInvalidInterval, startC, endC)
	}

	b := &Booking{
		Date:        day,
		Start:       startC,
		End:         endC,
		BookedBy:    strings.TrimSpace(bookedBy),
		Description: strings.TrimSpace(description),
		CreatedAt:   s.now(),
	}

	if err := s.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Cancel removes a booking by ID. Cancellation is a hard delete; the ID
// is never reused. Returns ErrNotFound when no booking matched.
func (s *Service) Cancel(ctx context.Context, id int64) error {
	removed, err := s.repo.DeleteBooking(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return nil
}

// Schedule returns the date's bookings in presentation order (start time
// ascending).
func (s *Service) Schedule(ctx context.Context, date time.Time) ([]*Booking, error) {
	bookings, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(bookings, func(a, b *Booking) int {
		return compareTimes(a.Start, b.Start)
	})
	return bookings, nil
}

// AllBookings returns every booking ordered by date then start time.
func (s *Service) AllBookings(ctx context.Context) ([]*Booking, error) {
	bookings, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(bookings, func(a, b *Booking) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return compareTimes(a.Start, b.Start)
	})
	return bookings, nil
}

// Availability returns the free windows for a date within the hall's
// operating hours (canonical "HH:MM" bounds).
func (s *Service) Availability(ctx context.Context, date time.Time, dayStart, dayEnd string) ([]Window, error) {
	bookings, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return FreeSlots(dayStart, dayEnd, bookings), nil
}
