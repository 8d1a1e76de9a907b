package booking

import (
	"context"
	"time"
)

// Repository defines the storage interface for bookings.
type Repository interface {
	// CreateBooking inserts a new booking and assigns its ID.
	// The conflict check against the date's existing bookings and the
	// insert run as one atomic unit; no partial write is ever visible.
	// Returns ErrSlotConflict if the interval overlaps an existing
	// booking on the same date.
	CreateBooking(ctx context.Context, b *Booking) error

	// GetBooking retrieves a booking by ID. Returns nil when not found.
	GetBooking(ctx context.Context, id int64) (*Booking, error)

	// ListByDate returns all bookings on the given calendar date,
	// ordered by start time.
	ListByDate(ctx context.Context, date time.Time) ([]*Booking, error)

	// ListAll returns every stored booking, ordered by date then start time.
	ListAll(ctx context.Context) ([]*Booking, error)

	// DeleteBooking removes a booking by ID. The boolean reports whether
	// a booking existed; a missing ID is a normal negative outcome, not
	// an error.
	DeleteBooking(ctx context.Context, id int64) (bool, error)

	// Close releases any resources held by the repository.
	Close() error
}
