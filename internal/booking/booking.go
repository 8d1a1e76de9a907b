// Package booking defines the core domain types for hallbook.
package booking

import (
	"errors"
	"time"
)

// Validation errors.
var (
	ErrInvalidTimeFormat = errors.New("time must be in 12-hour H:MM AM/PM format")
	ErrMissingField      = errors.New("booked by, start time and end time are required")
	ErrInvalidInterval   = errors.New("end time must be after start time")
	ErrPastDate          = errors.New("cannot book past dates")
)

// Domain errors.
var (
	ErrSlotConflict     = errors.New("time slot is already booked")
	ErrNotFound         = errors.New("booking not found")
	ErrStoreUnavailable = errors.New("booking store unavailable")
)

// Booking represents a reservation of the hall for a half-open time
// window [Start, End) on a calendar date.
type Booking struct {
	ID          int64
	Date        time.Time // calendar date, midnight local
	Start       string    // "HH:MM" canonical 24-hour form
	End         string    // "HH:MM" canonical 24-hour form
	BookedBy    string
	Description string // optional
	CreatedAt   time.Time
}

// Duration returns the booking length in minutes.
func (b *Booking) Duration() int {
	return timeToMinutes(b.End) - timeToMinutes(b.Start)
}

// OverlapsWith returns true if this booking shares any instant with another.
// Bookings on different dates never overlap.
func (b *Booking) OverlapsWith(other *Booking) bool {
	if other == nil {
		return false
	}
	if !b.Date.Equal(other.Date) {
		return false
	}
	return Overlaps(b.Start, b.End, other.Start, other.End)
}

// timeToMinutes converts canonical "HH:MM" to minutes since midnight.
// Returns 0 for invalid input.
func timeToMinutes(t string) int {
	if len(t) < 5 {
		return 0
	}
	hours := int(t[0]-'0')*10 + int(t[1]-'0')
	mins := int(t[3]-'0')*10 + int(t[4]-'0')
	return hours*60 + mins
}
