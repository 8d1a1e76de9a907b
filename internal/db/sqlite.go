// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/ndri/hallbook/internal/booking"
)

// SQLite implements booking.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, storeErr("opening database", err)
	}

	if err := db.Ping(); err != nil {
		return nil, storeErr("connecting to database", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// CreateBooking inserts a new booking after verifying the slot is free.
// The conflict check and the insert run in one transaction so two
// candidates for the same date cannot both pass the check before either
// commits. Returns booking.ErrSlotConflict naming the blocking booking
// when the interval overlaps an existing one.
func (s *SQLite) CreateBooking(ctx context.Context, b *booking.Booking) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storeErr("beginning transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	existing, err := listByDateTx(ctx, tx, b.Date)
	if err != nil {
		return err
	}

	if c := booking.FirstConflict(b.Start, b.End, existing); c != nil {
		return fmt.Errorf("%w: conflicts with #%d (%s-%s, booked by %s)",
			booking.ErrSlotConflict, c.ID, c.Start, c.End, c.BookedBy)
	}

	query := `
		INSERT INTO bookings (booking_date, start_time, end_time, booked_by, description)
		VALUES (?, ?, ?, ?, ?)
	`
	result, err := tx.ExecContext(ctx, query,
		b.Date.Format("2006-01-02"),
		b.Start,
		b.End,
		b.BookedBy,
		nullableString(b.Description),
	)
	if err != nil {
		return storeErr("inserting booking", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return storeErr("getting last insert id", err)
	}

	if err := tx.Commit(); err != nil {
		return storeErr("committing transaction", err)
	}

	b.ID = id
	return nil
}

// GetBooking retrieves a booking by ID. Returns nil when not found.
func (s *SQLite) GetBooking(ctx context.Context, id int64) (*booking.Booking, error) {
	query := `
		SELECT id, booking_date, start_time, end_time, booked_by, description
		FROM bookings
		WHERE id = ?
	`

	b, err := scanBooking(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// ListByDate returns all bookings on the given calendar date, ordered by
// start time.
func (s *SQLite) ListByDate(ctx context.Context, date time.Time) ([]*booking.Booking, error) {
	query := `
		SELECT id, booking_date, start_time, end_time, booked_by, description
		FROM bookings
		WHERE booking_date = ?
		ORDER BY start_time ASC
	`

	rows, err := s.db.QueryContext(ctx, query, date.Format("2006-01-02"))
	if err != nil {
		return nil, storeErr("querying bookings", err)
	}
	return collectBookings(rows)
}

// ListAll returns every stored booking, ordered by date then start time.
func (s *SQLite) ListAll(ctx context.Context) ([]*booking.Booking, error) {
	query := `
		SELECT id, booking_date, start_time, end_time, booked_by, description
		FROM bookings
		ORDER BY booking_date, start_time
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storeErr("querying bookings", err)
	}
	return collectBookings(rows)
}

// DeleteBooking removes a booking by ID. The boolean reports whether a
// booking existed; a missing ID is not an error.
func (s *SQLite) DeleteBooking(ctx context.Context, id int64) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = ?`, id)
	if err != nil {
		return false, storeErr("deleting booking", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, storeErr("reading rows affected", err)
	}
	return rows > 0, nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func listByDateTx(ctx context.Context, tx *sql.Tx, date time.Time) ([]*booking.Booking, error) {
	query := `
		SELECT id, booking_date, start_time, end_time, booked_by, description
		FROM bookings
		WHERE booking_date = ?
		ORDER BY start_time ASC
	`

	rows, err := tx.QueryContext(ctx, query, date.Format("2006-01-02"))
	if err != nil {
		return nil, storeErr("querying bookings", err)
	}
	return collectBookings(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*booking.Booking, error) {
	var (
		b           booking.Booking
		bookingDate string
		description sql.NullString
	)

	err := row.Scan(&b.ID, &bookingDate, &b.Start, &b.End, &b.BookedBy, &description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, storeErr("scanning booking", err)
	}

	b.Date, err = parseDate(bookingDate)
	if err != nil {
		return nil, fmt.Errorf("parsing booking date: %w", err)
	}
	if description.Valid {
		b.Description = description.String
	}

	return &b, nil
}

func collectBookings(rows *sql.Rows) ([]*booking.Booking, error) {
	defer func() { _ = rows.Close() }()

	var bookings []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, storeErr("iterating bookings", err)
	}
	return bookings, nil
}

// parseDate parses a date string in the formats SQLite might return.
// Date-only values are parsed in local timezone to match time.Now()
// behavior.
func parseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}

	// SQLite may return DATE-typed values as "2006-01-02T00:00:00Z";
	// extract the date part and treat it as local midnight.
	if len(s) == 20 && s[10] == 'T' && s[19] == 'Z' {
		if t, err := time.ParseInLocation("2006-01-02", s[:10], time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date format: %s", s)
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// storeErr marks a database failure as a store-availability problem so
// callers can match booking.ErrStoreUnavailable without knowing the driver.
func storeErr(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, errors.Join(booking.ErrStoreUnavailable, err))
}
