package db

import "fmt"

// migrate runs database migrations. It is safe to run on every startup;
// every step is idempotent and none destroys existing rows.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS bookings (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			booking_date TEXT NOT NULL,
			start_time   TEXT NOT NULL,
			end_time     TEXT NOT NULL,
			booked_by    TEXT NOT NULL,
			description  TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_bookings_date ON bookings(booking_date);
	`

	if _, err := s.db.Exec(query); err != nil {
		return storeErr("creating bookings table", err)
	}

	return s.ensureDescriptionColumn()
}

// ensureDescriptionColumn adds the description column to databases
// created before it existed. SQLite has no ADD COLUMN IF NOT EXISTS, so
// the table layout is probed first.
func (s *SQLite) ensureDescriptionColumn() error {
	rows, err := s.db.Query(`PRAGMA table_info(bookings)`)
	if err != nil {
		return storeErr("reading table info", err)
	}
	defer func() { _ = rows.Close() }()

	found := false
	for rows.Next() {
		var (
			cid        int
			name       string
			colType    string
			notNull    int
			defaultVal any
			pk         int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &defaultVal, &pk); err != nil {
			return storeErr("scanning table info", err)
		}
		if name == "description" {
			found = true
		}
	}
	if err := rows.Err(); err != nil {
		return storeErr("iterating table info", err)
	}
	if found {
		return nil
	}

	if _, err := s.db.Exec(`ALTER TABLE bookings ADD COLUMN description TEXT`); err != nil {
		return fmt.Errorf("adding description column: %w", err)
	}
	return nil
}
