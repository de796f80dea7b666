// Package sqlitedb opens the shop database and brings it up to the expected
// schema. The shop runs on a single computer, so the database is an embedded
// SQLite file next to the binary.
package sqlitedb

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Open connects to the SQLite database at path, applies the PRAGMA tuning and
// ensures schema, indexes and views exist. Use ":memory:" in tests.
func Open(ctx context.Context, path string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "sqlite3", path)
	if err != nil {
		return nil, err
	}

	// SQLite has a single writer; one pooled connection avoids SQLITE_BUSY
	// and keeps ":memory:" databases from splitting per connection.
	db.SetMaxOpenConns(1)

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply %q: %w", pragma, err)
		}
	}

	if err := ensureSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = NORMAL",
	"PRAGMA foreign_keys = ON",
	"PRAGMA busy_timeout = 5000",
}

func ensureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS bike_units (
  id           TEXT PRIMARY KEY,
  bike_type    TEXT NOT NULL,
  size         TEXT NOT NULL DEFAULT '',
  suspension   TEXT NOT NULL DEFAULT '',
  trailer_hook INTEGER NOT NULL DEFAULT 0,
  active       INTEGER NOT NULL DEFAULT 1,
  created_at   TIMESTAMP NOT NULL
)`,

	`CREATE TABLE IF NOT EXISTS bookings (
  id            TEXT PRIMARY KEY,
  customer_name TEXT NOT NULL,
  phone         TEXT NOT NULL,
  email         TEXT,
  date          TEXT NOT NULL,
  start_time    TEXT NOT NULL,
  end_time      TEXT NOT NULL,
  category      TEXT NOT NULL,
  needs_guide   INTEGER NOT NULL DEFAULT 0,
  status        TEXT NOT NULL DEFAULT 'confirmed',
  total_price   REAL NOT NULL DEFAULT 0,
  created_at    TIMESTAMP NOT NULL
)`,

	`CREATE TABLE IF NOT EXISTS booking_items (
  booking_id   TEXT NOT NULL REFERENCES bookings(id) ON DELETE CASCADE,
  bike_type    TEXT NOT NULL,
  size         TEXT NOT NULL DEFAULT '',
  suspension   TEXT NOT NULL DEFAULT '',
  trailer_hook INTEGER NOT NULL DEFAULT 0,
  count        INTEGER NOT NULL
)`,

	`CREATE TABLE IF NOT EXISTS pricing (
  id                    INTEGER PRIMARY KEY CHECK (id = 1),
  hourly_rate           REAL NOT NULL,
  half_day_rate         REAL NOT NULL,
  full_day_rate         REAL NOT NULL,
  trailer_hourly_rate   REAL NOT NULL,
  trailer_half_day_rate REAL NOT NULL,
  trailer_full_day_rate REAL NOT NULL,
  guide_hourly_rate     REAL NOT NULL
)`,

	`CREATE TABLE IF NOT EXISTS fixed_costs (
  id             TEXT PRIMARY KEY,
  label          TEXT NOT NULL,
  monthly_amount REAL NOT NULL,
  category       TEXT NOT NULL,
  active         INTEGER NOT NULL DEFAULT 1,
  created_at     TIMESTAMP NOT NULL
)`,

	`CREATE INDEX IF NOT EXISTS idx_bookings_date ON bookings(date)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_status ON bookings(status)`,
	`CREATE INDEX IF NOT EXISTS idx_booking_items_booking ON booking_items(booking_id)`,

	`CREATE VIEW IF NOT EXISTS monthly_revenue AS
SELECT substr(date, 1, 7) AS month,
       COUNT(*)           AS bookings,
       SUM(total_price)   AS revenue
FROM bookings
WHERE status = 'confirmed'
GROUP BY substr(date, 1, 7)`,

	// Seed rates so the settings screen always has a row to edit.
	`INSERT OR IGNORE INTO pricing
  (id, hourly_rate, half_day_rate, full_day_rate,
   trailer_hourly_rate, trailer_half_day_rate, trailer_full_day_rate,
   guide_hourly_rate)
VALUES (1, 15, 45, 70, 8, 25, 35, 25)`,
}
