package booking

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var (
	ErrNotFound = errors.New("booking not found")
	ErrNoItems  = errors.New("booking has no line items")
)

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// GetByID fetches a single booking with its line items.
func (r *Repository) GetByID(ctx context.Context, id string) (Booking, error) {
	var b Booking
	err := r.db.GetContext(ctx, &b, getByIDQuery, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Booking{}, ErrNotFound
	}
	if err != nil {
		return Booking{}, err
	}

	err = r.db.SelectContext(ctx, &b.Items, getItemsQuery, b.ID)
	return b, err
}

const getByIDQuery = `SELECT * FROM bookings WHERE id = ?`

const getItemsQuery = `SELECT * FROM booking_items WHERE booking_id = ?`

// GetByDate fetches all bookings on a calendar day, any status, with their
// line items. The availability calculator filters by status itself.
func (r *Repository) GetByDate(ctx context.Context, date string) ([]Booking, error) {
	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings, getByDateQuery, date)
	if err != nil {
		return nil, err
	}
	return r.attachItems(ctx, bookings)
}

const getByDateQuery = `SELECT * FROM bookings WHERE date = ? ORDER BY start_time ASC`

// GetAll fetches every booking sorted by date then start time.
func (r *Repository) GetAll(ctx context.Context) ([]Booking, error) {
	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings, getAllQuery)
	if err != nil {
		return nil, err
	}
	return r.attachItems(ctx, bookings)
}

const getAllQuery = `SELECT * FROM bookings ORDER BY date ASC, start_time ASC`

func (r *Repository) attachItems(ctx context.Context, bookings []Booking) ([]Booking, error) {
	for i := range bookings {
		err := r.db.SelectContext(ctx, &bookings[i].Items, getItemsQuery, bookings[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return bookings, nil
}

// Create inserts a booking and its line items in one transaction.
func (r *Repository) Create(ctx context.Context, b *Booking) error {
	if len(b.Items) == 0 {
		return ErrNoItems
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.GetContext(ctx, b, createBookingQuery,
		b.ID, b.CustomerName, b.Phone, b.Email, b.Date, b.StartTime, b.EndTime,
		b.Category, b.NeedsGuide, b.Status, b.TotalPrice)
	if err != nil {
		return err
	}

	if err := insertItems(ctx, tx, b); err != nil {
		return err
	}

	return tx.Commit()
}

const createBookingQuery = `
INSERT INTO bookings (id, customer_name, phone, email, date, start_time, end_time,
                      category, needs_guide, status, total_price, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, datetime('now'))
RETURNING *
`

// Update rewrites a booking and replaces its line items in one transaction.
func (r *Repository) Update(ctx context.Context, b *Booking) error {
	if len(b.Items) == 0 {
		return ErrNoItems
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, updateBookingQuery,
		b.CustomerName, b.Phone, b.Email, b.Date, b.StartTime, b.EndTime,
		b.Category, b.NeedsGuide, b.Status, b.TotalPrice, b.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, deleteItemsQuery, b.ID); err != nil {
		return err
	}
	if err := insertItems(ctx, tx, b); err != nil {
		return err
	}

	return tx.Commit()
}

const updateBookingQuery = `
UPDATE bookings
SET customer_name = ?, phone = ?, email = ?, date = ?, start_time = ?, end_time = ?,
    category = ?, needs_guide = ?, status = ?, total_price = ?
WHERE id = ?
`

const deleteItemsQuery = `DELETE FROM booking_items WHERE booking_id = ?`

func insertItems(ctx context.Context, tx *sqlx.Tx, b *Booking) error {
	for i := range b.Items {
		b.Items[i].BookingID = b.ID
		_, err := tx.ExecContext(ctx, insertItemQuery,
			b.ID, b.Items[i].Type, b.Items[i].Size, b.Items[i].Suspension,
			b.Items[i].TrailerHook, b.Items[i].Count)
		if err != nil {
			return err
		}
	}
	return nil
}

const insertItemQuery = `
INSERT INTO booking_items (booking_id, bike_type, size, suspension, trailer_hook, count)
VALUES (?, ?, ?, ?, ?, ?)
`

// Delete hard-deletes a booking. The shop never archives; line items go with
// it via ON DELETE CASCADE.
func (r *Repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteBookingQuery, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

const deleteBookingQuery = `DELETE FROM bookings WHERE id = ?`
