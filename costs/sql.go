package costs

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("cost entry not found")

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetEntries(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	err := r.db.SelectContext(ctx, &entries, getEntries)
	return entries, err
}

const getEntries = `SELECT * FROM fixed_costs ORDER BY created_at ASC`

func (r *Repository) CreateEntry(ctx context.Context, e *Entry) error {
	err := r.db.GetContext(ctx, e, createEntry,
		e.ID, e.Label, e.MonthlyAmount, e.Category.String(), e.Active)
	return err
}

const createEntry = `
INSERT INTO fixed_costs (id, label, monthly_amount, category, active, created_at)
VALUES (?, ?, ?, ?, ?, datetime('now'))
RETURNING *
`

func (r *Repository) DeleteEntry(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteEntry, id)
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

const deleteEntry = `DELETE FROM fixed_costs WHERE id = ?`

// MonthlyTotal sums the active fixed costs, the number the profit view
// subtracts from each month's revenue.
func (r *Repository) MonthlyTotal(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.GetContext(ctx, &total, monthlyTotal)
	return total, err
}

const monthlyTotal = `SELECT COALESCE(SUM(monthly_amount), 0) FROM fixed_costs WHERE active = 1`
