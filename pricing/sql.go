package pricing

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Get returns the shop's pricing table. The schema bootstrap seeds the row,
// so it always exists.
func (r *Repository) Get(ctx context.Context) (Table, error) {
	var t Table
	err := r.db.GetContext(ctx, &t, getTable)
	return t, err
}

const getTable = `
SELECT hourly_rate, half_day_rate, full_day_rate,
       trailer_hourly_rate, trailer_half_day_rate, trailer_full_day_rate,
       guide_hourly_rate
FROM pricing WHERE id = 1
`

func (r *Repository) Update(ctx context.Context, t Table) error {
	_, err := r.db.ExecContext(ctx, updateTable,
		t.Hourly, t.HalfDay, t.FullDay,
		t.TrailerHourly, t.TrailerHalfDay, t.TrailerFullDay,
		t.GuideHourly)
	return err
}

const updateTable = `
UPDATE pricing
SET hourly_rate = ?, half_day_rate = ?, full_day_rate = ?,
    trailer_hourly_rate = ?, trailer_half_day_rate = ?, trailer_full_day_rate = ?,
    guide_hourly_rate = ?
WHERE id = 1
`
