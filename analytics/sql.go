package analytics

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

// Monthly returns bookings and confirmed revenue per calendar month, oldest
// first, with profit derived against the given monthly fixed-cost total.
func (r *Repository) Monthly(ctx context.Context, monthlyCosts float64) ([]MonthlyRow, error) {
	var rows []MonthlyRow
	err := r.db.SelectContext(ctx, &rows, monthlyQuery)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Profit = rows[i].Revenue - monthlyCosts
	}
	return rows, nil
}

const monthlyQuery = `SELECT month, bookings, revenue FROM monthly_revenue ORDER BY month ASC`

func (r *Repository) Summary(ctx context.Context) (Summary, error) {
	var s Summary
	err := r.db.GetContext(ctx, &s, summaryQuery)
	return s, err
}

const summaryQuery = `
SELECT
  (SELECT COUNT(*) FROM bike_units)                                         AS fleet_size,
  (SELECT COUNT(*) FROM bike_units WHERE active = 1)                        AS active_fleet_size,
  (SELECT COUNT(*) FROM bookings)                                           AS bookings_total,
  (SELECT COUNT(*) FROM bookings WHERE status = 'confirmed')                AS confirmed,
  (SELECT COUNT(*) FROM bookings WHERE status = 'pending')                  AS pending,
  (SELECT COUNT(*) FROM bookings WHERE status = 'cancelled')                AS cancelled,
  (SELECT COALESCE(SUM(total_price), 0) FROM bookings
    WHERE status = 'confirmed')                                             AS revenue_total
`
