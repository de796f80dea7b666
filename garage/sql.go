package garage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("bike unit not found")

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetUnits(ctx context.Context) ([]BikeUnit, error) {
	var units []BikeUnit
	err := r.db.SelectContext(ctx, &units, getUnits)
	return units, err
}

const getUnits = `SELECT * FROM bike_units ORDER BY created_at ASC`

// GetActiveUnits fetches the units the availability calculator works over.
func (r *Repository) GetActiveUnits(ctx context.Context) ([]BikeUnit, error) {
	var units []BikeUnit
	err := r.db.SelectContext(ctx, &units, getActiveUnits)
	return units, err
}

const getActiveUnits = `SELECT * FROM bike_units WHERE active = 1`

func (r *Repository) GetUnit(ctx context.Context, id string) (BikeUnit, error) {
	var unit BikeUnit
	err := r.db.GetContext(ctx, &unit, getUnit, id)
	if errors.Is(err, sql.ErrNoRows) {
		return unit, ErrNotFound
	}
	return unit, err
}

const getUnit = `SELECT * FROM bike_units WHERE id = ?`

func (r *Repository) CreateUnit(ctx context.Context, unit *BikeUnit) error {
	err := r.db.GetContext(ctx, unit, createUnit,
		unit.ID, unit.Type, unit.Size, unit.Suspension, unit.TrailerHook, unit.Active)
	return err
}

const createUnit = `
INSERT INTO bike_units (id, bike_type, size, suspension, trailer_hook, active, created_at)
VALUES (?, ?, ?, ?, ?, ?, datetime('now'))
RETURNING *
`

func (r *Repository) UpdateUnit(ctx context.Context, unit *BikeUnit) error {
	res, err := r.db.ExecContext(ctx, updateUnit,
		unit.Type, unit.Size, unit.Suspension, unit.TrailerHook, unit.Active, unit.ID)
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

const updateUnit = `
UPDATE bike_units
SET bike_type = ?, size = ?, suspension = ?, trailer_hook = ?, active = ?
WHERE id = ?
`

// RetireUnit takes a unit out of the rentable fleet without deleting its row.
func (r *Repository) RetireUnit(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, retireUnit, id)
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

const retireUnit = `UPDATE bike_units SET active = 0 WHERE id = ?`

func (r *Repository) DeleteUnit(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteUnit, id)
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

const deleteUnit = `DELETE FROM bike_units WHERE id = ?`
