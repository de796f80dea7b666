// Package analytics feeds the dashboard. Everything here is read-only
// aggregation over the bookings and fixed-cost tables; the heavy lifting
// lives in SQL views created by the schema bootstrap.
package analytics

type MonthlyRow struct {
	Month    string  `db:"month" json:"month"`
	Bookings int     `db:"bookings" json:"bookings"`
	Revenue  float64 `db:"revenue" json:"revenue"`
	Profit   float64 `db:"-" json:"profit"`
}

type Summary struct {
	FleetSize       int     `db:"fleet_size" json:"fleetSize"`
	ActiveFleetSize int     `db:"active_fleet_size" json:"activeFleetSize"`
	BookingsTotal   int     `db:"bookings_total" json:"bookingsTotal"`
	Confirmed       int     `db:"confirmed" json:"confirmed"`
	Pending         int     `db:"pending" json:"pending"`
	Cancelled       int     `db:"cancelled" json:"cancelled"`
	RevenueTotal    float64 `db:"revenue_total" json:"revenueTotal"`

	// MonthlyFixedCosts is the current active fixed-cost total, not a
	// historical series; the ledger has no effective dates.
	MonthlyFixedCosts float64 `db:"-" json:"monthlyFixedCosts"`
}
