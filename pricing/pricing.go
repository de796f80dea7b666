package pricing

// Table holds the shop's rates. One row per shop, edited from the settings
// screen and read by the price calculator. Amounts are in euro.
type Table struct {
	Hourly  float64 `db:"hourly_rate"`
	HalfDay float64 `db:"half_day_rate"`
	FullDay float64 `db:"full_day_rate"`

	TrailerHourly  float64 `db:"trailer_hourly_rate"`
	TrailerHalfDay float64 `db:"trailer_half_day_rate"`
	TrailerFullDay float64 `db:"trailer_full_day_rate"`

	// GuideHourly is the rate for the optional escort service. Billed once
	// per rental, never per bike.
	GuideHourly float64 `db:"guide_hourly_rate"`
}
