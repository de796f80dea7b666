package booking

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/cyclepoint/rentalshop-backend/garage"
)

type Category string

const (
	CategoryHourly  Category = "hourly"
	CategoryHalfDay Category = "half-day"
	CategoryFullDay Category = "full-day"
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusPending   Status = "pending"
	StatusCancelled Status = "cancelled"
)

// Booking is a reservation made at the counter or over the phone. Dates are
// calendar days ("2006-01-02") and times are 24-hour "HH:MM" strings, which
// compare correctly as plain strings. Status transitions are free-form; the
// shop moves bookings between statuses as it pleases.
type Booking struct {
	ID           uuid.UUID
	CustomerName string `db:"customer_name"`
	Phone        string
	Email        sql.NullString
	Date         string
	StartTime    string `db:"start_time"`
	EndTime      string `db:"end_time"`
	Category     Category
	NeedsGuide   bool `db:"needs_guide"`
	Status       Status
	TotalPrice   float64   `db:"total_price"`
	CreatedAt    time.Time `db:"created_at"`

	Items []LineItem `db:"-"`
}

// LineItem is one row of the booking form: how many units of a given bike
// group the customer takes. The fields mirror the grouping key used by the
// availability calculator so booked counts subtract cleanly from garage
// totals.
type LineItem struct {
	BookingID   uuid.UUID       `db:"booking_id"`
	Type        garage.BikeType `db:"bike_type"`
	Size        garage.Size
	Suspension  garage.Suspension
	TrailerHook bool `db:"trailer_hook"`
	Count       int
}
