// Package rental holds the availability and pricing rules for the shop.
// Everything in here is a pure function over in-memory data: callers load
// bookings, the garage inventory and the pricing table, and get back remaining
// counts per bike group or a price. Input validation happens at the API
// boundary, not here.
package rental

import (
	"github.com/cyclepoint/rentalshop-backend/booking"
	"github.com/cyclepoint/rentalshop-backend/garage"
)

// Request is a prospective rental window to check the garage against.
type Request struct {
	Date     string
	Start    string
	End      string
	Category booking.Category
}

// GroupKey identifies a set of interchangeable bike units. Size and
// Suspension are empty for trailers, TrailerHook is false where it does not
// apply, so line items and garage units land on the same keys.
type GroupKey struct {
	Type        garage.BikeType
	Size        garage.Size
	Suspension  garage.Suspension
	TrailerHook bool
}

// BikeGroup is a group of interchangeable units with a count. As an
// availability result the count is the number of units still free for the
// requested window.
type BikeGroup struct {
	Type        garage.BikeType   `json:"type"`
	Size        garage.Size       `json:"size,omitempty"`
	Suspension  garage.Suspension `json:"suspension,omitempty"`
	TrailerHook bool              `json:"trailerHook"`
	Count       int               `json:"count"`
}

func (g BikeGroup) key() GroupKey {
	return GroupKey{Type: g.Type, Size: g.Size, Suspension: g.Suspension, TrailerHook: g.TrailerHook}
}
