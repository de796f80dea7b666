package rental

import (
	"sort"

	"github.com/cyclepoint/rentalshop-backend/booking"
	"github.com/cyclepoint/rentalshop-backend/garage"
)

// ComputeAvailability returns, for each bike group in the garage, how many
// units are still free for the requested window. Groups with nothing left are
// dropped. Groups referenced by a stale booking but absent from the inventory
// are never reported. The function is pure and idempotent: it mutates neither
// the bookings nor the units.
func ComputeAvailability(req Request, bookings []booking.Booking, units []garage.BikeUnit) []BikeGroup {
	booked := make(map[GroupKey]int)
	for _, b := range ConflictingBookings(req, bookings) {
		for _, item := range b.Items {
			key := GroupKey{Type: item.Type, Size: item.Size, Suspension: item.Suspension, TrailerHook: item.TrailerHook}
			booked[key] += item.Count
		}
	}

	inventory := IndexInventory(units)

	remaining := make([]BikeGroup, 0, len(inventory))
	for key, g := range inventory {
		g.Count -= booked[key]
		if g.Count <= 0 {
			continue
		}
		remaining = append(remaining, g)
	}

	// Map iteration order is random; callers and tests want a stable result.
	sort.Slice(remaining, func(i, j int) bool {
		a, b := remaining[i].key(), remaining[j].key()
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		if a.Size != b.Size {
			return a.Size < b.Size
		}
		if a.Suspension != b.Suspension {
			return a.Suspension < b.Suspension
		}
		return !a.TrailerHook && b.TrailerHook
	})

	return remaining
}
