package rental

import "github.com/cyclepoint/rentalshop-backend/booking"

// Overlaps reports whether an existing booking blocks the requested window.
//
// Only confirmed bookings on the same calendar day are candidates; pending
// and cancelled bookings never reserve inventory. A full-day rental on either
// side occupies the bike for the whole day regardless of clock times.
// Otherwise two half-open [start,end) windows conflict when the requested
// start falls inside the existing window, the requested end falls inside it,
// or the requested window contains the existing one. The three clauses are
// kept as written: collapsing them into a single canonical interval test
// shifts behavior at touching endpoints.
func Overlaps(req Request, b booking.Booking) bool {
	if b.Status != booking.StatusConfirmed {
		return false
	}
	if b.Date != req.Date {
		return false
	}

	if req.Category == booking.CategoryFullDay || b.Category == booking.CategoryFullDay {
		return true
	}

	if req.Start >= b.StartTime && req.Start < b.EndTime {
		return true
	}
	if req.End > b.StartTime && req.End <= b.EndTime {
		return true
	}
	return req.Start <= b.StartTime && req.End >= b.EndTime
}

// ConflictingBookings returns the subset of bookings that overlap the
// requested window.
func ConflictingBookings(req Request, bookings []booking.Booking) []booking.Booking {
	conflicting := make([]booking.Booking, 0, len(bookings))
	for _, b := range bookings {
		if Overlaps(req, b) {
			conflicting = append(conflicting, b)
		}
	}
	return conflicting
}
