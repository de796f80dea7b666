package rental

import (
	"testing"

	"github.com/cyclepoint/rentalshop-backend/booking"
)

func confirmed(date, start, end string, cat booking.Category) booking.Booking {
	return booking.Booking{
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Category:  cat,
		Status:    booking.StatusConfirmed,
	}
}

func hourlyRequest(date, start, end string) Request {
	return Request{Date: date, Start: start, End: end, Category: booking.CategoryHourly}
}

func TestOverlaps_FullDayOverridesClockTimes(t *testing.T) {
	b := confirmed("2026-06-01", "09:00", "10:00", booking.CategoryFullDay)

	// Any same-day window conflicts with a full-day booking.
	windows := [][2]string{
		{"06:00", "07:00"},
		{"09:00", "10:00"},
		{"18:00", "22:00"},
	}
	for _, w := range windows {
		if !Overlaps(hourlyRequest("2026-06-01", w[0], w[1]), b) {
			t.Errorf("expected overlap with full-day booking for window %s-%s", w[0], w[1])
		}
	}

	// And the other way around: a full-day request conflicts with any
	// same-day booking.
	req := Request{Date: "2026-06-01", Start: "09:00", End: "10:00", Category: booking.CategoryFullDay}
	existing := confirmed("2026-06-01", "15:00", "16:00", booking.CategoryHourly)
	if !Overlaps(req, existing) {
		t.Errorf("expected full-day request to overlap hourly booking")
	}
}

func TestOverlaps_DisjointWindowsDoNotConflict(t *testing.T) {
	b := confirmed("2026-06-01", "11:00", "13:00", booking.CategoryHourly)

	// Touching endpoints do not conflict: the existing window is half-open.
	if Overlaps(hourlyRequest("2026-06-01", "09:00", "11:00"), b) {
		t.Errorf("expected no overlap for request ending exactly at existing start")
	}
	if Overlaps(hourlyRequest("2026-06-01", "13:00", "15:00"), b) {
		t.Errorf("expected no overlap for request starting exactly at existing end")
	}
}

func TestOverlaps_PartialAndContainedWindows(t *testing.T) {
	b := confirmed("2026-06-01", "10:00", "12:00", booking.CategoryHourly)

	cases := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"request start inside existing", "11:00", "14:00", true},
		{"request end inside existing", "08:00", "11:00", true},
		{"request contains existing", "09:00", "13:00", true},
		{"existing contains request", "10:30", "11:30", true},
		{"identical windows", "10:00", "12:00", true},
		{"before", "07:00", "09:00", false},
		{"after", "13:00", "15:00", false},
	}
	for _, tc := range cases {
		got := Overlaps(hourlyRequest("2026-06-01", tc.start, tc.end), b)
		if got != tc.want {
			t.Errorf("%s: Overlaps(%s-%s) = %v, want %v", tc.name, tc.start, tc.end, got, tc.want)
		}
	}
}

func TestOverlaps_StatusGating(t *testing.T) {
	for _, status := range []booking.Status{booking.StatusPending, booking.StatusCancelled} {
		b := confirmed("2026-06-01", "09:00", "17:00", booking.CategoryHourly)
		b.Status = status

		if Overlaps(hourlyRequest("2026-06-01", "10:00", "11:00"), b) {
			t.Errorf("expected %s booking never to block availability", status)
		}
	}
}

func TestOverlaps_DifferentDateNeverConflicts(t *testing.T) {
	b := confirmed("2026-06-02", "09:00", "17:00", booking.CategoryFullDay)

	if Overlaps(hourlyRequest("2026-06-01", "09:00", "17:00"), b) {
		t.Errorf("expected no overlap across calendar days, even full-day")
	}
}

func TestConflictingBookings_FiltersSubset(t *testing.T) {
	bookings := []booking.Booking{
		confirmed("2026-06-01", "09:00", "11:00", booking.CategoryHourly),
		confirmed("2026-06-01", "14:00", "16:00", booking.CategoryHourly),
		confirmed("2026-06-02", "09:00", "11:00", booking.CategoryHourly),
	}

	got := ConflictingBookings(hourlyRequest("2026-06-01", "10:00", "12:00"), bookings)
	if len(got) != 1 {
		t.Fatalf("expected 1 conflicting booking, got %d", len(got))
	}
	if got[0].StartTime != "09:00" {
		t.Errorf("expected the 09:00 booking to conflict, got %s", got[0].StartTime)
	}
}
