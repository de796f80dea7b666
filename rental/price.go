package rental

import (
	"strconv"
	"strings"

	"github.com/cyclepoint/rentalshop-backend/booking"
	"github.com/cyclepoint/rentalshop-backend/pricing"
)

const (
	guideHoursFullDay = 8
	guideHoursHalfDay = 4
)

// ComputePrice derives the total price for a selection of line items.
//
// Half-day and full-day rentals bill a flat rate per unit; trailer types use
// the trailer rates. Hourly rentals bill per started clock hour: the duration
// is the difference of the truncated hour components, minutes never bill
// (09:30 to 11:15 is two hours). The guide is a flat hourly add-on for the
// rental as a whole, independent of how many bikes go out.
//
// There is no clamping: a window whose end precedes its start prices at zero
// or below. The booking endpoints reject such windows before they get here.
func ComputePrice(items []booking.LineItem, category booking.Category, needsGuide bool, start, end string, table pricing.Table) float64 {
	var base float64

	switch category {
	case booking.CategoryFullDay:
		for _, item := range items {
			base += fullDayRate(table, item) * float64(item.Count)
		}
	case booking.CategoryHalfDay:
		for _, item := range items {
			base += halfDayRate(table, item) * float64(item.Count)
		}
	default:
		hours := hourOf(end) - hourOf(start)
		for _, item := range items {
			base += hourlyRate(table, item) * float64(item.Count) * float64(hours)
		}
	}

	if needsGuide {
		base += table.GuideHourly * float64(guideHours(category, start, end))
	}

	return base
}

func guideHours(category booking.Category, start, end string) int {
	switch category {
	case booking.CategoryFullDay:
		return guideHoursFullDay
	case booking.CategoryHalfDay:
		return guideHoursHalfDay
	default:
		return hourOf(end) - hourOf(start)
	}
}

func fullDayRate(t pricing.Table, item booking.LineItem) float64 {
	if item.Type.IsTrailer() {
		return t.TrailerFullDay
	}
	return t.FullDay
}

func halfDayRate(t pricing.Table, item booking.LineItem) float64 {
	if item.Type.IsTrailer() {
		return t.TrailerHalfDay
	}
	return t.HalfDay
}

func hourlyRate(t pricing.Table, item booking.LineItem) float64 {
	if item.Type.IsTrailer() {
		return t.TrailerHourly
	}
	return t.Hourly
}

// hourOf truncates an "HH:MM" string to its hour component. Malformed input
// yields zero rather than an error; garbage in, a degenerate price out.
func hourOf(hhmm string) int {
	h, _, _ := strings.Cut(hhmm, ":")
	n, err := strconv.Atoi(h)
	if err != nil {
		return 0
	}
	return n
}
