package acceptance

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestAvailability_SubtractsConfirmedBookings(t *testing.T) {
	ts := NewTestServer(t)

	ts.CreateTestBike(t, "adult", "M", "front", false, true)
	ts.CreateTestBike(t, "adult", "M", "front", false, true)
	ts.CreateTestBike(t, "adult", "M", "front", false, true)

	ts.CreateTestBooking(t, "2026-06-01", "09:00", "12:00", "hourly", "confirmed",
		testItem{Type: "adult", Size: "M", Suspension: "front", Count: 2})

	w := ts.GET("/availability?date=2026-06-01&start=10:00&end=11:00&category=hourly")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var groups []bikeGroupResponse
	if err := json.Unmarshal(w.Body.Bytes(), &groups); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %s", spew.Sdump(groups))
	}
	if groups[0].Count != 1 {
		t.Errorf("expected 1 remaining unit, got %d", groups[0].Count)
	}
}

func TestAvailability_DisjointWindowLeavesFleetFree(t *testing.T) {
	ts := NewTestServer(t)

	ts.CreateTestBike(t, "adult", "M", "front", false, true)
	ts.CreateTestBike(t, "adult", "M", "front", false, true)

	ts.CreateTestBooking(t, "2026-06-01", "09:00", "12:00", "hourly", "confirmed",
		testItem{Type: "adult", Size: "M", Suspension: "front", Count: 2})

	w := ts.GET("/availability?date=2026-06-01&start=13:00&end=15:00&category=hourly")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var groups []bikeGroupResponse
	json.Unmarshal(w.Body.Bytes(), &groups)
	if len(groups) != 1 || groups[0].Count != 2 {
		t.Errorf("expected both units free, got %s", spew.Sdump(groups))
	}
}

func TestAvailability_PendingBookingsDoNotReserve(t *testing.T) {
	ts := NewTestServer(t)

	ts.CreateTestBike(t, "adult", "M", "front", false, true)

	ts.CreateTestBooking(t, "2026-06-01", "09:00", "12:00", "hourly", "pending",
		testItem{Type: "adult", Size: "M", Suspension: "front", Count: 1})

	w := ts.GET("/availability?date=2026-06-01&start=10:00&end=11:00&category=hourly")

	var groups []bikeGroupResponse
	json.Unmarshal(w.Body.Bytes(), &groups)
	if len(groups) != 1 || groups[0].Count != 1 {
		t.Errorf("expected pending booking to leave the unit free, got %s", spew.Sdump(groups))
	}
}

func TestAvailability_FullDayBookingBlocksWholeDay(t *testing.T) {
	ts := NewTestServer(t)

	ts.CreateTestBike(t, "adult", "M", "front", false, true)

	ts.CreateTestBooking(t, "2026-06-01", "09:00", "10:00", "full-day", "confirmed",
		testItem{Type: "adult", Size: "M", Suspension: "front", Count: 1})

	w := ts.GET("/availability?date=2026-06-01&start=18:00&end=20:00&category=hourly")

	var groups []bikeGroupResponse
	json.Unmarshal(w.Body.Bytes(), &groups)
	if len(groups) != 0 {
		t.Errorf("expected full-day booking to exhaust the group for any window, got %s", spew.Sdump(groups))
	}
}

func TestAvailability_RetiredUnitsExcluded(t *testing.T) {
	ts := NewTestServer(t)

	ts.CreateTestBike(t, "adult", "M", "front", false, true)
	ts.CreateTestBike(t, "adult", "M", "front", false, false)

	w := ts.GET("/availability?date=2026-06-01&start=10:00&end=11:00&category=hourly")

	var groups []bikeGroupResponse
	json.Unmarshal(w.Body.Bytes(), &groups)
	if len(groups) != 1 || groups[0].Count != 1 {
		t.Errorf("expected the retired unit to be excluded, got %s", spew.Sdump(groups))
	}
}

func TestAvailability_ValidationErrors(t *testing.T) {
	ts := NewTestServer(t)

	cases := []struct {
		name  string
		query string
		code  string
	}{
		{"missing date", "/availability?start=10:00&end=11:00&category=hourly", "MISSING_FIELD"},
		{"bad date", "/availability?date=junk&start=10:00&end=11:00&category=hourly", "INVALID_FORMAT"},
		{"bad time", "/availability?date=2026-06-01&start=25:00&end=11:00&category=hourly", "INVALID_FORMAT"},
		{"bad category", "/availability?date=2026-06-01&start=10:00&end=11:00&category=weekly", "INVALID_ENUM"},
	}
	for _, tc := range cases {
		w := ts.GET(tc.query)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected status %d, got %d: %s", tc.name, http.StatusBadRequest, w.Code, w.Body.String())
			continue
		}
		if got := errorCode(t, w); got != tc.code {
			t.Errorf("%s: expected code %s, got %s", tc.name, tc.code, got)
		}
	}
}
