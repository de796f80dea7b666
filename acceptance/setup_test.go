package acceptance

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cyclepoint/rentalshop-backend/analytics"
	"github.com/cyclepoint/rentalshop-backend/api"
	"github.com/cyclepoint/rentalshop-backend/booking"
	"github.com/cyclepoint/rentalshop-backend/costs"
	"github.com/cyclepoint/rentalshop-backend/garage"
	"github.com/cyclepoint/rentalshop-backend/internal/o11y"
	"github.com/cyclepoint/rentalshop-backend/internal/sqlitedb"
	"github.com/cyclepoint/rentalshop-backend/pricing"
)

type TestServer struct {
	DB     *sqlx.DB
	Router *gin.Engine
}

// NewTestServer boots the full API over a fresh in-memory database. Every
// test gets its own schema, seeded pricing row included.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	gin.SetMode(gin.TestMode)

	ctx := context.Background()
	db, err := sqlitedb.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	obs, cleanup, err := o11y.Setup(ctx, "")
	if err != nil {
		t.Fatalf("failed to set up observability: %v", err)
	}
	t.Cleanup(cleanup)

	a := api.New(obs,
		garage.NewRepository(db),
		booking.NewRepository(db),
		pricing.NewRepository(db),
		costs.NewRepository(db),
		analytics.NewRepository(db),
	)

	return &TestServer{DB: db, Router: a.Router()}
}

// Request helpers

func (ts *TestServer) GET(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)
	return w
}

func (ts *TestServer) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)
	return w
}

func (ts *TestServer) POST(path string, body interface{}) *httptest.ResponseRecorder {
	return ts.do(http.MethodPost, path, body)
}

func (ts *TestServer) PUT(path string, body interface{}) *httptest.ResponseRecorder {
	return ts.do(http.MethodPut, path, body)
}

func (ts *TestServer) DELETE(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, path, nil)
	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)
	return w
}

// DB seeding helpers

func (ts *TestServer) CreateTestBike(t *testing.T, bikeType, size, suspension string, hook, active bool) string {
	t.Helper()
	id := uuid.New().String()
	_, err := ts.DB.Exec(`
		INSERT INTO bike_units (id, bike_type, size, suspension, trailer_hook, active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, bikeType, size, suspension, hook, active, time.Now())
	if err != nil {
		t.Fatalf("failed to create test bike: %v", err)
	}
	return id
}

type testItem struct {
	Type        string
	Size        string
	Suspension  string
	TrailerHook bool
	Count       int
}

func (ts *TestServer) CreateTestBooking(t *testing.T, date, start, end, category, status string, items ...testItem) string {
	t.Helper()
	id := uuid.New().String()
	_, err := ts.DB.Exec(`
		INSERT INTO bookings (id, customer_name, phone, email, date, start_time, end_time,
		                      category, needs_guide, status, total_price, created_at)
		VALUES (?, 'Test Customer', '+3161234567', NULL, ?, ?, ?, ?, 0, ?, 0, ?)
	`, id, date, start, end, category, status, time.Now())
	if err != nil {
		t.Fatalf("failed to create test booking: %v", err)
	}
	for _, item := range items {
		_, err := ts.DB.Exec(`
			INSERT INTO booking_items (booking_id, bike_type, size, suspension, trailer_hook, count)
			VALUES (?, ?, ?, ?, ?, ?)
		`, id, item.Type, item.Size, item.Suspension, item.TrailerHook, item.Count)
		if err != nil {
			t.Fatalf("failed to create test booking item: %v", err)
		}
	}
	return id
}

// Response shapes, mirrored from the API so tests fail loudly on drift.

type lineItemResponse struct {
	Type        string `json:"type"`
	Size        string `json:"size"`
	Suspension  string `json:"suspension"`
	TrailerHook bool   `json:"trailerHook"`
	Count       int    `json:"count"`
}

type bookingResponse struct {
	ID           string             `json:"id"`
	CustomerName string             `json:"customerName"`
	Phone        string             `json:"phone"`
	Email        string             `json:"email"`
	Date         string             `json:"date"`
	StartTime    string             `json:"startTime"`
	EndTime      string             `json:"endTime"`
	Category     string             `json:"category"`
	NeedsGuide   bool               `json:"needsGuide"`
	Status       string             `json:"status"`
	TotalPrice   float64            `json:"totalPrice"`
	Items        []lineItemResponse `json:"items"`
}

type bikeGroupResponse struct {
	Type        string `json:"type"`
	Size        string `json:"size"`
	Suspension  string `json:"suspension"`
	TrailerHook bool   `json:"trailerHook"`
	Count       int    `json:"count"`
}

type bikeUnitResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Size        string `json:"size"`
	Suspension  string `json:"suspension"`
	TrailerHook bool   `json:"trailerHook"`
	Active      bool   `json:"active"`
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal error response %q: %v", w.Body.String(), err)
	}
	return resp["code"]
}
