package api

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cyclepoint/rentalshop-backend/booking"
	"github.com/cyclepoint/rentalshop-backend/internal/middleware"
	"github.com/cyclepoint/rentalshop-backend/rental"
)

type bookingRequest struct {
	CustomerName string            `json:"customerName" binding:"required"`
	Phone        string            `json:"phone" binding:"required"`
	Email        string            `json:"email" binding:"omitempty,email"`
	Date         string            `json:"date" binding:"required,dateiso"`
	StartTime    string            `json:"startTime" binding:"required,hhmm"`
	EndTime      string            `json:"endTime" binding:"required,hhmm"`
	Category     string            `json:"category" binding:"required,oneof=hourly half-day full-day"`
	NeedsGuide   bool              `json:"needsGuide"`
	Status       string            `json:"status" binding:"omitempty,oneof=confirmed pending cancelled"`
	Items        []lineItemRequest `json:"items" binding:"required,min=1,dive"`
}

type lineItemResponse struct {
	Type        string `json:"type"`
	Size        string `json:"size,omitempty"`
	Suspension  string `json:"suspension,omitempty"`
	TrailerHook bool   `json:"trailerHook"`
	Count       int    `json:"count"`
}

type bookingResponse struct {
	ID           uuid.UUID          `json:"id"`
	CustomerName string             `json:"customerName"`
	Phone        string             `json:"phone"`
	Email        string             `json:"email,omitempty"`
	Date         string             `json:"date"`
	StartTime    string             `json:"startTime"`
	EndTime      string             `json:"endTime"`
	Category     booking.Category   `json:"category"`
	NeedsGuide   bool               `json:"needsGuide"`
	Status       booking.Status     `json:"status"`
	TotalPrice   float64            `json:"totalPrice"`
	CreatedAt    time.Time          `json:"createdAt"`
	Items        []lineItemResponse `json:"items"`
}

func toBookingResponse(b booking.Booking) bookingResponse {
	items := make([]lineItemResponse, 0, len(b.Items))
	for _, item := range b.Items {
		items = append(items, lineItemResponse{
			Type:        string(item.Type),
			Size:        string(item.Size),
			Suspension:  string(item.Suspension),
			TrailerHook: item.TrailerHook,
			Count:       item.Count,
		})
	}
	return bookingResponse{
		ID:           b.ID,
		CustomerName: b.CustomerName,
		Phone:        b.Phone,
		Email:        b.Email.String,
		Date:         b.Date,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Category:     b.Category,
		NeedsGuide:   b.NeedsGuide,
		Status:       b.Status,
		TotalPrice:   b.TotalPrice,
		CreatedAt:    b.CreatedAt,
		Items:        items,
	}
}

// bookingFromRequest validates the window, prices the selection and builds
// the record to store. The stored price is always recomputed server-side.
func (a *API) bookingFromRequest(c *gin.Context, req bookingRequest) (booking.Booking, bool) {
	// An hourly window must actually run forward; full-day and half-day
	// rentals ignore clock times for billing.
	if req.Category == string(booking.CategoryHourly) && req.EndTime <= req.StartTime {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_DURATION", "message": "End time must be after start time"})
		return booking.Booking{}, false
	}

	table, err := a.pr.Get(c)
	if err != nil {
		middleware.GetLogger(c).ErrorContext(c, "failed to load pricing table", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return booking.Booking{}, false
	}

	items := toLineItems(req.Items)
	price := rental.ComputePrice(items, booking.Category(req.Category),
		req.NeedsGuide, req.StartTime, req.EndTime, table)

	status := booking.Status(req.Status)
	if status == "" {
		status = booking.StatusConfirmed
	}

	return booking.Booking{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Email:        sql.NullString{String: req.Email, Valid: req.Email != ""},
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Category:     booking.Category(req.Category),
		NeedsGuide:   req.NeedsGuide,
		Status:       status,
		TotalPrice:   price,
		Items:        items,
	}, true
}

func (a *API) getBookingsHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	var (
		bookings []booking.Booking
		err      error
	)
	if date := c.Query("date"); date != "" {
		bookings, err = a.bkr.GetByDate(c, date)
	} else {
		bookings, err = a.bkr.GetAll(c)
	}
	if err != nil {
		logger.ErrorContext(c, "failed to get bookings", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	responses := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, toBookingResponse(b))
	}
	c.JSON(http.StatusOK, responses)
}

func (a *API) getBookingHandler(c *gin.Context) {
	b, err := a.bkr.GetByID(c, c.Param("bookingId"))
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": "BOOKING_NOT_FOUND", "message": "Booking not found"})
			return
		}
		middleware.GetLogger(c).ErrorContext(c, "failed to get booking", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(b))
}

func (a *API) createBookingHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	b, ok := a.bookingFromRequest(c, req)
	if !ok {
		return
	}
	b.ID = uuid.New()

	if err := a.bkr.Create(c, &b); err != nil {
		logger.ErrorContext(c, "failed to create booking", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	a.obs.BookingsCreated.Inc()
	c.JSON(http.StatusCreated, toBookingResponse(b))
}

func (a *API) updateBookingHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	id, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "Invalid bookingId"})
		return
	}

	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	b, ok := a.bookingFromRequest(c, req)
	if !ok {
		return
	}
	b.ID = id

	if err := a.bkr.Update(c, &b); err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": "BOOKING_NOT_FOUND", "message": "Booking not found"})
			return
		}
		logger.ErrorContext(c, "failed to update booking", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	updated, err := a.bkr.GetByID(c, id.String())
	if err != nil {
		logger.ErrorContext(c, "failed to reload booking", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(updated))
}

func (a *API) deleteBookingHandler(c *gin.Context) {
	err := a.bkr.Delete(c, c.Param("bookingId"))
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": "BOOKING_NOT_FOUND", "message": "Booking not found"})
			return
		}
		middleware.GetLogger(c).ErrorContext(c, "failed to delete booking", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Status(http.StatusNoContent)
}
