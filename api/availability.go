package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cyclepoint/rentalshop-backend/booking"
	"github.com/cyclepoint/rentalshop-backend/internal/middleware"
	"github.com/cyclepoint/rentalshop-backend/rental"
)

type availabilityRequest struct {
	Date     string `form:"date" binding:"required,dateiso"`
	Start    string `form:"start" binding:"required,hhmm"`
	End      string `form:"end" binding:"required,hhmm"`
	Category string `form:"category" binding:"required,oneof=hourly half-day full-day"`
}

func (a *API) availabilityHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	var req availabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	bookings, err := a.bkr.GetByDate(c, req.Date)
	if err != nil {
		logger.ErrorContext(c, "failed to load bookings for date", "date", req.Date, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	units, err := a.gr.GetActiveUnits(c)
	if err != nil {
		logger.ErrorContext(c, "failed to load active units", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	groups := rental.ComputeAvailability(rental.Request{
		Date:     req.Date,
		Start:    req.Start,
		End:      req.End,
		Category: booking.Category(req.Category),
	}, bookings, units)

	a.obs.AvailabilityQueries.Inc()
	c.JSON(http.StatusOK, groups)
}
