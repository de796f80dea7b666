package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cyclepoint/rentalshop-backend/booking"
	"github.com/cyclepoint/rentalshop-backend/garage"
	"github.com/cyclepoint/rentalshop-backend/internal/middleware"
	"github.com/cyclepoint/rentalshop-backend/rental"
)

type lineItemRequest struct {
	Type        string `json:"type" binding:"required,oneof=child adult trailer child-trailer"`
	Size        string `json:"size" binding:"omitempty,oneof=S M L XL"`
	Suspension  string `json:"suspension" binding:"omitempty,oneof=full front"`
	TrailerHook bool   `json:"trailerHook"`
	Count       int    `json:"count" binding:"required,gt=0"`
}

func toLineItems(reqs []lineItemRequest) []booking.LineItem {
	items := make([]booking.LineItem, 0, len(reqs))
	for _, r := range reqs {
		items = append(items, booking.LineItem{
			Type:        garage.BikeType(r.Type),
			Size:        garage.Size(r.Size),
			Suspension:  garage.Suspension(r.Suspension),
			TrailerHook: r.TrailerHook,
			Count:       r.Count,
		})
	}
	return items
}

type quoteRequest struct {
	Items      []lineItemRequest `json:"items" binding:"required,min=1,dive"`
	Category   string            `json:"category" binding:"required,oneof=hourly half-day full-day"`
	NeedsGuide bool              `json:"needsGuide"`
	StartTime  string            `json:"startTime" binding:"required,hhmm"`
	EndTime    string            `json:"endTime" binding:"required,hhmm"`
}

func (a *API) priceQuoteHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	table, err := a.pr.Get(c)
	if err != nil {
		logger.ErrorContext(c, "failed to load pricing table", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	price := rental.ComputePrice(toLineItems(req.Items), booking.Category(req.Category),
		req.NeedsGuide, req.StartTime, req.EndTime, table)

	a.obs.PriceQuotes.Inc()
	c.JSON(http.StatusOK, gin.H{"price": price})
}
