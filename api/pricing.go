package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cyclepoint/rentalshop-backend/internal/middleware"
	"github.com/cyclepoint/rentalshop-backend/pricing"
)

type pricingRequest struct {
	Hourly         *float64 `json:"hourly" binding:"required"`
	HalfDay        *float64 `json:"halfDay" binding:"required"`
	FullDay        *float64 `json:"fullDay" binding:"required"`
	TrailerHourly  *float64 `json:"trailerHourly" binding:"required"`
	TrailerHalfDay *float64 `json:"trailerHalfDay" binding:"required"`
	TrailerFullDay *float64 `json:"trailerFullDay" binding:"required"`
	GuideHourly    *float64 `json:"guideHourly" binding:"required"`
}

type pricingResponse struct {
	Hourly         float64 `json:"hourly"`
	HalfDay        float64 `json:"halfDay"`
	FullDay        float64 `json:"fullDay"`
	TrailerHourly  float64 `json:"trailerHourly"`
	TrailerHalfDay float64 `json:"trailerHalfDay"`
	TrailerFullDay float64 `json:"trailerFullDay"`
	GuideHourly    float64 `json:"guideHourly"`
}

func toPricingResponse(t pricing.Table) pricingResponse {
	return pricingResponse{
		Hourly:         t.Hourly,
		HalfDay:        t.HalfDay,
		FullDay:        t.FullDay,
		TrailerHourly:  t.TrailerHourly,
		TrailerHalfDay: t.TrailerHalfDay,
		TrailerFullDay: t.TrailerFullDay,
		GuideHourly:    t.GuideHourly,
	}
}

func (a *API) getPricingHandler(c *gin.Context) {
	table, err := a.pr.Get(c)
	if err != nil {
		middleware.GetLogger(c).ErrorContext(c, "failed to load pricing table", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, toPricingResponse(table))
}

func (a *API) updatePricingHandler(c *gin.Context) {
	var req pricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	table := pricing.Table{
		Hourly:         *req.Hourly,
		HalfDay:        *req.HalfDay,
		FullDay:        *req.FullDay,
		TrailerHourly:  *req.TrailerHourly,
		TrailerHalfDay: *req.TrailerHalfDay,
		TrailerFullDay: *req.TrailerFullDay,
		GuideHourly:    *req.GuideHourly,
	}
	if err := a.pr.Update(c, table); err != nil {
		middleware.GetLogger(c).ErrorContext(c, "failed to update pricing table", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, toPricingResponse(table))
}
