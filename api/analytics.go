package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cyclepoint/rentalshop-backend/analytics"
	"github.com/cyclepoint/rentalshop-backend/internal/middleware"
)

func (a *API) summaryHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	summary, err := a.ar.Summary(c)
	if err != nil {
		logger.ErrorContext(c, "failed to build summary", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	monthlyCosts, err := a.cr.MonthlyTotal(c)
	if err != nil {
		logger.ErrorContext(c, "failed to total fixed costs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	summary.MonthlyFixedCosts = monthlyCosts

	c.JSON(http.StatusOK, summary)
}

func (a *API) monthlyHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	monthlyCosts, err := a.cr.MonthlyTotal(c)
	if err != nil {
		logger.ErrorContext(c, "failed to total fixed costs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	rows, err := a.ar.Monthly(c, monthlyCosts)
	if err != nil {
		logger.ErrorContext(c, "failed to build monthly rows", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if rows == nil {
		rows = []analytics.MonthlyRow{}
	}

	c.JSON(http.StatusOK, rows)
}
