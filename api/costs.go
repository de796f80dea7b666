package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cyclepoint/rentalshop-backend/costs"
	"github.com/cyclepoint/rentalshop-backend/internal/middleware"
)

type costRequest struct {
	Label         string  `json:"label" binding:"required"`
	MonthlyAmount float64 `json:"monthlyAmount" binding:"required,gt=0"`
	Category      string  `json:"category" binding:"required,oneof=rent insurance maintenance other"`
	Active        *bool   `json:"active"`
}

func costCategory(s string) costs.Category {
	switch s {
	case "rent":
		return costs.Rent
	case "insurance":
		return costs.Insurance
	case "maintenance":
		return costs.Maintenance
	default:
		return costs.Other
	}
}

func (a *API) getCostsHandler(c *gin.Context) {
	entries, err := a.cr.GetEntries(c)
	if err != nil {
		middleware.GetLogger(c).ErrorContext(c, "failed to get cost entries", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if entries == nil {
		entries = []costs.Entry{}
	}
	c.JSON(http.StatusOK, entries)
}

func (a *API) createCostHandler(c *gin.Context) {
	var req costRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	e := costs.Entry{
		ID:            uuid.New(),
		Label:         req.Label,
		MonthlyAmount: req.MonthlyAmount,
		Category:      costCategory(req.Category),
		Active:        true,
	}
	if req.Active != nil {
		e.Active = *req.Active
	}

	if err := a.cr.CreateEntry(c, &e); err != nil {
		middleware.GetLogger(c).ErrorContext(c, "failed to create cost entry", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (a *API) deleteCostHandler(c *gin.Context) {
	err := a.cr.DeleteEntry(c, c.Param("id"))
	if err != nil {
		if errors.Is(err, costs.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": "COST_NOT_FOUND", "message": "Cost entry not found"})
			return
		}
		middleware.GetLogger(c).ErrorContext(c, "failed to delete cost entry", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Status(http.StatusNoContent)
}
