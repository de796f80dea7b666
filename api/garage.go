package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cyclepoint/rentalshop-backend/garage"
	"github.com/cyclepoint/rentalshop-backend/internal/middleware"
)

type bikeUnitRequest struct {
	Type        string `json:"type" binding:"required,oneof=child adult trailer child-trailer"`
	Size        string `json:"size" binding:"omitempty,oneof=S M L XL"`
	Suspension  string `json:"suspension" binding:"omitempty,oneof=full front"`
	TrailerHook bool   `json:"trailerHook"`
	Active      *bool  `json:"active"`
}

type bikeUnitResponse struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"`
	Size        string    `json:"size,omitempty"`
	Suspension  string    `json:"suspension,omitempty"`
	TrailerHook bool      `json:"trailerHook"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toBikeUnitResponse(u garage.BikeUnit) bikeUnitResponse {
	return bikeUnitResponse{
		ID:          u.ID,
		Type:        string(u.Type),
		Size:        string(u.Size),
		Suspension:  string(u.Suspension),
		TrailerHook: u.TrailerHook,
		Active:      u.Active,
		CreatedAt:   u.CreatedAt,
	}
}

func unitFromRequest(req bikeUnitRequest) garage.BikeUnit {
	u := garage.BikeUnit{
		Type:        garage.BikeType(req.Type),
		Size:        garage.Size(req.Size),
		Suspension:  garage.Suspension(req.Suspension),
		TrailerHook: req.TrailerHook,
		Active:      true,
	}
	if req.Active != nil {
		u.Active = *req.Active
	}
	// Trailers carry no size, suspension or hook, whatever the form sent.
	if u.Type.IsTrailer() {
		u.Size = ""
		u.Suspension = ""
		u.TrailerHook = false
	}
	return u
}

func (a *API) getBikesHandler(c *gin.Context) {
	units, err := a.gr.GetUnits(c)
	if err != nil {
		middleware.GetLogger(c).ErrorContext(c, "failed to get bike units", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	responses := make([]bikeUnitResponse, 0, len(units))
	for _, u := range units {
		responses = append(responses, toBikeUnitResponse(u))
	}
	c.JSON(http.StatusOK, responses)
}

func (a *API) getBikeHandler(c *gin.Context) {
	u, err := a.gr.GetUnit(c, c.Param("id"))
	if err != nil {
		if errors.Is(err, garage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": "BIKE_NOT_FOUND", "message": "Bike unit not found"})
			return
		}
		middleware.GetLogger(c).ErrorContext(c, "failed to get bike unit", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, toBikeUnitResponse(u))
}

func (a *API) createBikeHandler(c *gin.Context) {
	var req bikeUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	u := unitFromRequest(req)
	u.ID = uuid.New()

	if err := a.gr.CreateUnit(c, &u); err != nil {
		middleware.GetLogger(c).ErrorContext(c, "failed to create bike unit", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusCreated, toBikeUnitResponse(u))
}

func (a *API) updateBikeHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "Invalid bike id"})
		return
	}

	var req bikeUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	u := unitFromRequest(req)
	u.ID = id

	if err := a.gr.UpdateUnit(c, &u); err != nil {
		if errors.Is(err, garage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": "BIKE_NOT_FOUND", "message": "Bike unit not found"})
			return
		}
		middleware.GetLogger(c).ErrorContext(c, "failed to update bike unit", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	updated, err := a.gr.GetUnit(c, id.String())
	if err != nil {
		middleware.GetLogger(c).ErrorContext(c, "failed to reload bike unit", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, toBikeUnitResponse(updated))
}

func (a *API) retireBikeHandler(c *gin.Context) {
	err := a.gr.RetireUnit(c, c.Param("id"))
	if err != nil {
		if errors.Is(err, garage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": "BIKE_NOT_FOUND", "message": "Bike unit not found"})
			return
		}
		middleware.GetLogger(c).ErrorContext(c, "failed to retire bike unit", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (a *API) deleteBikeHandler(c *gin.Context) {
	err := a.gr.DeleteUnit(c, c.Param("id"))
	if err != nil {
		if errors.Is(err, garage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": "BIKE_NOT_FOUND", "message": "Bike unit not found"})
			return
		}
		middleware.GetLogger(c).ErrorContext(c, "failed to delete bike unit", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Status(http.StatusNoContent)
}
