package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cyclepoint/rentalshop-backend/analytics"
	"github.com/cyclepoint/rentalshop-backend/booking"
	"github.com/cyclepoint/rentalshop-backend/costs"
	"github.com/cyclepoint/rentalshop-backend/garage"
	"github.com/cyclepoint/rentalshop-backend/internal/middleware"
	"github.com/cyclepoint/rentalshop-backend/internal/o11y"
	"github.com/cyclepoint/rentalshop-backend/pricing"
)

type API struct {
	r   *gin.Engine
	obs *o11y.Observability
	gr  *garage.Repository
	bkr *booking.Repository
	pr  *pricing.Repository
	cr  *costs.Repository
	ar  *analytics.Repository
}

func New(obs *o11y.Observability, gr *garage.Repository, bkr *booking.Repository,
	pr *pricing.Repository, cr *costs.Repository, ar *analytics.Repository) *API {
	registerValidations()

	a := &API{
		r:   gin.New(),
		obs: obs,
		gr:  gr,
		bkr: bkr,
		pr:  pr,
		cr:  cr,
		ar:  ar,
	}

	a.r.Use(gin.Recovery())
	a.r.Use(middleware.Tracing())
	a.r.Use(middleware.Logging(obs.Logger))
	a.r.Use(middleware.Metrics(obs.Registry))

	a.r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	a.r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(obs.Registry, promhttp.HandlerOpts{})))

	a.r.GET("/availability", a.availabilityHandler)
	a.r.POST("/price/quote", a.priceQuoteHandler)

	a.r.GET("/bookings", a.getBookingsHandler)
	a.r.POST("/bookings", a.createBookingHandler)
	a.r.GET("/bookings/:bookingId", a.getBookingHandler)
	a.r.PUT("/bookings/:bookingId", a.updateBookingHandler)
	a.r.DELETE("/bookings/:bookingId", a.deleteBookingHandler)

	a.r.GET("/bikes", a.getBikesHandler)
	a.r.POST("/bikes", a.createBikeHandler)
	a.r.GET("/bikes/:id", a.getBikeHandler)
	a.r.PUT("/bikes/:id", a.updateBikeHandler)
	a.r.POST("/bikes/:id/retire", a.retireBikeHandler)
	a.r.DELETE("/bikes/:id", a.deleteBikeHandler)

	a.r.GET("/pricing", a.getPricingHandler)
	a.r.PUT("/pricing", a.updatePricingHandler)

	a.r.GET("/costs", a.getCostsHandler)
	a.r.POST("/costs", a.createCostHandler)
	a.r.DELETE("/costs/:id", a.deleteCostHandler)

	a.r.GET("/analytics/summary", a.summaryHandler)
	a.r.GET("/analytics/monthly", a.monthlyHandler)

	return a
}

func (a *API) Router() *gin.Engine {
	return a.r
}
