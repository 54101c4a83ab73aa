package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	RequestSlot(c *ginext.Context)
	ConfirmBooking(c *ginext.Context)
	ReleaseBooking(c *ginext.Context)
	ChangeBookingStatus(c *ginext.Context)
	CheckAvailability(c *ginext.Context)
	ListAvailableTimes(c *ginext.Context)
	AvailabilityReport(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/request", h.RequestSlot)
		api.POST("/bookings/:id/confirm", h.ConfirmBooking)
		api.POST("/bookings/:id/release", h.ReleaseBooking)
		api.POST("/bookings/:id/status", h.ChangeBookingStatus)

		// Availability
		api.GET("/availability", h.CheckAvailability)
		api.GET("/availability/times", h.ListAvailableTimes)
		api.GET("/availability/report", h.AvailabilityReport)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
