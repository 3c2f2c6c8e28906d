package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListVaccines(c *ginext.Context)
	GetVaccine(c *ginext.Context)
	AdminListVaccines(c *ginext.Context)
	CreateVaccine(c *ginext.Context)
	UpdateVaccine(c *ginext.Context)
	DeleteVaccine(c *ginext.Context)

	CreateBooking(c *ginext.Context)
	AdminCreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	CompleteDose(c *ginext.Context)
	UpdateBooking(c *ginext.Context)
	DeleteBooking(c *ginext.Context)
	AdminListBookings(c *ginext.Context)
	ExportBookings(c *ginext.Context)
	GetUserBookings(c *ginext.Context)

	CreateUser(c *ginext.Context)
	AdminCreateUser(c *ginext.Context)
	GetUserByEmail(c *ginext.Context)
	ListUsers(c *ginext.Context)

	SendContact(c *ginext.Context)
	RunReminders(c *ginext.Context)
}

func InitRouter(mode string, h Handler, adminAuth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Vaccines
		api.GET("/vaccines", h.ListVaccines)
		api.GET("/vaccines/:id", h.GetVaccine)

		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.DELETE("/bookings/:id", h.CancelBooking)
		api.POST("/bookings/:id/complete-dose", h.CompleteDose)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users/email/:email", h.GetUserByEmail)
		api.GET("/users/:id/bookings", h.GetUserBookings)

		api.POST("/contact", h.SendContact)
	}

	admin := api.Group("/admin", adminAuth)
	{
		admin.GET("/vaccines", h.AdminListVaccines)
		admin.POST("/vaccines", h.CreateVaccine)
		admin.PUT("/vaccines/:id", h.UpdateVaccine)
		admin.DELETE("/vaccines/:id", h.DeleteVaccine)

		admin.GET("/bookings", h.AdminListBookings)
		admin.POST("/bookings", h.AdminCreateBooking)
		admin.GET("/bookings/export", h.ExportBookings)
		admin.PUT("/bookings/:id", h.UpdateBooking)
		admin.DELETE("/bookings/:id", h.DeleteBooking)

		admin.GET("/users", h.ListUsers)
		admin.POST("/users", h.AdminCreateUser)
		admin.POST("/reminders/run", h.RunReminders)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metricsHandler := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metricsHandler.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
