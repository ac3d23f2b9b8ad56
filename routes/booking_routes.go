package routes

import (
	"github.com/alexsterin2005-wq/amtennis/handlers"
	"github.com/alexsterin2005-wq/amtennis/middleware"
	"github.com/gofiber/fiber/v2"
)

func BookingRoutes(app *fiber.App, h *handlers.BookingHandler) {
	api := app.Group("/api/v1")

	api.Get("/lesson-types", h.ListLessonTypes)
	api.Get("/slots", h.GetSlots)
	api.Post("/bookings", h.CreateBooking)

	manage := api.Group("/bookings", middleware.Protected())
	manage.Get("", h.ListBookings)
	manage.Patch("/:id/status", h.UpdateBookingStatus)
	manage.Delete("/:id", h.DeleteBooking)
}
