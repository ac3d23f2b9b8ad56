package routes

import (
	"github.com/alexsterin2005-wq/amtennis/handlers"
	"github.com/alexsterin2005-wq/amtennis/middleware"
	"github.com/gofiber/fiber/v2"
)

func CalendarRoutes(app *fiber.App, h *handlers.CalendarHandler) {
	api := app.Group("/api/v1")

	api.Get("/bookings/:id/calendar.ics", h.DownloadBookingCalendar)
	api.Get("/calendar-events", h.ListCalendarEvents)

	manage := api.Group("/calendar-events", middleware.Protected())
	manage.Post("", h.CreateCalendarEvent)
	manage.Delete("/:id", h.DeleteCalendarEvent)
}
