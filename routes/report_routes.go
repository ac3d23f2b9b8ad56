package routes

import (
	"github.com/alexsterin2005-wq/amtennis/handlers"
	"github.com/alexsterin2005-wq/amtennis/middleware"
	"github.com/gofiber/fiber/v2"
)

func ReportRoutes(app *fiber.App, h *handlers.ReportHandler) {
	api := app.Group("/api/v1")
	api.Get("/reports/coach-hours", middleware.Protected(), h.CoachHoursReport)
}
