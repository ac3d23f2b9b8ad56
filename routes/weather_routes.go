package routes

import (
	"github.com/alexsterin2005-wq/amtennis/handlers"
	"github.com/gofiber/fiber/v2"
)

func WeatherRoutes(app *fiber.App, h *handlers.WeatherHandler) {
	api := app.Group("/api/v1")
	api.Get("/weather", h.LessonDayForecast)
}
