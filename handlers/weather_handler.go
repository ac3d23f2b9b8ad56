package handlers

import (
	"time"

	"github.com/alexsterin2005-wq/amtennis/services"
	"github.com/gofiber/fiber/v2"
)

type WeatherHandler struct {
	svc *services.WeatherService
}

func NewWeatherHandler(svc *services.WeatherService) *WeatherHandler {
	return &WeatherHandler{svc: svc}
}

// LessonDayForecast returns the forecast for a date, or JSON null when the
// lookup fails; the widget simply hides the weather line.
func (h *WeatherHandler) LessonDayForecast(c *fiber.Ctx) error {
	date := c.Query("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date must be YYYY-MM-DD"})
	}
	return c.JSON(h.svc.Forecast(c.Context(), date))
}
