package routes

import (
	"github.com/alexsterin2005-wq/amtennis/handlers"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App, h *handlers.AuthHandler) {
	api := app.Group("/api/v1")
	api.Post("/auth/login", h.LoginCoach)
}
