package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dheerajvarshn/portfolio-backend/src/controllers"
)

// AuthRoutes sets up login and the current-user lookup.
func AuthRoutes(app *fiber.App, auth *controllers.AuthController, protect fiber.Handler) {
	group := app.Group("/api/auth")

	group.Post("/login", auth.Login)
	group.Get("/me", protect, auth.GetCurrentUser)
}
