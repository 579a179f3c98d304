package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dheerajvarshn/portfolio-backend/src/controllers"
)

// PortfolioRoutes sets up the legacy owner-scoped aggregate surface. Every
// mutation requires the authenticated caller to match the :userId segment.
func PortfolioRoutes(app *fiber.App, portfolio *controllers.PortfolioController, protect, ownership fiber.Handler) {
	group := app.Group("/api/portfolio")

	group.Get("/public/:userId", portfolio.GetPublicPortfolio)
	group.Get("/:userId", portfolio.GetPortfolio)

	group.Put("/:userId/personal", protect, ownership, portfolio.UpdatePersonal)
	group.Put("/:userId/resume", protect, ownership, portfolio.UpdateResume)
	group.Put("/:userId/contact", protect, ownership, portfolio.UpdateContactInfo)
	group.Put("/:userId/projects/:projectId?", protect, ownership, portfolio.UpsertProject)
	group.Delete("/:userId/projects/:projectId", protect, ownership, portfolio.DeleteProject)
}
