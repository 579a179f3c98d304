package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dheerajvarshn/portfolio-backend/src/controllers"
)

// LegacyRoutes sets up the standalone resume/project/contact collections.
// Kept for old clients; the embedded-array surface under /api/user is
// canonical.
func LegacyRoutes(app *fiber.App, legacy *controllers.LegacyController, protect fiber.Handler) {
	projects := app.Group("/api/projects")
	projects.Get("/", legacy.ListProjects)
	projects.Get("/me", protect, legacy.MyProjects)
	projects.Post("/", protect, legacy.CreateProject)
	projects.Put("/:id", protect, legacy.UpdateProject)
	projects.Delete("/:id", protect, legacy.DeleteProject)

	resumes := app.Group("/api/resumes")
	resumes.Get("/", legacy.ListResumes)
	resumes.Get("/me", protect, legacy.MyResume)
	resumes.Post("/", protect, legacy.CreateResume)
	resumes.Put("/me", protect, legacy.UpdateMyResume)
	resumes.Delete("/me", protect, legacy.DeleteMyResume)

	contacts := app.Group("/api/contacts")
	contacts.Get("/", legacy.ListContacts)
	contacts.Get("/me", protect, legacy.MyContact)
	contacts.Post("/", protect, legacy.CreateContact)
	contacts.Put("/me", protect, legacy.UpdateMyContact)
	contacts.Delete("/me", protect, legacy.DeleteMyContact)
}
