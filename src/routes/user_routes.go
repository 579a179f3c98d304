package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dheerajvarshn/portfolio-backend/src/controllers"
)

// UserRoutes sets up the canonical portfolio surface: the public portfolio
// read and contact form, the authenticated profile, and the per-section CRUD
// operations over the embedded collections. The literal /add and /contacts
// paths register before the :id routes so they are not captured as ids.
func UserRoutes(app *fiber.App, user *controllers.UserController, protect fiber.Handler) {
	group := app.Group("/api/user")

	// public
	group.Get("/", user.GetPortfolio)
	group.Post("/contact", user.SubmitContact)

	// profile
	group.Get("/me", protect, user.GetMe)
	group.Put("/", protect, user.UpdateProfile)

	// contact messages
	group.Get("/contacts", protect, user.ListContacts)
	group.Delete("/contacts/:id", protect, user.DeleteContact)

	// projects
	group.Put("/projects", protect, user.ReplaceProjects)
	group.Post("/projects/add", protect, user.AddProject)
	group.Put("/projects/:id", protect, user.UpdateProject)
	group.Delete("/projects/:id", protect, user.DeleteProject)

	// experience
	group.Put("/experience", protect, user.ReplaceExperience)
	group.Post("/experience/add", protect, user.AddExperience)
	group.Put("/experience/:id", protect, user.UpdateExperience)
	group.Delete("/experience/:id", protect, user.DeleteExperience)

	// education
	group.Post("/education/add", protect, user.AddEducation)
	group.Put("/education/:id", protect, user.UpdateEducation)
	group.Delete("/education/:id", protect, user.DeleteEducation)

	// skills
	group.Put("/skills", protect, user.ReplaceSkills)
	group.Post("/skills/add", protect, user.AddSkill)
	group.Put("/skills/:id", protect, user.UpdateSkill)
	group.Delete("/skills/:id", protect, user.DeleteSkill)
}
