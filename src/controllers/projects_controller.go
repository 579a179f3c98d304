package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dheerajvarshn/portfolio-backend/src/lib"
	"github.com/dheerajvarshn/portfolio-backend/src/models"
)

// AddProject prepends a new project and returns the full updated collection.
func (ct *UserController) AddProject(c *fiber.Ctx) error {
	var in models.ProjectInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	user, err := ct.loadCurrent(c)
	if err != nil {
		return ct.lookupError(c, err)
	}

	if err := user.AddProject(in); err != nil {
		return ct.sectionError(c, err)
	}

	if err := ct.Users.Save(c.Context(), user); err != nil {
		return ct.serverError(c, "Error adding project", err)
	}
	return c.Status(fiber.StatusCreated).JSON(user.Projects)
}

// UpdateProject patches a project by id and returns the full collection.
func (ct *UserController) UpdateProject(c *fiber.Ctx) error {
	var patch models.ProjectPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	user, err := ct.loadCurrent(c)
	if err != nil {
		return ct.lookupError(c, err)
	}

	if err := user.UpdateProject(c.Params("id"), patch); err != nil {
		return ct.sectionError(c, err)
	}

	if err := ct.Users.Save(c.Context(), user); err != nil {
		return ct.serverError(c, "Error updating project", err)
	}
	return c.JSON(user.Projects)
}

// DeleteProject removes a project by id and returns the full collection.
func (ct *UserController) DeleteProject(c *fiber.Ctx) error {
	user, err := ct.loadCurrent(c)
	if err != nil {
		return ct.lookupError(c, err)
	}

	if err := user.RemoveProject(c.Params("id")); err != nil {
		return ct.sectionError(c, err)
	}

	if err := ct.Users.Save(c.Context(), user); err != nil {
		return ct.serverError(c, "Error deleting project", err)
	}
	return c.JSON(user.Projects)
}

// ReplaceProjects swaps the whole projects section for the supplied one.
func (ct *UserController) ReplaceProjects(c *fiber.Ctx) error {
	var body struct {
		Projects []models.Project `json:"projects"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	user, err := ct.loadCurrent(c)
	if err != nil {
		return ct.lookupError(c, err)
	}

	if body.Projects != nil {
		user.ReplaceProjects(body.Projects)
		if err := ct.Users.Save(c.Context(), user); err != nil {
			return ct.serverError(c, "Error updating projects", err)
		}
	}
	return c.JSON(user)
}
