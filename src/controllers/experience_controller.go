package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dheerajvarshn/portfolio-backend/src/lib"
	"github.com/dheerajvarshn/portfolio-backend/src/models"
)

// AddExperience prepends a new experience entry and returns the full updated
// collection.
func (ct *UserController) AddExperience(c *fiber.Ctx) error {
	var in models.ExperienceInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	user, err := ct.loadCurrent(c)
	if err != nil {
		return ct.lookupError(c, err)
	}

	if err := user.AddExperience(in); err != nil {
		return ct.sectionError(c, err)
	}

	if err := ct.Users.Save(c.Context(), user); err != nil {
		return ct.serverError(c, "Error adding experience", err)
	}
	return c.Status(fiber.StatusCreated).JSON(user.Experience)
}

// UpdateExperience patches an experience entry by id and returns the full
// collection.
func (ct *UserController) UpdateExperience(c *fiber.Ctx) error {
	var patch models.ExperiencePatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	user, err := ct.loadCurrent(c)
	if err != nil {
		return ct.lookupError(c, err)
	}

	if err := user.UpdateExperience(c.Params("id"), patch); err != nil {
		return ct.sectionError(c, err)
	}

	if err := ct.Users.Save(c.Context(), user); err != nil {
		return ct.serverError(c, "Error updating experience", err)
	}
	return c.JSON(user.Experience)
}

// DeleteExperience removes an experience entry by id and returns the full
// collection.
func (ct *UserController) DeleteExperience(c *fiber.Ctx) error {
	user, err := ct.loadCurrent(c)
	if err != nil {
		return ct.lookupError(c, err)
	}

	if err := user.RemoveExperience(c.Params("id")); err != nil {
		return ct.sectionError(c, err)
	}

	if err := ct.Users.Save(c.Context(), user); err != nil {
		return ct.serverError(c, "Error deleting experience", err)
	}
	return c.JSON(user.Experience)
}

// ReplaceExperience swaps the whole experience section for the supplied one.
func (ct *UserController) ReplaceExperience(c *fiber.Ctx) error {
	var body struct {
		Experience []models.Experience `json:"experience"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	user, err := ct.loadCurrent(c)
	if err != nil {
		return ct.lookupError(c, err)
	}

	if body.Experience != nil {
		user.ReplaceExperience(body.Experience)
		if err := ct.Users.Save(c.Context(), user); err != nil {
			return ct.serverError(c, "Error updating experience", err)
		}
	}
	return c.JSON(user)
}
