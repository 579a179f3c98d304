package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dheerajvarshn/portfolio-backend/src/lib"
	"github.com/dheerajvarshn/portfolio-backend/src/models"
)

// AddEducation prepends a new education entry and returns the full updated
// collection.
func (ct *UserController) AddEducation(c *fiber.Ctx) error {
	var in models.EducationInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	user, err := ct.loadCurrent(c)
	if err != nil {
		return ct.lookupError(c, err)
	}

	if err := user.AddEducation(in); err != nil {
		return ct.sectionError(c, err)
	}

	if err := ct.Users.Save(c.Context(), user); err != nil {
		return ct.serverError(c, "Error adding education", err)
	}
	return c.Status(fiber.StatusCreated).JSON(user.Education)
}

// UpdateEducation patches an education entry by id and returns the full
// collection.
func (ct *UserController) UpdateEducation(c *fiber.Ctx) error {
	var patch models.EducationPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	user, err := ct.loadCurrent(c)
	if err != nil {
		return ct.lookupError(c, err)
	}

	if err := user.UpdateEducation(c.Params("id"), patch); err != nil {
		return ct.sectionError(c, err)
	}

	if err := ct.Users.Save(c.Context(), user); err != nil {
		return ct.serverError(c, "Error updating education", err)
	}
	return c.JSON(user.Education)
}

// DeleteEducation removes an education entry by id and returns the full
// collection.
func (ct *UserController) DeleteEducation(c *fiber.Ctx) error {
	user, err := ct.loadCurrent(c)
	if err != nil {
		return ct.lookupError(c, err)
	}

	if err := user.RemoveEducation(c.Params("id")); err != nil {
		return ct.sectionError(c, err)
	}

	if err := ct.Users.Save(c.Context(), user); err != nil {
		return ct.serverError(c, "Error deleting education", err)
	}
	return c.JSON(user.Education)
}
