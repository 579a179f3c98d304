package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dheerajvarshn/portfolio-backend/src/lib"
	"github.com/dheerajvarshn/portfolio-backend/src/models"
)

// AddSkill prepends a new skill and returns the full updated collection.
func (ct *UserController) AddSkill(c *fiber.Ctx) error {
	var in models.SkillInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	user, err := ct.loadCurrent(c)
	if err != nil {
		return ct.lookupError(c, err)
	}

	if err := user.AddSkill(in); err != nil {
		return ct.sectionError(c, err)
	}

	if err := ct.Users.Save(c.Context(), user); err != nil {
		return ct.serverError(c, "Error adding skill", err)
	}
	return c.Status(fiber.StatusCreated).JSON(user.Skills)
}

// UpdateSkill patches a skill by id and returns the full collection.
func (ct *UserController) UpdateSkill(c *fiber.Ctx) error {
	var patch models.SkillPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	user, err := ct.loadCurrent(c)
	if err != nil {
		return ct.lookupError(c, err)
	}

	if err := user.UpdateSkill(c.Params("id"), patch); err != nil {
		return ct.sectionError(c, err)
	}

	if err := ct.Users.Save(c.Context(), user); err != nil {
		return ct.serverError(c, "Error updating skill", err)
	}
	return c.JSON(user.Skills)
}

// DeleteSkill removes a skill by id and returns the full collection.
func (ct *UserController) DeleteSkill(c *fiber.Ctx) error {
	user, err := ct.loadCurrent(c)
	if err != nil {
		return ct.lookupError(c, err)
	}

	if err := user.RemoveSkill(c.Params("id")); err != nil {
		return ct.sectionError(c, err)
	}

	if err := ct.Users.Save(c.Context(), user); err != nil {
		return ct.serverError(c, "Error deleting skill", err)
	}
	return c.JSON(user.Skills)
}

// ReplaceSkills swaps the whole skills section for the supplied one.
func (ct *UserController) ReplaceSkills(c *fiber.Ctx) error {
	var body struct {
		Skills []models.Skill `json:"skills"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	user, err := ct.loadCurrent(c)
	if err != nil {
		return ct.lookupError(c, err)
	}

	if body.Skills != nil {
		user.ReplaceSkills(body.Skills)
		if err := ct.Users.Save(c.Context(), user); err != nil {
			return ct.serverError(c, "Error updating skills", err)
		}
	}
	return c.JSON(user)
}
