package controllers

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gofiber/fiber/v2"

	"github.com/dheerajvarshn/portfolio-backend/src/lib"
	"github.com/dheerajvarshn/portfolio-backend/src/logger"
	"github.com/dheerajvarshn/portfolio-backend/src/models"
	"github.com/dheerajvarshn/portfolio-backend/src/store"
)

// PortfolioController serves the legacy owner-scoped surface: the aggregate
// portfolio view and the standalone resume/project/contact documents
// addressed by the owner's id in the path. These routes sit behind the
// ownership check, so the :userId segment is always the caller's own id on
// mutations.
type PortfolioController struct {
	Users  store.UserStore
	Legacy store.LegacyStore
	Log    *logger.Logger
}

// GetPortfolio aggregates the user's personal info with their standalone
// resume, projects and contact info.
func (ct *PortfolioController) GetPortfolio(c *fiber.Ctx) error {
	userID := c.Params("userId")

	user, err := ct.Users.FindByID(c.Context(), userID)
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("User not found"))
		}
		return ct.serverError(c, "Error fetching portfolio data", err)
	}

	resume, err := ct.Legacy.ResumeByUser(c.Context(), userID)
	if err != nil && err != store.ErrNotFound {
		return ct.serverError(c, "Error fetching portfolio data", err)
	}

	projects, err := ct.Legacy.ProjectsByUser(c.Context(), userID)
	if err != nil && err != store.ErrNotFound {
		return ct.serverError(c, "Error fetching portfolio data", err)
	}
	if projects == nil {
		projects = []models.ProjectDocument{}
	}

	contact, err := ct.Legacy.ContactByUser(c.Context(), userID)
	if err != nil && err != store.ErrNotFound {
		return ct.serverError(c, "Error fetching portfolio data", err)
	}

	return c.JSON(fiber.Map{
		"personalInfo": user,
		"resume":       resume,
		"projects":     projects,
		"contact":      contact,
	})
}

// GetPublicPortfolio is the trimmed-down aggregate for anonymous visitors.
func (ct *PortfolioController) GetPublicPortfolio(c *fiber.Ctx) error {
	userID := c.Params("userId")

	user, err := ct.Users.FindByID(c.Context(), userID)
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("User not found"))
		}
		return ct.serverError(c, "Error fetching public portfolio data", err)
	}

	projects, err := ct.Legacy.ProjectsByUser(c.Context(), userID)
	if err != nil && err != store.ErrNotFound {
		return ct.serverError(c, "Error fetching public portfolio data", err)
	}
	if projects == nil {
		projects = []models.ProjectDocument{}
	}

	contact, err := ct.Legacy.ContactByUser(c.Context(), userID)
	if err != nil && err != store.ErrNotFound {
		return ct.serverError(c, "Error fetching public portfolio data", err)
	}

	return c.JSON(fiber.Map{
		"personalInfo": fiber.Map{
			"name":        user.Name,
			"email":       user.Email,
			"title":       user.Title,
			"summary":     user.Summary,
			"skills":      user.Skills,
			"experience":  user.Experience,
			"education":   user.Education,
			"socialLinks": user.SocialLinks,
		},
		"projects": projects,
		"contact":  contact,
	})
}

// UpdatePersonal patches the owner's profile fields.
func (ct *PortfolioController) UpdatePersonal(c *fiber.Ctx) error {
	var in models.ProfileUpdate
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	user, err := ct.Users.FindByID(c.Context(), c.Params("userId"))
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("User not found"))
		}
		return ct.serverError(c, "Error updating personal information", err)
	}

	user.ApplyProfileUpdate(in)

	if err := ct.Users.Save(c.Context(), user); err != nil {
		return ct.serverError(c, "Error updating personal information", err)
	}
	return c.JSON(user)
}

// UpdateResume upserts the owner's standalone resume document.
func (ct *PortfolioController) UpdateResume(c *fiber.Ctx) error {
	var changes models.ResumeDocument
	if err := c.BodyParser(&changes); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	resume, err := ct.Legacy.UpdateResume(c.Context(), c.Params("userId"), &changes, true)
	if err != nil {
		return ct.serverError(c, "Error updating resume", err)
	}
	return c.JSON(resume)
}

// UpsertProject creates a standalone project when no :projectId is given and
// updates the addressed one otherwise.
func (ct *PortfolioController) UpsertProject(c *fiber.Ctx) error {
	var doc models.ProjectDocument
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	userID := c.Params("userId")
	projectID := c.Params("projectId")

	if projectID == "" {
		uid, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("User not found"))
		}
		doc.User = uid
		if err := ct.Legacy.InsertProject(c.Context(), &doc); err != nil {
			return ct.serverError(c, "Error updating project", err)
		}
		return c.JSON(doc)
	}

	updated, err := ct.Legacy.UpdateProject(c.Context(), projectID, userID, &doc)
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Project not found"))
		}
		return ct.serverError(c, "Error updating project", err)
	}
	return c.JSON(updated)
}

// DeleteProject removes a standalone project owned by the caller.
func (ct *PortfolioController) DeleteProject(c *fiber.Ctx) error {
	err := ct.Legacy.DeleteProject(c.Context(), c.Params("projectId"), c.Params("userId"))
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Project not found"))
		}
		return ct.serverError(c, "Error deleting project", err)
	}
	return c.JSON(lib.MessageResponse("Project deleted successfully"))
}

// UpdateContactInfo upserts the owner's standalone contact document.
func (ct *PortfolioController) UpdateContactInfo(c *fiber.Ctx) error {
	var changes models.ContactDocument
	if err := c.BodyParser(&changes); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	contact, err := ct.Legacy.UpdateContact(c.Context(), c.Params("userId"), &changes, true)
	if err != nil {
		return ct.serverError(c, "Error updating contact information", err)
	}
	return c.JSON(contact)
}

func (ct *PortfolioController) serverError(c *fiber.Ctx, message string, err error) error {
	ct.Log.Error(message, "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse(message, err))
}
