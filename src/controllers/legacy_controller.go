package controllers

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gofiber/fiber/v2"

	"github.com/dheerajvarshn/portfolio-backend/src/lib"
	"github.com/dheerajvarshn/portfolio-backend/src/logger"
	"github.com/dheerajvarshn/portfolio-backend/src/middleware"
	"github.com/dheerajvarshn/portfolio-backend/src/models"
	"github.com/dheerajvarshn/portfolio-backend/src/store"
)

// LegacyController serves the standalone resume/project/contact collections
// under their own top-level prefixes. Resume and contact info are
// singleton-per-user; projects are not. This surface predates the
// embedded-array model and is kept for old clients only.
type LegacyController struct {
	Legacy store.LegacyStore
	Log    *logger.Logger
}

// ----- standalone projects -----

// ListProjects returns every standalone project across users.
func (ct *LegacyController) ListProjects(c *fiber.Ctx) error {
	docs, err := ct.Legacy.ListProjects(c.Context())
	if err != nil {
		return ct.serverError(c, "Error fetching projects", err)
	}
	return c.JSON(docs)
}

// MyProjects returns the caller's standalone projects.
func (ct *LegacyController) MyProjects(c *fiber.Ctx) error {
	docs, err := ct.Legacy.ProjectsByUser(c.Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		return ct.serverError(c, "Error fetching projects", err)
	}
	return c.JSON(docs)
}

// CreateProject creates a standalone project owned by the caller.
func (ct *LegacyController) CreateProject(c *fiber.Ctx) error {
	var doc models.ProjectDocument
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	uid, err := primitive.ObjectIDFromHex(middleware.CurrentUser(c).ID)
	if err != nil {
		return ct.serverError(c, "Error creating project", err)
	}
	doc.User = uid

	if err := ct.Legacy.InsertProject(c.Context(), &doc); err != nil {
		return ct.serverError(c, "Error creating project", err)
	}
	return c.Status(fiber.StatusCreated).JSON(doc)
}

// UpdateProject merges the body into the caller's project with the given id.
func (ct *LegacyController) UpdateProject(c *fiber.Ctx) error {
	var changes models.ProjectDocument
	if err := c.BodyParser(&changes); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	doc, err := ct.Legacy.UpdateProject(c.Context(), c.Params("id"), middleware.CurrentUser(c).ID, &changes)
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Project not found"))
		}
		return ct.serverError(c, "Error updating project", err)
	}
	return c.JSON(doc)
}

// DeleteProject removes the caller's project with the given id.
func (ct *LegacyController) DeleteProject(c *fiber.Ctx) error {
	err := ct.Legacy.DeleteProject(c.Context(), c.Params("id"), middleware.CurrentUser(c).ID)
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Project not found"))
		}
		return ct.serverError(c, "Error deleting project", err)
	}
	return c.JSON(lib.MessageResponse("Project deleted successfully"))
}

// ----- standalone resume (singleton per user) -----

// ListResumes returns every standalone resume across users.
func (ct *LegacyController) ListResumes(c *fiber.Ctx) error {
	docs, err := ct.Legacy.ListResumes(c.Context())
	if err != nil {
		return ct.serverError(c, "Error fetching resumes", err)
	}
	return c.JSON(docs)
}

// MyResume returns the caller's standalone resume.
func (ct *LegacyController) MyResume(c *fiber.Ctx) error {
	doc, err := ct.Legacy.ResumeByUser(c.Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Resume not found"))
		}
		return ct.serverError(c, "Error fetching resume", err)
	}
	return c.JSON(doc)
}

// CreateResume creates the caller's resume; at most one may exist.
func (ct *LegacyController) CreateResume(c *fiber.Ctx) error {
	var doc models.ResumeDocument
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	uid, err := primitive.ObjectIDFromHex(middleware.CurrentUser(c).ID)
	if err != nil {
		return ct.serverError(c, "Error creating resume", err)
	}
	doc.User = uid

	if err := ct.Legacy.InsertResume(c.Context(), &doc); err != nil {
		if err == store.ErrDuplicate {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Resume already exists"))
		}
		return ct.serverError(c, "Error creating resume", err)
	}
	return c.Status(fiber.StatusCreated).JSON(doc)
}

// UpdateMyResume merges the body into the caller's resume.
func (ct *LegacyController) UpdateMyResume(c *fiber.Ctx) error {
	var changes models.ResumeDocument
	if err := c.BodyParser(&changes); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	doc, err := ct.Legacy.UpdateResume(c.Context(), middleware.CurrentUser(c).ID, &changes, false)
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Resume not found"))
		}
		return ct.serverError(c, "Error updating resume", err)
	}
	return c.JSON(doc)
}

// DeleteMyResume removes the caller's resume.
func (ct *LegacyController) DeleteMyResume(c *fiber.Ctx) error {
	err := ct.Legacy.DeleteResume(c.Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Resume not found"))
		}
		return ct.serverError(c, "Error deleting resume", err)
	}
	return c.JSON(lib.MessageResponse("Resume deleted successfully"))
}

// ----- standalone contact info (singleton per user) -----

// ListContacts returns every standalone contact document across users.
func (ct *LegacyController) ListContacts(c *fiber.Ctx) error {
	docs, err := ct.Legacy.ListContacts(c.Context())
	if err != nil {
		return ct.serverError(c, "Error fetching contacts", err)
	}
	return c.JSON(docs)
}

// MyContact returns the caller's standalone contact document.
func (ct *LegacyController) MyContact(c *fiber.Ctx) error {
	doc, err := ct.Legacy.ContactByUser(c.Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Contact not found"))
		}
		return ct.serverError(c, "Error fetching contact", err)
	}
	return c.JSON(doc)
}

// CreateContact creates the caller's contact document; at most one may exist.
func (ct *LegacyController) CreateContact(c *fiber.Ctx) error {
	var doc models.ContactDocument
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	uid, err := primitive.ObjectIDFromHex(middleware.CurrentUser(c).ID)
	if err != nil {
		return ct.serverError(c, "Error creating contact", err)
	}
	doc.User = uid

	if err := ct.Legacy.InsertContact(c.Context(), &doc); err != nil {
		if err == store.ErrDuplicate {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Contact already exists"))
		}
		return ct.serverError(c, "Error creating contact", err)
	}
	return c.Status(fiber.StatusCreated).JSON(doc)
}

// UpdateMyContact merges the body into the caller's contact document.
func (ct *LegacyController) UpdateMyContact(c *fiber.Ctx) error {
	var changes models.ContactDocument
	if err := c.BodyParser(&changes); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	doc, err := ct.Legacy.UpdateContact(c.Context(), middleware.CurrentUser(c).ID, &changes, false)
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Contact not found"))
		}
		return ct.serverError(c, "Error updating contact", err)
	}
	return c.JSON(doc)
}

// DeleteMyContact removes the caller's contact document.
func (ct *LegacyController) DeleteMyContact(c *fiber.Ctx) error {
	err := ct.Legacy.DeleteContact(c.Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Contact not found"))
		}
		return ct.serverError(c, "Error deleting contact", err)
	}
	return c.JSON(lib.MessageResponse("Contact deleted successfully"))
}

func (ct *LegacyController) serverError(c *fiber.Ctx, message string, err error) error {
	ct.Log.Error(message, "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse(message, err))
}
