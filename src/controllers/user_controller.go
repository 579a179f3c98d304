package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dheerajvarshn/portfolio-backend/src/lib"
	"github.com/dheerajvarshn/portfolio-backend/src/logger"
	"github.com/dheerajvarshn/portfolio-backend/src/middleware"
	"github.com/dheerajvarshn/portfolio-backend/src/models"
	"github.com/dheerajvarshn/portfolio-backend/src/store"
)

// UserController handles the canonical portfolio surface: the User document
// and every embedded section. All section mutations follow the same cycle:
// fetch the whole document, mutate the array in memory, persist the whole
// document, return the full updated section.
type UserController struct {
	Users store.UserStore
	Log   *logger.Logger
}

// GetPortfolio returns the portfolio owner's public data: the single admin
// user, password excluded.
func (ct *UserController) GetPortfolio(c *fiber.Ctx) error {
	user, err := ct.Users.FindAdmin(c.Context())
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("User not found"))
		}
		return ct.serverError(c, "Server error", err)
	}
	return c.JSON(user)
}

// GetMe returns the authenticated user's own document for the dashboard.
func (ct *UserController) GetMe(c *fiber.Ctx) error {
	user, err := ct.loadCurrent(c)
	if err != nil {
		return ct.lookupError(c, err)
	}
	return c.JSON(user)
}

// UpdateProfile patches profile fields and replaces whole sections supplied
// in the body.
func (ct *UserController) UpdateProfile(c *fiber.Ctx) error {
	var in models.ProfileUpdate
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	user, err := ct.loadCurrent(c)
	if err != nil {
		return ct.lookupError(c, err)
	}

	user.ApplyProfileUpdate(in)

	if err := ct.Users.Save(c.Context(), user); err != nil {
		return ct.serverError(c, "Error updating user", err)
	}
	return c.JSON(user)
}

// SubmitContact is the public contact form: the message lands in the admin
// user's contacts collection.
func (ct *UserController) SubmitContact(c *fiber.Ctx) error {
	var in models.ContactInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	admin, err := ct.Users.FindAdmin(c.Context())
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Admin user not found"))
		}
		return ct.serverError(c, "Server error", err)
	}

	if err := admin.AddContact(in); err != nil {
		return ct.sectionError(c, err)
	}

	if err := ct.Users.Save(c.Context(), admin); err != nil {
		return ct.serverError(c, "Error saving contact", err)
	}
	return c.Status(fiber.StatusCreated).JSON(lib.MessageResponse("Contact message sent successfully"))
}

// ListContacts returns every contact message received so far.
func (ct *UserController) ListContacts(c *fiber.Ctx) error {
	user, err := ct.loadCurrent(c)
	if err != nil {
		return ct.lookupError(c, err)
	}
	return c.JSON(user.Contacts)
}

// DeleteContact removes a contact message by id.
func (ct *UserController) DeleteContact(c *fiber.Ctx) error {
	user, err := ct.loadCurrent(c)
	if err != nil {
		return ct.lookupError(c, err)
	}

	if err := user.RemoveContact(c.Params("id")); err != nil {
		return ct.sectionError(c, err)
	}

	if err := ct.Users.Save(c.Context(), user); err != nil {
		return ct.serverError(c, "Error deleting contact", err)
	}
	return c.JSON(user.Contacts)
}

// loadCurrent fetches the authenticated user's full document.
func (ct *UserController) loadCurrent(c *fiber.Ctx) (*models.User, error) {
	return ct.Users.FindByID(c.Context(), middleware.CurrentUser(c).ID)
}

func (ct *UserController) lookupError(c *fiber.Ctx, err error) error {
	if err == store.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("User not found"))
	}
	return ct.serverError(c, "Server error", err)
}

// sectionError maps the model's validation and lookup failures onto the
// response codes of the section protocol.
func (ct *UserController) sectionError(c *fiber.Ctx, err error) error {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(ve.Message))
	}
	var nf *models.NotFoundError
	if errors.As(err, &nf) {
		return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse(nf.Message))
	}
	return ct.serverError(c, "Server error", err)
}

func (ct *UserController) serverError(c *fiber.Ctx, message string, err error) error {
	ct.Log.Error(message, "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse(message, err))
}
