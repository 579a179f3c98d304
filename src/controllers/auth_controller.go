package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/dheerajvarshn/portfolio-backend/src/lib"
	"github.com/dheerajvarshn/portfolio-backend/src/logger"
	"github.com/dheerajvarshn/portfolio-backend/src/middleware"
	"github.com/dheerajvarshn/portfolio-backend/src/store"
)

// AuthController handles credential verification and token issuance.
type AuthController struct {
	Users  store.UserStore
	Tokens *lib.TokenManager
	Log    *logger.Logger
}

// Login verifies email and password and answers with the user plus a signed
// bearer token. Unknown email and wrong password are indistinguishable.
func (ct *AuthController) Login(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))
	if email == "" || body.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Email and password are required"))
	}

	user, err := ct.Users.FindByEmail(c.Context(), email)
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Invalid credentials"))
		}
		ct.Log.Error("failed to look up user for login", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse("Server error", err))
	}

	if !lib.CheckPassword(body.Password, user.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Invalid credentials"))
	}

	token, err := ct.Tokens.Generate(user.Id.Hex())
	if err != nil {
		ct.Log.Error("failed to generate token", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse("Server error", err))
	}

	return c.JSON(fiber.Map{
		"user":  user,
		"token": token,
	})
}

// GetCurrentUser returns the authenticated identity attached by the auth
// middleware.
func (ct *AuthController) GetCurrentUser(c *fiber.Ctx) error {
	return c.JSON(middleware.CurrentUser(c))
}
