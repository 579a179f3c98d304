package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/dheerajvarshn/portfolio-backend/src/lib"
	"github.com/dheerajvarshn/portfolio-backend/src/models"
	"github.com/dheerajvarshn/portfolio-backend/src/store"
)

// Protect returns a middleware that checks for a valid bearer token, resolves
// it to a user and attaches the identity to the request context. Every
// failure answers 401 with a generic message: whether the token was missing,
// malformed, tampered with, expired or issued for a deleted user is never
// leaked to the caller.
func Protect(users store.UserStore, tokens *lib.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("No authentication token, access denied"))
		}

		// Expected format: "Bearer <token>"
		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Token is not valid"))
		}

		userID, err := tokens.Parse(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Token is not valid"))
		}

		user, err := users.FindByID(c.Context(), userID)
		if err != nil {
			// A token for a deleted user is as invalid as a forged one, but
			// a store failure is the server's fault, not the caller's.
			if errors.Is(err, store.ErrNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Token is not valid"))
			}
			return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse("Server error", err))
		}

		c.Locals("user", models.AuthUser{
			ID:    user.Id.Hex(),
			Email: user.Email,
			Role:  user.Role,
		})

		return c.Next()
	}
}

// CurrentUser returns the identity Protect attached to the request context.
// Only call it from handlers registered behind Protect.
func CurrentUser(c *fiber.Ctx) models.AuthUser {
	return c.Locals("user").(models.AuthUser)
}
