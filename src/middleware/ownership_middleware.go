package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dheerajvarshn/portfolio-backend/src/lib"
)

// CheckOwnership returns a middleware for owner-scoped routes: the
// authenticated user's id must equal the :userId path segment. The check is
// purely path-vs-identity; whether the targeted resource exists is reported
// separately as a 404 by the handler behind it. Register after Protect.
func CheckOwnership() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)

		if user.ID != c.Params("userId") {
			return c.Status(fiber.StatusForbidden).JSON(lib.MessageResponse("Not authorized to modify this data"))
		}

		return c.Next()
	}
}
