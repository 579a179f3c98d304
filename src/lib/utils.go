package lib

import "github.com/gofiber/fiber/v2"

// MessageResponse returns a map with a message key for API responses.
func MessageResponse(message string) fiber.Map {
	return fiber.Map{
		"message": message,
	}
}

// ErrorResponse returns a message plus the underlying error text, used for
// 500-class responses where the cause is attached for diagnostics.
func ErrorResponse(message string, err error) fiber.Map {
	return fiber.Map{
		"message": message,
		"error":   err.Error(),
	}
}
