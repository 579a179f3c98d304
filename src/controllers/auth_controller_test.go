package controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	env := newEnv(t)

	// email is case-insensitive and whitespace-tolerant
	resp := env.request(t, "POST", "/api/auth/login", fiber.Map{
		"email":    "  Admin@Portfolio.local ",
		"password": "admin123",
	}, false)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody[struct {
		Token string         `json:"token"`
		User  map[string]any `json:"user"`
	}](t, resp)
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, "admin@portfolio.local", body.User["email"])
	// the password digest never leaves the server
	assert.NotContains(t, body.User, "password")

	env.token = body.Token
	me := env.request(t, "GET", "/api/auth/me", nil, true)
	require.Equal(t, fiber.StatusOK, me.StatusCode)

	identity := decodeBody[map[string]any](t, me)
	assert.Equal(t, env.admin.Id.Hex(), identity["id"])
	assert.Equal(t, "admin", identity["role"])
}

func TestLogin_WrongPassword(t *testing.T) {
	env := newEnv(t)

	resp := env.request(t, "POST", "/api/auth/login", fiber.Map{
		"email":    "admin@portfolio.local",
		"password": "nope",
	}, false)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", message(t, resp))
}

func TestLogin_UnknownEmail(t *testing.T) {
	env := newEnv(t)

	resp := env.request(t, "POST", "/api/auth/login", fiber.Map{
		"email":    "nobody@portfolio.local",
		"password": "admin123",
	}, false)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	// unknown email reads exactly like a wrong password
	assert.Equal(t, "Invalid credentials", message(t, resp))
}

func TestLogin_MissingFields(t *testing.T) {
	env := newEnv(t)

	resp := env.request(t, "POST", "/api/auth/login", fiber.Map{"email": "admin@portfolio.local"}, false)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Email and password are required", message(t, resp))
}

func TestAuthMe_RequiresToken(t *testing.T) {
	env := newEnv(t)

	resp := env.request(t, "GET", "/api/auth/me", nil, false)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "No authentication token, access denied", message(t, resp))
}
