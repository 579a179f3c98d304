package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/dheerajvarshn/portfolio-backend/src/controllers"
	"github.com/dheerajvarshn/portfolio-backend/src/lib"
	"github.com/dheerajvarshn/portfolio-backend/src/logger"
	"github.com/dheerajvarshn/portfolio-backend/src/middleware"
	"github.com/dheerajvarshn/portfolio-backend/src/models"
	"github.com/dheerajvarshn/portfolio-backend/src/routes"
	"github.com/dheerajvarshn/portfolio-backend/src/store"
)

// testEnv wires the full route table over the in-memory store, mirroring the
// composition in main.go.
type testEnv struct {
	app   *fiber.App
	store *store.Memory
	admin *models.User
	token string
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()

	env := newEmptyEnv(t)

	hash, err := lib.HashPassword("admin123")
	require.NoError(t, err)

	admin := &models.User{
		Email:      "admin@portfolio.local",
		Password:   hash,
		Role:       models.RoleAdmin,
		Name:       "Portfolio Owner",
		Education:  []models.Education{},
		Experience: []models.Experience{},
		Skills:     []models.Skill{},
		Projects:   []models.Project{},
		Contacts:   []models.Contact{},
	}
	require.NoError(t, env.store.Insert(context.Background(), admin))
	env.admin = admin

	tokens := lib.NewTokenManager("test-secret", time.Hour)
	token, err := tokens.Generate(admin.Id.Hex())
	require.NoError(t, err)
	env.token = token

	return env
}

func newEmptyEnv(t *testing.T) *testEnv {
	t.Helper()

	mem := store.NewMemory()
	tokens := lib.NewTokenManager("test-secret", time.Hour)
	log := logger.New(0)

	app := fiber.New()
	protect := middleware.Protect(mem, tokens)
	ownership := middleware.CheckOwnership()

	auth := &controllers.AuthController{Users: mem, Tokens: tokens, Log: log}
	user := &controllers.UserController{Users: mem, Log: log}
	portfolio := &controllers.PortfolioController{Users: mem, Legacy: mem, Log: log}
	legacy := &controllers.LegacyController{Legacy: mem, Log: log}

	routes.AuthRoutes(app, auth, protect)
	routes.UserRoutes(app, user, protect)
	routes.PortfolioRoutes(app, portfolio, protect, ownership)
	routes.LegacyRoutes(app, legacy, protect)

	return &testEnv{app: app, store: mem}
}

// request performs an HTTP exchange against the app. A nil body sends no
// payload; otherwise the body is marshalled as JSON.
func (e *testEnv) request(t *testing.T, method, path string, body any, authed bool) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NoError(t, resp.Body.Close())
	return out
}

func message(t *testing.T, resp *http.Response) string {
	t.Helper()

	body := decodeBody[map[string]any](t, resp)
	msg, _ := body["message"].(string)
	return msg
}
