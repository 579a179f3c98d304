package controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dheerajvarshn/portfolio-backend/src/models"
)

func TestLegacyResume_Singleton(t *testing.T) {
	env := newEnv(t)

	resp := env.request(t, "POST", "/api/resumes", fiber.Map{
		"personalInfo": fiber.Map{"name": "Owner", "email": "admin@portfolio.local"},
	}, true)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	doc := decodeBody[models.ResumeDocument](t, resp)
	assert.Equal(t, env.admin.Id, doc.User)

	// a second create for the same user conflicts
	resp = env.request(t, "POST", "/api/resumes", fiber.Map{}, true)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Resume already exists", message(t, resp))
}

func TestLegacyResume_Lifecycle(t *testing.T) {
	env := newEnv(t)

	resp := env.request(t, "GET", "/api/resumes/me", nil, true)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Resume not found", message(t, resp))

	env.request(t, "POST", "/api/resumes", fiber.Map{
		"personalInfo": fiber.Map{"name": "Owner"},
	}, true)

	resp = env.request(t, "PUT", "/api/resumes/me", fiber.Map{
		"skills": []fiber.Map{{"id": "s1", "name": "Go", "level": 90, "category": "Backend"}},
	}, true)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	doc := decodeBody[models.ResumeDocument](t, resp)
	require.Len(t, doc.Skills, 1)
	assert.Equal(t, "Owner", doc.PersonalInfo.Name)

	resp = env.request(t, "DELETE", "/api/resumes/me", nil, true)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Resume deleted successfully", message(t, resp))

	// the update path never resurrects a deleted resume
	resp = env.request(t, "PUT", "/api/resumes/me", fiber.Map{}, true)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Resume not found", message(t, resp))
}

func TestLegacyProjects_Lifecycle(t *testing.T) {
	env := newEnv(t)

	resp := env.request(t, "POST", "/api/projects", fiber.Map{
		"title":       "Standalone",
		"description": "doc",
	}, true)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	created := decodeBody[models.ProjectDocument](t, resp)
	require.False(t, created.Id.IsZero())
	assert.Equal(t, env.admin.Id, created.User)

	mine := env.request(t, "GET", "/api/projects/me", nil, true)
	require.Equal(t, fiber.StatusOK, mine.StatusCode)
	require.Len(t, decodeBody[[]models.ProjectDocument](t, mine), 1)

	resp = env.request(t, "PUT", "/api/projects/"+created.Id.Hex(), fiber.Map{"title": "Renamed"}, true)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Renamed", decodeBody[models.ProjectDocument](t, resp).Title)

	resp = env.request(t, "PUT", "/api/projects/507f1f77bcf86cd799439011", fiber.Map{"title": "x"}, true)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Project not found", message(t, resp))

	resp = env.request(t, "DELETE", "/api/projects/"+created.Id.Hex(), nil, true)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Project deleted successfully", message(t, resp))
}

func TestLegacyContact_Singleton(t *testing.T) {
	env := newEnv(t)

	resp := env.request(t, "POST", "/api/contacts", fiber.Map{
		"name":  "Owner",
		"email": "admin@portfolio.local",
		"phone": "555-0100",
	}, true)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = env.request(t, "POST", "/api/contacts", fiber.Map{}, true)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Contact already exists", message(t, resp))

	resp = env.request(t, "PUT", "/api/contacts/me", fiber.Map{"phone": "555-0199"}, true)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	doc := decodeBody[models.ContactDocument](t, resp)
	assert.Equal(t, "555-0199", doc.Phone)
	assert.Equal(t, "Owner", doc.Name)

	resp = env.request(t, "DELETE", "/api/contacts/me", nil, true)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Contact deleted successfully", message(t, resp))
}
