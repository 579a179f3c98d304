package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dheerajvarshn/portfolio-backend/src/models"
)

func TestMemory_UserLifecycle(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	_, err := mem.FindAdmin(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	user := &models.User{Email: "admin@portfolio.local", Role: models.RoleAdmin}
	require.NoError(t, mem.Insert(ctx, user))
	require.False(t, user.Id.IsZero())
	assert.False(t, user.CreatedAt.IsZero())

	admin, err := mem.FindAdmin(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.Id, admin.Id)

	byEmail, err := mem.FindByEmail(ctx, "admin@portfolio.local")
	require.NoError(t, err)
	assert.Equal(t, user.Id, byEmail.Id)

	_, err = mem.FindByID(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_KeepsEmptySections(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	user := &models.User{
		Email:      "admin@portfolio.local",
		Role:       models.RoleAdmin,
		Education:  []models.Education{},
		Experience: []models.Experience{},
		Skills:     []models.Skill{},
		Projects:   []models.Project{},
		Contacts:   []models.Contact{},
	}
	require.NoError(t, mem.Insert(ctx, user))

	// empty sections stay empty slices across the round trip, never nil,
	// so they serialize as [] just like on the Mongo path
	admin, err := mem.FindAdmin(ctx)
	require.NoError(t, err)
	assert.NotNil(t, admin.Education)
	assert.NotNil(t, admin.Experience)
	assert.NotNil(t, admin.Skills)
	assert.NotNil(t, admin.Projects)
	assert.NotNil(t, admin.Contacts)

	// while never-set sections stay nil
	bare := &models.User{Email: "bare@portfolio.local"}
	require.NoError(t, mem.Insert(ctx, bare))

	loaded, err := mem.FindByID(ctx, bare.Id.Hex())
	require.NoError(t, err)
	assert.Nil(t, loaded.Skills)
}

func TestMemory_DuplicateEmail(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	require.NoError(t, mem.Insert(ctx, &models.User{Email: "admin@portfolio.local"}))
	err := mem.Insert(ctx, &models.User{Email: "admin@portfolio.local"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestMemory_SaveIsolation(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	user := &models.User{Email: "admin@portfolio.local", Role: models.RoleAdmin}
	require.NoError(t, mem.Insert(ctx, user))

	loaded, err := mem.FindByID(ctx, user.Id.Hex())
	require.NoError(t, err)

	// mutating a loaded copy must not leak into the store before Save
	loaded.Skills = append(loaded.Skills, models.Skill{ID: "s1", Name: "Go", Level: 80, Category: "Backend"})

	fresh, err := mem.FindByID(ctx, user.Id.Hex())
	require.NoError(t, err)
	assert.Empty(t, fresh.Skills)

	require.NoError(t, mem.Save(ctx, loaded))

	fresh, err = mem.FindByID(ctx, user.Id.Hex())
	require.NoError(t, err)
	assert.Len(t, fresh.Skills, 1)
}

func TestMemory_SaveUnknownUser(t *testing.T) {
	mem := NewMemory()

	err := mem.Save(context.Background(), &models.User{Id: primitive.NewObjectID()})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_ResumeUpsert(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()
	userID := primitive.NewObjectID().Hex()

	_, err := mem.UpdateResume(ctx, userID, &models.ResumeDocument{}, false)
	assert.ErrorIs(t, err, ErrNotFound)

	doc, err := mem.UpdateResume(ctx, userID, &models.ResumeDocument{
		Skills: []models.Skill{{ID: "s1", Name: "Go", Level: 90, Category: "Backend"}},
	}, true)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Version)
	assert.Len(t, doc.Skills, 1)

	// merge keeps what the patch leaves out
	doc, err = mem.UpdateResume(ctx, userID, &models.ResumeDocument{
		Education: []models.Education{{ID: "e1", Institution: "MIT", Degree: "BSc", Field: "CS", StartDate: "2016-09"}},
	}, false)
	require.NoError(t, err)
	assert.Len(t, doc.Skills, 1)
	assert.Len(t, doc.Education, 1)
}

func TestMemory_ProjectOwnership(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	owner := primitive.NewObjectID()
	doc := &models.ProjectDocument{Title: "Standalone", Description: "doc", User: owner}
	require.NoError(t, mem.InsertProject(ctx, doc))

	// another user cannot address the document
	_, err := mem.UpdateProject(ctx, doc.Id.Hex(), primitive.NewObjectID().Hex(), &models.ProjectDocument{Title: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, mem.DeleteProject(ctx, doc.Id.Hex(), primitive.NewObjectID().Hex()), ErrNotFound)

	updated, err := mem.UpdateProject(ctx, doc.Id.Hex(), owner.Hex(), &models.ProjectDocument{Title: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)

	require.NoError(t, mem.DeleteProject(ctx, doc.Id.Hex(), owner.Hex()))
	docs, err := mem.ProjectsByUser(ctx, owner.Hex())
	require.NoError(t, err)
	assert.Empty(t, docs)
}
