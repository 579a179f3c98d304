package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dheerajvarshn/portfolio-backend/src/config"
	"github.com/dheerajvarshn/portfolio-backend/src/lib"
	"github.com/dheerajvarshn/portfolio-backend/src/logger"
	"github.com/dheerajvarshn/portfolio-backend/src/models"
	"github.com/dheerajvarshn/portfolio-backend/src/store"
)

func TestRun_CreatesAdminOnce(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()
	cfg := config.Seed{
		AdminEmail:    "owner@example.com",
		AdminPassword: "admin123",
		AdminName:     "Owner",
	}

	require.NoError(t, Run(ctx, mem, cfg, logger.New(0)))

	admin, err := mem.FindAdmin(ctx)
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", admin.Email)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.True(t, lib.CheckPassword("admin123", admin.Password))
	assert.NotNil(t, admin.Skills)
	assert.NotNil(t, admin.Contacts)

	// a second run leaves the existing admin untouched
	cfg.AdminEmail = "other@example.com"
	require.NoError(t, Run(ctx, mem, cfg, logger.New(0)))

	admin, err = mem.FindAdmin(ctx)
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", admin.Email)
}
