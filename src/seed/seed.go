// Package seed creates the portfolio owner account on first boot so the
// public read endpoints have something to serve.
package seed

import (
	"context"
	"errors"

	"github.com/dheerajvarshn/portfolio-backend/src/config"
	"github.com/dheerajvarshn/portfolio-backend/src/lib"
	"github.com/dheerajvarshn/portfolio-backend/src/logger"
	"github.com/dheerajvarshn/portfolio-backend/src/models"
	"github.com/dheerajvarshn/portfolio-backend/src/store"
)

// Run inserts the admin user when none exists yet. An existing admin is left
// untouched, so re-running at every boot is safe.
func Run(ctx context.Context, users store.UserStore, cfg config.Seed, log *logger.Logger) error {
	_, err := users.FindAdmin(ctx)
	if err == nil {
		log.Info("admin user already exists, skipping seed")
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	hash, err := lib.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:    cfg.AdminEmail,
		Password: hash,
		Role:     models.RoleAdmin,
		Name:     cfg.AdminName,
		Title:    "Full Stack Developer",
		Summary:  "Welcome to my portfolio.",

		// Empty but non-nil so the document carries real arrays from day one.
		Education:  []models.Education{},
		Experience: []models.Experience{},
		Skills:     []models.Skill{},
		Projects:   []models.Project{},
		Contacts:   []models.Contact{},
	}

	if err := users.Insert(ctx, &admin); err != nil {
		return err
	}

	log.Info("seeded admin user", "email", admin.Email)
	return nil
}
