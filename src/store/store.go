// Package store persists the portfolio data. The canonical model is a single
// User document per account with every resume section embedded; mutations are
// whole-document read-modify-write cycles with no locking, so two concurrent
// writers to the same user race and the last Save wins. That lost-update
// window is a known limitation accepted because the system has a single owner.
package store

import (
	"context"
	"errors"

	"github.com/dheerajvarshn/portfolio-backend/src/models"
)

var (
	// ErrNotFound is returned when no document matches the query.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a uniqueness constraint would be
	// violated: a taken email, or a second singleton document for a user.
	ErrDuplicate = errors.New("already exists")
)

// UserStore persists User aggregates. Ids are hex object ids; a malformed id
// behaves like a miss.
type UserStore interface {
	// FindAdmin resolves the portfolio owner, the single admin user.
	FindAdmin(ctx context.Context) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	// FindByEmail matches the lowercase-normalized email.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// Insert creates the user, assigning an id and timestamps.
	Insert(ctx context.Context, user *models.User) error
	// Save replaces the whole document and refreshes updatedAt.
	Save(ctx context.Context, user *models.User) error
}

// LegacyStore persists the standalone project/resume/contact documents of the
// legacy surface, each foreign-keyed to its owning user. Updates merge the
// non-zero fields of the supplied document into the stored one.
type LegacyStore interface {
	ListProjects(ctx context.Context) ([]models.ProjectDocument, error)
	ProjectsByUser(ctx context.Context, userID string) ([]models.ProjectDocument, error)
	InsertProject(ctx context.Context, doc *models.ProjectDocument) error
	UpdateProject(ctx context.Context, id, userID string, changes *models.ProjectDocument) (*models.ProjectDocument, error)
	DeleteProject(ctx context.Context, id, userID string) error

	ListResumes(ctx context.Context) ([]models.ResumeDocument, error)
	ResumeByUser(ctx context.Context, userID string) (*models.ResumeDocument, error)
	// InsertResume fails with ErrDuplicate when the user already has one.
	InsertResume(ctx context.Context, doc *models.ResumeDocument) error
	// UpdateResume merges changes into the user's resume; when upsert is set
	// a missing resume is created instead of failing with ErrNotFound.
	UpdateResume(ctx context.Context, userID string, changes *models.ResumeDocument, upsert bool) (*models.ResumeDocument, error)
	DeleteResume(ctx context.Context, userID string) error

	ListContacts(ctx context.Context) ([]models.ContactDocument, error)
	ContactByUser(ctx context.Context, userID string) (*models.ContactDocument, error)
	// InsertContact fails with ErrDuplicate when the user already has one.
	InsertContact(ctx context.Context, doc *models.ContactDocument) error
	UpdateContact(ctx context.Context, userID string, changes *models.ContactDocument, upsert bool) (*models.ContactDocument, error)
	DeleteContact(ctx context.Context, userID string) error
}
