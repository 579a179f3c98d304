package store

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dheerajvarshn/portfolio-backend/src/models"
)

// Memory is a map-backed implementation of UserStore and LegacyStore with the
// same semantics as the Mongo one. It backs the test suites and local runs
// without a MongoDB instance. Everything is deep-copied across the boundary
// so callers never alias stored state.
type Memory struct {
	mu       sync.Mutex
	users    map[string]*models.User
	projects map[string]*models.ProjectDocument
	resumes  map[string]*models.ResumeDocument
	contacts map[string]*models.ContactDocument
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		users:    map[string]*models.User{},
		projects: map[string]*models.ProjectDocument{},
		resumes:  map[string]*models.ResumeDocument{},
		contacts: map[string]*models.ContactDocument{},
	}
}

func (m *Memory) FindAdmin(ctx context.Context) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Role == models.RoleAdmin {
			return cloneUser(u), nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) FindByID(ctx context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneUser(u), nil
}

func (m *Memory) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) Insert(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == user.Email {
			return ErrDuplicate
		}
	}

	if user.Id.IsZero() {
		user.Id = primitive.NewObjectID()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	m.users[user.Id.Hex()] = cloneUser(user)
	return nil
}

func (m *Memory) Save(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.Id.Hex()]; !ok {
		return ErrNotFound
	}
	user.UpdatedAt = time.Now()
	m.users[user.Id.Hex()] = cloneUser(user)
	return nil
}

// ----- legacy standalone documents -----

func (m *Memory) ListProjects(ctx context.Context) ([]models.ProjectDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	docs := []models.ProjectDocument{}
	for _, d := range m.projects {
		docs = append(docs, *cloneProjectDoc(d))
	}
	return docs, nil
}

func (m *Memory) ProjectsByUser(ctx context.Context, userID string) ([]models.ProjectDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	docs := []models.ProjectDocument{}
	for _, d := range m.projects {
		if d.User.Hex() == userID {
			docs = append(docs, *cloneProjectDoc(d))
		}
	}
	return docs, nil
}

func (m *Memory) InsertProject(ctx context.Context, doc *models.ProjectDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if doc.Id.IsZero() {
		doc.Id = primitive.NewObjectID()
	}
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	m.projects[doc.Id.Hex()] = cloneProjectDoc(doc)
	return nil
}

func (m *Memory) UpdateProject(ctx context.Context, id, userID string, changes *models.ProjectDocument) (*models.ProjectDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.projects[id]
	if !ok || d.User.Hex() != userID {
		return nil, ErrNotFound
	}

	if changes.Title != "" {
		d.Title = changes.Title
	}
	if changes.Description != "" {
		d.Description = changes.Description
	}
	if changes.Technologies != nil {
		d.Technologies = append([]string{}, changes.Technologies...)
	}
	if changes.Link != "" {
		d.Link = changes.Link
	}
	if changes.Image != "" {
		d.Image = changes.Image
	}
	d.UpdatedAt = time.Now()

	return cloneProjectDoc(d), nil
}

func (m *Memory) DeleteProject(ctx context.Context, id, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.projects[id]
	if !ok || d.User.Hex() != userID {
		return ErrNotFound
	}
	delete(m.projects, id)
	return nil
}

func (m *Memory) ListResumes(ctx context.Context) ([]models.ResumeDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	docs := []models.ResumeDocument{}
	for _, d := range m.resumes {
		docs = append(docs, *cloneResumeDoc(d))
	}
	return docs, nil
}

func (m *Memory) ResumeByUser(ctx context.Context, userID string) (*models.ResumeDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.resumes[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneResumeDoc(d), nil
}

func (m *Memory) InsertResume(ctx context.Context, doc *models.ResumeDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.resumes[doc.User.Hex()]; ok {
		return ErrDuplicate
	}

	if doc.Id.IsZero() {
		doc.Id = primitive.NewObjectID()
	}
	if doc.Version == 0 {
		doc.Version = 1
	}
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	m.resumes[doc.User.Hex()] = cloneResumeDoc(doc)
	return nil
}

func (m *Memory) UpdateResume(ctx context.Context, userID string, changes *models.ResumeDocument, upsert bool) (*models.ResumeDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.resumes[userID]
	if !ok {
		if !upsert {
			return nil, ErrNotFound
		}
		uid, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			return nil, ErrNotFound
		}
		d = &models.ResumeDocument{Id: primitive.NewObjectID(), User: uid, Version: 1, CreatedAt: time.Now()}
		m.resumes[userID] = d
	}

	if changes.PersonalInfo != (models.PersonalInfo{}) {
		d.PersonalInfo = changes.PersonalInfo
	}
	if changes.Education != nil {
		d.Education = append([]models.Education{}, changes.Education...)
	}
	if changes.Experience != nil {
		d.Experience = append([]models.Experience{}, changes.Experience...)
	}
	if changes.Skills != nil {
		d.Skills = append([]models.Skill{}, changes.Skills...)
	}
	if changes.Projects != nil {
		d.Projects = append([]models.Project{}, changes.Projects...)
	}
	if changes.Version != 0 {
		d.Version = changes.Version
	}
	d.UpdatedAt = time.Now()

	return cloneResumeDoc(d), nil
}

func (m *Memory) DeleteResume(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.resumes[userID]; !ok {
		return ErrNotFound
	}
	delete(m.resumes, userID)
	return nil
}

func (m *Memory) ListContacts(ctx context.Context) ([]models.ContactDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	docs := []models.ContactDocument{}
	for _, d := range m.contacts {
		docs = append(docs, *d)
	}
	return docs, nil
}

func (m *Memory) ContactByUser(ctx context.Context, userID string) (*models.ContactDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.contacts[userID]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *d
	return &copied, nil
}

func (m *Memory) InsertContact(ctx context.Context, doc *models.ContactDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.contacts[doc.User.Hex()]; ok {
		return ErrDuplicate
	}

	if doc.Id.IsZero() {
		doc.Id = primitive.NewObjectID()
	}
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	copied := *doc
	m.contacts[doc.User.Hex()] = &copied
	return nil
}

func (m *Memory) UpdateContact(ctx context.Context, userID string, changes *models.ContactDocument, upsert bool) (*models.ContactDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.contacts[userID]
	if !ok {
		if !upsert {
			return nil, ErrNotFound
		}
		uid, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			return nil, ErrNotFound
		}
		d = &models.ContactDocument{Id: primitive.NewObjectID(), User: uid, CreatedAt: time.Now()}
		m.contacts[userID] = d
	}

	if changes.Name != "" {
		d.Name = changes.Name
	}
	if changes.Email != "" {
		d.Email = changes.Email
	}
	if changes.Phone != "" {
		d.Phone = changes.Phone
	}
	if changes.Message != "" {
		d.Message = changes.Message
	}
	d.UpdatedAt = time.Now()

	copied := *d
	return &copied, nil
}

func (m *Memory) DeleteContact(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.contacts[userID]; !ok {
		return ErrNotFound
	}
	delete(m.contacts, userID)
	return nil
}

func cloneUser(u *models.User) *models.User {
	copied := *u
	// appending to a nil base would collapse empty sections to nil, and
	// empty-vs-absent is observable: sections must serialize as [] once set.
	if u.Education != nil {
		copied.Education = append([]models.Education{}, u.Education...)
	}
	copied.Experience = cloneExperience(u.Experience)
	if u.Skills != nil {
		copied.Skills = append([]models.Skill{}, u.Skills...)
	}
	copied.Projects = cloneProjects(u.Projects)
	if u.Contacts != nil {
		copied.Contacts = append([]models.Contact{}, u.Contacts...)
	}
	return &copied
}

func cloneExperience(items []models.Experience) []models.Experience {
	if items == nil {
		return nil
	}
	copied := make([]models.Experience, len(items))
	for i, e := range items {
		copied[i] = e
		if e.Achievements != nil {
			copied[i].Achievements = append([]string{}, e.Achievements...)
		}
	}
	return copied
}

func cloneProjects(items []models.Project) []models.Project {
	if items == nil {
		return nil
	}
	copied := make([]models.Project, len(items))
	for i, p := range items {
		copied[i] = p
		if p.Technologies != nil {
			copied[i].Technologies = append([]string{}, p.Technologies...)
		}
	}
	return copied
}

func cloneProjectDoc(d *models.ProjectDocument) *models.ProjectDocument {
	copied := *d
	if d.Technologies != nil {
		copied.Technologies = append([]string{}, d.Technologies...)
	}
	return &copied
}

func cloneResumeDoc(d *models.ResumeDocument) *models.ResumeDocument {
	copied := *d
	if d.Education != nil {
		copied.Education = append([]models.Education{}, d.Education...)
	}
	copied.Experience = cloneExperience(d.Experience)
	if d.Skills != nil {
		copied.Skills = append([]models.Skill{}, d.Skills...)
	}
	copied.Projects = cloneProjects(d.Projects)
	return &copied
}
