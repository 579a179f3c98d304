package models

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is the aggregate root: the single persisted identity plus the whole
// portfolio, with every resume section embedded as an array of sub-records.
// The password digest never serializes to JSON.
type User struct {
	Id          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email       string             `json:"email" bson:"email"`
	Password    string             `json:"-" bson:"password"`
	Role        string             `json:"role" bson:"role"`
	Name        string             `json:"name" bson:"name,omitempty"`
	Title       string             `json:"title" bson:"title,omitempty"`
	Summary     string             `json:"summary" bson:"summary,omitempty"`
	Phone       string             `json:"phone" bson:"phone,omitempty"`
	Location    string             `json:"location" bson:"location,omitempty"`
	Website     string             `json:"website" bson:"website,omitempty"`
	SocialLinks SocialLinks        `json:"socialLinks" bson:"socialLinks"`
	Education   []Education        `json:"education" bson:"education"`
	Experience  []Experience       `json:"experience" bson:"experience"`
	Skills      []Skill            `json:"skills" bson:"skills"`
	Projects    []Project          `json:"projects" bson:"projects"`
	Contacts    []Contact          `json:"contacts" bson:"contacts"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// AuthUser is the identity the auth middleware attaches to the request
// context for downstream handlers.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type SocialLinks struct {
	LinkedIn string `json:"linkedin" bson:"linkedin,omitempty"`
	GitHub   string `json:"github" bson:"github,omitempty"`
	Twitter  string `json:"twitter" bson:"twitter,omitempty"`
}

// Sub-records carry a generated id, unique within their collection and
// stable across edits until deletion.

type Education struct {
	ID          string `json:"id" bson:"id"`
	Institution string `json:"institution" bson:"institution"`
	Degree      string `json:"degree" bson:"degree"`
	Field       string `json:"field" bson:"field"`
	StartDate   string `json:"startDate" bson:"startDate"`
	EndDate     string `json:"endDate" bson:"endDate,omitempty"`
}

type Experience struct {
	ID           string   `json:"id" bson:"id"`
	Company      string   `json:"company" bson:"company"`
	Position     string   `json:"position" bson:"position"`
	StartDate    string   `json:"startDate" bson:"startDate"`
	EndDate      string   `json:"endDate" bson:"endDate,omitempty"`
	Description  string   `json:"description" bson:"description"`
	Achievements []string `json:"achievements" bson:"achievements"`
}

type Skill struct {
	ID       string `json:"id" bson:"id"`
	Name     string `json:"name" bson:"name"`
	Level    int    `json:"level" bson:"level"`
	Category string `json:"category" bson:"category"`
}

type Project struct {
	ID           string   `json:"id" bson:"id"`
	Title        string   `json:"title" bson:"title"`
	Description  string   `json:"description" bson:"description"`
	Technologies []string `json:"technologies" bson:"technologies"`
	Link         string   `json:"link" bson:"link,omitempty"`
	Image        string   `json:"image" bson:"image,omitempty"`
}

type Contact struct {
	ID      string    `json:"id" bson:"id"`
	Name    string    `json:"name" bson:"name"`
	Email   string    `json:"email" bson:"email"`
	Phone   string    `json:"phone" bson:"phone,omitempty"`
	Message string    `json:"message" bson:"message"`
	Date    time.Time `json:"date" bson:"date"`
}

// ValidationError reports missing or out-of-range request fields. Mapped to
// HTTP 400 at the handler boundary.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError reports a sub-record id with no match in its collection.
// Mapped to HTTP 404 at the handler boundary.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// ProfileUpdate is the body of PUT /api/user. String fields apply only when
// non-empty; section slices replace wholesale when present in the body.
type ProfileUpdate struct {
	Name        string       `json:"name"`
	Title       string       `json:"title"`
	Summary     string       `json:"summary"`
	Phone       string       `json:"phone"`
	Location    string       `json:"location"`
	Website     string       `json:"website"`
	SocialLinks *SocialLinks `json:"socialLinks"`
	Skills      []Skill      `json:"skills"`
	Education   []Education  `json:"education"`
	Experience  []Experience `json:"experience"`
	Projects    []Project    `json:"projects"`
}

// ApplyProfileUpdate patches the profile in place. Section replacements pass
// through the Replace helpers so every element ends up with an id.
func (u *User) ApplyProfileUpdate(in ProfileUpdate) {
	if in.Name != "" {
		u.Name = in.Name
	}
	if in.Title != "" {
		u.Title = in.Title
	}
	if in.Summary != "" {
		u.Summary = in.Summary
	}
	if in.Phone != "" {
		u.Phone = in.Phone
	}
	if in.Location != "" {
		u.Location = in.Location
	}
	if in.Website != "" {
		u.Website = in.Website
	}
	if in.SocialLinks != nil {
		u.SocialLinks = *in.SocialLinks
	}
	if in.Skills != nil {
		u.ReplaceSkills(in.Skills)
	}
	if in.Education != nil {
		u.ReplaceEducation(in.Education)
	}
	if in.Experience != nil {
		u.ReplaceExperience(in.Experience)
	}
	if in.Projects != nil {
		u.ReplaceProjects(in.Projects)
	}
}

func newID() string { return uuid.NewString() }
