package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Legacy standalone documents. An older iteration of the dashboard stored
// projects, resumes and contact info as independently addressable documents
// foreign-keyed to the user instead of arrays embedded in the User document.
// The embedded-array model is canonical; these remain as a separate legacy
// surface and are never reconciled with it.

// ProjectDocument is a standalone project owned by a user. Unlike the
// singleton resume and contact info, a user may own any number of these.
type ProjectDocument struct {
	Id           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title        string             `json:"title" bson:"title"`
	Description  string             `json:"description" bson:"description"`
	Technologies []string           `json:"technologies" bson:"technologies"`
	Link         string             `json:"link" bson:"link,omitempty"`
	Image        string             `json:"image" bson:"image,omitempty"`
	User         primitive.ObjectID `json:"user" bson:"user"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ResumeDocument is the standalone resume, at most one per user.
type ResumeDocument struct {
	Id           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PersonalInfo PersonalInfo       `json:"personalInfo" bson:"personalInfo"`
	Education    []Education        `json:"education" bson:"education"`
	Experience   []Experience       `json:"experience" bson:"experience"`
	Skills       []Skill            `json:"skills" bson:"skills"`
	Projects     []Project          `json:"projects" bson:"projects"`
	Version      int                `json:"version" bson:"version"`
	User         primitive.ObjectID `json:"user" bson:"user"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type PersonalInfo struct {
	Name        string      `json:"name" bson:"name"`
	Title       string      `json:"title" bson:"title"`
	Email       string      `json:"email" bson:"email"`
	Phone       string      `json:"phone" bson:"phone,omitempty"`
	Location    string      `json:"location" bson:"location,omitempty"`
	Website     string      `json:"website" bson:"website,omitempty"`
	Summary     string      `json:"summary" bson:"summary"`
	SocialLinks SocialLinks `json:"socialLinks" bson:"socialLinks"`
}

// ContactDocument is the standalone contact info, at most one per user.
type ContactDocument struct {
	Id        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Phone     string             `json:"phone" bson:"phone,omitempty"`
	Message   string             `json:"message" bson:"message"`
	User      primitive.ObjectID `json:"user" bson:"user"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}
