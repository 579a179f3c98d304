package models

import "time"

// Section operations implement the uniform sub-resource protocol: Add
// validates required fields and prepends a freshly-identified record, Update
// patches by id field by field, Remove splices by id. Which fields patch on
// "truthy" (non-empty / non-zero) versus "present in the body" differs per
// section and is kept exactly as the dashboard expects; see the Patch types.

// ----- PROJECTS -----

type ProjectInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link"`
	Image        string   `json:"image"`
}

// ProjectPatch updates title, description and technologies when non-empty;
// link and image whenever present, so they can be cleared.
type ProjectPatch struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         *string  `json:"link"`
	Image        *string  `json:"image"`
}

// AddProject prepends a new project to the collection.
func (u *User) AddProject(in ProjectInput) error {
	if in.Title == "" || in.Description == "" {
		return &ValidationError{Message: "Title and description are required"}
	}

	p := Project{
		ID:           newID(),
		Title:        in.Title,
		Description:  in.Description,
		Technologies: in.Technologies,
		Link:         in.Link,
		Image:        in.Image,
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}

	u.Projects = append([]Project{p}, u.Projects...)
	return nil
}

// UpdateProject patches the project with the given id.
func (u *User) UpdateProject(id string, patch ProjectPatch) error {
	i := u.findProject(id)
	if i == -1 {
		return &NotFoundError{Message: "Project not found"}
	}

	p := &u.Projects[i]
	if patch.Title != "" {
		p.Title = patch.Title
	}
	if patch.Description != "" {
		p.Description = patch.Description
	}
	if patch.Technologies != nil {
		p.Technologies = patch.Technologies
	}
	if patch.Link != nil {
		p.Link = *patch.Link
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}

	return nil
}

// RemoveProject deletes the project with the given id.
func (u *User) RemoveProject(id string) error {
	i := u.findProject(id)
	if i == -1 {
		return &NotFoundError{Message: "Project not found"}
	}

	u.Projects = append(u.Projects[:i], u.Projects[i+1:]...)
	return nil
}

// ReplaceProjects swaps in a whole new collection, assigning ids to elements
// that arrived without one.
func (u *User) ReplaceProjects(items []Project) {
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = newID()
		}
		if items[i].Technologies == nil {
			items[i].Technologies = []string{}
		}
	}
	u.Projects = items
}

func (u *User) findProject(id string) int {
	for i := range u.Projects {
		if u.Projects[i].ID == id {
			return i
		}
	}
	return -1
}

// ----- EXPERIENCE -----

type ExperienceInput struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

// ExperiencePatch updates endDate whenever present, so a current position can
// be marked finished or an end date cleared; everything else on non-empty.
type ExperiencePatch struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	StartDate    string   `json:"startDate"`
	EndDate      *string  `json:"endDate"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

// AddExperience prepends a new experience entry to the collection.
func (u *User) AddExperience(in ExperienceInput) error {
	if in.Company == "" || in.Position == "" || in.StartDate == "" || in.Description == "" {
		return &ValidationError{Message: "Company, position, start date, and description are required"}
	}

	e := Experience{
		ID:           newID(),
		Company:      in.Company,
		Position:     in.Position,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Description:  in.Description,
		Achievements: in.Achievements,
	}
	if e.Achievements == nil {
		e.Achievements = []string{}
	}

	u.Experience = append([]Experience{e}, u.Experience...)
	return nil
}

// UpdateExperience patches the experience entry with the given id.
func (u *User) UpdateExperience(id string, patch ExperiencePatch) error {
	i := u.findExperience(id)
	if i == -1 {
		return &NotFoundError{Message: "Experience not found"}
	}

	e := &u.Experience[i]
	if patch.Company != "" {
		e.Company = patch.Company
	}
	if patch.Position != "" {
		e.Position = patch.Position
	}
	if patch.StartDate != "" {
		e.StartDate = patch.StartDate
	}
	if patch.EndDate != nil {
		e.EndDate = *patch.EndDate
	}
	if patch.Description != "" {
		e.Description = patch.Description
	}
	if patch.Achievements != nil {
		e.Achievements = patch.Achievements
	}

	return nil
}

// RemoveExperience deletes the experience entry with the given id.
func (u *User) RemoveExperience(id string) error {
	i := u.findExperience(id)
	if i == -1 {
		return &NotFoundError{Message: "Experience not found"}
	}

	u.Experience = append(u.Experience[:i], u.Experience[i+1:]...)
	return nil
}

// ReplaceExperience swaps in a whole new collection.
func (u *User) ReplaceExperience(items []Experience) {
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = newID()
		}
		if items[i].Achievements == nil {
			items[i].Achievements = []string{}
		}
	}
	u.Experience = items
}

func (u *User) findExperience(id string) int {
	for i := range u.Experience {
		if u.Experience[i].ID == id {
			return i
		}
	}
	return -1
}

// ----- EDUCATION -----

type EducationInput struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// EducationPatch updates endDate whenever present; everything else on
// non-empty.
type EducationPatch struct {
	Institution string  `json:"institution"`
	Degree      string  `json:"degree"`
	Field       string  `json:"field"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate"`
}

// AddEducation prepends a new education entry to the collection.
func (u *User) AddEducation(in EducationInput) error {
	if in.Institution == "" || in.Degree == "" || in.Field == "" || in.StartDate == "" {
		return &ValidationError{Message: "Institution, degree, field, and start date are required"}
	}

	e := Education{
		ID:          newID(),
		Institution: in.Institution,
		Degree:      in.Degree,
		Field:       in.Field,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
	}

	u.Education = append([]Education{e}, u.Education...)
	return nil
}

// UpdateEducation patches the education entry with the given id.
func (u *User) UpdateEducation(id string, patch EducationPatch) error {
	i := u.findEducation(id)
	if i == -1 {
		return &NotFoundError{Message: "Education not found"}
	}

	e := &u.Education[i]
	if patch.Institution != "" {
		e.Institution = patch.Institution
	}
	if patch.Degree != "" {
		e.Degree = patch.Degree
	}
	if patch.Field != "" {
		e.Field = patch.Field
	}
	if patch.StartDate != "" {
		e.StartDate = patch.StartDate
	}
	if patch.EndDate != nil {
		e.EndDate = *patch.EndDate
	}

	return nil
}

// RemoveEducation deletes the education entry with the given id.
func (u *User) RemoveEducation(id string) error {
	i := u.findEducation(id)
	if i == -1 {
		return &NotFoundError{Message: "Education not found"}
	}

	u.Education = append(u.Education[:i], u.Education[i+1:]...)
	return nil
}

// ReplaceEducation swaps in a whole new collection.
func (u *User) ReplaceEducation(items []Education) {
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = newID()
		}
	}
	u.Education = items
}

func (u *User) findEducation(id string) int {
	for i := range u.Education {
		if u.Education[i].ID == id {
			return i
		}
	}
	return -1
}

// ----- SKILLS -----

type SkillInput struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category"`
}

// SkillPatch updates every field on non-empty / non-zero only; a level of 0
// cannot be set through a patch.
type SkillPatch struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category"`
}

// AddSkill prepends a new skill to the collection. A zero level counts as
// missing.
func (u *User) AddSkill(in SkillInput) error {
	if in.Name == "" || in.Level == 0 || in.Category == "" {
		return &ValidationError{Message: "Name, level, and category are required"}
	}
	if in.Level < 0 || in.Level > 100 {
		return &ValidationError{Message: "Skill level must be between 0 and 100"}
	}

	s := Skill{
		ID:       newID(),
		Name:     in.Name,
		Level:    in.Level,
		Category: in.Category,
	}

	u.Skills = append([]Skill{s}, u.Skills...)
	return nil
}

// UpdateSkill patches the skill with the given id.
func (u *User) UpdateSkill(id string, patch SkillPatch) error {
	i := u.findSkill(id)
	if i == -1 {
		return &NotFoundError{Message: "Skill not found"}
	}
	if patch.Level < 0 || patch.Level > 100 {
		return &ValidationError{Message: "Skill level must be between 0 and 100"}
	}

	s := &u.Skills[i]
	if patch.Name != "" {
		s.Name = patch.Name
	}
	if patch.Level != 0 {
		s.Level = patch.Level
	}
	if patch.Category != "" {
		s.Category = patch.Category
	}

	return nil
}

// RemoveSkill deletes the skill with the given id.
func (u *User) RemoveSkill(id string) error {
	i := u.findSkill(id)
	if i == -1 {
		return &NotFoundError{Message: "Skill not found"}
	}

	u.Skills = append(u.Skills[:i], u.Skills[i+1:]...)
	return nil
}

// ReplaceSkills swaps in a whole new collection.
func (u *User) ReplaceSkills(items []Skill) {
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = newID()
		}
	}
	u.Skills = items
}

func (u *User) findSkill(id string) int {
	for i := range u.Skills {
		if u.Skills[i].ID == id {
			return i
		}
	}
	return -1
}

// ----- CONTACTS -----

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// AddContact appends a visitor message to the collection. Unlike the resume
// sections this is the whole-resource create path, so new messages go to the
// end and the date defaults to submission time.
func (u *User) AddContact(in ContactInput) error {
	if in.Name == "" || in.Email == "" || in.Message == "" {
		return &ValidationError{Message: "Please provide name, email, and message"}
	}

	u.Contacts = append(u.Contacts, Contact{
		ID:      newID(),
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Message: in.Message,
		Date:    time.Now(),
	})
	return nil
}

// RemoveContact deletes the contact message with the given id.
func (u *User) RemoveContact(id string) error {
	for i := range u.Contacts {
		if u.Contacts[i].ID == id {
			u.Contacts = append(u.Contacts[:i], u.Contacts[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Message: "Contact not found"}
}
