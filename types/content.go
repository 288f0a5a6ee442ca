package types

import "time"

// Project is a portfolio project entry.
type Project struct {
	ID int `json:"id" db:"id"`

	// Title is the project name shown on the projects page.
	Title string `json:"title" db:"title"`

	// Description is the full project write-up.
	Description string `json:"description" db:"description"`

	// Image is the URL of the project cover image.
	Image string `json:"image" db:"image"`

	// Tech lists the technologies used.
	Tech []string `json:"tech" db:"tech"`

	// GithubLink points at the project repository.
	GithubLink string `json:"githubLink" db:"github_link"`

	// LiveDemoLink points at a deployed instance, if any.
	LiveDemoLink string `json:"liveDemoLink" db:"live_demo_link"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Blog is a blog post.
type Blog struct {
	ID          int       `json:"id" db:"id"`
	Image       string    `json:"image" db:"image"`
	Title       string    `json:"title" db:"title"`
	Author      string    `json:"author" db:"author"`
	Date        time.Time `json:"date" db:"date"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Skill is a single skill entry grouped by category.
type Skill struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Logo      string    `json:"logo" db:"logo"`
	Category  string    `json:"category" db:"category"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// PublicSkill is the reduced skill view served to unauthenticated
// callers; audit timestamps are admin-only.
type PublicSkill struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Logo     string `json:"logo"`
	Category string `json:"category"`
}

// Public returns the reduced view of the skill.
func (s Skill) Public() PublicSkill {
	return PublicSkill{
		ID:       s.ID,
		Name:     s.Name,
		Logo:     s.Logo,
		Category: s.Category,
	}
}

// Certificate is a certification or award entry.
type Certificate struct {
	ID        int       `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Issuer    string    `json:"issuer" db:"issuer"`
	Date      time.Time `json:"date" db:"date"`
	Img       string    `json:"img" db:"img"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
