package types

import "time"

// Profile is the singleton record describing the site owner. The first
// read creates it with defaults if it does not exist yet.
type Profile struct {
	// ID is the identifier of the profile row. Only one row exists.
	ID int `json:"id" db:"id"`

	// Name is the site owner's display name.
	Name string `json:"name" db:"name"`

	// Title is the professional headline shown on the home page.
	Title string `json:"title" db:"title"`

	// Avatar is the URL of the profile image.
	Avatar string `json:"avatar" db:"avatar"`

	// Bio is the short introduction paragraph.
	Bio string `json:"bio" db:"bio"`

	// ResumeURL is the public URL of the most recently uploaded resume PDF.
	ResumeURL string `json:"resumeUrl" db:"resume_url"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ProfileUpdate carries a partial profile update. Nil fields are left
// untouched.
type ProfileUpdate struct {
	Name      *string `json:"name"`
	Title     *string `json:"title"`
	Avatar    *string `json:"avatar"`
	Bio       *string `json:"bio"`
	ResumeURL *string `json:"resumeUrl"`
}
