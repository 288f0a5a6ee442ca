package types

import "time"

// Education is an education entry on the curriculum page.
type Education struct {
	ID          int       `json:"id" db:"id"`
	Degree      string    `json:"degree" db:"degree"`
	Year        string    `json:"year" db:"year"`
	Institution string    `json:"institution" db:"institution"`
	Details     string    `json:"details" db:"details"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Experience is a work experience entry on the curriculum page.
type Experience struct {
	ID        int       `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Years     string    `json:"years" db:"years"`
	Tech      string    `json:"tech" db:"tech"`
	Details   string    `json:"details" db:"details"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
