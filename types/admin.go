package types

import "time"

// Admin represents an administrator account. Admins are the only
// identities allowed to mutate portfolio content; they are created
// out-of-band by the seed command, never through the API.
type Admin struct {
	// ID is the unique identifier of the administrator.
	ID int `json:"id" db:"id"`

	// Email is the unique login address of the administrator.
	Email string `json:"email" db:"email"`

	// PasswordHash stores the bcrypt hash of the administrator's password.
	// This field is never exposed in API responses.
	PasswordHash string `json:"-" db:"password_hash"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// UpdatedAt is the timestamp of the most recent update to the account.
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
