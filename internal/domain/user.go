package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the credential-free identity shown to other users
// (marketplace listings, swap request counterparts).
type PublicUser struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// Public strips the user down to the fields safe to expose to others.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
