package auth

import "github.com/slotswapper/backend/internal/domain"

// AuthResult is the outcome of a successful signup or login.
type AuthResult struct {
	AccessToken string
	User        domain.User
}
