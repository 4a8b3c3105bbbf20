// Package auth implements signup, login, and access token validation.
// Identity is passed to the rest of the system only as a verified user ID
// in the request context.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/slotswapper/backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
}

// Service implements auth operations.
type Service struct {
	users userRepo
	jwt   jwtManager
	cost  int
	log   *slog.Logger
}

// NewService creates a new auth service. cost is the bcrypt work factor.
func NewService(logger *slog.Logger, users userRepo, jwt jwtManager, cost int) *Service {
	return &Service{
		users: users,
		jwt:   jwt,
		cost:  cost,
		log:   logger.With("service", "auth"),
	}
}

// ValidateToken validates an access token and returns the user ID it
// carries. Used by the auth middleware.
func (s *Service) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	userID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}

// CurrentUser returns the profile of the authenticated caller.
func (s *Service) CurrentUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}
