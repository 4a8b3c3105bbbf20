// Package event implements calendar event management: ownership-checked
// CRUD with the status machine guards that keep SWAP_PENDING slots
// untouchable by their owners.
package event

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/slotswapper/backend/internal/domain"
)

type eventRepo interface {
	Create(ctx context.Context, e *domain.Event) (*domain.Event, error)
	GetByID(ctx context.Context, ownerID, eventID uuid.UUID) (*domain.Event, error)
	GetForUpdate(ctx context.Context, eventID uuid.UUID) (*domain.Event, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Event, error)
	Update(ctx context.Context, ownerID, eventID uuid.UUID, patch domain.EventPatch) (*domain.Event, error)
	Delete(ctx context.Context, ownerID, eventID uuid.UUID) error
}

type swapRequestRepo interface {
	GetPendingByEvent(ctx context.Context, eventID uuid.UUID) (*domain.SwapRequest, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides event management operations.
type Service struct {
	events   eventRepo
	requests swapRequestRepo
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new event service.
func NewService(
	log *slog.Logger,
	events eventRepo,
	requests swapRequestRepo,
	tx txManager,
) *Service {
	return &Service{
		events:   events,
		requests: requests,
		tx:       tx,
		log:      log.With("service", "event"),
	}
}

// pendingSwapError resolves the PENDING request blocking an event so the
// caller learns which swap stands in the way. Falls back to a bare
// conflict if the lookup fails (the guard must not be weakened by a
// secondary read error).
func (s *Service) pendingSwapError(ctx context.Context, eventID uuid.UUID) error {
	request, err := s.requests.GetPendingByEvent(ctx, eventID)
	if err != nil {
		return &domain.PendingSwapError{EventID: eventID}
	}
	return &domain.PendingSwapError{EventID: eventID, RequestID: request.ID}
}
