// Package swap implements the swap protocol engine: creating and resolving
// one-for-one exchange requests between slots owned by two users, keeping
// the event pair and the request row consistent inside one transaction.
package swap

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/slotswapper/backend/internal/domain"
)

type eventRepo interface {
	GetForUpdate(ctx context.Context, eventID uuid.UUID) (*domain.Event, error)
	SetStatus(ctx context.Context, eventID uuid.UUID, status domain.EventStatus) error
	SetOwnerAndStatus(ctx context.Context, eventID, ownerID uuid.UUID, status domain.EventStatus) error
	ListSwappableExcluding(ctx context.Context, userID uuid.UUID) ([]*domain.MarketplaceSlot, error)
}

type swapRequestRepo interface {
	Create(ctx context.Context, req *domain.SwapRequest) (*domain.SwapRequest, error)
	GetForUpdate(ctx context.Context, requestID uuid.UUID) (*domain.SwapRequest, error)
	SetStatus(ctx context.Context, requestID uuid.UUID, status domain.SwapStatus) error
	ListIncoming(ctx context.Context, userID uuid.UUID) ([]*domain.SwapRequestDetails, error)
	ListOutgoing(ctx context.Context, userID uuid.UUID) ([]*domain.SwapRequestDetails, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service orchestrates swap request creation and resolution.
type Service struct {
	events   eventRepo
	requests swapRequestRepo
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new swap service.
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
		log:      log.With("service", "swap"),
	}
}
