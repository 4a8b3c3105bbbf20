package event

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/slotswapper/backend/internal/domain"
	"github.com/slotswapper/backend/pkg/ctxutil"
)

// CreateEvent creates a new event owned by the authenticated user.
func (s *Service) CreateEvent(ctx context.Context, input CreateEventInput) (*domain.Event, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := domain.EventStatusBusy
	if input.Status != nil {
		status = *input.Status
	}

	now := time.Now()
	created, err := s.events.Create(ctx, &domain.Event{
		ID:        uuid.New(),
		Title:     strings.TrimSpace(input.Title),
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Status:    status,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.log.InfoContext(ctx, "event created",
		slog.String("event_id", created.ID.String()),
		slog.String("owner_id", ownerID.String()),
		slog.String("status", created.Status.String()),
	)

	return created, nil
}
