package event

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/slotswapper/backend/internal/domain"
	"github.com/slotswapper/backend/pkg/ctxutil"
)

// GetEvent returns a single event owned by the authenticated user.
// Ownership is enforced at the read boundary: another user's event is
// indistinguishable from a missing one.
func (s *Service) GetEvent(ctx context.Context, eventID uuid.UUID) (*domain.Event, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if eventID == uuid.Nil {
		return nil, domain.NewValidationError("event_id", "required")
	}

	e, err := s.events.GetByID(ctx, ownerID, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	return e, nil
}
