package event

import (
	"context"
	"fmt"

	"github.com/slotswapper/backend/internal/domain"
	"github.com/slotswapper/backend/pkg/ctxutil"
)

// ListEvents returns all events owned by the authenticated user, ordered
// by start time ascending.
func (s *Service) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	events, err := s.events.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	return events, nil
}
