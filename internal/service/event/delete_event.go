package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/slotswapper/backend/internal/domain"
	"github.com/slotswapper/backend/pkg/ctxutil"
)

// DeleteEvent removes an event owned by the caller. Deletion is blocked
// while the event is locked inside a pending swap request, and refused
// outright once the event is referenced by resolved swap history.
func (s *Service) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if eventID == uuid.Nil {
		return domain.NewValidationError("event_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		stored, err := s.events.GetForUpdate(txCtx, eventID)
		if err != nil {
			return fmt.Errorf("load event: %w", err)
		}
		if stored.OwnerID != ownerID {
			return fmt.Errorf("event %s: %w", eventID, domain.ErrNotFound)
		}

		if stored.Status == domain.EventStatusSwapPending {
			return s.pendingSwapError(txCtx, stored.ID)
		}

		if err := s.events.Delete(txCtx, ownerID, eventID); err != nil {
			return fmt.Errorf("delete event: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "event deleted",
		slog.String("event_id", eventID.String()),
		slog.String("owner_id", ownerID.String()),
	)

	return nil
}
