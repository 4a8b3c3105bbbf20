package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/slotswapper/backend/internal/domain"
	"github.com/slotswapper/backend/pkg/ctxutil"
)

// UpdateEvent applies a partial patch to an event owned by the caller.
// The stored row is read under a lock so the SWAP_PENDING guard cannot
// race with the swap engine flipping the status: a patch touching status
// or the time range fails with a conflict naming the blocking request.
// The merged start/end pair is re-validated before writing.
func (s *Service) UpdateEvent(ctx context.Context, input UpdateEventInput) (*domain.Event, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Event
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		stored, err := s.events.GetForUpdate(txCtx, input.EventID)
		if err != nil {
			return fmt.Errorf("load event: %w", err)
		}
		if stored.OwnerID != ownerID {
			// Same answer as a missing event: the read boundary must not
			// reveal other users' private events.
			return fmt.Errorf("event %s: %w", input.EventID, domain.ErrNotFound)
		}

		if stored.Status == domain.EventStatusSwapPending && touchesGuardedFields(input.Patch) {
			return s.pendingSwapError(txCtx, stored.ID)
		}

		merged := input.Patch.Apply(*stored)
		if !merged.EndTime.After(merged.StartTime) {
			return domain.NewValidationError("end_time", "must be after start time")
		}

		updated, err = s.events.Update(txCtx, ownerID, input.EventID, input.Patch)
		if err != nil {
			return fmt.Errorf("update event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "event updated",
		slog.String("event_id", updated.ID.String()),
		slog.String("owner_id", ownerID.String()),
	)

	return updated, nil
}
