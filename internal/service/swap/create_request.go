package swap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/slotswapper/backend/internal/domain"
	"github.com/slotswapper/backend/pkg/ctxutil"
)

// CreateSwapRequest proposes a one-for-one exchange of the caller's slot
// for another user's slot. Both slots must be SWAPPABLE; on success the
// request is PENDING and both slots are SWAP_PENDING.
//
// The whole check-then-write sequence runs inside one transaction with
// both event rows locked (SELECT ... FOR UPDATE): two concurrent proposals
// racing on the same SWAPPABLE slot serialize on the row lock, so the
// second one observes SWAP_PENDING and fails validation. An aborted
// transaction leaves no event SWAP_PENDING without a matching PENDING
// request.
func (s *Service) CreateSwapRequest(ctx context.Context, input CreateSwapRequestInput) (*domain.SwapRequest, error) {
	requesterID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var request *domain.SwapRequest
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		mySlot, err := s.events.GetForUpdate(txCtx, input.MySlotID)
		if err != nil {
			if isNotFound(err) {
				return domain.NewValidationError("my_slot_id", "your slot not found")
			}
			return fmt.Errorf("load my slot: %w", err)
		}
		if mySlot.OwnerID != requesterID {
			return fmt.Errorf("slot %s: you do not own this slot: %w", mySlot.ID, domain.ErrForbidden)
		}
		if mySlot.Status != domain.EventStatusSwappable {
			return domain.NewValidationError("my_slot_id", "your slot must be SWAPPABLE")
		}

		theirSlot, err := s.events.GetForUpdate(txCtx, input.TheirSlotID)
		if err != nil {
			if isNotFound(err) {
				return domain.NewValidationError("their_slot_id", "the requested slot not found")
			}
			return fmt.Errorf("load their slot: %w", err)
		}
		if theirSlot.OwnerID == requesterID {
			return domain.NewValidationError("their_slot_id", "cannot swap with your own slot")
		}
		if theirSlot.Status != domain.EventStatusSwappable {
			return domain.NewValidationError("their_slot_id", "the requested slot is no longer available for swapping")
		}

		now := time.Now()
		request, err = s.requests.Create(txCtx, &domain.SwapRequest{
			ID:          uuid.New(),
			Status:      domain.SwapStatusPending,
			RequesterID: requesterID,
			RecipientID: theirSlot.OwnerID,
			MySlotID:    mySlot.ID,
			TheirSlotID: theirSlot.ID,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			return fmt.Errorf("create swap request: %w", err)
		}

		if err := s.events.SetStatus(txCtx, mySlot.ID, domain.EventStatusSwapPending); err != nil {
			return fmt.Errorf("lock my slot: %w", err)
		}
		if err := s.events.SetStatus(txCtx, theirSlot.ID, domain.EventStatusSwapPending); err != nil {
			return fmt.Errorf("lock their slot: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "swap request created",
		slog.String("request_id", request.ID.String()),
		slog.String("requester_id", requesterID.String()),
		slog.String("recipient_id", request.RecipientID.String()),
	)

	return request, nil
}
