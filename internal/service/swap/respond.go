package swap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/slotswapper/backend/internal/domain"
	"github.com/slotswapper/backend/pkg/ctxutil"
)

// RespondToSwapRequest resolves a pending swap request. Only the recipient
// may respond, exactly once. Accepting exchanges ownership of the two
// slots and sets both BUSY; rejecting returns both to SWAPPABLE with
// ownership untouched. The request row is locked first, so a concurrent
// responder serializes behind this one and observes the terminal status.
func (s *Service) RespondToSwapRequest(ctx context.Context, input RespondInput) (*domain.SwapOutcome, error) {
	responderID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var outcome *domain.SwapOutcome
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		request, err := s.requests.GetForUpdate(txCtx, input.RequestID)
		if err != nil {
			return fmt.Errorf("load swap request: %w", err)
		}
		if request.RecipientID != responderID {
			return fmt.Errorf("swap request %s: only the recipient may respond: %w",
				request.ID, domain.ErrForbidden)
		}
		if request.Status != domain.SwapStatusPending {
			return fmt.Errorf("swap request %s has already been processed: %w",
				request.ID, domain.ErrConflict)
		}

		// Lock both event rows before writing. The requests lock already
		// serializes responders; this covers engine writes racing with
		// owner-side reads of the same events.
		if _, err := s.events.GetForUpdate(txCtx, request.MySlotID); err != nil {
			return fmt.Errorf("load my slot: %w", err)
		}
		if _, err := s.events.GetForUpdate(txCtx, request.TheirSlotID); err != nil {
			return fmt.Errorf("load their slot: %w", err)
		}

		if input.Accepted {
			if err := s.requests.SetStatus(txCtx, request.ID, domain.SwapStatusAccepted); err != nil {
				return fmt.Errorf("accept swap request: %w", err)
			}
			// The two events literally swap owners: the requester's slot
			// goes to the recipient and vice versa. A swapped-in slot is
			// BUSY, not automatically re-offered.
			if err := s.events.SetOwnerAndStatus(txCtx, request.MySlotID, request.RecipientID, domain.EventStatusBusy); err != nil {
				return fmt.Errorf("transfer my slot: %w", err)
			}
			if err := s.events.SetOwnerAndStatus(txCtx, request.TheirSlotID, request.RequesterID, domain.EventStatusBusy); err != nil {
				return fmt.Errorf("transfer their slot: %w", err)
			}

			outcome = &domain.SwapOutcome{
				RequestID: request.ID,
				Status:    domain.SwapStatusAccepted,
				Message:   "Swap request accepted. Slots have been exchanged.",
			}
			return nil
		}

		if err := s.requests.SetStatus(txCtx, request.ID, domain.SwapStatusRejected); err != nil {
			return fmt.Errorf("reject swap request: %w", err)
		}
		// Rejection returns both slots to the marketplace, ownership unchanged.
		if err := s.events.SetStatus(txCtx, request.MySlotID, domain.EventStatusSwappable); err != nil {
			return fmt.Errorf("release my slot: %w", err)
		}
		if err := s.events.SetStatus(txCtx, request.TheirSlotID, domain.EventStatusSwappable); err != nil {
			return fmt.Errorf("release their slot: %w", err)
		}

		outcome = &domain.SwapOutcome{
			RequestID: request.ID,
			Status:    domain.SwapStatusRejected,
			Message:   "Swap request rejected. Both slots are available for swapping again.",
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "swap request resolved",
		slog.String("request_id", outcome.RequestID.String()),
		slog.String("responder_id", responderID.String()),
		slog.String("status", outcome.Status.String()),
	)

	return outcome, nil
}

// isNotFound reports whether err wraps domain.ErrNotFound.
func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
