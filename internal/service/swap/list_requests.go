package swap

import (
	"context"
	"fmt"

	"github.com/slotswapper/backend/internal/domain"
	"github.com/slotswapper/backend/pkg/ctxutil"
)

// RequestList groups a user's swap requests by direction, newest first.
type RequestList struct {
	Incoming []*domain.SwapRequestDetails
	Outgoing []*domain.SwapRequestDetails
}

// ListSwapRequests returns the caller's incoming (as recipient) and
// outgoing (as requester) swap requests, each newest first.
func (s *Service) ListSwapRequests(ctx context.Context) (*RequestList, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	incoming, err := s.requests.ListIncoming(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list incoming requests: %w", err)
	}

	outgoing, err := s.requests.ListOutgoing(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list outgoing requests: %w", err)
	}

	return &RequestList{Incoming: incoming, Outgoing: outgoing}, nil
}
