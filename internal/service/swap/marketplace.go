package swap

import (
	"context"
	"fmt"

	"github.com/slotswapper/backend/internal/domain"
	"github.com/slotswapper/backend/pkg/ctxutil"
)

// ListMarketplace returns all SWAPPABLE slots owned by other users,
// annotated with the owner's public identity, ordered by start time.
// Read-only: no transaction is needed.
func (s *Service) ListMarketplace(ctx context.Context) ([]*domain.MarketplaceSlot, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	slots, err := s.events.ListSwappableExcluding(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list marketplace: %w", err)
	}

	return slots, nil
}
