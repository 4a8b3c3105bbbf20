package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/slotswapper/backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a throwaway password hash.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Name:         "Test User " + suffix,
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "$2a$10$testhashtesthashtesthashtesthashtesthashtesthashtesth",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedEvent creates an event owned by ownerID with the given status.
// Start/end times are unique per call to keep listings deterministic.
func SeedEvent(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, status domain.EventStatus) domain.Event {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	event := domain.Event{
		ID:        uuid.New(),
		Title:     "Slot " + uniqueSuffix(),
		StartTime: now.Add(24 * time.Hour),
		EndTime:   now.Add(25 * time.Hour),
		Status:    status,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO events (id, title, start_time, end_time, status, owner_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		event.ID, event.Title, event.StartTime, event.EndTime, string(event.Status),
		event.OwnerID, event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEvent insert event: %v", err)
	}

	return event
}

// SeedSwapRequest creates a PENDING swap request between two seeded events.
// It does not flip the events to SWAP_PENDING; tests that need the full
// invariant should go through the swap service instead.
func SeedSwapRequest(t *testing.T, pool *pgxpool.Pool, requesterID, recipientID, mySlotID, theirSlotID uuid.UUID) domain.SwapRequest {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	req := domain.SwapRequest{
		ID:          uuid.New(),
		Status:      domain.SwapStatusPending,
		RequesterID: requesterID,
		RecipientID: recipientID,
		MySlotID:    mySlotID,
		TheirSlotID: theirSlotID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO swap_requests (id, status, requester_id, recipient_id, my_slot_id, their_slot_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		req.ID, string(req.Status), req.RequesterID, req.RecipientID,
		req.MySlotID, req.TheirSlotID, req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSwapRequest insert: %v", err)
	}

	return req
}
