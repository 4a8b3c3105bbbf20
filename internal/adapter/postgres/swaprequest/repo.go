// Package swaprequest implements the SwapRequest repository using PostgreSQL.
// Requests are an append-only audit trail: rows are created PENDING and
// resolved exactly once; nothing is ever deleted.
package swaprequest

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/slotswapper/backend/internal/adapter/postgres"
	"github.com/slotswapper/backend/internal/domain"
)

// Repo provides swap request persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new swap request repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const requestColumns = `id, status, requester_id, recipient_id, my_slot_id, their_slot_id, created_at, updated_at`

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO swap_requests (id, status, requester_id, recipient_id, my_slot_id, their_slot_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + requestColumns

const getForUpdateSQL = `
SELECT ` + requestColumns + `
FROM swap_requests
WHERE id = $1
FOR UPDATE`

const getPendingByEventSQL = `
SELECT ` + requestColumns + `
FROM swap_requests
WHERE status = 'PENDING' AND (my_slot_id = $1 OR their_slot_id = $1)`

const setStatusSQL = `
UPDATE swap_requests
SET status = $2, updated_at = now()
WHERE id = $1`

// The list queries join both slots and both parties' public identity.
const listIncomingSQL = `
SELECT r.id, r.status, r.requester_id, r.recipient_id, r.my_slot_id, r.their_slot_id,
       r.created_at, r.updated_at,
       req.id, req.name, req.email,
       rec.id, rec.name, rec.email,
       ms.id, ms.title, ms.start_time, ms.end_time, ms.status, ms.owner_id, ms.created_at, ms.updated_at,
       ts.id, ts.title, ts.start_time, ts.end_time, ts.status, ts.owner_id, ts.created_at, ts.updated_at
FROM swap_requests r
JOIN users req ON req.id = r.requester_id
JOIN users rec ON rec.id = r.recipient_id
JOIN events ms ON ms.id = r.my_slot_id
JOIN events ts ON ts.id = r.their_slot_id
WHERE r.recipient_id = $1
ORDER BY r.created_at DESC`

const listOutgoingSQL = `
SELECT r.id, r.status, r.requester_id, r.recipient_id, r.my_slot_id, r.their_slot_id,
       r.created_at, r.updated_at,
       req.id, req.name, req.email,
       rec.id, rec.name, rec.email,
       ms.id, ms.title, ms.start_time, ms.end_time, ms.status, ms.owner_id, ms.created_at, ms.updated_at,
       ts.id, ts.title, ts.start_time, ts.end_time, ts.status, ts.owner_id, ts.created_at, ts.updated_at
FROM swap_requests r
JOIN users req ON req.id = r.requester_id
JOIN users rec ON rec.id = r.recipient_id
JOIN events ms ON ms.id = r.my_slot_id
JOIN events ts ON ts.id = r.their_slot_id
WHERE r.requester_id = $1
ORDER BY r.created_at DESC`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetForUpdate returns a swap request by primary key and locks its row
// until the surrounding transaction commits. Serializes concurrent
// responders on the same request.
func (r *Repo) GetForUpdate(ctx context.Context, requestID uuid.UUID) (*domain.SwapRequest, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	req, err := scanRequest(querier.QueryRow(ctx, getForUpdateSQL, requestID))
	if err != nil {
		return nil, mapError(err, "swap_request", requestID)
	}

	return req, nil
}

// GetPendingByEvent returns the PENDING request referencing the event from
// either side, or domain.ErrNotFound when the event is not locked by one.
// At most one row matches in practice: the swap engine only admits
// SWAPPABLE events into a request, and the partial unique indexes pin
// each side. QueryRow reads the first row either way.
func (r *Repo) GetPendingByEvent(ctx context.Context, eventID uuid.UUID) (*domain.SwapRequest, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	req, err := scanRequest(querier.QueryRow(ctx, getPendingByEventSQL, eventID))
	if err != nil {
		return nil, mapError(err, "swap_request", eventID)
	}

	return req, nil
}

// ListIncoming returns requests where the user is the recipient, newest
// first, with counterpart identity and both slots joined in.
func (r *Repo) ListIncoming(ctx context.Context, userID uuid.UUID) ([]*domain.SwapRequestDetails, error) {
	return r.listDetails(ctx, listIncomingSQL, userID)
}

// ListOutgoing returns requests where the user is the requester, newest first.
func (r *Repo) ListOutgoing(ctx context.Context, userID uuid.UUID) ([]*domain.SwapRequestDetails, error) {
	return r.listDetails(ctx, listOutgoingSQL, userID)
}

func (r *Repo) listDetails(ctx context.Context, query string, userID uuid.UUID) ([]*domain.SwapRequestDetails, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list swap_requests: %w", err)
	}
	defer rows.Close()

	result := []*domain.SwapRequestDetails{}
	for rows.Next() {
		var d domain.SwapRequestDetails
		err := rows.Scan(
			&d.ID, &d.Status, &d.RequesterID, &d.RecipientID, &d.MySlotID, &d.TheirSlotID,
			&d.CreatedAt, &d.UpdatedAt,
			&d.Requester.ID, &d.Requester.Name, &d.Requester.Email,
			&d.Recipient.ID, &d.Recipient.Name, &d.Recipient.Email,
			&d.MySlot.ID, &d.MySlot.Title, &d.MySlot.StartTime, &d.MySlot.EndTime,
			&d.MySlot.Status, &d.MySlot.OwnerID, &d.MySlot.CreatedAt, &d.MySlot.UpdatedAt,
			&d.TheirSlot.ID, &d.TheirSlot.Title, &d.TheirSlot.StartTime, &d.TheirSlot.EndTime,
			&d.TheirSlot.Status, &d.TheirSlot.OwnerID, &d.TheirSlot.CreatedAt, &d.TheirSlot.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("list swap_requests: %w", err)
		}
		result = append(result, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list swap_requests: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new swap request and returns the persisted row.
func (r *Repo) Create(ctx context.Context, req *domain.SwapRequest) (*domain.SwapRequest, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanRequest(querier.QueryRow(ctx, createSQL,
		req.ID, req.Status, req.RequesterID, req.RecipientID,
		req.MySlotID, req.TheirSlotID, req.CreatedAt, req.UpdatedAt,
	))
	if err != nil {
		return nil, mapError(err, "swap_request", req.ID)
	}

	return created, nil
}

// SetStatus moves a request to its terminal status. The swap engine has
// already verified the request is PENDING under the row lock.
func (r *Repo) SetStatus(ctx context.Context, requestID uuid.UUID, status domain.SwapStatus) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, setStatusSQL, requestID, status.String())
	if err != nil {
		return mapError(err, "swap_request", requestID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("swap_request %s: %w", requestID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row rowScanner) (*domain.SwapRequest, error) {
	var req domain.SwapRequest
	err := row.Scan(
		&req.ID, &req.Status, &req.RequesterID, &req.RecipientID,
		&req.MySlotID, &req.TheirSlotID, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, id, err)
}
