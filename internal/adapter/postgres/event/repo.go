// Package event implements the Event repository using PostgreSQL.
// It provides ownership-checked CRUD plus the locked read and status/owner
// write paths used by the swap engine inside transactions.
package event

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/slotswapper/backend/internal/adapter/postgres"
	"github.com/slotswapper/backend/internal/domain"
)

// Repo provides event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new event repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const eventColumns = `id, title, start_time, end_time, status, owner_id, created_at, updated_at`

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const getByIDSQL = `
SELECT ` + eventColumns + `
FROM events
WHERE id = $1 AND owner_id = $2`

const getForUpdateSQL = `
SELECT ` + eventColumns + `
FROM events
WHERE id = $1
FOR UPDATE`

const listByOwnerSQL = `
SELECT ` + eventColumns + `
FROM events
WHERE owner_id = $1
ORDER BY start_time ASC`

const listSwappableExcludingSQL = `
SELECT e.id, e.title, e.start_time, e.end_time, e.status, e.owner_id,
       e.created_at, e.updated_at,
       u.id, u.name, u.email
FROM events e
JOIN users u ON u.id = e.owner_id
WHERE e.status = 'SWAPPABLE' AND e.owner_id <> $1
ORDER BY e.start_time ASC`

const createSQL = `
INSERT INTO events (id, title, start_time, end_time, status, owner_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + eventColumns

const deleteSQL = `
DELETE FROM events
WHERE id = $1 AND owner_id = $2`

const setStatusSQL = `
UPDATE events
SET status = $2, updated_at = now()
WHERE id = $1`

const setOwnerAndStatusSQL = `
UPDATE events
SET owner_id = $2, status = $3, updated_at = now()
WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an event by primary key with owner filter.
// Returns domain.ErrNotFound if the event does not exist or belongs to
// another user; ownership is enforced at this read boundary.
func (r *Repo) GetByID(ctx context.Context, ownerID, eventID uuid.UUID) (*domain.Event, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEvent(querier.QueryRow(ctx, getByIDSQL, eventID, ownerID))
	if err != nil {
		return nil, mapError(err, "event", eventID)
	}

	return e, nil
}

// GetForUpdate returns an event by primary key without an owner filter and
// locks its row until the surrounding transaction commits. Only the swap
// engine reads events it does not own; callers must hold a transaction.
func (r *Repo) GetForUpdate(ctx context.Context, eventID uuid.UUID) (*domain.Event, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEvent(querier.QueryRow(ctx, getForUpdateSQL, eventID))
	if err != nil {
		return nil, mapError(err, "event", eventID)
	}

	return e, nil
}

// ListByOwner returns all events owned by the user, ordered by start time.
// Returns an empty slice (not nil) when the user has no events.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Event, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByOwnerSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := []*domain.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("list events: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	return events, nil
}

// ListSwappableExcluding returns SWAPPABLE events owned by users other than
// userID, annotated with the owner's public identity, ordered by start time.
func (r *Repo) ListSwappableExcluding(ctx context.Context, userID uuid.UUID) ([]*domain.MarketplaceSlot, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSwappableExcludingSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list swappable events: %w", err)
	}
	defer rows.Close()

	slots := []*domain.MarketplaceSlot{}
	for rows.Next() {
		var s domain.MarketplaceSlot
		err := rows.Scan(
			&s.ID, &s.Title, &s.StartTime, &s.EndTime, &s.Status, &s.OwnerID,
			&s.CreatedAt, &s.UpdatedAt,
			&s.Owner.ID, &s.Owner.Name, &s.Owner.Email,
		)
		if err != nil {
			return nil, fmt.Errorf("list swappable events: %w", err)
		}
		slots = append(slots, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list swappable events: %w", err)
	}

	return slots, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new event and returns the persisted domain.Event.
func (r *Repo) Create(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanEvent(querier.QueryRow(ctx, createSQL,
		e.ID, e.Title, e.StartTime, e.EndTime, e.Status, e.OwnerID, e.CreatedAt, e.UpdatedAt,
	))
	if err != nil {
		return nil, mapError(err, "event", e.ID)
	}

	return created, nil
}

// Update applies a partial patch to an event owned by ownerID and returns
// the updated row. The SET clause is built dynamically from the non-nil
// patch fields. Returns domain.ErrNotFound if absent or not owned.
func (r *Repo) Update(ctx context.Context, ownerID, eventID uuid.UUID, patch domain.EventPatch) (*domain.Event, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	builder := psql.Update("events").
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": eventID, "owner_id": ownerID}).
		Suffix("RETURNING " + eventColumns)

	if patch.Title != nil {
		builder = builder.Set("title", *patch.Title)
	}
	if patch.StartTime != nil {
		builder = builder.Set("start_time", *patch.StartTime)
	}
	if patch.EndTime != nil {
		builder = builder.Set("end_time", *patch.EndTime)
	}
	if patch.Status != nil {
		builder = builder.Set("status", patch.Status.String())
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	e, err := scanEvent(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapError(err, "event", eventID)
	}

	return e, nil
}

// Delete removes an event owned by ownerID. Returns domain.ErrNotFound if
// the event does not exist or belongs to another user, and
// domain.ErrConflict if the event is referenced by swap request history
// (the slot FKs carry no CASCADE, so the audit trail blocks the delete).
func (r *Repo) Delete(ctx context.Context, ownerID, eventID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, eventID, ownerID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("event %s is part of swap history and cannot be deleted: %w",
				eventID, domain.ErrConflict)
		}
		return mapError(err, "event", eventID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event %s: %w", eventID, domain.ErrNotFound)
	}

	return nil
}

// SetStatus updates only the status column. Reserved for the swap engine,
// which has already validated the transition and holds the row lock.
func (r *Repo) SetStatus(ctx context.Context, eventID uuid.UUID, status domain.EventStatus) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, setStatusSQL, eventID, status.String())
	if err != nil {
		return mapError(err, "event", eventID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event %s: %w", eventID, domain.ErrNotFound)
	}

	return nil
}

// SetOwnerAndStatus reassigns the event to a new owner and sets its status
// in one statement. This is the ownership-exchange write of an accepted
// swap; only the swap engine calls it, inside a transaction.
func (r *Repo) SetOwnerAndStatus(ctx context.Context, eventID, ownerID uuid.UUID, status domain.EventStatus) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, setOwnerAndStatusSQL, eventID, ownerID, status.String())
	if err != nil {
		return mapError(err, "event", eventID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event %s: %w", eventID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var e domain.Event
	err := row.Scan(
		&e.ID, &e.Title, &e.StartTime, &e.EndTime, &e.Status, &e.OwnerID,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
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
