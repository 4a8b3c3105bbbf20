package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Event is a time-blocked calendar slot, the unit of exchange in the
// marketplace. Ownership changes only through an accepted swap.
type Event struct {
	ID        uuid.UUID
	Title     string
	StartTime time.Time
	EndTime   time.Time
	Status    EventStatus
	OwnerID   uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the invariants every stored event must satisfy.
func (e *Event) Validate() error {
	var errs []FieldError

	if strings.TrimSpace(e.Title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: "required"})
	}
	if e.StartTime.IsZero() {
		errs = append(errs, FieldError{Field: "start_time", Message: "required"})
	}
	if e.EndTime.IsZero() {
		errs = append(errs, FieldError{Field: "end_time", Message: "required"})
	}
	if !e.StartTime.IsZero() && !e.EndTime.IsZero() && !e.EndTime.After(e.StartTime) {
		errs = append(errs, FieldError{Field: "end_time", Message: "must be after start time"})
	}
	if !e.Status.IsValid() {
		errs = append(errs, FieldError{Field: "status", Message: "invalid status"})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// EventPatch holds partial updates to an event. Nil fields are left
// unchanged.
type EventPatch struct {
	Title     *string
	StartTime *time.Time
	EndTime   *time.Time
	Status    *EventStatus
}

// IsEmpty reports whether the patch changes nothing.
func (p EventPatch) IsEmpty() bool {
	return p.Title == nil && p.StartTime == nil && p.EndTime == nil && p.Status == nil
}

// Apply merges the patch over the stored event and returns the result.
// The caller re-validates the merged value.
func (p EventPatch) Apply(e Event) Event {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.StartTime != nil {
		e.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		e.EndTime = *p.EndTime
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	return e
}

// MarketplaceSlot is a swappable event annotated with its owner's public
// identity, as shown to other users browsing the marketplace.
type MarketplaceSlot struct {
	Event
	Owner PublicUser
}
