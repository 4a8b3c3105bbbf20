package event

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/slotswapper/backend/internal/domain"
)

// CreateEventInput holds the parameters for creating an event.
// Status is optional and defaults to BUSY.
type CreateEventInput struct {
	Title     string
	StartTime time.Time
	EndTime   time.Time
	Status    *domain.EventStatus
}

// Validate checks all fields and collects all errors.
func (i CreateEventInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if i.StartTime.IsZero() {
		errs = append(errs, domain.FieldError{Field: "start_time", Message: "required"})
	}
	if i.EndTime.IsZero() {
		errs = append(errs, domain.FieldError{Field: "end_time", Message: "required"})
	}
	if !i.StartTime.IsZero() && !i.EndTime.IsZero() && !i.EndTime.After(i.StartTime) {
		errs = append(errs, domain.FieldError{Field: "end_time", Message: "must be after start time"})
	}
	if i.Status != nil && !i.Status.IsOwnerSettable() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be BUSY or SWAPPABLE"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateEventInput holds the parameters for a partial event update.
type UpdateEventInput struct {
	EventID uuid.UUID
	Patch   domain.EventPatch
}

// Validate checks all fields and collects all errors. Time-range
// consistency is re-checked later against the stored event, since a patch
// may carry only one of the two bounds.
func (i UpdateEventInput) Validate() error {
	var errs []domain.FieldError

	if i.EventID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "event_id", Message: "required"})
	}
	if i.Patch.IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "patch", Message: "at least one field must be provided"})
	}
	if i.Patch.Title != nil && strings.TrimSpace(*i.Patch.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "cannot be empty"})
	}
	if i.Patch.Status != nil && !i.Patch.Status.IsOwnerSettable() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be BUSY or SWAPPABLE"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// touchesGuardedFields reports whether the patch changes status or the
// time range, the fields frozen while a swap is pending.
func touchesGuardedFields(p domain.EventPatch) bool {
	return p.Status != nil || p.StartTime != nil || p.EndTime != nil
}
