package swap

import (
	"github.com/google/uuid"

	"github.com/slotswapper/backend/internal/domain"
)

// CreateSwapRequestInput holds the parameters for proposing a swap.
type CreateSwapRequestInput struct {
	MySlotID    uuid.UUID
	TheirSlotID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateSwapRequestInput) Validate() error {
	var errs []domain.FieldError

	if i.MySlotID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "my_slot_id", Message: "required"})
	}
	if i.TheirSlotID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "their_slot_id", Message: "required"})
	}
	if i.MySlotID != uuid.Nil && i.MySlotID == i.TheirSlotID {
		errs = append(errs, domain.FieldError{Field: "their_slot_id", Message: "cannot swap a slot with itself"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RespondInput holds the parameters for resolving a swap request.
type RespondInput struct {
	RequestID uuid.UUID
	Accepted  bool
}

// Validate checks all fields.
func (i RespondInput) Validate() error {
	if i.RequestID == uuid.Nil {
		return domain.NewValidationError("request_id", "required")
	}
	return nil
}
