package domain

import (
	"time"

	"github.com/google/uuid"
)

// SwapRequest is a proposed one-for-one exchange between two slots owned
// by two different users. MySlot belongs to the requester and TheirSlot
// to the recipient at creation time; an accepted request swaps them.
type SwapRequest struct {
	ID          uuid.UUID
	Status      SwapStatus
	RequesterID uuid.UUID
	RecipientID uuid.UUID
	MySlotID    uuid.UUID
	TheirSlotID uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SwapRequestDetails is a swap request joined with the counterpart's
// public identity and both referenced slots, as listed to users.
type SwapRequestDetails struct {
	SwapRequest
	Requester PublicUser
	Recipient PublicUser
	MySlot    Event
	TheirSlot Event
}

// SwapOutcome summarizes the result of resolving a swap request.
type SwapOutcome struct {
	RequestID uuid.UUID
	Status    SwapStatus
	Message   string
}
