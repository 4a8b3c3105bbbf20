package domain

// EventStatus represents the trade state of a calendar event.
type EventStatus string

const (
	EventStatusBusy        EventStatus = "BUSY"
	EventStatusSwappable   EventStatus = "SWAPPABLE"
	EventStatusSwapPending EventStatus = "SWAP_PENDING"
)

func (s EventStatus) String() string { return string(s) }

func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusBusy, EventStatusSwappable, EventStatusSwapPending:
		return true
	}
	return false
}

// IsOwnerSettable reports whether an owner may set this status directly.
// SWAP_PENDING is reserved for the swap engine.
func (s EventStatus) IsOwnerSettable() bool {
	return s == EventStatusBusy || s == EventStatusSwappable
}

// CanOwnerTransitionTo reports whether an owner-initiated transition from
// s to target is legal. Owners may flip BUSY<->SWAPPABLE freely; nothing
// may be changed by the owner while the event is SWAP_PENDING, and no
// path sets SWAP_PENDING outside the swap engine.
func (s EventStatus) CanOwnerTransitionTo(target EventStatus) bool {
	if s == EventStatusSwapPending {
		return false
	}
	return target.IsOwnerSettable()
}

// SwapStatus represents the lifecycle state of a swap request.
type SwapStatus string

const (
	SwapStatusPending  SwapStatus = "PENDING"
	SwapStatusAccepted SwapStatus = "ACCEPTED"
	SwapStatusRejected SwapStatus = "REJECTED"
)

func (s SwapStatus) String() string { return string(s) }

func (s SwapStatus) IsValid() bool {
	switch s {
	case SwapStatusPending, SwapStatusAccepted, SwapStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether the status is final. A terminal request is
// never mutated again; it stays as an audit record.
func (s SwapStatus) IsTerminal() bool {
	return s == SwapStatusAccepted || s == SwapStatusRejected
}
