package swap

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/slotswapper/backend/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	GetForUpdateFunc           func(ctx context.Context, eventID uuid.UUID) (*domain.Event, error)
	SetStatusFunc              func(ctx context.Context, eventID uuid.UUID, status domain.EventStatus) error
	SetOwnerAndStatusFunc      func(ctx context.Context, eventID, ownerID uuid.UUID, status domain.EventStatus) error
	ListSwappableExcludingFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.MarketplaceSlot, error)

	calls struct {
		GetForUpdate []struct {
			Ctx     context.Context
			EventID uuid.UUID
		}
		SetStatus []struct {
			Ctx     context.Context
			EventID uuid.UUID
			Status  domain.EventStatus
		}
		SetOwnerAndStatus []struct {
			Ctx     context.Context
			EventID uuid.UUID
			OwnerID uuid.UUID
			Status  domain.EventStatus
		}
		ListSwappableExcluding []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *eventRepoMock) GetForUpdate(ctx context.Context, eventID uuid.UUID) (*domain.Event, error) {
	if mock.GetForUpdateFunc == nil {
		panic("eventRepoMock.GetForUpdateFunc: method is nil but eventRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EventID uuid.UUID
	}{Ctx: ctx, EventID: eventID}
	mock.lock.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lock.Unlock()
	return mock.GetForUpdateFunc(ctx, eventID)
}

func (mock *eventRepoMock) GetForUpdateCalls() []struct {
	Ctx     context.Context
	EventID uuid.UUID
} {
	mock.lock.RLock()
	calls := mock.calls.GetForUpdate
	mock.lock.RUnlock()
	return calls
}

func (mock *eventRepoMock) SetStatus(ctx context.Context, eventID uuid.UUID, status domain.EventStatus) error {
	if mock.SetStatusFunc == nil {
		panic("eventRepoMock.SetStatusFunc: method is nil but eventRepo.SetStatus was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EventID uuid.UUID
		Status  domain.EventStatus
	}{Ctx: ctx, EventID: eventID, Status: status}
	mock.lock.Lock()
	mock.calls.SetStatus = append(mock.calls.SetStatus, callInfo)
	mock.lock.Unlock()
	return mock.SetStatusFunc(ctx, eventID, status)
}

func (mock *eventRepoMock) SetStatusCalls() []struct {
	Ctx     context.Context
	EventID uuid.UUID
	Status  domain.EventStatus
} {
	mock.lock.RLock()
	calls := mock.calls.SetStatus
	mock.lock.RUnlock()
	return calls
}

func (mock *eventRepoMock) SetOwnerAndStatus(ctx context.Context, eventID, ownerID uuid.UUID, status domain.EventStatus) error {
	if mock.SetOwnerAndStatusFunc == nil {
		panic("eventRepoMock.SetOwnerAndStatusFunc: method is nil but eventRepo.SetOwnerAndStatus was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EventID uuid.UUID
		OwnerID uuid.UUID
		Status  domain.EventStatus
	}{Ctx: ctx, EventID: eventID, OwnerID: ownerID, Status: status}
	mock.lock.Lock()
	mock.calls.SetOwnerAndStatus = append(mock.calls.SetOwnerAndStatus, callInfo)
	mock.lock.Unlock()
	return mock.SetOwnerAndStatusFunc(ctx, eventID, ownerID, status)
}

func (mock *eventRepoMock) SetOwnerAndStatusCalls() []struct {
	Ctx     context.Context
	EventID uuid.UUID
	OwnerID uuid.UUID
	Status  domain.EventStatus
} {
	mock.lock.RLock()
	calls := mock.calls.SetOwnerAndStatus
	mock.lock.RUnlock()
	return calls
}

func (mock *eventRepoMock) ListSwappableExcluding(ctx context.Context, userID uuid.UUID) ([]*domain.MarketplaceSlot, error) {
	if mock.ListSwappableExcludingFunc == nil {
		panic("eventRepoMock.ListSwappableExcludingFunc: method is nil but eventRepo.ListSwappableExcluding was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lock.Lock()
	mock.calls.ListSwappableExcluding = append(mock.calls.ListSwappableExcluding, callInfo)
	mock.lock.Unlock()
	return mock.ListSwappableExcludingFunc(ctx, userID)
}

func (mock *eventRepoMock) ListSwappableExcludingCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lock.RLock()
	calls := mock.calls.ListSwappableExcluding
	mock.lock.RUnlock()
	return calls
}
