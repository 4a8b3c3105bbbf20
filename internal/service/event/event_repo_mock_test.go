package event

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/slotswapper/backend/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	CreateFunc       func(ctx context.Context, e *domain.Event) (*domain.Event, error)
	GetByIDFunc      func(ctx context.Context, ownerID, eventID uuid.UUID) (*domain.Event, error)
	GetForUpdateFunc func(ctx context.Context, eventID uuid.UUID) (*domain.Event, error)
	ListByOwnerFunc  func(ctx context.Context, ownerID uuid.UUID) ([]*domain.Event, error)
	UpdateFunc       func(ctx context.Context, ownerID, eventID uuid.UUID, patch domain.EventPatch) (*domain.Event, error)
	DeleteFunc       func(ctx context.Context, ownerID, eventID uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx   context.Context
			Event *domain.Event
		}
		Update []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			EventID uuid.UUID
			Patch   domain.EventPatch
		}
		Delete []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			EventID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *eventRepoMock) Create(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	if mock.CreateFunc == nil {
		panic("eventRepoMock.CreateFunc: method is nil but eventRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Event *domain.Event
	}{Ctx: ctx, Event: e}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *eventRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Event *domain.Event
} {
	mock.lock.RLock()
	calls := mock.calls.Create
	mock.lock.RUnlock()
	return calls
}

func (mock *eventRepoMock) GetByID(ctx context.Context, ownerID, eventID uuid.UUID) (*domain.Event, error) {
	if mock.GetByIDFunc == nil {
		panic("eventRepoMock.GetByIDFunc: method is nil but eventRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, ownerID, eventID)
}

func (mock *eventRepoMock) GetForUpdate(ctx context.Context, eventID uuid.UUID) (*domain.Event, error) {
	if mock.GetForUpdateFunc == nil {
		panic("eventRepoMock.GetForUpdateFunc: method is nil but eventRepo.GetForUpdate was just called")
	}
	return mock.GetForUpdateFunc(ctx, eventID)
}

func (mock *eventRepoMock) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Event, error) {
	if mock.ListByOwnerFunc == nil {
		panic("eventRepoMock.ListByOwnerFunc: method is nil but eventRepo.ListByOwner was just called")
	}
	return mock.ListByOwnerFunc(ctx, ownerID)
}

func (mock *eventRepoMock) Update(ctx context.Context, ownerID, eventID uuid.UUID, patch domain.EventPatch) (*domain.Event, error) {
	if mock.UpdateFunc == nil {
		panic("eventRepoMock.UpdateFunc: method is nil but eventRepo.Update was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		EventID uuid.UUID
		Patch   domain.EventPatch
	}{Ctx: ctx, OwnerID: ownerID, EventID: eventID, Patch: patch}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, ownerID, eventID, patch)
}

func (mock *eventRepoMock) UpdateCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	EventID uuid.UUID
	Patch   domain.EventPatch
} {
	mock.lock.RLock()
	calls := mock.calls.Update
	mock.lock.RUnlock()
	return calls
}

func (mock *eventRepoMock) Delete(ctx context.Context, ownerID, eventID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("eventRepoMock.DeleteFunc: method is nil but eventRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		EventID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, EventID: eventID}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, ownerID, eventID)
}

func (mock *eventRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	EventID uuid.UUID
} {
	mock.lock.RLock()
	calls := mock.calls.Delete
	mock.lock.RUnlock()
	return calls
}
