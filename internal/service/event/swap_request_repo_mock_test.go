package event

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/slotswapper/backend/internal/domain"
)

var _ swapRequestRepo = &swapRequestRepoMock{}

type swapRequestRepoMock struct {
	GetPendingByEventFunc func(ctx context.Context, eventID uuid.UUID) (*domain.SwapRequest, error)

	calls struct {
		GetPendingByEvent []struct {
			Ctx     context.Context
			EventID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *swapRequestRepoMock) GetPendingByEvent(ctx context.Context, eventID uuid.UUID) (*domain.SwapRequest, error) {
	if mock.GetPendingByEventFunc == nil {
		panic("swapRequestRepoMock.GetPendingByEventFunc: method is nil but swapRequestRepo.GetPendingByEvent was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EventID uuid.UUID
	}{Ctx: ctx, EventID: eventID}
	mock.lock.Lock()
	mock.calls.GetPendingByEvent = append(mock.calls.GetPendingByEvent, callInfo)
	mock.lock.Unlock()
	return mock.GetPendingByEventFunc(ctx, eventID)
}

func (mock *swapRequestRepoMock) GetPendingByEventCalls() []struct {
	Ctx     context.Context
	EventID uuid.UUID
} {
	mock.lock.RLock()
	calls := mock.calls.GetPendingByEvent
	mock.lock.RUnlock()
	return calls
}
