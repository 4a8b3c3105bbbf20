package swap

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/slotswapper/backend/internal/domain"
)

var _ swapRequestRepo = &swapRequestRepoMock{}

type swapRequestRepoMock struct {
	CreateFunc       func(ctx context.Context, req *domain.SwapRequest) (*domain.SwapRequest, error)
	GetForUpdateFunc func(ctx context.Context, requestID uuid.UUID) (*domain.SwapRequest, error)
	SetStatusFunc    func(ctx context.Context, requestID uuid.UUID, status domain.SwapStatus) error
	ListIncomingFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.SwapRequestDetails, error)
	ListOutgoingFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.SwapRequestDetails, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Req *domain.SwapRequest
		}
		GetForUpdate []struct {
			Ctx       context.Context
			RequestID uuid.UUID
		}
		SetStatus []struct {
			Ctx       context.Context
			RequestID uuid.UUID
			Status    domain.SwapStatus
		}
		ListIncoming []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		ListOutgoing []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *swapRequestRepoMock) Create(ctx context.Context, req *domain.SwapRequest) (*domain.SwapRequest, error) {
	if mock.CreateFunc == nil {
		panic("swapRequestRepoMock.CreateFunc: method is nil but swapRequestRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req *domain.SwapRequest
	}{Ctx: ctx, Req: req}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, req)
}

func (mock *swapRequestRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Req *domain.SwapRequest
} {
	mock.lock.RLock()
	calls := mock.calls.Create
	mock.lock.RUnlock()
	return calls
}

func (mock *swapRequestRepoMock) GetForUpdate(ctx context.Context, requestID uuid.UUID) (*domain.SwapRequest, error) {
	if mock.GetForUpdateFunc == nil {
		panic("swapRequestRepoMock.GetForUpdateFunc: method is nil but swapRequestRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		RequestID uuid.UUID
	}{Ctx: ctx, RequestID: requestID}
	mock.lock.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lock.Unlock()
	return mock.GetForUpdateFunc(ctx, requestID)
}

func (mock *swapRequestRepoMock) GetForUpdateCalls() []struct {
	Ctx       context.Context
	RequestID uuid.UUID
} {
	mock.lock.RLock()
	calls := mock.calls.GetForUpdate
	mock.lock.RUnlock()
	return calls
}

func (mock *swapRequestRepoMock) SetStatus(ctx context.Context, requestID uuid.UUID, status domain.SwapStatus) error {
	if mock.SetStatusFunc == nil {
		panic("swapRequestRepoMock.SetStatusFunc: method is nil but swapRequestRepo.SetStatus was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		RequestID uuid.UUID
		Status    domain.SwapStatus
	}{Ctx: ctx, RequestID: requestID, Status: status}
	mock.lock.Lock()
	mock.calls.SetStatus = append(mock.calls.SetStatus, callInfo)
	mock.lock.Unlock()
	return mock.SetStatusFunc(ctx, requestID, status)
}

func (mock *swapRequestRepoMock) SetStatusCalls() []struct {
	Ctx       context.Context
	RequestID uuid.UUID
	Status    domain.SwapStatus
} {
	mock.lock.RLock()
	calls := mock.calls.SetStatus
	mock.lock.RUnlock()
	return calls
}

func (mock *swapRequestRepoMock) ListIncoming(ctx context.Context, userID uuid.UUID) ([]*domain.SwapRequestDetails, error) {
	if mock.ListIncomingFunc == nil {
		panic("swapRequestRepoMock.ListIncomingFunc: method is nil but swapRequestRepo.ListIncoming was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lock.Lock()
	mock.calls.ListIncoming = append(mock.calls.ListIncoming, callInfo)
	mock.lock.Unlock()
	return mock.ListIncomingFunc(ctx, userID)
}

func (mock *swapRequestRepoMock) ListIncomingCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lock.RLock()
	calls := mock.calls.ListIncoming
	mock.lock.RUnlock()
	return calls
}

func (mock *swapRequestRepoMock) ListOutgoing(ctx context.Context, userID uuid.UUID) ([]*domain.SwapRequestDetails, error) {
	if mock.ListOutgoingFunc == nil {
		panic("swapRequestRepoMock.ListOutgoingFunc: method is nil but swapRequestRepo.ListOutgoing was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lock.Lock()
	mock.calls.ListOutgoing = append(mock.calls.ListOutgoing, callInfo)
	mock.lock.Unlock()
	return mock.ListOutgoingFunc(ctx, userID)
}

func (mock *swapRequestRepoMock) ListOutgoingCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lock.RLock()
	calls := mock.calls.ListOutgoing
	mock.lock.RUnlock()
	return calls
}
