package history

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/LawUtilities/ADMS.API-sub014/internal/domain"
)

var _ documentRepo = &documentRepoMock{}

type documentRepoMock struct {
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	GetForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Document, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID      sync.RWMutex
	lockGetForUpdate sync.RWMutex
}

func (mock *documentRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	if mock.GetByIDFunc == nil {
		panic("documentRepoMock.GetByIDFunc: method is nil but documentRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *documentRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *documentRepoMock) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	if mock.GetForUpdateFunc == nil {
		panic("documentRepoMock.GetForUpdateFunc: method is nil but documentRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, id)
}

func (mock *documentRepoMock) GetForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}
