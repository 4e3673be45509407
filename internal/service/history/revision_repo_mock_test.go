package history

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/LawUtilities/ADMS.API-sub014/internal/domain"
)

var _ revisionRepo = &revisionRepoMock{}

type revisionRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Revision, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *revisionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Revision, error) {
	if mock.GetByIDFunc == nil {
		panic("revisionRepoMock.GetByIDFunc: method is nil but revisionRepo.GetByID was just called")
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

func (mock *revisionRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
