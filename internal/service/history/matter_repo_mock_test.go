package history

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/LawUtilities/ADMS.API-sub014/internal/domain"
)

var _ matterRepo = &matterRepoMock{}

type matterRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Matter, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *matterRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Matter, error) {
	if mock.GetByIDFunc == nil {
		panic("matterRepoMock.GetByIDFunc: method is nil but matterRepo.GetByID was just called")
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

func (mock *matterRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
