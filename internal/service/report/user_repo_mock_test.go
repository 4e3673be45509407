package report

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/LawUtilities/ADMS.API-sub014/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)

	calls struct {
		GetByIDs []struct {
			Ctx context.Context
			Ids []uuid.UUID
		}
	}
	lockGetByIDs sync.RWMutex
}

func (mock *userRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if mock.GetByIDsFunc == nil {
		panic("userRepoMock.GetByIDsFunc: method is nil but userRepo.GetByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []uuid.UUID
	}{
		Ctx: ctx,
		Ids: ids,
	}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, ids)
}

func (mock *userRepoMock) GetByIDsCalls() []struct {
	Ctx context.Context
	Ids []uuid.UUID
} {
	mock.lockGetByIDs.RLock()
	calls := mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}
