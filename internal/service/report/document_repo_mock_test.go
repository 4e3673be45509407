package report

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/LawUtilities/ADMS.API-sub014/internal/domain"
)

var _ documentRepo = &documentRepoMock{}

type documentRepoMock struct {
	ListByMatterFunc func(ctx context.Context, matterID uuid.UUID) ([]domain.Document, error)
	GetByIDsFunc     func(ctx context.Context, ids []uuid.UUID) ([]domain.Document, error)

	calls struct {
		ListByMatter []struct {
			Ctx      context.Context
			MatterID uuid.UUID
		}
		GetByIDs []struct {
			Ctx context.Context
			Ids []uuid.UUID
		}
	}
	lockListByMatter sync.RWMutex
	lockGetByIDs     sync.RWMutex
}

func (mock *documentRepoMock) ListByMatter(ctx context.Context, matterID uuid.UUID) ([]domain.Document, error) {
	if mock.ListByMatterFunc == nil {
		panic("documentRepoMock.ListByMatterFunc: method is nil but documentRepo.ListByMatter was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		MatterID uuid.UUID
	}{
		Ctx:      ctx,
		MatterID: matterID,
	}
	mock.lockListByMatter.Lock()
	mock.calls.ListByMatter = append(mock.calls.ListByMatter, callInfo)
	mock.lockListByMatter.Unlock()
	return mock.ListByMatterFunc(ctx, matterID)
}

func (mock *documentRepoMock) ListByMatterCalls() []struct {
	Ctx      context.Context
	MatterID uuid.UUID
} {
	mock.lockListByMatter.RLock()
	calls := mock.calls.ListByMatter
	mock.lockListByMatter.RUnlock()
	return calls
}

func (mock *documentRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Document, error) {
	if mock.GetByIDsFunc == nil {
		panic("documentRepoMock.GetByIDsFunc: method is nil but documentRepo.GetByIDs was just called")
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

func (mock *documentRepoMock) GetByIDsCalls() []struct {
	Ctx context.Context
	Ids []uuid.UUID
} {
	mock.lockGetByIDs.RLock()
	calls := mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}
