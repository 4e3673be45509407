package records

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/LawUtilities/ADMS.API-sub014/internal/domain"
)

var _ revisionRepo = &revisionRepoMock{}

type revisionRepoMock struct {
	CreateFunc       func(ctx context.Context, rev *domain.Revision) (*domain.Revision, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Revision, error)
	GetForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Revision, error)
	UpdateFunc       func(ctx context.Context, rev *domain.Revision) error
	NextNumberFunc   func(ctx context.Context, documentID uuid.UUID) (int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Rev *domain.Revision
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Update []struct {
			Ctx context.Context
			Rev *domain.Revision
		}
		NextNumber []struct {
			Ctx        context.Context
			DocumentID uuid.UUID
		}
	}
	lockCreate       sync.RWMutex
	lockGetByID      sync.RWMutex
	lockGetForUpdate sync.RWMutex
	lockUpdate       sync.RWMutex
	lockNextNumber   sync.RWMutex
}

func (mock *revisionRepoMock) Create(ctx context.Context, rev *domain.Revision) (*domain.Revision, error) {
	if mock.CreateFunc == nil {
		panic("revisionRepoMock.CreateFunc: method is nil but revisionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rev *domain.Revision
	}{
		Ctx: ctx,
		Rev: rev,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rev)
}

func (mock *revisionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rev *domain.Revision
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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

func (mock *revisionRepoMock) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Revision, error) {
	if mock.GetForUpdateFunc == nil {
		panic("revisionRepoMock.GetForUpdateFunc: method is nil but revisionRepo.GetForUpdate was just called")
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

func (mock *revisionRepoMock) GetForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *revisionRepoMock) Update(ctx context.Context, rev *domain.Revision) error {
	if mock.UpdateFunc == nil {
		panic("revisionRepoMock.UpdateFunc: method is nil but revisionRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rev *domain.Revision
	}{
		Ctx: ctx,
		Rev: rev,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, rev)
}

func (mock *revisionRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	Rev *domain.Revision
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *revisionRepoMock) NextNumber(ctx context.Context, documentID uuid.UUID) (int, error) {
	if mock.NextNumberFunc == nil {
		panic("revisionRepoMock.NextNumberFunc: method is nil but revisionRepo.NextNumber was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		DocumentID uuid.UUID
	}{
		Ctx:        ctx,
		DocumentID: documentID,
	}
	mock.lockNextNumber.Lock()
	mock.calls.NextNumber = append(mock.calls.NextNumber, callInfo)
	mock.lockNextNumber.Unlock()
	return mock.NextNumberFunc(ctx, documentID)
}

func (mock *revisionRepoMock) NextNumberCalls() []struct {
	Ctx        context.Context
	DocumentID uuid.UUID
} {
	mock.lockNextNumber.RLock()
	calls := mock.calls.NextNumber
	mock.lockNextNumber.RUnlock()
	return calls
}
