package records

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/LawUtilities/ADMS.API-sub014/internal/domain"
)

var _ matterRepo = &matterRepoMock{}

type matterRepoMock struct {
	CreateFunc         func(ctx context.Context, m *domain.Matter) (*domain.Matter, error)
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Matter, error)
	GetForUpdateFunc   func(ctx context.Context, id uuid.UUID) (*domain.Matter, error)
	GetForShareFunc    func(ctx context.Context, id uuid.UUID) (*domain.Matter, error)
	UpdateStatusFunc   func(ctx context.Context, id uuid.UUID, status domain.MatterStatus) error
	DocumentCountsFunc func(ctx context.Context, id uuid.UUID) (domain.MatterDocumentCounts, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			M   *domain.Matter
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetForShare []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdateStatus []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Status domain.MatterStatus
		}
		DocumentCounts []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate         sync.RWMutex
	lockGetByID        sync.RWMutex
	lockGetForUpdate   sync.RWMutex
	lockGetForShare    sync.RWMutex
	lockUpdateStatus   sync.RWMutex
	lockDocumentCounts sync.RWMutex
}

func (mock *matterRepoMock) Create(ctx context.Context, m *domain.Matter) (*domain.Matter, error) {
	if mock.CreateFunc == nil {
		panic("matterRepoMock.CreateFunc: method is nil but matterRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   *domain.Matter
	}{
		Ctx: ctx,
		M:   m,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *matterRepoMock) CreateCalls() []struct {
	Ctx context.Context
	M   *domain.Matter
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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

func (mock *matterRepoMock) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Matter, error) {
	if mock.GetForUpdateFunc == nil {
		panic("matterRepoMock.GetForUpdateFunc: method is nil but matterRepo.GetForUpdate was just called")
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

func (mock *matterRepoMock) GetForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *matterRepoMock) GetForShare(ctx context.Context, id uuid.UUID) (*domain.Matter, error) {
	if mock.GetForShareFunc == nil {
		panic("matterRepoMock.GetForShareFunc: method is nil but matterRepo.GetForShare was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetForShare.Lock()
	mock.calls.GetForShare = append(mock.calls.GetForShare, callInfo)
	mock.lockGetForShare.Unlock()
	return mock.GetForShareFunc(ctx, id)
}

func (mock *matterRepoMock) GetForShareCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetForShare.RLock()
	calls := mock.calls.GetForShare
	mock.lockGetForShare.RUnlock()
	return calls
}

func (mock *matterRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.MatterStatus) error {
	if mock.UpdateStatusFunc == nil {
		panic("matterRepoMock.UpdateStatusFunc: method is nil but matterRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Status domain.MatterStatus
	}{
		Ctx:    ctx,
		ID:     id,
		Status: status,
	}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status)
}

func (mock *matterRepoMock) UpdateStatusCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Status domain.MatterStatus
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *matterRepoMock) DocumentCounts(ctx context.Context, id uuid.UUID) (domain.MatterDocumentCounts, error) {
	if mock.DocumentCountsFunc == nil {
		panic("matterRepoMock.DocumentCountsFunc: method is nil but matterRepo.DocumentCounts was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDocumentCounts.Lock()
	mock.calls.DocumentCounts = append(mock.calls.DocumentCounts, callInfo)
	mock.lockDocumentCounts.Unlock()
	return mock.DocumentCountsFunc(ctx, id)
}

func (mock *matterRepoMock) DocumentCountsCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDocumentCounts.RLock()
	calls := mock.calls.DocumentCounts
	mock.lockDocumentCounts.RUnlock()
	return calls
}
