package records

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/LawUtilities/ADMS.API-sub014/internal/domain"
)

var _ documentRepo = &documentRepoMock{}

type documentRepoMock struct {
	CreateFunc       func(ctx context.Context, d *domain.Document) (*domain.Document, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	GetForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	UpdateStateFunc  func(ctx context.Context, id uuid.UUID, state domain.DocumentState) error
	SetMatterFunc    func(ctx context.Context, id uuid.UUID, matterID uuid.UUID) error
	RenameFunc       func(ctx context.Context, id uuid.UUID, fileName string, extension string) error

	calls struct {
		Create []struct {
			Ctx context.Context
			D   *domain.Document
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdateState []struct {
			Ctx   context.Context
			ID    uuid.UUID
			State domain.DocumentState
		}
		SetMatter []struct {
			Ctx      context.Context
			ID       uuid.UUID
			MatterID uuid.UUID
		}
		Rename []struct {
			Ctx       context.Context
			ID        uuid.UUID
			FileName  string
			Extension string
		}
	}
	lockCreate       sync.RWMutex
	lockGetByID      sync.RWMutex
	lockGetForUpdate sync.RWMutex
	lockUpdateState  sync.RWMutex
	lockSetMatter    sync.RWMutex
	lockRename       sync.RWMutex
}

func (mock *documentRepoMock) Create(ctx context.Context, d *domain.Document) (*domain.Document, error) {
	if mock.CreateFunc == nil {
		panic("documentRepoMock.CreateFunc: method is nil but documentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   *domain.Document
	}{
		Ctx: ctx,
		D:   d,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, d)
}

func (mock *documentRepoMock) CreateCalls() []struct {
	Ctx context.Context
	D   *domain.Document
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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

func (mock *documentRepoMock) UpdateState(ctx context.Context, id uuid.UUID, state domain.DocumentState) error {
	if mock.UpdateStateFunc == nil {
		panic("documentRepoMock.UpdateStateFunc: method is nil but documentRepo.UpdateState was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		State domain.DocumentState
	}{
		Ctx:   ctx,
		ID:    id,
		State: state,
	}
	mock.lockUpdateState.Lock()
	mock.calls.UpdateState = append(mock.calls.UpdateState, callInfo)
	mock.lockUpdateState.Unlock()
	return mock.UpdateStateFunc(ctx, id, state)
}

func (mock *documentRepoMock) UpdateStateCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	State domain.DocumentState
} {
	mock.lockUpdateState.RLock()
	calls := mock.calls.UpdateState
	mock.lockUpdateState.RUnlock()
	return calls
}

func (mock *documentRepoMock) SetMatter(ctx context.Context, id uuid.UUID, matterID uuid.UUID) error {
	if mock.SetMatterFunc == nil {
		panic("documentRepoMock.SetMatterFunc: method is nil but documentRepo.SetMatter was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ID       uuid.UUID
		MatterID uuid.UUID
	}{
		Ctx:      ctx,
		ID:       id,
		MatterID: matterID,
	}
	mock.lockSetMatter.Lock()
	mock.calls.SetMatter = append(mock.calls.SetMatter, callInfo)
	mock.lockSetMatter.Unlock()
	return mock.SetMatterFunc(ctx, id, matterID)
}

func (mock *documentRepoMock) SetMatterCalls() []struct {
	Ctx      context.Context
	ID       uuid.UUID
	MatterID uuid.UUID
} {
	mock.lockSetMatter.RLock()
	calls := mock.calls.SetMatter
	mock.lockSetMatter.RUnlock()
	return calls
}

func (mock *documentRepoMock) Rename(ctx context.Context, id uuid.UUID, fileName string, extension string) error {
	if mock.RenameFunc == nil {
		panic("documentRepoMock.RenameFunc: method is nil but documentRepo.Rename was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        uuid.UUID
		FileName  string
		Extension string
	}{
		Ctx:       ctx,
		ID:        id,
		FileName:  fileName,
		Extension: extension,
	}
	mock.lockRename.Lock()
	mock.calls.Rename = append(mock.calls.Rename, callInfo)
	mock.lockRename.Unlock()
	return mock.RenameFunc(ctx, id, fileName, extension)
}

func (mock *documentRepoMock) RenameCalls() []struct {
	Ctx       context.Context
	ID        uuid.UUID
	FileName  string
	Extension string
} {
	mock.lockRename.RLock()
	calls := mock.calls.Rename
	mock.lockRename.RUnlock()
	return calls
}
