package records

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/LawUtilities/ADMS.API-sub014/internal/domain"
)

var _ activityCatalog = &activityCatalogMock{}

type activityCatalogMock struct {
	ResolveFunc func(ctx context.Context, subject domain.SubjectType, activity domain.Activity) (uuid.UUID, error)

	calls struct {
		Resolve []struct {
			Ctx      context.Context
			Subject  domain.SubjectType
			Activity domain.Activity
		}
	}
	lockResolve sync.RWMutex
}

func (mock *activityCatalogMock) Resolve(ctx context.Context, subject domain.SubjectType, activity domain.Activity) (uuid.UUID, error) {
	if mock.ResolveFunc == nil {
		panic("activityCatalogMock.ResolveFunc: method is nil but activityCatalog.Resolve was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Subject  domain.SubjectType
		Activity domain.Activity
	}{
		Ctx:      ctx,
		Subject:  subject,
		Activity: activity,
	}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(ctx, subject, activity)
}

func (mock *activityCatalogMock) ResolveCalls() []struct {
	Ctx      context.Context
	Subject  domain.SubjectType
	Activity domain.Activity
} {
	mock.lockResolve.RLock()
	calls := mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}
