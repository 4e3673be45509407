package report

import (
	"context"
	"iter"
	"sync"

	"github.com/LawUtilities/ADMS.API-sub014/internal/domain"
)

var _ ledgerRepo = &ledgerRepoMock{}

type ledgerRepoMock struct {
	HistoryFunc func(ctx context.Context, f domain.HistoryFilter) iter.Seq2[domain.LedgerEntry, error]

	calls struct {
		History []struct {
			Ctx context.Context
			F   domain.HistoryFilter
		}
	}
	lockHistory sync.RWMutex
}

func (mock *ledgerRepoMock) History(ctx context.Context, f domain.HistoryFilter) iter.Seq2[domain.LedgerEntry, error] {
	if mock.HistoryFunc == nil {
		panic("ledgerRepoMock.HistoryFunc: method is nil but ledgerRepo.History was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.HistoryFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx, f)
}

func (mock *ledgerRepoMock) HistoryCalls() []struct {
	Ctx context.Context
	F   domain.HistoryFilter
} {
	mock.lockHistory.RLock()
	calls := mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}
