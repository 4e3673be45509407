package report

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/LawUtilities/ADMS.API-sub014/internal/domain"
)

// loaders batch the lookups a single report needs. They cache for the
// lifetime of one report only.
type loaders struct {
	documents *dataloader.Loader[uuid.UUID, *domain.Document]
	users     *dataloader.Loader[uuid.UUID, *domain.User]
}

func (s *Service) newLoaders() *loaders {
	return &loaders{
		documents: newLoader(s.cfg, newDocumentsBatchFn(s.documents)),
		users:     newLoader(s.cfg, newUsersBatchFn(s.users)),
	}
}

func newLoader[V any](cfg Config, batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](cfg.LoaderWait),
		dataloader.WithBatchCapacity[uuid.UUID, V](cfg.LoaderBatch),
	)
}

func newDocumentsBatchFn(repo documentRepo) dataloader.BatchFunc[uuid.UUID, *domain.Document] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Document] {
		docs, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Document](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.Document, len(docs))
		for i := range docs {
			byID[docs[i].ID] = &docs[i]
		}
		return mapResults(keys, byID)
	}
}

func newUsersBatchFn(repo userRepo) dataloader.BatchFunc[uuid.UUID, *domain.User] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.User] {
		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.User](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.User, len(users))
		for i := range users {
			byID[users[i].ID] = &users[i]
		}
		return mapResults(keys, byID)
	}
}

// errorResults creates n results all containing the same error.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps found values back to key order. Missing keys resolve
// to the zero value.
func mapResults[V any](keys []uuid.UUID, found map[uuid.UUID]V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		results[i] = &dataloader.Result[V]{Data: found[key]}
	}
	return results
}
