// Package catalog reads the seeded per-subject activity catalogs.
// The catalogs are reference data: there is no write path.
package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/LawUtilities/ADMS.API-sub014/internal/adapter/postgres"
	"github.com/LawUtilities/ADMS.API-sub014/internal/domain"
)

const loadSQL = `
SELECT id, 'MATTER' AS subject, activity FROM matter_activities
UNION ALL
SELECT id, 'DOCUMENT', activity FROM document_activities
UNION ALL
SELECT id, 'REVISION', activity FROM revision_activities
UNION ALL
SELECT id, 'TRANSFER', activity FROM transfer_activities
ORDER BY 2, 3`

// Repo resolves activity names to catalog ids. The catalogs are read once
// and cached for the lifetime of the process.
type Repo struct {
	pool *pgxpool.Pool

	mu      sync.Mutex
	catalog *domain.ActivityCatalog
}

// New creates a new catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Load reads all four catalogs and replaces the cached view.
func (r *Repo) Load(ctx context.Context) (*domain.ActivityCatalog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, loadSQL)
	if err != nil {
		return nil, postgres.MapError(err, "activity_catalog", uuid.Nil)
	}

	types, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ActivityType, error) {
		var (
			a        domain.ActivityType
			subject  string
			activity string
		)
		if err := row.Scan(&a.ID, &subject, &activity); err != nil {
			return a, err
		}
		a.Subject = domain.SubjectType(subject)
		a.Activity = domain.Activity(activity)
		return a, nil
	})
	if err != nil {
		return nil, postgres.MapError(err, "activity_catalog", uuid.Nil)
	}

	c, err := domain.NewActivityCatalog(types)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.catalog = c
	r.mu.Unlock()

	return c, nil
}

// Catalog returns the cached catalog, loading it on first use.
func (r *Repo) Catalog(ctx context.Context) (*domain.ActivityCatalog, error) {
	r.mu.Lock()
	c := r.catalog
	r.mu.Unlock()
	if c != nil {
		return c, nil
	}
	return r.Load(ctx)
}

// Resolve returns the id of activity in subject's catalog. Unknown names
// fail with domain.ErrNotFound.
func (r *Repo) Resolve(ctx context.Context, subject domain.SubjectType, activity domain.Activity) (uuid.UUID, error) {
	c, err := r.Catalog(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("resolve activity: %w", err)
	}
	return c.Resolve(subject, activity)
}
