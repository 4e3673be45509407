// Package matter implements the Matter repository using PostgreSQL.
package matter

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/LawUtilities/ADMS.API-sub014/internal/adapter/postgres"
	"github.com/LawUtilities/ADMS.API-sub014/internal/domain"
)

var columns = []string{"id", "description", "is_archived", "is_deleted", "creation_date"}

// Repo provides matter persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new matter repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new matter.
func (r *Repo) Create(ctx context.Context, m *domain.Matter) (*domain.Matter, error) {
	archived, deleted := m.Status.Flags()

	query, args, err := postgres.Builder().
		Insert("matters").
		Columns(columns...).
		Values(m.ID, m.Description, archived, deleted, domain.LedgerTime(m.CreationDate)).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build matter insert: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	created, err := scanMatter(row)
	if err != nil {
		return nil, postgres.MapError(err, "matter", m.ID)
	}
	return created, nil
}

// GetByID returns a matter regardless of its status.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Matter, error) {
	return r.get(ctx, id, "")
}

// GetForUpdate returns a matter and holds its row lock until the
// surrounding transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Matter, error) {
	return r.get(ctx, id, "FOR UPDATE")
}

// GetForShare returns a matter and holds a shared lock on its row. Shared
// holders do not block each other but exclude GetForUpdate.
func (r *Repo) GetForShare(ctx context.Context, id uuid.UUID) (*domain.Matter, error) {
	return r.get(ctx, id, "FOR SHARE")
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, suffix string) (*domain.Matter, error) {
	b := postgres.Builder().
		Select(columns...).
		From("matters").
		Where(sq.Eq{"id": id})
	if suffix != "" {
		b = b.Suffix(suffix)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build matter select: %w", err)
	}

	m, err := scanMatter(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "matter", id)
	}
	return m, nil
}

// UpdateStatus stores the flag pair for status.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.MatterStatus) error {
	archived, deleted := status.Flags()

	query, args, err := postgres.Builder().
		Update("matters").
		Set("is_archived", archived).
		Set("is_deleted", deleted).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build matter update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "matter", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("matter %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DocumentCounts summarises the documents the matter currently owns.
func (r *Repo) DocumentCounts(ctx context.Context, id uuid.UUID) (domain.MatterDocumentCounts, error) {
	var c domain.MatterDocumentCounts
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, `
		SELECT count(*) FILTER (WHERE NOT is_deleted),
		       count(*) FILTER (WHERE is_checked_out)
		FROM documents
		WHERE matter_id = $1`, id,
	).Scan(&c.Live, &c.CheckedOut)
	if err != nil {
		return c, postgres.MapError(err, "matter", id)
	}
	return c, nil
}

func scanMatter(row pgx.Row) (*domain.Matter, error) {
	var (
		m                 domain.Matter
		archived, deleted bool
	)
	if err := row.Scan(&m.ID, &m.Description, &archived, &deleted, &m.CreationDate); err != nil {
		return nil, err
	}
	m.Status = domain.MatterStatusFromFlags(archived, deleted)
	m.CreationDate = m.CreationDate.UTC()
	return &m, nil
}
