// Package document implements the Document repository using PostgreSQL.
package document

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

var columns = []string{
	"id", "file_name", "extension", "matter_id", "is_checked_out", "is_deleted", "content_ref", "created_at",
}

// Repo provides document persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new document repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new document.
func (r *Repo) Create(ctx context.Context, d *domain.Document) (*domain.Document, error) {
	query, args, err := postgres.Builder().
		Insert("documents").
		Columns(columns...).
		Values(d.ID, d.FileName, d.Extension, d.MatterID, d.IsCheckedOut, d.IsDeleted, d.ContentRef,
			domain.LedgerTime(d.CreatedAt)).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build document insert: %w", err)
	}

	created, err := scanDocument(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "document", d.ID)
	}
	return created, nil
}

// UpdateState stores the flags representing state.
func (r *Repo) UpdateState(ctx context.Context, id uuid.UUID, state domain.DocumentState) error {
	var d domain.Document
	d.Apply(state)
	return r.update(ctx, id, map[string]any{
		"is_checked_out": d.IsCheckedOut,
		"is_deleted":     d.IsDeleted,
	})
}

// SetMatter reassigns the owning matter.
func (r *Repo) SetMatter(ctx context.Context, id, matterID uuid.UUID) error {
	return r.update(ctx, id, map[string]any{"matter_id": matterID})
}

// Rename changes the file name and extension.
func (r *Repo) Rename(ctx context.Context, id uuid.UUID, fileName, extension string) error {
	return r.update(ctx, id, map[string]any{"file_name": fileName, "extension": extension})
}

func (r *Repo) update(ctx context.Context, id uuid.UUID, set map[string]any) error {
	query, args, err := postgres.Builder().
		Update("documents").
		SetMap(set).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build document update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "document", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a document, including soft-deleted ones.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	return r.get(ctx, id, "")
}

// GetForUpdate returns a document and holds its row lock until the
// surrounding transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	return r.get(ctx, id, "FOR UPDATE")
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, suffix string) (*domain.Document, error) {
	b := postgres.Builder().
		Select(columns...).
		From("documents").
		Where(sq.Eq{"id": id})
	if suffix != "" {
		b = b.Suffix(suffix)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build document select: %w", err)
	}

	d, err := scanDocument(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "document", id)
	}
	return d, nil
}

// ListByMatter returns every document the matter owns, deleted ones
// included, ordered by creation time.
func (r *Repo) ListByMatter(ctx context.Context, matterID uuid.UUID) ([]domain.Document, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("documents").
		Where(sq.Eq{"matter_id": matterID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build document list: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "matter", matterID)
	}

	docs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Document, error) {
		d, err := scanDocument(row)
		if err != nil {
			return domain.Document{}, err
		}
		return *d, nil
	})
	if err != nil {
		return nil, postgres.MapError(err, "matter", matterID)
	}
	return docs, nil
}

// GetByIDs returns the documents with the given ids in no particular
// order. Unknown ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Document, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := postgres.Builder().
		Select(columns...).
		From("documents").
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build document batch select: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get documents by ids: %w", err)
	}

	docs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Document, error) {
		d, err := scanDocument(row)
		if err != nil {
			return domain.Document{}, err
		}
		return *d, nil
	})
	if err != nil {
		return nil, fmt.Errorf("get documents by ids: %w", err)
	}
	return docs, nil
}

func scanDocument(row pgx.Row) (*domain.Document, error) {
	var d domain.Document
	if err := row.Scan(&d.ID, &d.FileName, &d.Extension, &d.MatterID, &d.IsCheckedOut, &d.IsDeleted,
		&d.ContentRef, &d.CreatedAt); err != nil {
		return nil, err
	}
	d.CreatedAt = d.CreatedAt.UTC()
	return &d, nil
}
