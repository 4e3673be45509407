// Package revision implements the Revision repository using PostgreSQL.
package revision

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
	"id", "document_id", "revision_number", "creation_date", "modification_date", "is_deleted",
}

// Repo provides revision persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new revision repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a revision. A number already used by the document fails
// with domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, rev *domain.Revision) (*domain.Revision, error) {
	query, args, err := postgres.Builder().
		Insert("revisions").
		Columns(columns...).
		Values(rev.ID, rev.DocumentID, rev.Number, domain.LedgerTime(rev.CreationDate),
			domain.LedgerTime(rev.ModificationDate), rev.IsDeleted).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build revision insert: %w", err)
	}

	created, err := scanRevision(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "revision", rev.ID)
	}
	return created, nil
}

// Update stores the modification date and the deleted flag.
func (r *Repo) Update(ctx context.Context, rev *domain.Revision) error {
	query, args, err := postgres.Builder().
		Update("revisions").
		Set("modification_date", domain.LedgerTime(rev.ModificationDate)).
		Set("is_deleted", rev.IsDeleted).
		Where(sq.Eq{"id": rev.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build revision update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "revision", rev.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("revision %s: %w", rev.ID, domain.ErrNotFound)
	}
	return nil
}

// NextNumber returns the number the next revision of the document gets.
// Callers hold the document's row lock so that concurrent creators see
// each other's numbers.
func (r *Repo) NextNumber(ctx context.Context, documentID uuid.UUID) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT COALESCE(max(revision_number), 0) + 1 FROM revisions WHERE document_id = $1`,
		documentID,
	).Scan(&n)
	if err != nil {
		return 0, postgres.MapError(err, "document", documentID)
	}
	return n, nil
}

// GetByID returns a revision, including soft-deleted ones.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Revision, error) {
	return r.get(ctx, id, "")
}

// GetForUpdate returns a revision and holds its row lock.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Revision, error) {
	return r.get(ctx, id, "FOR UPDATE")
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, suffix string) (*domain.Revision, error) {
	b := postgres.Builder().
		Select(columns...).
		From("revisions").
		Where(sq.Eq{"id": id})
	if suffix != "" {
		b = b.Suffix(suffix)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build revision select: %w", err)
	}

	rev, err := scanRevision(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "revision", id)
	}
	return rev, nil
}

// ListByDocument returns the document's revisions ordered by number.
func (r *Repo) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]domain.Revision, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("revisions").
		Where(sq.Eq{"document_id": documentID}).
		OrderBy("revision_number ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build revision list: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "document", documentID)
	}

	revs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Revision, error) {
		rev, err := scanRevision(row)
		if err != nil {
			return domain.Revision{}, err
		}
		return *rev, nil
	})
	if err != nil {
		return nil, postgres.MapError(err, "document", documentID)
	}
	return revs, nil
}

func scanRevision(row pgx.Row) (*domain.Revision, error) {
	var rev domain.Revision
	if err := row.Scan(&rev.ID, &rev.DocumentID, &rev.Number, &rev.CreationDate, &rev.ModificationDate,
		&rev.IsDeleted); err != nil {
		return nil, err
	}
	rev.CreationDate = rev.CreationDate.UTC()
	rev.ModificationDate = rev.ModificationDate.UTC()
	return &rev, nil
}
