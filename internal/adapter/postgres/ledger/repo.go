// Package ledger implements the append-only audit ledgers for matters,
// documents and revisions. Rows are inserted and read; no statement in
// this package updates or deletes them.
package ledger

import (
	"context"
	"fmt"
	"iter"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/LawUtilities/ADMS.API-sub014/internal/adapter/postgres"
	"github.com/LawUtilities/ADMS.API-sub014/internal/domain"
)

// Repo provides audit ledger persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new ledger repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Record appends one ledger row. The subject, the activity (within the
// subject's catalog) and the user must exist, otherwise domain.ErrNotFound.
// A row with an identical key fails with domain.ErrAlreadyExists.
func (r *Repo) Record(ctx context.Context, key domain.LedgerKey) error {
	t, err := tableFor(key.Subject)
	if err != nil {
		return err
	}
	if err := validateKey(key); err != nil {
		return err
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var subjectOK, activityOK, userOK bool
	err = q.QueryRow(ctx, fmt.Sprintf(`
		SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1),
		       EXISTS (SELECT 1 FROM %s WHERE id = $2),
		       EXISTS (SELECT 1 FROM users WHERE id = $3)`, t.subjects, t.activities),
		key.SubjectID, key.ActivityID, key.UserID,
	).Scan(&subjectOK, &activityOK, &userOK)
	if err != nil {
		return postgres.MapError(err, t.name, key.SubjectID)
	}

	switch {
	case !subjectOK:
		return fmt.Errorf("%s %s: %w", key.Subject, key.SubjectID, domain.ErrNotFound)
	case !activityOK:
		return fmt.Errorf("%s activity %s: %w", key.Subject, key.ActivityID, domain.ErrNotFound)
	case !userOK:
		return fmt.Errorf("user %s: %w", key.UserID, domain.ErrNotFound)
	}

	query, args, err := postgres.Builder().
		Insert(t.name).
		Columns(t.subjectCol, "activity_id", "user_id", "created_at").
		Values(key.SubjectID, key.ActivityID, key.UserID, domain.LedgerTime(key.CreatedAt)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build %s insert: %w", t.name, err)
	}

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, t.name, key.SubjectID)
	}

	return nil
}

func validateKey(key domain.LedgerKey) error {
	var errs []domain.FieldError
	if key.SubjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "subject_id", Message: "required"})
	}
	if key.ActivityID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "activity_id", Message: "required"})
	}
	if key.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if key.CreatedAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "created_at", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// History returns the ledger rows of one subject in ascending timestamp
// order. The query runs each time the sequence is ranged over.
func (r *Repo) History(ctx context.Context, f domain.HistoryFilter) iter.Seq2[domain.LedgerEntry, error] {
	return func(yield func(domain.LedgerEntry, error) bool) {
		t, err := tableFor(f.Subject)
		if err != nil {
			yield(domain.LedgerEntry{}, err)
			return
		}

		b := postgres.Builder().
			Select("l.activity_id", "a.activity", "l.user_id", "u.name", "l.created_at").
			From(t.name + " l").
			Join(t.activities + " a ON a.id = l.activity_id").
			Join("users u ON u.id = l.user_id").
			Where(sq.Eq{"l." + t.subjectCol: f.SubjectID}).
			OrderBy("l.created_at ASC", "a.activity ASC", "l.user_id ASC")
		if !f.From.IsZero() {
			b = b.Where(sq.GtOrEq{"l.created_at": domain.LedgerTime(f.From)})
		}
		if !f.To.IsZero() {
			b = b.Where(sq.LtOrEq{"l.created_at": domain.LedgerTime(f.To)})
		}

		query, args, err := b.ToSql()
		if err != nil {
			yield(domain.LedgerEntry{}, fmt.Errorf("build %s history: %w", t.name, err))
			return
		}

		rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
		if err != nil {
			yield(domain.LedgerEntry{}, postgres.MapError(err, t.name, f.SubjectID))
			return
		}
		defer rows.Close()

		for rows.Next() {
			e := domain.LedgerEntry{LedgerKey: domain.LedgerKey{Subject: f.Subject, SubjectID: f.SubjectID}}
			var activity string
			if err := rows.Scan(&e.ActivityID, &activity, &e.UserID, &e.UserName, &e.CreatedAt); err != nil {
				yield(domain.LedgerEntry{}, fmt.Errorf("scan %s row: %w", t.name, err))
				return
			}
			e.Activity = domain.Activity(activity)
			e.CreatedAt = e.CreatedAt.UTC()
			if !yield(e, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(domain.LedgerEntry{}, postgres.MapError(err, t.name, f.SubjectID))
		}
	}
}

// Latest returns the newest ledger timestamp of a subject, or the zero
// time if it has no history.
func (r *Repo) Latest(ctx context.Context, subject domain.SubjectType, subjectID uuid.UUID) (time.Time, error) {
	t, err := tableFor(subject)
	if err != nil {
		return time.Time{}, err
	}

	var latest *time.Time
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		fmt.Sprintf(`SELECT max(created_at) FROM %s WHERE %s = $1`, t.name, t.subjectCol),
		subjectID,
	).Scan(&latest)
	if err != nil {
		return time.Time{}, postgres.MapError(err, t.name, subjectID)
	}
	if latest == nil {
		return time.Time{}, nil
	}
	return latest.UTC(), nil
}
