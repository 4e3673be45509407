// Package transfer implements the two-sided transfer provenance ledger.
// Every transfer is written as one From row keyed to the source matter and
// one To row keyed to the destination matter, sharing document, activity,
// user and timestamp.
package transfer

import (
	"context"
	"fmt"
	"iter"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/LawUtilities/ADMS.API-sub014/internal/adapter/postgres"
	"github.com/LawUtilities/ADMS.API-sub014/internal/domain"
)

const (
	tableFrom = "matter_document_activity_users_from"
	tableTo   = "matter_document_activity_users_to"
)

// Repo provides transfer provenance persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new transfer repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Record appends the From/To pair for one transfer. Both rows commit or
// neither does: the caller's transaction from ctx is used when present,
// otherwise a private one is opened.
//
// Neither matter may be deleted, and the document must belong to the
// source matter, or to the destination once a move has reassigned it.
// Violations fail with ErrConflict. Custody and lock ordering are left to
// the caller.
func (r *Repo) Record(ctx context.Context, key domain.TransferKey) error {
	if err := validateKey(key); err != nil {
		return err
	}
	key.CreatedAt = domain.LedgerTime(key.CreatedAt)

	if postgres.HasTx(ctx) {
		return r.record(ctx, key)
	}
	return postgres.NewTxManager(r.pool).RunInTx(ctx, func(txCtx context.Context) error {
		return r.record(txCtx, key)
	})
}

func (r *Repo) record(ctx context.Context, key domain.TransferKey) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var docOK, srcOK, dstOK, activityOK, userOK, copyOK bool
	var owned, srcLive, dstLive bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM documents WHERE id = $1),
		       EXISTS (SELECT 1 FROM matters WHERE id = $2),
		       EXISTS (SELECT 1 FROM matters WHERE id = $3),
		       EXISTS (SELECT 1 FROM transfer_activities WHERE id = $4),
		       EXISTS (SELECT 1 FROM users WHERE id = $5),
		       $6::uuid IS NULL OR EXISTS (SELECT 1 FROM documents WHERE id = $6),
		       EXISTS (SELECT 1 FROM documents WHERE id = $1 AND matter_id IN ($2, $3)),
		       EXISTS (SELECT 1 FROM matters WHERE id = $2 AND NOT is_deleted),
		       EXISTS (SELECT 1 FROM matters WHERE id = $3 AND NOT is_deleted)`,
		key.DocumentID, key.SourceMatterID, key.DestMatterID, key.ActivityID, key.UserID, uuidPtr(key.CopiedDocumentID),
	).Scan(&docOK, &srcOK, &dstOK, &activityOK, &userOK, &copyOK, &owned, &srcLive, &dstLive)
	if err != nil {
		return postgres.MapError(err, "transfer", key.DocumentID)
	}

	switch {
	case !docOK:
		return fmt.Errorf("document %s: %w", key.DocumentID, domain.ErrNotFound)
	case !srcOK:
		return fmt.Errorf("source matter %s: %w", key.SourceMatterID, domain.ErrNotFound)
	case !dstOK:
		return fmt.Errorf("destination matter %s: %w", key.DestMatterID, domain.ErrNotFound)
	case !activityOK:
		return fmt.Errorf("transfer activity %s: %w", key.ActivityID, domain.ErrNotFound)
	case !userOK:
		return fmt.Errorf("user %s: %w", key.UserID, domain.ErrNotFound)
	case !copyOK:
		return fmt.Errorf("copied document %s: %w", *key.CopiedDocumentID, domain.ErrNotFound)
	case !owned:
		return fmt.Errorf("document %s belongs to neither matter of the transfer: %w", key.DocumentID, domain.ErrConflict)
	case !srcLive:
		return fmt.Errorf("transfer from deleted matter %s: %w", key.SourceMatterID, domain.ErrConflict)
	case !dstLive:
		return fmt.Errorf("transfer into deleted matter %s: %w", key.DestMatterID, domain.ErrConflict)
	}

	from := postgres.Builder().
		Insert(tableFrom).
		Columns("matter_id", "document_id", "transfer_activity_id", "user_id", "created_at").
		Values(key.SourceMatterID, key.DocumentID, key.ActivityID, key.UserID, key.CreatedAt)
	to := postgres.Builder().
		Insert(tableTo).
		Columns("matter_id", "document_id", "transfer_activity_id", "user_id", "created_at", "copied_document_id").
		Values(key.DestMatterID, key.DocumentID, key.ActivityID, key.UserID, key.CreatedAt, uuidPtr(key.CopiedDocumentID))

	for _, ins := range []sq.InsertBuilder{from, to} {
		query, args, err := ins.ToSql()
		if err != nil {
			return fmt.Errorf("build transfer insert: %w", err)
		}
		if _, err := q.Exec(ctx, query, args...); err != nil {
			return postgres.MapError(err, "transfer", key.DocumentID)
		}
	}

	return nil
}

func validateKey(key domain.TransferKey) error {
	var errs []domain.FieldError
	if key.DocumentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "document_id", Message: "required"})
	}
	if key.SourceMatterID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "source_matter_id", Message: "required"})
	}
	if key.DestMatterID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "dest_matter_id", Message: "required"})
	} else if key.DestMatterID == key.SourceMatterID {
		errs = append(errs, domain.FieldError{Field: "dest_matter_id", Message: "must differ from source matter"})
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

// Query returns one side of the provenance ledger in ascending timestamp
// order. The query runs each time the sequence is ranged over.
func (r *Repo) Query(ctx context.Context, f domain.TransferFilter) iter.Seq2[domain.TransferRecord, error] {
	return func(yield func(domain.TransferRecord, error) bool) {
		if err := f.Validate(); err != nil {
			yield(domain.TransferRecord{}, err)
			return
		}

		table, copied := tableFrom, "NULL::uuid"
		if f.Direction == domain.DirectionTo {
			table, copied = tableTo, "t.copied_document_id"
		}

		b := postgres.Builder().
			Select("t.matter_id", "t.document_id", "t.transfer_activity_id", "a.activity",
				"t.user_id", "u.name", "t.created_at", copied).
			From(table + " t").
			Join("transfer_activities a ON a.id = t.transfer_activity_id").
			Join("users u ON u.id = t.user_id").
			OrderBy("t.created_at ASC", "t.document_id ASC", "t.matter_id ASC")
		if f.MatterID != uuid.Nil {
			b = b.Where(sq.Eq{"t.matter_id": f.MatterID})
		}
		if f.DocumentID != uuid.Nil {
			b = b.Where(sq.Eq{"t.document_id": f.DocumentID})
		}
		if !f.From.IsZero() {
			b = b.Where(sq.GtOrEq{"t.created_at": domain.LedgerTime(f.From)})
		}
		if !f.To.IsZero() {
			b = b.Where(sq.LtOrEq{"t.created_at": domain.LedgerTime(f.To)})
		}

		query, args, err := b.ToSql()
		if err != nil {
			yield(domain.TransferRecord{}, fmt.Errorf("build %s query: %w", table, err))
			return
		}

		rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
		if err != nil {
			yield(domain.TransferRecord{}, postgres.MapError(err, table, f.MatterID))
			return
		}
		defer rows.Close()

		for rows.Next() {
			rec := domain.TransferRecord{Direction: f.Direction}
			var (
				activity string
				copyID   pgtype.UUID
			)
			if err := rows.Scan(&rec.MatterID, &rec.DocumentID, &rec.ActivityID, &activity,
				&rec.UserID, &rec.UserName, &rec.CreatedAt, &copyID); err != nil {
				yield(domain.TransferRecord{}, fmt.Errorf("scan %s row: %w", table, err))
				return
			}
			rec.Activity = domain.Activity(activity)
			rec.CreatedAt = rec.CreatedAt.UTC()
			if copyID.Valid {
				id := uuid.UUID(copyID.Bytes)
				rec.CopiedDocumentID = &id
			}
			if !yield(rec, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(domain.TransferRecord{}, postgres.MapError(err, table, f.MatterID))
		}
	}
}

// LatestForDocument returns the newest transfer timestamp recorded for a
// document on either side, or the zero time if it was never transferred.
func (r *Repo) LatestForDocument(ctx context.Context, documentID uuid.UUID) (time.Time, error) {
	var latest *time.Time
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, `
		SELECT max(created_at) FROM (
			SELECT created_at FROM `+tableFrom+` WHERE document_id = $1
			UNION ALL
			SELECT created_at FROM `+tableTo+` WHERE document_id = $1
		) t`,
		documentID,
	).Scan(&latest)
	if err != nil {
		return time.Time{}, postgres.MapError(err, "transfer", documentID)
	}
	if latest == nil {
		return time.Time{}, nil
	}
	return latest.UTC(), nil
}

// uuidPtr converts a *uuid.UUID to pgtype.UUID (nil -> NULL).
func uuidPtr(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}
