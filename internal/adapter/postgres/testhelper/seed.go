package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/LawUtilities/ADMS.API-sub014/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return domain.LedgerTime(time.Now())
}

// SeedUser creates an actor.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	user := domain.User{
		ID:        uuid.New(),
		Name:      "Test User " + uniqueSuffix(),
		CreatedAt: now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, name, created_at) VALUES ($1, $2, $3)`,
		user.ID, user.Name, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedMatter creates a matter in the given status.
func SeedMatter(t *testing.T, pool *pgxpool.Pool, status domain.MatterStatus) domain.Matter {
	t.Helper()

	m := domain.Matter{
		ID:           uuid.New(),
		Description:  "Matter " + uniqueSuffix(),
		Status:       status,
		CreationDate: now(),
	}
	archived, deleted := status.Flags()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO matters (id, description, is_archived, is_deleted, creation_date)
		 VALUES ($1, $2, $3, $4, $5)`,
		m.ID, m.Description, archived, deleted, m.CreationDate,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMatter: %v", err)
	}

	return m
}

// SeedDocument creates an active document owned by matterID.
func SeedDocument(t *testing.T, pool *pgxpool.Pool, matterID uuid.UUID) domain.Document {
	t.Helper()

	d := domain.Document{
		ID:         uuid.New(),
		FileName:   "brief-" + uniqueSuffix(),
		Extension:  "docx",
		MatterID:   matterID,
		ContentRef: uuid.New(),
		CreatedAt:  now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO documents (id, file_name, extension, matter_id, is_checked_out, is_deleted, content_ref, created_at)
		 VALUES ($1, $2, $3, $4, false, false, $5, $6)`,
		d.ID, d.FileName, d.Extension, d.MatterID, d.ContentRef, d.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDocument: %v", err)
	}

	return d
}

// SeedRevision creates revision number n of documentID.
func SeedRevision(t *testing.T, pool *pgxpool.Pool, documentID uuid.UUID, n int) domain.Revision {
	t.Helper()

	ts := now()
	r := domain.Revision{
		ID:               uuid.New(),
		DocumentID:       documentID,
		Number:           n,
		CreationDate:     ts,
		ModificationDate: ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO revisions (id, document_id, revision_number, creation_date, modification_date, is_deleted)
		 VALUES ($1, $2, $3, $4, $5, false)`,
		r.ID, r.DocumentID, r.Number, r.CreationDate, r.ModificationDate,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRevision: %v", err)
	}

	return r
}

// SetDocumentFlags overwrites the lifecycle flags of a document directly.
func SetDocumentFlags(t *testing.T, pool *pgxpool.Pool, documentID uuid.UUID, checkedOut, deleted bool) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`UPDATE documents SET is_checked_out = $2, is_deleted = $3 WHERE id = $1`,
		documentID, checkedOut, deleted,
	)
	if err != nil {
		t.Fatalf("testhelper: SetDocumentFlags: %v", err)
	}
}

// ActivityID returns the seeded catalog id of (subject, activity).
func ActivityID(t *testing.T, pool *pgxpool.Pool, subject domain.SubjectType, activity domain.Activity) uuid.UUID {
	t.Helper()

	table := map[domain.SubjectType]string{
		domain.SubjectMatter:   "matter_activities",
		domain.SubjectDocument: "document_activities",
		domain.SubjectRevision: "revision_activities",
		domain.SubjectTransfer: "transfer_activities",
	}[subject]
	if table == "" {
		t.Fatalf("testhelper: ActivityID: unknown subject %q", subject)
	}

	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`SELECT id FROM `+table+` WHERE activity = $1`, string(activity),
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: ActivityID %s/%s: %v", subject, activity, err)
	}
	return id
}
