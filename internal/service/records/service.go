// Package records is the write side of the ledger: every operation loads
// the subject under a row lock, validates the lifecycle transition,
// mutates the entity and appends the matching ledger rows in one
// transaction.
package records

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/LawUtilities/ADMS.API-sub014/internal/domain"
)

type matterRepo interface {
	Create(ctx context.Context, m *domain.Matter) (*domain.Matter, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Matter, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Matter, error)
	GetForShare(ctx context.Context, id uuid.UUID) (*domain.Matter, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.MatterStatus) error
	DocumentCounts(ctx context.Context, id uuid.UUID) (domain.MatterDocumentCounts, error)
}

type documentRepo interface {
	Create(ctx context.Context, d *domain.Document) (*domain.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	UpdateState(ctx context.Context, id uuid.UUID, state domain.DocumentState) error
	SetMatter(ctx context.Context, id, matterID uuid.UUID) error
	Rename(ctx context.Context, id uuid.UUID, fileName, extension string) error
}

type revisionRepo interface {
	Create(ctx context.Context, rev *domain.Revision) (*domain.Revision, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Revision, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Revision, error)
	Update(ctx context.Context, rev *domain.Revision) error
	NextNumber(ctx context.Context, documentID uuid.UUID) (int, error)
}

type userRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type ledgerRepo interface {
	Record(ctx context.Context, key domain.LedgerKey) error
	Latest(ctx context.Context, subject domain.SubjectType, subjectID uuid.UUID) (time.Time, error)
}

type transferRepo interface {
	Record(ctx context.Context, key domain.TransferKey) error
	LatestForDocument(ctx context.Context, documentID uuid.UUID) (time.Time, error)
}

type activityCatalog interface {
	Resolve(ctx context.Context, subject domain.SubjectType, activity domain.Activity) (uuid.UUID, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Repos groups the persistence dependencies of the Service.
type Repos struct {
	Matters    matterRepo
	Documents  documentRepo
	Revisions  revisionRepo
	Users      userRepo
	Ledger     ledgerRepo
	Transfers  transferRepo
	Activities activityCatalog
}

// Config controls transaction retries on lost lock races.
type Config struct {
	TxMaxRetries int
	TxRetryBase  time.Duration
}

// Option customises a Service.
type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator replaces uuid.New.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(s *Service) { s.newID = newID }
}

// Service is the single entry point for ledgered state changes.
type Service struct {
	matters    matterRepo
	documents  documentRepo
	revisions  revisionRepo
	users      userRepo
	ledger     ledgerRepo
	transfers  transferRepo
	activities activityCatalog
	tx         txManager
	cfg        Config
	log        *slog.Logger

	now   func() time.Time
	newID func() uuid.UUID
}

// NewService creates a new records service.
func NewService(log *slog.Logger, cfg Config, repos Repos, tx txManager, opts ...Option) *Service {
	s := &Service{
		matters:    repos.Matters,
		documents:  repos.Documents,
		revisions:  repos.Revisions,
		users:      repos.Users,
		ledger:     repos.Ledger,
		transfers:  repos.Transfers,
		activities: repos.Activities,
		tx:         tx,
		cfg:        cfg,
		log:        log.With("service", "records"),
		now:        time.Now,
		newID:      uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// inTx runs fn in a transaction and reruns the whole transaction when it
// lost a lock race.
func (s *Service) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.cfg.TxMaxRetries <= 0 {
		return s.tx.RunInTx(ctx, fn)
	}

	backoff := retry.WithMaxRetries(uint64(s.cfg.TxMaxRetries), retry.NewExponential(s.cfg.TxRetryBase))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := s.tx.RunInTx(ctx, fn)
		if errors.Is(err, domain.ErrConcurrencyConflict) {
			s.log.DebugContext(ctx, "retrying transaction", slog.String("error", err.Error()))
			return retry.RetryableError(err)
		}
		return err
	})
}

// requireUser fails with domain.ErrNotFound when the actor does not exist.
func (s *Service) requireUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return fmt.Errorf("get actor: %w", err)
	}
	return nil
}

// record appends one ledger row for subject, stamped strictly after the
// subject's latest row. Callers hold the subject's row lock.
func (s *Service) record(
	ctx context.Context,
	subject domain.SubjectType,
	subjectID uuid.UUID,
	activity domain.Activity,
	userID uuid.UUID,
) (time.Time, error) {
	latest, err := s.ledger.Latest(ctx, subject, subjectID)
	if err != nil {
		return time.Time{}, ledgerFailure(err)
	}
	at := domain.NextLedgerTime(s.now(), latest)

	if err := s.recordAt(ctx, subject, subjectID, activity, userID, at); err != nil {
		return time.Time{}, err
	}
	return at, nil
}

// recordAt is record with a caller-chosen timestamp, used when several
// rows of one operation must share it.
func (s *Service) recordAt(
	ctx context.Context,
	subject domain.SubjectType,
	subjectID uuid.UUID,
	activity domain.Activity,
	userID uuid.UUID,
	at time.Time,
) error {
	activityID, err := s.activities.Resolve(ctx, subject, activity)
	if err != nil {
		return ledgerFailure(err)
	}
	err = s.ledger.Record(ctx, domain.LedgerKey{
		Subject:    subject,
		SubjectID:  subjectID,
		ActivityID: activityID,
		UserID:     userID,
		CreatedAt:  at,
	})
	if err != nil {
		return ledgerFailure(err)
	}
	return nil
}

// ledgerFailure classifies a failed ledger write that follows an entity
// mutation. Lost races and cancellation stay retryable; anything else
// aborts the transaction as Fatal.
func ledgerFailure(err error) error {
	switch domain.KindOf(err) {
	case domain.KindConcurrencyConflict, domain.KindCanceled, domain.KindFatal:
		return fmt.Errorf("record ledger: %w", err)
	default:
		return fmt.Errorf("record ledger: %w: %w", domain.ErrFatal, err)
	}
}
