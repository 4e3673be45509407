// Package history reconstructs audit trails from the append-only ledgers.
// It never mutates state.
package history

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"

	"github.com/google/uuid"

	"github.com/LawUtilities/ADMS.API-sub014/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type ledgerRepo interface {
	History(ctx context.Context, f domain.HistoryFilter) iter.Seq2[domain.LedgerEntry, error]
}

type transferRepo interface {
	Query(ctx context.Context, f domain.TransferFilter) iter.Seq2[domain.TransferRecord, error]
}

type matterRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Matter, error)
}

type documentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Document, error)
}

type revisionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Revision, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service answers history and provenance queries.
type Service struct {
	log       *slog.Logger
	ledger    ledgerRepo
	transfers transferRepo
	matters   matterRepo
	documents documentRepo
	revisions revisionRepo
	tx        txManager
}

// NewService creates a new history service.
func NewService(
	log *slog.Logger,
	ledger ledgerRepo,
	transfers transferRepo,
	matters matterRepo,
	documents documentRepo,
	revisions revisionRepo,
	tx txManager,
) *Service {
	return &Service{
		log:       log.With("service", "history"),
		ledger:    ledger,
		transfers: transfers,
		matters:   matters,
		documents: documents,
		revisions: revisions,
		tx:        tx,
	}
}

// GetSubjectHistory returns the full ledger of whichever matter, document
// or revision has the given id, ascending by timestamp. Soft-deleted
// subjects keep their history.
func (s *Service) GetSubjectHistory(ctx context.Context, subjectID uuid.UUID) (iter.Seq2[domain.LedgerEntry, error], error) {
	if subjectID == uuid.Nil {
		return nil, domain.NewValidationError("subject_id", "required")
	}

	subject, err := s.resolveSubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	return s.ledger.History(ctx, domain.HistoryFilter{Subject: subject, SubjectID: subjectID}), nil
}

// GetHistory returns a subject's ledger restricted to an inclusive date
// range.
func (s *Service) GetHistory(ctx context.Context, input HistoryQuery) (iter.Seq2[domain.LedgerEntry, error], error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.requireSubject(ctx, input.Subject, input.SubjectID); err != nil {
		return nil, err
	}

	return s.ledger.History(ctx, domain.HistoryFilter{
		Subject:   input.Subject,
		SubjectID: input.SubjectID,
		From:      input.From,
		To:        input.To,
	}), nil
}

// GetExtendedAudits returns one side of the transfer provenance ledger.
// Ids that do not resolve to an existing matter or document are rejected
// as invalid arguments.
func (s *Service) GetExtendedAudits(ctx context.Context, input ExtendedAuditQuery) (iter.Seq2[domain.TransferRecord, error], error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var errs []domain.FieldError
	if input.MatterID != uuid.Nil {
		if _, err := s.matters.GetByID(ctx, input.MatterID); err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("get matter: %w", err)
			}
			errs = append(errs, domain.FieldError{Field: "matter_id", Message: "matter does not exist"})
		}
	}
	if input.DocumentID != uuid.Nil {
		if _, err := s.documents.GetByID(ctx, input.DocumentID); err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("get document: %w", err)
			}
			errs = append(errs, domain.FieldError{Field: "document_id", Message: "document does not exist"})
		}
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	return s.transfers.Query(ctx, input.filter()), nil
}

// VerifyCustody replays the document's custody events and compares the
// result with its stored checkout flag. A mismatch means the ledger and
// the entity diverged and is reported as domain.ErrFatal.
func (s *Service) VerifyCustody(ctx context.Context, documentID uuid.UUID) error {
	if documentID == uuid.Nil {
		return domain.NewValidationError("document_id", "required")
	}

	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		doc, err := s.documents.GetForUpdate(txCtx, documentID)
		if err != nil {
			return fmt.Errorf("lock document: %w", err)
		}

		var entries []domain.LedgerEntry
		for e, err := range s.ledger.History(txCtx, domain.HistoryFilter{Subject: domain.SubjectDocument, SubjectID: doc.ID}) {
			if err != nil {
				return fmt.Errorf("read document history: %w", err)
			}
			entries = append(entries, e)
		}

		if replayed := domain.CheckedOutFromHistory(entries); replayed != doc.IsCheckedOut {
			s.log.ErrorContext(ctx, "custody mismatch",
				slog.String("document_id", doc.ID.String()),
				slog.Bool("is_checked_out", doc.IsCheckedOut),
				slog.Bool("ledger_checked_out", replayed),
			)
			return fmt.Errorf("document %s: is_checked_out=%t, ledger says %t: %w",
				doc.ID, doc.IsCheckedOut, replayed, domain.ErrFatal)
		}
		return nil
	})
}

// resolveSubject finds which entity table holds id.
func (s *Service) resolveSubject(ctx context.Context, id uuid.UUID) (domain.SubjectType, error) {
	for _, subject := range []domain.SubjectType{domain.SubjectMatter, domain.SubjectDocument, domain.SubjectRevision} {
		err := s.requireSubject(ctx, subject, id)
		if err == nil {
			return subject, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return "", err
		}
	}
	return "", fmt.Errorf("subject %s: %w", id, domain.ErrNotFound)
}

func (s *Service) requireSubject(ctx context.Context, subject domain.SubjectType, id uuid.UUID) error {
	var err error
	switch subject {
	case domain.SubjectMatter:
		_, err = s.matters.GetByID(ctx, id)
	case domain.SubjectDocument:
		_, err = s.documents.GetByID(ctx, id)
	case domain.SubjectRevision:
		_, err = s.revisions.GetByID(ctx, id)
	default:
		return domain.NewValidationError("subject_type", "must be MATTER, DOCUMENT or REVISION")
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", subject, err)
	}
	return nil
}
