package records

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/LawUtilities/ADMS.API-sub014/internal/domain"
)

// MoveDocument reassigns a document to another matter and records the
// From/To provenance pair. A checked-out document cannot be moved.
func (s *Service) MoveDocument(ctx context.Context, input TransferInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	var source uuid.UUID
	err := s.inTx(ctx, func(txCtx context.Context) error {
		doc, err := s.lockTransfer(txCtx, input)
		if err != nil {
			return err
		}
		if doc.IsCheckedOut {
			return fmt.Errorf("move checked-out document %s: %w", doc.ID, domain.ErrConflict)
		}

		if err := s.documents.SetMatter(txCtx, doc.ID, input.DestMatterID); err != nil {
			return fmt.Errorf("reassign document: %w", err)
		}

		at, err := s.transferTime(txCtx, doc.ID)
		if err != nil {
			return err
		}
		if err := s.recordTransfer(txCtx, doc, input, domain.ActivityMoved, at, nil); err != nil {
			return err
		}

		source = doc.MatterID
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "document moved",
		slog.String("user_id", input.UserID.String()),
		slog.String("document_id", input.DocumentID.String()),
		slog.String("source_matter_id", source.String()),
		slog.String("dest_matter_id", input.DestMatterID.String()),
	)

	return nil
}

// CopyDocument creates a new document under the destination matter that
// shares the original's content, starts at revision 1 and gets its own
// CREATED entries. The provenance pair references the original document
// and the To row carries the copy's id. Custody of the original is not
// touched, so checked-out documents can be copied.
func (s *Service) CopyDocument(ctx context.Context, input TransferInput) (uuid.UUID, error) {
	if err := input.Validate(); err != nil {
		return uuid.Nil, err
	}

	var copied *domain.Document
	err := s.inTx(ctx, func(txCtx context.Context) error {
		doc, err := s.lockTransfer(txCtx, input)
		if err != nil {
			return err
		}
		if doc.IsDeleted {
			return fmt.Errorf("copy deleted document %s: %w", doc.ID, domain.ErrConflict)
		}

		created, err := s.createDocument(txCtx, domain.Document{
			FileName:   doc.FileName,
			Extension:  doc.Extension,
			MatterID:   input.DestMatterID,
			ContentRef: doc.ContentRef,
		}, input.UserID)
		if err != nil {
			return err
		}

		at, err := s.transferTime(txCtx, doc.ID)
		if err != nil {
			return err
		}
		if err := s.recordTransfer(txCtx, doc, input, domain.ActivityCopied, at, &created.ID); err != nil {
			return err
		}

		copied = created
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	s.log.InfoContext(ctx, "document copied",
		slog.String("user_id", input.UserID.String()),
		slog.String("document_id", input.DocumentID.String()),
		slog.String("copy_id", copied.ID.String()),
		slog.String("dest_matter_id", input.DestMatterID.String()),
	)

	return copied.ID, nil
}

// lockTransfer locks the source and destination matters in ascending id
// order, then the document, and checks the transfer preconditions.
func (s *Service) lockTransfer(ctx context.Context, input TransferInput) (*domain.Document, error) {
	if err := s.requireUser(ctx, input.UserID); err != nil {
		return nil, err
	}

	doc, err := s.documents.GetByID(ctx, input.DocumentID)
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	if doc.MatterID == input.DestMatterID {
		return nil, domain.NewValidationError("dest_matter_id", "must differ from the document's matter")
	}

	for _, id := range lockOrder(doc.MatterID, input.DestMatterID) {
		m, err := s.matters.GetForUpdate(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("lock matter %s: %w", id, err)
		}
		if m.Status.IsDeleted() {
			return nil, fmt.Errorf("transfer involving deleted matter %s: %w", m.ID, domain.ErrConflict)
		}
	}

	locked, err := s.documents.GetForUpdate(ctx, input.DocumentID)
	if err != nil {
		return nil, fmt.Errorf("lock document: %w", err)
	}
	if locked.MatterID != doc.MatterID {
		return nil, fmt.Errorf("document %s moved concurrently: %w", doc.ID, domain.ErrConcurrencyConflict)
	}

	return locked, nil
}

// lockOrder returns a and b sorted by their byte representation.
func lockOrder(a, b uuid.UUID) []uuid.UUID {
	if bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}
	return []uuid.UUID{a, b}
}

// transferTime stamps a transfer strictly after the document's previous
// transfer.
func (s *Service) transferTime(ctx context.Context, documentID uuid.UUID) (time.Time, error) {
	latest, err := s.transfers.LatestForDocument(ctx, documentID)
	if err != nil {
		return time.Time{}, ledgerFailure(err)
	}
	return domain.NextLedgerTime(s.now(), latest), nil
}

func (s *Service) recordTransfer(
	ctx context.Context,
	doc *domain.Document,
	input TransferInput,
	activity domain.Activity,
	at time.Time,
	copyID *uuid.UUID,
) error {
	activityID, err := s.activities.Resolve(ctx, domain.SubjectTransfer, activity)
	if err != nil {
		return ledgerFailure(err)
	}

	err = s.transfers.Record(ctx, domain.TransferKey{
		DocumentID:       doc.ID,
		SourceMatterID:   doc.MatterID,
		DestMatterID:     input.DestMatterID,
		ActivityID:       activityID,
		UserID:           input.UserID,
		CreatedAt:        at,
		CopiedDocumentID: copyID,
	})
	if err != nil {
		return ledgerFailure(err)
	}
	return nil
}
