package records

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/LawUtilities/ADMS.API-sub014/internal/domain"
)

// CreateDocument adds a document to an active matter together with its
// first revision. Both get a CREATED entry.
func (s *Service) CreateDocument(ctx context.Context, input CreateDocumentInput) (*domain.Document, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var doc *domain.Document
	err := s.inTx(ctx, func(txCtx context.Context) error {
		if err := s.requireUser(txCtx, input.UserID); err != nil {
			return err
		}

		m, err := s.matters.GetForShare(txCtx, input.MatterID)
		if err != nil {
			return fmt.Errorf("get matter: %w", err)
		}
		if m.Status != domain.MatterStatusActive {
			return fmt.Errorf("add document to %s matter %s: %w", m.Status, m.ID, domain.ErrConflict)
		}

		contentRef := input.ContentRef
		if contentRef == uuid.Nil {
			contentRef = s.newID()
		}

		created, err := s.createDocument(txCtx, domain.Document{
			FileName:   domain.CollapseSpace(input.FileName),
			Extension:  input.Extension,
			MatterID:   m.ID,
			ContentRef: contentRef,
		}, input.UserID)
		if err != nil {
			return err
		}

		doc = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "document created",
		slog.String("user_id", input.UserID.String()),
		slog.String("matter_id", doc.MatterID.String()),
		slog.String("document_id", doc.ID.String()),
	)

	return doc, nil
}

// createDocument inserts an active document with revision 1 and records
// both CREATED entries. It runs inside the caller's transaction.
func (s *Service) createDocument(ctx context.Context, tmpl domain.Document, userID uuid.UUID) (*domain.Document, error) {
	tmpl.ID = s.newID()
	tmpl.IsCheckedOut = false
	tmpl.IsDeleted = false
	tmpl.CreatedAt = domain.LedgerTime(s.now())

	doc, err := s.documents.Create(ctx, &tmpl)
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}

	at, err := s.record(ctx, domain.SubjectDocument, doc.ID, domain.ActivityCreated, userID)
	if err != nil {
		return nil, err
	}

	rev, err := s.revisions.Create(ctx, &domain.Revision{
		ID:               s.newID(),
		DocumentID:       doc.ID,
		Number:           domain.FirstRevisionNumber,
		CreationDate:     at,
		ModificationDate: at,
	})
	if err != nil {
		return nil, fmt.Errorf("create first revision: %w", err)
	}

	if err := s.recordAt(ctx, domain.SubjectRevision, rev.ID, domain.ActivityCreated, userID, at); err != nil {
		return nil, err
	}

	return doc, nil
}

// CheckOutDocument takes exclusive custody of an active document.
func (s *Service) CheckOutDocument(ctx context.Context, input DocumentActionInput) error {
	return s.transitionDocument(ctx, input, domain.ActivityCheckedOut,
		func(m *domain.Matter, state domain.DocumentState) (domain.DocumentState, error) {
			if m.Status != domain.MatterStatusActive {
				return state, fmt.Errorf("check out document of %s matter: %w", m.Status, domain.ErrConflict)
			}
			return state.CheckOut()
		})
}

// CheckInDocument releases custody of a checked-out document.
func (s *Service) CheckInDocument(ctx context.Context, input DocumentActionInput) error {
	return s.transitionDocument(ctx, input, domain.ActivityCheckedIn,
		func(_ *domain.Matter, state domain.DocumentState) (domain.DocumentState, error) {
			return state.CheckIn()
		})
}

// DeleteDocument soft-deletes an active document. A checked-out document
// must be checked in first.
func (s *Service) DeleteDocument(ctx context.Context, input DocumentActionInput) error {
	return s.transitionDocument(ctx, input, domain.ActivityDeleted,
		func(_ *domain.Matter, state domain.DocumentState) (domain.DocumentState, error) {
			return state.Delete()
		})
}

// RestoreDocument brings a deleted document back. The owning matter must
// not be deleted, so that a deleted matter never owns a live document.
func (s *Service) RestoreDocument(ctx context.Context, input DocumentActionInput) error {
	return s.transitionDocument(ctx, input, domain.ActivityRestored,
		func(m *domain.Matter, state domain.DocumentState) (domain.DocumentState, error) {
			if m.Status.IsDeleted() {
				return state, fmt.Errorf("restore document of %s matter: %w", m.Status, domain.ErrConflict)
			}
			return state.Restore()
		})
}

// SaveDocument updates the file name and extension of a live document.
func (s *Service) SaveDocument(ctx context.Context, input SaveDocumentInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	err := s.inTx(ctx, func(txCtx context.Context) error {
		if err := s.requireUser(txCtx, input.UserID); err != nil {
			return err
		}

		doc, _, err := s.lockDocument(txCtx, input.DocumentID)
		if err != nil {
			return err
		}
		if doc.IsDeleted {
			return fmt.Errorf("save deleted document %s: %w", doc.ID, domain.ErrConflict)
		}

		if err := s.documents.Rename(txCtx, doc.ID, domain.CollapseSpace(input.FileName), input.Extension); err != nil {
			return fmt.Errorf("rename document: %w", err)
		}

		_, err = s.record(txCtx, domain.SubjectDocument, doc.ID, domain.ActivitySaved, input.UserID)
		return err
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "document saved",
		slog.String("user_id", input.UserID.String()),
		slog.String("document_id", input.DocumentID.String()),
	)

	return nil
}

type documentStep func(*domain.Matter, domain.DocumentState) (domain.DocumentState, error)

func (s *Service) transitionDocument(ctx context.Context, input DocumentActionInput, activity domain.Activity, step documentStep) error {
	if err := input.Validate(); err != nil {
		return err
	}

	var from, to domain.DocumentState
	err := s.inTx(ctx, func(txCtx context.Context) error {
		if err := s.requireUser(txCtx, input.UserID); err != nil {
			return err
		}

		doc, matter, err := s.lockDocument(txCtx, input.DocumentID)
		if err != nil {
			return err
		}

		next, err := step(matter, doc.State())
		if err != nil {
			return err
		}
		if err := s.documents.UpdateState(txCtx, doc.ID, next); err != nil {
			return fmt.Errorf("update document state: %w", err)
		}

		if _, err := s.record(txCtx, domain.SubjectDocument, doc.ID, activity, input.UserID); err != nil {
			return err
		}

		from, to = doc.State(), next
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "document state changed",
		slog.String("user_id", input.UserID.String()),
		slog.String("document_id", input.DocumentID.String()),
		slog.String("activity", activity.String()),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
	)

	return nil
}

// lockDocument takes a shared lock on the owning matter and an exclusive
// lock on the document, in that order. A document that changed owner
// between the two reads is reported as a lost race.
func (s *Service) lockDocument(ctx context.Context, documentID uuid.UUID) (*domain.Document, *domain.Matter, error) {
	doc, err := s.documents.GetByID(ctx, documentID)
	if err != nil {
		return nil, nil, fmt.Errorf("get document: %w", err)
	}

	matter, err := s.matters.GetForShare(ctx, doc.MatterID)
	if err != nil {
		return nil, nil, fmt.Errorf("get owning matter: %w", err)
	}

	doc, err = s.documents.GetForUpdate(ctx, documentID)
	if err != nil {
		return nil, nil, fmt.Errorf("lock document: %w", err)
	}
	if doc.MatterID != matter.ID {
		return nil, nil, fmt.Errorf("document %s moved concurrently: %w", documentID, domain.ErrConcurrencyConflict)
	}

	return doc, matter, nil
}
