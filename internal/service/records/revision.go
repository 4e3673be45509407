package records

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/LawUtilities/ADMS.API-sub014/internal/domain"
)

// CreateRevision adds a revision to a live document and returns its id.
// With input.Number zero the next free number is used; an explicit number
// already taken fails with domain.ErrConflict.
func (s *Service) CreateRevision(ctx context.Context, input CreateRevisionInput) (uuid.UUID, error) {
	if err := input.Validate(); err != nil {
		return uuid.Nil, err
	}

	var rev *domain.Revision
	err := s.inTx(ctx, func(txCtx context.Context) error {
		if err := s.requireUser(txCtx, input.UserID); err != nil {
			return err
		}

		doc, _, err := s.lockDocument(txCtx, input.DocumentID)
		if err != nil {
			return err
		}
		if doc.IsDeleted {
			return fmt.Errorf("add revision to deleted document %s: %w", doc.ID, domain.ErrConflict)
		}

		number := input.Number
		if number == 0 {
			if number, err = s.revisions.NextNumber(txCtx, doc.ID); err != nil {
				return fmt.Errorf("next revision number: %w", err)
			}
		}
		if err := domain.ValidateRevisionNumber(number); err != nil {
			return err
		}

		now := domain.LedgerTime(s.now())
		created, err := s.revisions.Create(txCtx, &domain.Revision{
			ID:               s.newID(),
			DocumentID:       doc.ID,
			Number:           number,
			CreationDate:     now,
			ModificationDate: now,
		})
		if err != nil {
			return fmt.Errorf("create revision %d: %w", number, err)
		}

		if _, err := s.record(txCtx, domain.SubjectRevision, created.ID, domain.ActivityCreated, input.UserID); err != nil {
			return err
		}

		rev = created
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	s.log.InfoContext(ctx, "revision created",
		slog.String("user_id", input.UserID.String()),
		slog.String("document_id", input.DocumentID.String()),
		slog.String("revision_id", rev.ID.String()),
		slog.Int("revision_number", rev.Number),
	)

	return rev.ID, nil
}

// SaveRevision records an edit of a live revision and moves its
// modification date forward.
func (s *Service) SaveRevision(ctx context.Context, input RevisionActionInput) error {
	return s.transitionRevision(ctx, input, domain.ActivitySaved, func(rev *domain.Revision) error {
		if rev.IsDeleted {
			return fmt.Errorf("save deleted revision %s: %w", rev.ID, domain.ErrConflict)
		}
		rev.Touch(domain.LedgerTime(s.now()))
		return nil
	})
}

// DeleteRevision soft-deletes a revision.
func (s *Service) DeleteRevision(ctx context.Context, input RevisionActionInput) error {
	return s.transitionRevision(ctx, input, domain.ActivityDeleted, (*domain.Revision).Delete)
}

// RestoreRevision clears a revision's deleted flag.
func (s *Service) RestoreRevision(ctx context.Context, input RevisionActionInput) error {
	return s.transitionRevision(ctx, input, domain.ActivityRestored, (*domain.Revision).Restore)
}

func (s *Service) transitionRevision(
	ctx context.Context,
	input RevisionActionInput,
	activity domain.Activity,
	step func(*domain.Revision) error,
) error {
	if err := input.Validate(); err != nil {
		return err
	}

	err := s.inTx(ctx, func(txCtx context.Context) error {
		if err := s.requireUser(txCtx, input.UserID); err != nil {
			return err
		}

		current, err := s.revisions.GetByID(txCtx, input.RevisionID)
		if err != nil {
			return fmt.Errorf("get revision: %w", err)
		}
		doc, _, err := s.lockDocument(txCtx, current.DocumentID)
		if err != nil {
			return err
		}
		if doc.IsDeleted {
			return fmt.Errorf("change revision of deleted document %s: %w", doc.ID, domain.ErrConflict)
		}

		rev, err := s.revisions.GetForUpdate(txCtx, input.RevisionID)
		if err != nil {
			return fmt.Errorf("lock revision: %w", err)
		}
		if err := step(rev); err != nil {
			return err
		}
		if err := s.revisions.Update(txCtx, rev); err != nil {
			return fmt.Errorf("update revision: %w", err)
		}

		_, err = s.record(txCtx, domain.SubjectRevision, rev.ID, activity, input.UserID)
		return err
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "revision changed",
		slog.String("user_id", input.UserID.String()),
		slog.String("revision_id", input.RevisionID.String()),
		slog.String("activity", activity.String()),
	)

	return nil
}
