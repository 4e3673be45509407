package records

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/LawUtilities/ADMS.API-sub014/internal/domain"
)

// CreateMatter opens a matter and records its CREATED entry.
func (s *Service) CreateMatter(ctx context.Context, input CreateMatterInput) (*domain.Matter, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var matter *domain.Matter
	err := s.inTx(ctx, func(txCtx context.Context) error {
		if err := s.requireUser(txCtx, input.UserID); err != nil {
			return err
		}

		created, err := s.matters.Create(txCtx, &domain.Matter{
			ID:           s.newID(),
			Description:  domain.CollapseSpace(input.Description),
			Status:       domain.MatterStatusActive,
			CreationDate: domain.LedgerTime(s.now()),
		})
		if err != nil {
			return fmt.Errorf("create matter: %w", err)
		}

		if _, err := s.record(txCtx, domain.SubjectMatter, created.ID, domain.ActivityCreated, input.UserID); err != nil {
			return err
		}

		matter = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "matter created",
		slog.String("user_id", input.UserID.String()),
		slog.String("matter_id", matter.ID.String()),
	)

	return matter, nil
}

// ViewMatter returns the matter and records that the user viewed it.
// Viewing is allowed in every status.
func (s *Service) ViewMatter(ctx context.Context, input MatterActionInput) (*domain.Matter, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var matter *domain.Matter
	err := s.inTx(ctx, func(txCtx context.Context) error {
		if err := s.requireUser(txCtx, input.UserID); err != nil {
			return err
		}

		m, err := s.matters.GetForUpdate(txCtx, input.MatterID)
		if err != nil {
			return fmt.Errorf("get matter: %w", err)
		}

		if _, err := s.record(txCtx, domain.SubjectMatter, m.ID, domain.ActivityViewed, input.UserID); err != nil {
			return err
		}

		matter = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	return matter, nil
}

// ArchiveMatter archives an active matter. Fails with domain.ErrConflict
// while any owned document is checked out.
func (s *Service) ArchiveMatter(ctx context.Context, input MatterActionInput) error {
	return s.transitionMatter(ctx, input, domain.ActivityArchived,
		func(status domain.MatterStatus, docs domain.MatterDocumentCounts) (domain.MatterStatus, error) {
			return status.Archive(docs)
		})
}

// UnarchiveMatter returns an archived matter to active.
func (s *Service) UnarchiveMatter(ctx context.Context, input MatterActionInput) error {
	return s.transitionMatter(ctx, input, domain.ActivityUnarchived,
		func(status domain.MatterStatus, _ domain.MatterDocumentCounts) (domain.MatterStatus, error) {
			return status.Unarchive()
		})
}

// DeleteMatter soft-deletes a matter. Fails with domain.ErrConflict while
// the matter owns a live or checked-out document.
func (s *Service) DeleteMatter(ctx context.Context, input MatterActionInput) error {
	return s.transitionMatter(ctx, input, domain.ActivityDeleted,
		func(status domain.MatterStatus, docs domain.MatterDocumentCounts) (domain.MatterStatus, error) {
			return status.Delete(docs)
		})
}

// RestoreMatter clears a matter's deleted flag. An ArchivedAndDeleted
// matter returns to Archived, or to Active when input.Unarchive is set;
// the latter writes RESTORED followed by UNARCHIVED.
func (s *Service) RestoreMatter(ctx context.Context, input RestoreMatterInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	var from, to domain.MatterStatus
	err := s.inTx(ctx, func(txCtx context.Context) error {
		if err := s.requireUser(txCtx, input.UserID); err != nil {
			return err
		}

		m, err := s.matters.GetForUpdate(txCtx, input.MatterID)
		if err != nil {
			return fmt.Errorf("get matter: %w", err)
		}

		next, err := m.Status.Restore(input.Unarchive)
		if err != nil {
			return err
		}
		if err := s.matters.UpdateStatus(txCtx, m.ID, next); err != nil {
			return fmt.Errorf("update matter status: %w", err)
		}

		if _, err := s.record(txCtx, domain.SubjectMatter, m.ID, domain.ActivityRestored, input.UserID); err != nil {
			return err
		}
		if m.Status.IsArchived() && !next.IsArchived() {
			if _, err := s.record(txCtx, domain.SubjectMatter, m.ID, domain.ActivityUnarchived, input.UserID); err != nil {
				return err
			}
		}

		from, to = m.Status, next
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "matter restored",
		slog.String("user_id", input.UserID.String()),
		slog.String("matter_id", input.MatterID.String()),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
	)

	return nil
}

type matterStep func(domain.MatterStatus, domain.MatterDocumentCounts) (domain.MatterStatus, error)

func (s *Service) transitionMatter(ctx context.Context, input MatterActionInput, activity domain.Activity, step matterStep) error {
	if err := input.Validate(); err != nil {
		return err
	}

	var from, to domain.MatterStatus
	err := s.inTx(ctx, func(txCtx context.Context) error {
		if err := s.requireUser(txCtx, input.UserID); err != nil {
			return err
		}

		m, err := s.matters.GetForUpdate(txCtx, input.MatterID)
		if err != nil {
			return fmt.Errorf("get matter: %w", err)
		}

		docs, err := s.matters.DocumentCounts(txCtx, m.ID)
		if err != nil {
			return fmt.Errorf("count matter documents: %w", err)
		}

		next, err := step(m.Status, docs)
		if err != nil {
			return err
		}
		if err := s.matters.UpdateStatus(txCtx, m.ID, next); err != nil {
			return fmt.Errorf("update matter status: %w", err)
		}

		if _, err := s.record(txCtx, domain.SubjectMatter, m.ID, activity, input.UserID); err != nil {
			return err
		}

		from, to = m.Status, next
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "matter status changed",
		slog.String("user_id", input.UserID.String()),
		slog.String("matter_id", input.MatterID.String()),
		slog.String("activity", activity.String()),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
	)

	return nil
}
