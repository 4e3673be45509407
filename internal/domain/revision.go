package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Revision is a numbered version of a document's content.
type Revision struct {
	ID               uuid.UUID
	DocumentID       uuid.UUID
	Number           int
	CreationDate     time.Time
	ModificationDate time.Time
	IsDeleted        bool
}

// FirstRevisionNumber is the number given to a new or copied document's
// initial revision.
const FirstRevisionNumber = 1

// ValidateRevisionNumber rejects non-positive numbers.
func ValidateRevisionNumber(n int) error {
	if n <= 0 {
		return NewValidationError("revision_number", "must be positive")
	}
	return nil
}

// Touch moves the modification date forward to now, never below the
// creation date.
func (r *Revision) Touch(now time.Time) {
	if now.Before(r.CreationDate) {
		now = r.CreationDate
	}
	r.ModificationDate = now
}

// Delete soft-deletes the revision.
func (r *Revision) Delete() error {
	if r.IsDeleted {
		return fmt.Errorf("revision %s already deleted: %w", r.ID, ErrInvalidTransition)
	}
	r.IsDeleted = true
	return nil
}

// Restore clears the soft-delete flag.
func (r *Revision) Restore() error {
	if !r.IsDeleted {
		return fmt.Errorf("revision %s is not deleted: %w", r.ID, ErrInvalidTransition)
	}
	r.IsDeleted = false
	return nil
}
