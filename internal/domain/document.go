package domain

import (
	"time"

	"github.com/google/uuid"
)

// Document is a file record owned by exactly one matter at a time.
type Document struct {
	ID           uuid.UUID
	FileName     string
	Extension    string
	MatterID     uuid.UUID
	IsCheckedOut bool
	IsDeleted    bool
	// ContentRef points at the stored bytes. Copies share it.
	ContentRef uuid.UUID
	CreatedAt  time.Time
}

// State derives the lifecycle state from the stored flags.
func (d *Document) State() DocumentState {
	switch {
	case d.IsDeleted:
		return DocumentStateDeleted
	case d.IsCheckedOut:
		return DocumentStateCheckedOut
	default:
		return DocumentStateActive
	}
}

// Apply stores the flags that represent s.
func (d *Document) Apply(s DocumentState) {
	d.IsDeleted = s == DocumentStateDeleted
	d.IsCheckedOut = s == DocumentStateCheckedOut
}
