package domain

import (
	"time"

	"github.com/google/uuid"
)

// Matter is a legal case or client engagement that owns documents.
type Matter struct {
	ID           uuid.UUID
	Description  string
	Status       MatterStatus
	CreationDate time.Time
}

// MatterDocumentCounts summarises the documents a matter owns, as needed
// by the archive and delete guards.
type MatterDocumentCounts struct {
	// Live counts documents that are not deleted.
	Live int
	// CheckedOut counts documents currently checked out.
	CheckedOut int
}
