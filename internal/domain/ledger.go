package domain

import (
	"time"

	"github.com/google/uuid"
)

// LedgerPrecision is the resolution at which ledger timestamps are stored
// and compared.
const LedgerPrecision = time.Microsecond

// LedgerTime normalises t to the stored resolution in UTC.
func LedgerTime(t time.Time) time.Time {
	return t.UTC().Truncate(LedgerPrecision)
}

// NextLedgerTime returns a timestamp strictly after latest and no earlier
// than now. A zero latest means the subject has no history yet.
func NextLedgerTime(now, latest time.Time) time.Time {
	now = LedgerTime(now)
	if latest.IsZero() || now.After(latest) {
		return now
	}
	return LedgerTime(latest).Add(LedgerPrecision)
}

// LedgerKey is the composite natural key of a single-subject ledger row.
// The tuple is the row's identity; there is no synthetic id.
type LedgerKey struct {
	Subject    SubjectType
	SubjectID  uuid.UUID
	ActivityID uuid.UUID
	UserID     uuid.UUID
	CreatedAt  time.Time
}

// LedgerEntry is a ledger row joined with its activity name and actor.
type LedgerEntry struct {
	LedgerKey
	Activity Activity
	UserName string
}

// TransferKey identifies one logical transfer. It is written as one From
// row keyed to SourceMatterID and one To row keyed to DestMatterID.
type TransferKey struct {
	DocumentID     uuid.UUID
	SourceMatterID uuid.UUID
	DestMatterID   uuid.UUID
	ActivityID     uuid.UUID
	UserID         uuid.UUID
	CreatedAt      time.Time
	// CopiedDocumentID is set for COPIED transfers and stored on the To row.
	CopiedDocumentID *uuid.UUID
}

// TransferRecord is one side of a transfer as read back from the ledger.
type TransferRecord struct {
	Direction        Direction
	MatterID         uuid.UUID
	DocumentID       uuid.UUID
	ActivityID       uuid.UUID
	Activity         Activity
	UserID           uuid.UUID
	UserName         string
	CreatedAt        time.Time
	CopiedDocumentID *uuid.UUID
}

// HistoryFilter scopes a read of one subject's ledger. Zero From/To leave
// that side of the range open; both bounds are inclusive.
type HistoryFilter struct {
	Subject   SubjectType
	SubjectID uuid.UUID
	From      time.Time
	To        time.Time
}

// TransferFilter scopes a directional read of the provenance ledger. At
// least one of MatterID and DocumentID must be set.
type TransferFilter struct {
	MatterID   uuid.UUID
	DocumentID uuid.UUID
	Direction  Direction
	From       time.Time
	To         time.Time
}

// Validate checks the filter.
func (f TransferFilter) Validate() error {
	var errs []FieldError
	if f.MatterID == uuid.Nil && f.DocumentID == uuid.Nil {
		errs = append(errs, FieldError{Field: "matter_id", Message: "matter_id or document_id is required"})
	}
	if !f.Direction.IsValid() {
		errs = append(errs, FieldError{Field: "direction", Message: "must be FROM or TO"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// CheckedOutFromHistory replays the custody events of a document's
// ascending history: the document is checked out iff its latest custody
// event is CHECKED_OUT.
func CheckedOutFromHistory(entries []LedgerEntry) bool {
	checkedOut := false
	for _, e := range entries {
		switch e.Activity {
		case ActivityCheckedOut:
			checkedOut = true
		case ActivityCheckedIn:
			checkedOut = false
		}
	}
	return checkedOut
}
