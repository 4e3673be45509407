package domain

// SubjectType identifies which ledger a row belongs to.
type SubjectType string

const (
	SubjectMatter   SubjectType = "MATTER"
	SubjectDocument SubjectType = "DOCUMENT"
	SubjectRevision SubjectType = "REVISION"
	SubjectTransfer SubjectType = "TRANSFER"
)

func (s SubjectType) String() string { return string(s) }

func (s SubjectType) IsValid() bool {
	switch s {
	case SubjectMatter, SubjectDocument, SubjectRevision, SubjectTransfer:
		return true
	}
	return false
}

// HasSubjectLedger reports whether s owns a single-subject ledger table.
// Transfers are recorded in the two-sided provenance ledger instead.
func (s SubjectType) HasSubjectLedger() bool {
	switch s {
	case SubjectMatter, SubjectDocument, SubjectRevision:
		return true
	}
	return false
}

// Activity is the name of an activity kind in the catalog.
type Activity string

const (
	ActivityArchived   Activity = "ARCHIVED"
	ActivityCreated    Activity = "CREATED"
	ActivityDeleted    Activity = "DELETED"
	ActivityRestored   Activity = "RESTORED"
	ActivityUnarchived Activity = "UNARCHIVED"
	ActivityViewed     Activity = "VIEWED"
	ActivityCheckedIn  Activity = "CHECKED_IN"
	ActivityCheckedOut Activity = "CHECKED_OUT"
	ActivitySaved      Activity = "SAVED"
	ActivityCopied     Activity = "COPIED"
	ActivityMoved      Activity = "MOVED"
)

func (a Activity) String() string { return string(a) }

// Direction selects one side of the transfer provenance ledger.
type Direction string

const (
	DirectionFrom Direction = "FROM"
	DirectionTo   Direction = "TO"
)

func (d Direction) String() string { return string(d) }

func (d Direction) IsValid() bool {
	switch d {
	case DirectionFrom, DirectionTo:
		return true
	}
	return false
}
