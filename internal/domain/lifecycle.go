package domain

import (
	"fmt"
	"slices"
)

// ---------------------------------------------------------------------------
// Document lifecycle
// ---------------------------------------------------------------------------

// DocumentState is the custody state of a document.
type DocumentState string

const (
	DocumentStateActive     DocumentState = "ACTIVE"
	DocumentStateCheckedOut DocumentState = "CHECKED_OUT"
	DocumentStateDeleted    DocumentState = "DELETED"
)

func (s DocumentState) String() string { return string(s) }

// CheckOut takes exclusive custody of an active document.
func (s DocumentState) CheckOut() (DocumentState, error) {
	if s != DocumentStateActive {
		return s, fmt.Errorf("check out %s document: %w", s, ErrInvalidTransition)
	}
	return DocumentStateCheckedOut, nil
}

// CheckIn releases custody.
func (s DocumentState) CheckIn() (DocumentState, error) {
	if s != DocumentStateCheckedOut {
		return s, fmt.Errorf("check in %s document: %w", s, ErrInvalidTransition)
	}
	return DocumentStateActive, nil
}

// Delete soft-deletes the document. A checked-out document must be
// checked in first.
func (s DocumentState) Delete() (DocumentState, error) {
	if s != DocumentStateActive {
		return s, fmt.Errorf("delete %s document: %w", s, ErrInvalidTransition)
	}
	return DocumentStateDeleted, nil
}

// Restore brings a deleted document back to active.
func (s DocumentState) Restore() (DocumentState, error) {
	if s != DocumentStateDeleted {
		return s, fmt.Errorf("restore %s document: %w", s, ErrInvalidTransition)
	}
	return DocumentStateActive, nil
}

// ---------------------------------------------------------------------------
// Matter lifecycle
// ---------------------------------------------------------------------------

// MatterStatus is the effective state of a matter. It is stored as the
// (is_archived, is_deleted) pair but only these four values exist.
type MatterStatus string

const (
	MatterStatusActive             MatterStatus = "ACTIVE"
	MatterStatusArchived           MatterStatus = "ARCHIVED"
	MatterStatusDeleted            MatterStatus = "DELETED"
	MatterStatusArchivedAndDeleted MatterStatus = "ARCHIVED_AND_DELETED"
)

func (s MatterStatus) String() string { return string(s) }

func (s MatterStatus) IsValid() bool {
	switch s {
	case MatterStatusActive, MatterStatusArchived, MatterStatusDeleted, MatterStatusArchivedAndDeleted:
		return true
	}
	return false
}

// MatterStatusFromFlags converts the stored flag pair.
func MatterStatusFromFlags(isArchived, isDeleted bool) MatterStatus {
	switch {
	case isArchived && isDeleted:
		return MatterStatusArchivedAndDeleted
	case isArchived:
		return MatterStatusArchived
	case isDeleted:
		return MatterStatusDeleted
	default:
		return MatterStatusActive
	}
}

// Flags returns the stored (is_archived, is_deleted) pair for s.
func (s MatterStatus) Flags() (isArchived, isDeleted bool) {
	switch s {
	case MatterStatusArchived:
		return true, false
	case MatterStatusDeleted:
		return false, true
	case MatterStatusArchivedAndDeleted:
		return true, true
	default:
		return false, false
	}
}

func (s MatterStatus) IsArchived() bool {
	archived, _ := s.Flags()
	return archived
}

func (s MatterStatus) IsDeleted() bool {
	_, deleted := s.Flags()
	return deleted
}

var matterTransitions = map[MatterStatus][]MatterStatus{
	MatterStatusActive:             {MatterStatusArchived, MatterStatusDeleted},
	MatterStatusArchived:           {MatterStatusActive, MatterStatusArchivedAndDeleted},
	MatterStatusDeleted:            {MatterStatusActive},
	MatterStatusArchivedAndDeleted: {MatterStatusActive, MatterStatusArchived},
}

// CanTransitionTo reports whether the transition table allows s -> to.
func (s MatterStatus) CanTransitionTo(to MatterStatus) bool {
	return slices.Contains(matterTransitions[s], to)
}

// TransitionTo validates s -> to against the transition table.
func (s MatterStatus) TransitionTo(to MatterStatus) (MatterStatus, error) {
	if !s.CanTransitionTo(to) {
		return s, fmt.Errorf("matter %s -> %s: %w", s, to, ErrInvalidTransition)
	}
	return to, nil
}

// Archive moves an active matter to archived. Blocked while any owned
// document is checked out.
func (s MatterStatus) Archive(docs MatterDocumentCounts) (MatterStatus, error) {
	_, deleted := s.Flags()
	next, err := s.TransitionTo(MatterStatusFromFlags(true, deleted))
	if err != nil {
		return s, err
	}
	if docs.CheckedOut > 0 {
		return s, fmt.Errorf("archive matter: %d document(s) checked out: %w", docs.CheckedOut, ErrConflict)
	}
	return next, nil
}

// Unarchive moves an archived matter back to active.
func (s MatterStatus) Unarchive() (MatterStatus, error) {
	_, deleted := s.Flags()
	return s.TransitionTo(MatterStatusFromFlags(false, deleted))
}

// Delete soft-deletes the matter. Blocked while the matter owns any
// document that is live or checked out.
func (s MatterStatus) Delete(docs MatterDocumentCounts) (MatterStatus, error) {
	archived, _ := s.Flags()
	next, err := s.TransitionTo(MatterStatusFromFlags(archived, true))
	if err != nil {
		return s, err
	}
	if docs.CheckedOut > 0 {
		return s, fmt.Errorf("delete matter: %d document(s) checked out: %w", docs.CheckedOut, ErrConflict)
	}
	if docs.Live > 0 {
		return s, fmt.Errorf("delete matter: %d live document(s): %w", docs.Live, ErrConflict)
	}
	return next, nil
}

// Restore clears the deleted flag. With unarchive set it also clears the
// archived flag, which is only meaningful from ArchivedAndDeleted.
func (s MatterStatus) Restore(unarchive bool) (MatterStatus, error) {
	if !s.IsDeleted() {
		return s, fmt.Errorf("restore %s matter: %w", s, ErrInvalidTransition)
	}
	archived := s.IsArchived() && !unarchive
	return s.TransitionTo(MatterStatusFromFlags(archived, false))
}
