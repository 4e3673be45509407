package history

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/LawUtilities/ADMS.API-sub014/internal/domain"
)

// HistoryQuery selects a subject's ledger within an optional inclusive
// date range.
type HistoryQuery struct {
	Subject   domain.SubjectType
	SubjectID uuid.UUID
	From      time.Time
	To        time.Time
}

// Validate checks all fields and collects all errors.
func (q HistoryQuery) Validate() error {
	var errs []domain.FieldError
	if !q.Subject.HasSubjectLedger() {
		errs = append(errs, domain.FieldError{Field: "subject_type", Message: "must be MATTER, DOCUMENT or REVISION"})
	}
	if q.SubjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "subject_id", Message: "required"})
	}
	errs = validateRange(errs, q.From, q.To)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ExtendedAuditQuery selects one side of the transfer provenance ledger.
type ExtendedAuditQuery struct {
	MatterID   uuid.UUID
	DocumentID uuid.UUID
	Direction  domain.Direction
	From       time.Time
	To         time.Time
}

// Validate checks all fields and collects all errors.
func (q ExtendedAuditQuery) Validate() error {
	var (
		errs []domain.FieldError
		ve   *domain.ValidationError
	)
	if errors.As(q.filter().Validate(), &ve) {
		errs = ve.Errors
	}
	errs = validateRange(errs, q.From, q.To)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (q ExtendedAuditQuery) filter() domain.TransferFilter {
	return domain.TransferFilter{
		MatterID:   q.MatterID,
		DocumentID: q.DocumentID,
		Direction:  q.Direction,
		From:       q.From,
		To:         q.To,
	}
}

func validateRange(errs []domain.FieldError, from, to time.Time) []domain.FieldError {
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must not be before from"})
	}
	return errs
}
