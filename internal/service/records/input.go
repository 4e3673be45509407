package records

import (
	"strings"

	"github.com/google/uuid"

	"github.com/LawUtilities/ADMS.API-sub014/internal/domain"
)

const (
	maxNameLength        = 255
	maxDescriptionLength = 1000
	maxExtensionLength   = 16
)

func requireID(errs []domain.FieldError, field string, id uuid.UUID) []domain.FieldError {
	if id == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	return errs
}

func result(errs []domain.FieldError) error {
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateUserInput holds the parameters for registering an actor.
type CreateUserInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i CreateUserInput) Validate() error {
	var errs []domain.FieldError
	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
	}
	return result(errs)
}

// CreateMatterInput holds the parameters for opening a matter.
type CreateMatterInput struct {
	Description string
	UserID      uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateMatterInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.Description) == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	if len(i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 1000 characters"})
	}
	errs = requireID(errs, "user_id", i.UserID)
	return result(errs)
}

// MatterActionInput identifies a matter and the acting user.
type MatterActionInput struct {
	MatterID uuid.UUID
	UserID   uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i MatterActionInput) Validate() error {
	var errs []domain.FieldError
	errs = requireID(errs, "matter_id", i.MatterID)
	errs = requireID(errs, "user_id", i.UserID)
	return result(errs)
}

// RestoreMatterInput holds the parameters for restoring a deleted matter.
// Unarchive additionally clears the archived flag.
type RestoreMatterInput struct {
	MatterID  uuid.UUID
	UserID    uuid.UUID
	Unarchive bool
}

// Validate checks all fields and collects all errors.
func (i RestoreMatterInput) Validate() error {
	return MatterActionInput{MatterID: i.MatterID, UserID: i.UserID}.Validate()
}

// CreateDocumentInput holds the parameters for adding a document to a
// matter. A zero ContentRef gets a fresh reference.
type CreateDocumentInput struct {
	MatterID   uuid.UUID
	UserID     uuid.UUID
	FileName   string
	Extension  string
	ContentRef uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateDocumentInput) Validate() error {
	var errs []domain.FieldError
	errs = requireID(errs, "matter_id", i.MatterID)
	errs = requireID(errs, "user_id", i.UserID)
	errs = validateFileName(errs, i.FileName, i.Extension)
	return result(errs)
}

// SaveDocumentInput holds the new file metadata of a document.
type SaveDocumentInput struct {
	DocumentID uuid.UUID
	UserID     uuid.UUID
	FileName   string
	Extension  string
}

// Validate checks all fields and collects all errors.
func (i SaveDocumentInput) Validate() error {
	var errs []domain.FieldError
	errs = requireID(errs, "document_id", i.DocumentID)
	errs = requireID(errs, "user_id", i.UserID)
	errs = validateFileName(errs, i.FileName, i.Extension)
	return result(errs)
}

func validateFileName(errs []domain.FieldError, fileName, extension string) []domain.FieldError {
	name := strings.TrimSpace(fileName)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "file_name", Message: "required"})
	}
	if len(name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "file_name", Message: "max 255 characters"})
	}
	if len(extension) > maxExtensionLength {
		errs = append(errs, domain.FieldError{Field: "extension", Message: "max 16 characters"})
	}
	if strings.ContainsAny(extension, "./\\ ") {
		errs = append(errs, domain.FieldError{Field: "extension", Message: "must not contain dots, slashes or spaces"})
	}
	return errs
}

// DocumentActionInput identifies a document and the acting user.
type DocumentActionInput struct {
	DocumentID uuid.UUID
	UserID     uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DocumentActionInput) Validate() error {
	var errs []domain.FieldError
	errs = requireID(errs, "document_id", i.DocumentID)
	errs = requireID(errs, "user_id", i.UserID)
	return result(errs)
}

// TransferInput holds the parameters of a move or copy.
type TransferInput struct {
	DocumentID   uuid.UUID
	DestMatterID uuid.UUID
	UserID       uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i TransferInput) Validate() error {
	var errs []domain.FieldError
	errs = requireID(errs, "document_id", i.DocumentID)
	errs = requireID(errs, "dest_matter_id", i.DestMatterID)
	errs = requireID(errs, "user_id", i.UserID)
	return result(errs)
}

// CreateRevisionInput holds the parameters for a new revision. A zero
// Number takes the next free number.
type CreateRevisionInput struct {
	DocumentID uuid.UUID
	UserID     uuid.UUID
	Number     int
}

// Validate checks all fields and collects all errors.
func (i CreateRevisionInput) Validate() error {
	var errs []domain.FieldError
	errs = requireID(errs, "document_id", i.DocumentID)
	errs = requireID(errs, "user_id", i.UserID)
	if i.Number < 0 {
		errs = append(errs, domain.FieldError{Field: "revision_number", Message: "must be positive"})
	}
	return result(errs)
}

// RevisionActionInput identifies a revision and the acting user.
type RevisionActionInput struct {
	RevisionID uuid.UUID
	UserID     uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i RevisionActionInput) Validate() error {
	var errs []domain.FieldError
	errs = requireID(errs, "revision_id", i.RevisionID)
	errs = requireID(errs, "user_id", i.UserID)
	return result(errs)
}
