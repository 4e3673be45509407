package ledger

import "github.com/LawUtilities/ADMS.API-sub014/internal/domain"

// table describes one single-subject ledger and the tables it references.
type table struct {
	name       string
	subjectCol string
	subjects   string
	activities string
}

var tables = map[domain.SubjectType]table{
	domain.SubjectMatter: {
		name:       "matter_activity_users",
		subjectCol: "matter_id",
		subjects:   "matters",
		activities: "matter_activities",
	},
	domain.SubjectDocument: {
		name:       "document_activity_users",
		subjectCol: "document_id",
		subjects:   "documents",
		activities: "document_activities",
	},
	domain.SubjectRevision: {
		name:       "revision_activity_users",
		subjectCol: "revision_id",
		subjects:   "revisions",
		activities: "revision_activities",
	},
}

func tableFor(subject domain.SubjectType) (table, error) {
	t, ok := tables[subject]
	if !ok {
		return table{}, domain.NewValidationError("subject_type", "has no subject ledger: "+subject.String())
	}
	return t, nil
}
