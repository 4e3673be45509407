package domain

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// ActivityType is one seeded row of a per-subject activity catalog.
type ActivityType struct {
	ID       uuid.UUID
	Subject  SubjectType
	Activity Activity
}

// seededActivities is the fixed vocabulary per subject type. The migration
// that seeds the catalog tables must match it exactly.
var seededActivities = map[SubjectType][]Activity{
	SubjectMatter: {
		ActivityArchived, ActivityCreated, ActivityDeleted,
		ActivityRestored, ActivityUnarchived, ActivityViewed,
	},
	SubjectDocument: {
		ActivityCheckedIn, ActivityCheckedOut, ActivityCreated,
		ActivityDeleted, ActivityRestored, ActivitySaved,
	},
	SubjectRevision: {
		ActivityCreated, ActivityDeleted, ActivityRestored, ActivitySaved,
	},
	SubjectTransfer: {
		ActivityCopied, ActivityMoved,
	},
}

// SeededActivities returns a copy of the vocabulary for subject.
func SeededActivities(subject SubjectType) []Activity {
	return slices.Clone(seededActivities[subject])
}

// IsSeeded reports whether activity belongs to the catalog of subject.
func IsSeeded(subject SubjectType, activity Activity) bool {
	return slices.Contains(seededActivities[subject], activity)
}

// ActivityCatalog is an immutable, fully loaded view of all four catalogs.
type ActivityCatalog struct {
	byName map[SubjectType]map[Activity]uuid.UUID
	byID   map[uuid.UUID]ActivityType
}

// NewActivityCatalog indexes the given rows. Rows naming an activity that
// is not part of the subject's vocabulary are rejected.
func NewActivityCatalog(rows []ActivityType) (*ActivityCatalog, error) {
	c := &ActivityCatalog{
		byName: make(map[SubjectType]map[Activity]uuid.UUID, len(seededActivities)),
		byID:   make(map[uuid.UUID]ActivityType, len(rows)),
	}
	for _, row := range rows {
		if !IsSeeded(row.Subject, row.Activity) {
			return nil, fmt.Errorf("activity catalog: %s/%s is not part of the vocabulary", row.Subject, row.Activity)
		}
		if c.byName[row.Subject] == nil {
			c.byName[row.Subject] = make(map[Activity]uuid.UUID)
		}
		c.byName[row.Subject][row.Activity] = row.ID
		c.byID[row.ID] = row
	}
	return c, nil
}

// Resolve returns the id of activity within subject's catalog.
func (c *ActivityCatalog) Resolve(subject SubjectType, activity Activity) (uuid.UUID, error) {
	id, ok := c.byName[subject][activity]
	if !ok {
		return uuid.Nil, fmt.Errorf("activity %s/%s: %w", subject, activity, ErrNotFound)
	}
	return id, nil
}

// Lookup returns the catalog row for id.
func (c *ActivityCatalog) Lookup(id uuid.UUID) (ActivityType, bool) {
	a, ok := c.byID[id]
	return a, ok
}
