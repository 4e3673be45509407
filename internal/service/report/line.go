package report

import (
	"time"

	"github.com/google/uuid"
)

// LineKind tags each JSON line of a report.
type LineKind string

const (
	KindHeader   LineKind = "header"
	KindMatter   LineKind = "matter"
	KindDocument LineKind = "document"
	KindTransfer LineKind = "transfer"
	KindActor    LineKind = "actor"
	KindTrailer  LineKind = "trailer"
)

// Line is one record of a compliance report. Digest chains the line to
// everything written before it.
type Line struct {
	Seq  int      `json:"seq"`
	Kind LineKind `json:"kind"`

	MatterID    *uuid.UUID `json:"matter_id,omitempty"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status,omitempty"`

	DocumentID *uuid.UUID `json:"document_id,omitempty"`
	FileName   string     `json:"file_name,omitempty"`

	Direction        string     `json:"direction,omitempty"`
	CopiedDocumentID *uuid.UUID `json:"copied_document_id,omitempty"`
	CopiedFileName   string     `json:"copied_file_name,omitempty"`

	Activity string     `json:"activity,omitempty"`
	UserID   *uuid.UUID `json:"user_id,omitempty"`
	UserName string     `json:"user_name,omitempty"`
	At       *time.Time `json:"at,omitempty"`

	Events int `json:"events,omitempty"`
	Lines  int `json:"lines,omitempty"`

	Digest string `json:"digest,omitempty"`
}

// Summary describes a written or verified report.
type Summary struct {
	Lines  int
	Digest string
}

func ptr[T any](v T) *T { return &v }
