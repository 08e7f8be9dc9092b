package entity

import (
	"time"

	"github.com/google/uuid"
)

// DocumentMetadata describes a file a candidate uploaded (resume, cover
// letter, certificate). The bytes live in blob storage under StorageKey;
// this record is only the catalogue entry.
type DocumentMetadata struct {
	ID          uuid.UUID `json:"id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	StorageKey  string    `json:"-"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
