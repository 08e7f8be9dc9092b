package model

import (
	"time"

	"github.com/google/uuid"
)

// DocumentMetadataModel is the GORM-specific struct for the 'documents' table.
type DocumentMetadataModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CandidateID uuid.UUID `gorm:"type:uuid;not null;index"`
	FileName    string    `gorm:"type:text;not null"`
	ContentType string    `gorm:"type:text;not null"`
	SizeBytes   int64     `gorm:"not null;default:0"`
	StorageKey  string    `gorm:"type:text;not null;uniqueIndex"`
	UploadedAt  time.Time `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (DocumentMetadataModel) TableName() string {
	return "documents"
}
