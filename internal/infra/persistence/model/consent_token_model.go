package model

import (
	"time"

	"github.com/google/uuid"
)

// ConsentTokenModel is the GORM-specific struct for the 'consent_tokens' table.
// Rows are never deleted; the table doubles as the consent audit trail.
type ConsentTokenModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Token           string     `gorm:"type:text;not null;uniqueIndex"`
	CandidateID     *uuid.UUID `gorm:"type:uuid;index"`
	CompanyID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	JobID           *uuid.UUID `gorm:"type:uuid"`
	RequestedFields []string   `gorm:"type:jsonb;serializer:json;not null"`
	PurposeOfUse    string     `gorm:"type:text"`
	RetentionDays   int        `gorm:"not null;default:0"`
	Status          string     `gorm:"type:text;not null;default:'PENDING';index"`
	ExpiresAt       time.Time  `gorm:"not null"`
	CreatedAt       time.Time
	RespondedAt     *time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConsentTokenModel) TableName() string {
	return "consent_tokens"
}
