package model

import (
	"time"

	"applyo/internal/domain/entity"

	"github.com/google/uuid"
)

// ApplicationModel is the GORM-specific struct for the 'applications' table.
// The consent grant snapshot is embedded as JSONB: it is a point-in-time copy
// and never updated after the application is created.
type ApplicationModel struct {
	ID              uuid.UUID            `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CandidateID     uuid.UUID            `gorm:"type:uuid;not null;index;uniqueIndex:idx_applications_candidate_job"`
	JobID           uuid.UUID            `gorm:"type:uuid;not null;index;uniqueIndex:idx_applications_candidate_job"`
	CompanyID       uuid.UUID            `gorm:"type:uuid;not null;index"`
	Status          string               `gorm:"type:text;not null;default:'SUBMITTED'"`
	Source          string               `gorm:"type:text;not null;default:'direct'"`
	Consent         *entity.ConsentGrant `gorm:"type:jsonb;serializer:json"`
	RejectionReason string               `gorm:"type:text"`
	ReviewedBy      *uuid.UUID           `gorm:"type:uuid"`
	ReviewedAt      *time.Time
	AppliedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ApplicationModel) TableName() string {
	return "applications"
}
