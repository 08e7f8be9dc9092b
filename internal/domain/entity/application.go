package entity

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus is the review state of a job application.
type ApplicationStatus string

const (
	ApplicationStatusSubmitted ApplicationStatus = "SUBMITTED"
	ApplicationStatusReviewing ApplicationStatus = "REVIEWING"
	ApplicationStatusAccepted  ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected  ApplicationStatus = "REJECTED"
	ApplicationStatusWithdrawn ApplicationStatus = "WITHDRAWN"
)

// ConsentGrant is a point-in-time snapshot of an approved consent token,
// embedded in the application that referenced it. A later revocation of the
// token does not retroactively mutate this snapshot; the grant records what
// the candidate had consented to at application time.
type ConsentGrant struct {
	ConsentTokenID      uuid.UUID `json:"consent_token_id"`
	ConsentGivenAt      time.Time `json:"consent_given_at"`
	DataFieldsConsented []string  `json:"data_fields_consented"`
	PurposeOfUse        string    `json:"purpose_of_use"`
	DataRetentionUntil  time.Time `json:"data_retention_until"`
	CanShare            bool      `json:"can_share"`
}

// Application represents a candidate's application to a job posting.
type Application struct {
	ID              uuid.UUID         `json:"id"`
	CandidateID     uuid.UUID         `json:"candidate_id"`
	JobID           uuid.UUID         `json:"job_id"`
	CompanyID       uuid.UUID         `json:"company_id"`
	Status          ApplicationStatus `json:"status"`
	Source          string            `json:"source"`
	Consent         *ConsentGrant     `json:"consent,omitempty"`
	RejectionReason string            `json:"rejection_reason,omitempty"`
	ReviewedBy      *uuid.UUID        `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time        `json:"reviewed_at,omitempty"`
	AppliedAt       time.Time         `json:"applied_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
