package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConsentTokenStatus is the lifecycle state of a consent token.
//
// Valid transitions: PENDING -> APPROVED | DENIED | EXPIRED, APPROVED -> REVOKED.
// Every other state is terminal and transitions never move backward.
type ConsentTokenStatus string

const (
	ConsentStatusPending  ConsentTokenStatus = "PENDING"
	ConsentStatusApproved ConsentTokenStatus = "APPROVED"
	ConsentStatusDenied   ConsentTokenStatus = "DENIED"
	ConsentStatusExpired  ConsentTokenStatus = "EXPIRED"
	ConsentStatusRevoked  ConsentTokenStatus = "REVOKED"
)

// ConsentToken is a single-use capability granting a company access to a
// defined set of a candidate's personal-data fields, for a stated purpose and
// retention period. The opaque token string itself is the capability: a
// candidate may respond to it via an emailed link without being logged in.
// Records are never deleted; they remain as an audit trail of who consented
// to what, for how long, and why.
type ConsentToken struct {
	ID              uuid.UUID          `json:"id"`
	Token           string             `json:"token"` // Unique, URL-safe, 256 bits of randomness. Immutable after creation.
	CandidateID     *uuid.UUID         `json:"candidate_id,omitempty"`
	CompanyID       uuid.UUID          `json:"company_id"`
	JobID           *uuid.UUID         `json:"job_id,omitempty"`
	RequestedFields []string           `json:"requested_fields"`
	PurposeOfUse    string             `json:"purpose_of_use"`
	RetentionDays   int                `json:"retention_days"`
	Status          ConsentTokenStatus `json:"status"`
	ExpiresAt       time.Time          `json:"expires_at"`
	CreatedAt       time.Time          `json:"created_at"`
	// RespondedAt is set exactly when the status leaves PENDING through a
	// candidate action. It stays nil for system-driven EXPIRED transitions.
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}

// IsExpiredAt reports whether the token's deadline has passed at the given instant.
func (t *ConsentToken) IsExpiredAt(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}
