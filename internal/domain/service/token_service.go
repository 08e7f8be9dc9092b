package service

import (
	"context"
	"time"

	"applyo/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenService signs and verifies the platform's identity tokens. The same
// HMAC secret is provisioned to the issuing auth service and the gateway, so
// a token minted here is verifiable there without any shared state beyond
// configuration.
type TokenService interface {
	// GenerateAccessToken mints a signed identity token asserting the user's
	// id and type until the configured expiry.
	GenerateAccessToken(userID uuid.UUID, userType entity.UserType) (string, error)

	// GenerateRefreshToken mints a longer-lived token carrying only the
	// subject, signed with the refresh secret.
	GenerateRefreshToken(userID uuid.UUID) (string, error)

	// VerifyAccessToken checks signature, structure and expiry in one step and
	// returns the verified identity. There is no way to extract claims from a
	// token that failed verification.
	VerifyAccessToken(tokenString string) (*entity.Identity, error)

	// VerifyRefreshToken validates a refresh token and returns its subject.
	VerifyRefreshToken(tokenString string) (uuid.UUID, error)

	// RefreshTokenDuration returns the configured refresh token lifetime.
	RefreshTokenDuration() time.Duration
}

// ConsentEvent is published whenever a consent token changes state.
type ConsentEvent struct {
	RequestID      string   `json:"request_id,omitempty"` // For distributed tracing
	EventType      string   `json:"event_type"`           // consent.requested, consent.responded, consent.revoked
	ConsentTokenID string   `json:"consent_token_id"`
	CompanyID      string   `json:"company_id"`
	CandidateID    string   `json:"candidate_id,omitempty"`
	Status         string   `json:"status"`
	Fields         []string `json:"fields,omitempty"`
}

// EventPublisher defines the interface for publishing consent lifecycle
// events to a message queue for downstream audit consumers.
type EventPublisher interface {
	// PublishConsentEvent publishes a consent lifecycle event for async processing
	PublishConsentEvent(ctx context.Context, event *ConsentEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
