// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"applyo/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateConsentInput defines the data a company submits to request consent
// from a candidate.
type CreateConsentInput struct {
	CompanyID       uuid.UUID
	CandidateEmail  string
	JobID           *uuid.UUID
	RequestedFields []string
	PurposeOfUse    string
	RetentionDays   int
	// ExpirationHours overrides the configured default lifetime when > 0.
	ExpirationHours int
}

// RespondConsentInput defines a candidate's decision on a consent request.
type RespondConsentInput struct {
	CandidateID uuid.UUID
	Token       string
	Approved    bool
}

// --- Output DTOs ---

// CreateConsentOutput returns the created request plus the artifacts handed
// to the candidate: the consent page URL and a QR code rendering of it.
type CreateConsentOutput struct {
	ConsentToken *entity.ConsentToken
	ConsentURL   string
	QRCodePNG    []byte
}

// ConsentUsecase defines the interface for the consent mediation service.
// The token string itself is the capability: Fetch and Respond are keyed by
// it so a candidate can act from an emailed link without a platform session.
type ConsentUsecase interface {
	// CreateConsentRequest opens a new PENDING consent request.
	CreateConsentRequest(ctx context.Context, input CreateConsentInput) (*CreateConsentOutput, error)

	// GetConsentByToken fetches the record behind an opaque token string for
	// presentation on the consent page.
	GetConsentByToken(ctx context.Context, token string) (*entity.ConsentToken, error)

	// RespondToConsent records the candidate's decision. Exactly one of any
	// number of concurrent responses to the same PENDING token succeeds.
	RespondToConsent(ctx context.Context, input RespondConsentInput) (*entity.ConsentToken, error)

	// RevokeConsent withdraws a previously given consent. A token that does
	// not exist and a token owned by someone else are indistinguishable to
	// the caller.
	RevokeConsent(ctx context.Context, candidateID, tokenID uuid.UUID) (*entity.ConsentToken, error)

	// ListCandidateConsents returns the tokens a candidate has responded to.
	ListCandidateConsents(ctx context.Context, candidateID uuid.UUID, limit, offset int) ([]*entity.ConsentToken, error)

	// ListCompanyConsents returns the tokens a company has requested.
	ListCompanyConsents(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*entity.ConsentToken, error)
}
