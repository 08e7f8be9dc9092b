package usecase

import (
	"context"

	"applyo/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateAPIKeyInput defines the data required to issue a company API key.
type CreateAPIKeyInput struct {
	CompanyID uuid.UUID
	Name      string
	Scopes    []string
	// RateLimit is the per-minute request budget granted to the key; 0 uses
	// the platform default.
	RateLimit int
	// ExpiresInDays makes the key self-expire when > 0.
	ExpiresInDays int
}

// --- Output DTOs ---

// CreateAPIKeyOutput returns the issued key. RawKey is shown exactly once;
// only its hash is stored.
type CreateAPIKeyOutput struct {
	APIKey *entity.APIKey
	RawKey string
}

// CompanyUsecase defines the interface for company profile and API key
// management. VerifyAPIKey is the owning-service half of the two-party
// contract with the gateway: the gateway forwards X-API-Key untouched and
// this service decides whether the key is good.
type CompanyUsecase interface {
	// GetCompany retrieves a company account.
	GetCompany(ctx context.Context, companyID uuid.UUID) (*entity.User, error)

	// CreateAPIKey issues a fresh API key for the company.
	CreateAPIKey(ctx context.Context, input CreateAPIKeyInput) (*CreateAPIKeyOutput, error)

	// ListAPIKeys returns the company's keys, hashes omitted from transport.
	ListAPIKeys(ctx context.Context, companyID uuid.UUID) ([]*entity.APIKey, error)

	// RevokeAPIKey deactivates a key without deleting its audit record.
	RevokeAPIKey(ctx context.Context, companyID, keyID uuid.UUID) error

	// DeleteAPIKey removes a key entirely.
	DeleteAPIKey(ctx context.Context, companyID, keyID uuid.UUID) error

	// VerifyAPIKey checks a raw key against the catalogue: hash match, active
	// flag, expiry. On success it records the use and returns the key record.
	VerifyAPIKey(ctx context.Context, rawKey string) (*entity.APIKey, error)
}
