package repository

import (
	"context"
	"time"

	"applyo/internal/domain/entity"
	"applyo/internal/errors"

	"github.com/google/uuid"
)

// ErrAPIKeyNotFound is returned when no API key matches the lookup.
var ErrAPIKeyNotFound = errors.New("api key not found")

// APIKeyRepository persists the company API key catalogue. Lookup is always
// by the SHA-256 hash of the raw key; the raw key is never stored.
type APIKeyRepository interface {
	Create(ctx context.Context, key *entity.APIKey) error
	FindByHash(ctx context.Context, keyHash string) (*entity.APIKey, error)
	FindByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.APIKey, error)
	Deactivate(ctx context.Context, companyID, keyID uuid.UUID) error
	Delete(ctx context.Context, companyID, keyID uuid.UUID) error
	TouchLastUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) error
}
