// Package repository defines the persistence interfaces the domain depends on.
package repository

import (
	"context"
	"time"

	"applyo/internal/domain/entity"
	"applyo/internal/errors"

	"github.com/google/uuid"
)

// Sentinel errors returned by ConsentTokenRepository implementations.
var (
	ErrConsentTokenNotFound = errors.New("consent token not found")

	// ErrConsentTokenStale is returned by the conditional updates when the
	// stored status is no longer PENDING: a concurrent writer finalized the
	// token first. Callers must treat the stored record as authoritative.
	ErrConsentTokenStale = errors.New("consent token no longer pending")

	// ErrConsentTokenCollision is returned when a freshly generated token
	// string collides with an existing one. With 256 bits of randomness this
	// is effectively unreachable; the service regenerates and retries once.
	ErrConsentTokenCollision = errors.New("consent token string already exists")
)

// ConsentTokenRepository persists the consent token state machine.
//
// The conditional updates (RespondIfPending, MarkExpiredIfPending) are the
// storage half of the state machine's atomicity contract: the status check
// and the write happen in a single statement, never as a separate read
// followed by a write.
type ConsentTokenRepository interface {
	// Create persists a new PENDING consent token.
	Create(ctx context.Context, token *entity.ConsentToken) error

	// FindByToken retrieves a record by its opaque token string.
	FindByToken(ctx context.Context, token string) (*entity.ConsentToken, error)

	// FindByID retrieves a record by its id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ConsentToken, error)

	// RespondIfPending atomically records the candidate's decision, succeeding
	// only if the stored status still equals PENDING. Exactly one of any
	// number of concurrent callers wins; the rest get ErrConsentTokenStale.
	RespondIfPending(ctx context.Context, id, candidateID uuid.UUID, status entity.ConsentTokenStatus, respondedAt time.Time) (*entity.ConsentToken, error)

	// MarkExpiredIfPending atomically moves a PENDING token to EXPIRED without
	// touching candidate_id or responded_at.
	MarkExpiredIfPending(ctx context.Context, id uuid.UUID) error

	// UpdateStatus sets the status unconditionally. Used by Revoke, which by
	// contract does not validate the prior state.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ConsentTokenStatus) (*entity.ConsentToken, error)

	// FindByCandidate lists tokens answered by a candidate, newest first.
	FindByCandidate(ctx context.Context, candidateID uuid.UUID, limit, offset int) ([]*entity.ConsentToken, error)

	// FindByCompany lists tokens requested by a company, newest first.
	FindByCompany(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*entity.ConsentToken, error)
}
