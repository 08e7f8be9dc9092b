package entity

import (
	"time"

	"github.com/google/uuid"
)

// APIKey is a long-lived opaque credential owned and scoped by a company.
// The gateway merely relays the raw key; only this service can verify it,
// because only it holds the key catalogue. The raw key is shown once at
// creation time and only its SHA-256 hash is stored.
type APIKey struct {
	ID         uuid.UUID  `json:"id"`
	CompanyID  uuid.UUID  `json:"company_id"`
	KeyHash    string     `json:"-"`
	Name       string     `json:"name"`
	Prefix     string     `json:"prefix"` // "ao_" plus the first 8 key characters, for display.
	Scopes     []string   `json:"scopes"` // e.g. read:candidates, write:applications.
	RateLimit  int        `json:"rate_limit"` // Requests per minute granted to this key.
	Active     bool       `json:"active"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// IsUsableAt reports whether the key may authenticate a request at the given instant.
func (k *APIKey) IsUsableAt(now time.Time) bool {
	if !k.Active {
		return false
	}
	if k.ExpiresAt != nil && !k.ExpiresAt.After(now) {
		return false
	}

	return true
}
