package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"

	"applyo/internal/domain/service"
	"applyo/internal/errors"
)

// apiKeyPrefix marks platform API keys so they are recognizable in logs and
// secret scanners without revealing anything about the key itself.
const apiKeyPrefix = "ao_"

// GenerateAPIKey creates a fresh opaque API key. It returns the raw key
// (shown to the company exactly once), its SHA-256 hash for storage, and the
// display prefix ("ao_" plus the first 8 key characters).
func GenerateAPIKey() (raw, hash, prefix string, err error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", "", "", errors.Wrap(err, "failed to generate api key")
	}

	raw = apiKeyPrefix + base64.RawURLEncoding.EncodeToString(buf)

	return raw, HashAPIKey(raw), raw[:len(apiKeyPrefix)+8], nil
}

// HashAPIKey returns the hex SHA-256 digest stored in the key catalogue.
func HashAPIKey(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}

// apiKeyGenerator adapts the package functions to the domain interface.
type apiKeyGenerator struct{}

// NewAPIKeyGenerator is the constructor for apiKeyGenerator.
func NewAPIKeyGenerator() service.APIKeyGenerator {
	return apiKeyGenerator{}
}

func (apiKeyGenerator) Generate() (raw, hash, prefix string, err error) {
	return GenerateAPIKey()
}

func (apiKeyGenerator) Hash(raw string) string {
	return HashAPIKey(raw)
}
