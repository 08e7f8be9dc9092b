package service

// APIKeyGenerator creates and hashes the opaque API keys companies use for
// server-to-server calls. Only the hash ever reaches storage.
type APIKeyGenerator interface {
	// Generate returns a fresh raw key, its storage hash, and display prefix.
	Generate() (raw, hash, prefix string, err error)

	// Hash recomputes the storage hash for a raw key presented at verification.
	Hash(raw string) string
}
