package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAPIKey(t *testing.T) {
	raw, hash, prefix, err := GenerateAPIKey()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(raw, "ao_"))
	assert.True(t, strings.HasPrefix(prefix, "ao_"))
	assert.Len(t, prefix, len("ao_")+8)
	assert.True(t, strings.HasPrefix(raw, prefix))

	// Stored hash must match recomputing from the raw key, and must not leak it
	assert.Equal(t, HashAPIKey(raw), hash)
	assert.NotContains(t, hash, raw)
	assert.Len(t, hash, 64) // hex SHA-256
}

func TestGenerateAPIKey_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for range 100 {
		raw, _, _, err := GenerateAPIKey()
		require.NoError(t, err)

		_, dup := seen[raw]
		assert.False(t, dup)
		seen[raw] = struct{}{}
	}
}

func TestHashAPIKey_Deterministic(t *testing.T) {
	assert.Equal(t, HashAPIKey("ao_example"), HashAPIKey("ao_example"))
	assert.NotEqual(t, HashAPIKey("ao_example"), HashAPIKey("ao_other"))
}
