package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidationError_DetailsAreFieldOrdered(t *testing.T) {
	err := NewValidationError(map[string]string{
		"purposeOfUse":    "must not be empty",
		"candidateEmail":  "must be a valid email",
		"requestedFields": "must contain at least one field",
	})

	var appErr AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())

	// Map iteration order must not leak into the payload.
	want := "candidateEmail: must be a valid email; purposeOfUse: must not be empty; requestedFields: must contain at least one field"
	for range 10 {
		again := NewValidationError(map[string]string{
			"purposeOfUse":    "must not be empty",
			"candidateEmail":  "must be a valid email",
			"requestedFields": "must contain at least one field",
		})
		var againErr AppError
		require.ErrorAs(t, again, &againErr)
		assert.Equal(t, want, againErr.Details())
	}
}
