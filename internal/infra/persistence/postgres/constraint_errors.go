package postgres

import (
	"context"
	"net"
	"strings"

	"applyo/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// Fall back to PostgreSQL-specific unique constraint violation patterns
	// for drivers that do not translate the error.
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "23503") // PostgreSQL foreign_key_violation error code
}

// isTimeoutError reports whether the database call failed because of a
// deadline, cancellation, or network timeout rather than a data problem.
// These are surfaced as repository.ErrStorageTimeout so callers can treat
// them as transient.
func isTimeoutError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "57014") || // PostgreSQL query_canceled error code
		strings.Contains(errMsg, "statement timeout")
}

// wrapStorageError maps transient failures onto repository.ErrStorageTimeout
// and wraps everything else with the given message.
func wrapStorageError(err error, msg string) error {
	if isTimeoutError(err) {
		return errors.WithMessage(repository.ErrStorageTimeout, err.Error())
	}

	return errors.Wrap(err, msg)
}
