package repository

import (
	"applyo/internal/errors"
)

// ErrStorageTimeout is returned when a storage call exceeded its deadline or
// the database was unreachable. It marks the failure as transient: the caller
// may retry, unlike the permanent not-found and constraint errors.
var ErrStorageTimeout = errors.New("storage timeout")
