package entity

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the result of a successful token verification at the gateway.
// It only exists after the signature and expiry checks have passed, so holding
// an Identity value is proof the claims were verified; there is no way to read
// the subject or user type out of an unverified token.
type Identity struct {
	UserID    uuid.UUID
	UserType  UserType
	ExpiresAt time.Time
}
