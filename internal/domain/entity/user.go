// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserType distinguishes the two account kinds on the platform.
type UserType string

const (
	UserTypeCandidate UserType = "CANDIDATE"
	UserTypeCompany   UserType = "COMPANY"
)

// IsValid reports whether the user type is one of the known kinds.
func (t UserType) IsValid() bool {
	return t == UserTypeCandidate || t == UserTypeCompany
}

// User represents a platform account (candidate or company).
type User struct {
	ID               uuid.UUID  `json:"id"`
	Email            string     `json:"email"`
	PasswordHash     string     `json:"-"`
	FullName         string     `json:"full_name"`
	UserType         UserType   `json:"user_type"`
	EmailVerified    bool       `json:"email_verified"`
	Active           bool       `json:"active"`
	RefreshTokenHash string     `json:"-"` // SHA-256 of the current refresh token, empty when logged out.
	DeviceToken      string     `json:"-"` // FCM registration token for push, empty when the user has no device.
	LastLoginAt      *time.Time `json:"last_login_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
