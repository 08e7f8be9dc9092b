// Package model contains the GORM-specific structs mapping domain entities
// onto database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email            string    `gorm:"type:text;not null;uniqueIndex"`
	PasswordHash     string    `gorm:"type:text;not null"`
	FullName         string    `gorm:"type:text;not null"`
	UserType         string    `gorm:"type:text;not null"`
	EmailVerified    bool      `gorm:"not null;default:false"`
	Active           bool      `gorm:"not null;default:true"`
	RefreshTokenHash string    `gorm:"type:text"`
	DeviceToken      string    `gorm:"type:text"`
	LastLoginAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
