package model

import (
	"time"

	"github.com/google/uuid"
)

// APIKeyModel is the GORM-specific struct for the 'api_keys' table.
// Only the SHA-256 hash of a key is ever stored.
type APIKeyModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CompanyID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	KeyHash    string     `gorm:"type:text;not null;uniqueIndex"`
	Name       string     `gorm:"type:text;not null"`
	Prefix     string     `gorm:"type:text;not null"`
	Scopes     []string   `gorm:"type:jsonb;serializer:json"`
	RateLimit  int        `gorm:"not null;default:60"`
	Active     bool       `gorm:"not null;default:true"`
	ExpiresAt  *time.Time
	LastUsedAt *time.Time
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (APIKeyModel) TableName() string {
	return "api_keys"
}
