package model

import (
	"time"

	"github.com/google/uuid"
)

// CountryTranslation maps a locally-spelled country name to its ISO code.
// Read-mostly reference data served through the TTL lookup cache.
type CountryTranslation struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CountryName string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"country_name"`
	CountryCode string    `gorm:"type:varchar(10);not null" json:"country_code"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
