package model

import (
	"time"

	"github.com/google/uuid"
)

// MatchHistoryRecord remembers a previously confirmed classification for a
// (product name, material) pair. UsageCount only grows, and only when a match
// is approved (manually or automatically) — never on speculative matches.
type MatchHistoryRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProductName string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_history_key" json:"product_name"`
	Material    string    `gorm:"type:varchar(100);not null;default:'';uniqueIndex:idx_history_key" json:"material"`
	HsCode      string    `gorm:"type:varchar(10);not null" json:"hs_code"`
	UsageCount  int       `gorm:"type:int;not null;default:0" json:"usage_count"`
	LastUsedAt  time.Time `gorm:"not null" json:"last_used_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (MatchHistoryRecord) TableName() string {
	return "match_history_records"
}
