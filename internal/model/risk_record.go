package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Declaration outcome enum constants
const (
	DeclarationPassed     = "PASSED"
	DeclarationQuestioned = "QUESTIONED"
	DeclarationRejected   = "REJECTED"
)

// Inspection type enum constants
const (
	InspectionDocument = "DOCUMENT"
	InspectionPhysical = "PHYSICAL"
)

// Inspection outcome enum constants
const (
	InspectionPass = "PASSED"
	InspectionFail = "FAILED"
)

// DeclarationValueRecord is an append-only observation of how customs treated
// a past declared price for a (code, origin) pair. Records are never mutated
// once written; risk statistics are derived from the full population.
type DeclarationValueRecord struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	HsCode        string          `gorm:"type:varchar(10);not null;index:idx_declaration_key" json:"hs_code"`
	OriginCountry string          `gorm:"type:varchar(100);not null;index:idx_declaration_key" json:"origin_country"`
	Unit          string          `gorm:"type:varchar(20)" json:"unit"`
	DeclaredPrice decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"declared_price"`
	Outcome       string          `gorm:"type:varchar(20);not null" json:"outcome"` // PASSED, QUESTIONED, REJECTED
	DeclaredAt    time.Time       `gorm:"not null;index" json:"declared_at"`
	CreatedAt     time.Time       `json:"created_at"`
}

// InspectionRecord is an append-only observation of a past shipment's
// customs inspection for a (code, origin) pair.
type InspectionRecord struct {
	ID             uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	HsCode         string          `gorm:"type:varchar(10);not null;index:idx_inspection_key" json:"hs_code"`
	OriginCountry  string          `gorm:"type:varchar(100);not null;index:idx_inspection_key" json:"origin_country"`
	Inspected      bool            `gorm:"not null;default:false" json:"inspected"`
	InspectionType string          `gorm:"type:varchar(20)" json:"inspection_type"` // DOCUMENT, PHYSICAL, empty when not inspected
	Outcome        string          `gorm:"type:varchar(20)" json:"outcome"`         // PASSED, FAILED
	PenaltyAmount  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"penalty_amount"`
	DelayDays      int             `gorm:"type:int;not null;default:0" json:"delay_days"`
	RecordedAt     time.Time       `gorm:"not null;index" json:"recorded_at"`
	CreatedAt      time.Time       `json:"created_at"`
}
