package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MatchStatus enum constants
const (
	MatchStatusPending      = "PENDING"
	MatchStatusAutoApproved = "AUTO_APPROVED"
	MatchStatusReview       = "REVIEW"
	MatchStatusNoMatch      = "NO_MATCH"
	MatchStatusApproved     = "APPROVED"
	MatchStatusRejected     = "REJECTED"
)

// Provenance tags identifying which matching strategy produced a classification
const (
	ProvenanceExact   = "exact"
	ProvenancePrefix8 = "prefix_8"
	ProvenancePrefix6 = "prefix_6"
	ProvenanceHistory = "history"
	ProvenanceFuzzy   = "fuzzy"
)

// ClearanceType enum constants
const (
	ClearanceStandard = "STANDARD"
	ClearanceDeferred = "DEFERRED" // import VAT accounted for later, not payable at the border
)

// BatchStatus enum constants
const (
	BatchStatusDraft    = "DRAFT"
	BatchStatusMatching = "MATCHING"
	BatchStatusReview   = "REVIEW"
	BatchStatusComputed = "COMPUTED"
)

// ImportBatch groups cargo items into one unit of work. Its totals are
// derived: they must always be recomputable by summing the current items.
type ImportBatch struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BatchNo       string          `gorm:"type:varchar(30);uniqueIndex;not null" json:"batch_no"`
	Status        string          `gorm:"type:varchar(20);not null;default:'DRAFT';index" json:"status"`
	ClearanceType string          `gorm:"type:varchar(20);not null;default:'STANDARD'" json:"clearance_type"` // STANDARD, DEFERRED
	TotalValue    decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"total_value"`
	TotalDuty     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"total_duty"`
	TotalVat      decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"total_vat"`
	TotalOtherTax decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"total_other_tax"`
	TotalTax      decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"total_tax"`
	Items         []CargoItem     `gorm:"foreignKey:BatchID" json:"items"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CargoItem is a single declared line item within an import batch.
type CargoItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BatchID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"batch_id"`
	ProductName   string          `gorm:"type:varchar(255);not null" json:"product_name"`
	Material      string          `gorm:"type:varchar(100)" json:"material"`
	Quantity      decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"quantity"`
	Unit          string          `gorm:"type:varchar(20)" json:"unit"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"unit_price"`
	CustomsValue  decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"customs_value"` // CIF
	OriginCountry string          `gorm:"type:varchar(100)" json:"origin_country"`
	SuppliedCode  string          `gorm:"type:varchar(20)" json:"supplied_code"`         // customer-supplied, raw
	HsCode        string          `gorm:"type:varchar(10);index" json:"hs_code"`         // resolved, normalized
	Confidence    int             `gorm:"type:int;not null;default:0" json:"confidence"` // 0..100
	Provenance    *string         `gorm:"type:varchar(20)" json:"provenance"`            // nil iff confidence is 0
	MatchStatus   string          `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"match_status"`
	MatchError    string          `gorm:"type:text" json:"match_error,omitempty"` // per-item failure, never aborts the batch
	Duty          decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"duty"`
	Vat           decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"vat"`
	DeferredVat   decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"deferred_vat"`
	OtherTax      decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"other_tax"`
	TotalTax      decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"total_tax"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
