package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Origin sentinel constants
const (
	// OriginRestOfWorld marks a rate row that applies to any origin without
	// a more specific row ("rest of world" in tariff schedules).
	OriginRestOfWorld = "ROW"
)

// TariffRate is one row of the classification catalog. A code can appear
// multiple times across different origins; rate resolution picks the most
// specific row for a (code, origin) query.
type TariffRate struct {
	ID                 uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Code               string          `gorm:"type:varchar(10);not null;index" json:"code"` // normalized 10-digit code
	Description        string          `gorm:"type:text;not null" json:"description"`
	OriginCountry      *string         `gorm:"type:varchar(100);index" json:"origin_country"`                    // human-readable name, nullable = all origins
	OriginCountryCode  *string         `gorm:"type:varchar(10);index" json:"origin_country_code"`                // ISO code, bloc code or ROW sentinel
	DutyRate           decimal.Decimal `gorm:"type:decimal(10,4);not null;default:0" json:"duty_rate"`           // percent
	VatRate            decimal.Decimal `gorm:"type:decimal(10,4);not null;default:0" json:"vat_rate"`            // percent
	AntiDumpingRate    decimal.Decimal `gorm:"type:decimal(10,4);not null;default:0" json:"anti_dumping_rate"`   // percent
	CountervailingRate decimal.Decimal `gorm:"type:decimal(10,4);not null;default:0" json:"countervailing_rate"` // percent
	Unit               string          `gorm:"type:varchar(20)" json:"unit"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// OriginCode returns the row's origin country code or "" for originless rows.
func (r *TariffRate) OriginCode() string {
	if r.OriginCountryCode == nil {
		return ""
	}
	return *r.OriginCountryCode
}

// TariffBurden is the additive duty exposure of a row, used to rank
// alternative candidates before the full cascade is computed.
func (r *TariffRate) TariffBurden() decimal.Decimal {
	return r.DutyRate.Add(r.AntiDumpingRate).Add(r.CountervailingRate)
}
