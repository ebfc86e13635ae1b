package repository

import (
	"context"

	"backend/internal/model"

	"gorm.io/gorm"
)

// InspectionAggregate is one (code, origin) group from the inspection
// population, counted in SQL so the watchlist scan stays a single query.
type InspectionAggregate struct {
	HsCode         string `json:"hs_code"`
	OriginCountry  string `json:"origin_country"`
	TotalCount     int64  `json:"total_count"`
	InspectedCount int64  `json:"inspected_count"`
	PhysicalCount  int64  `json:"physical_count"`
}

type RiskRecordRepository interface {
	CreateDeclaration(ctx context.Context, rec *model.DeclarationValueRecord) error
	CreateInspection(ctx context.Context, rec *model.InspectionRecord) error
	// ListDeclarations returns the declaration population for (code, origin).
	// An empty unit matches all units.
	ListDeclarations(ctx context.Context, code, origin, unit string) ([]model.DeclarationValueRecord, error)
	ListInspections(ctx context.Context, code, origin string) ([]model.InspectionRecord, error)
	// AggregateInspections groups the whole inspection population by
	// (code, origin), keeping only groups with at least minShipments rows.
	AggregateInspections(ctx context.Context, minShipments int) ([]InspectionAggregate, error)
}

type riskRecordRepository struct {
	db *gorm.DB
}

func NewRiskRecordRepository(db *gorm.DB) RiskRecordRepository {
	return &riskRecordRepository{db: db}
}

func (r *riskRecordRepository) CreateDeclaration(ctx context.Context, rec *model.DeclarationValueRecord) error {
	return GetDB(ctx, r.db).Create(rec).Error
}

func (r *riskRecordRepository) CreateInspection(ctx context.Context, rec *model.InspectionRecord) error {
	return GetDB(ctx, r.db).Create(rec).Error
}

func (r *riskRecordRepository) ListDeclarations(ctx context.Context, code, origin, unit string) ([]model.DeclarationValueRecord, error) {
	db := GetDB(ctx, r.db).
		Where("hs_code = ? AND origin_country = ?", code, origin)
	if unit != "" {
		db = db.Where("unit = ?", unit)
	}

	var recs []model.DeclarationValueRecord
	if err := db.Order("declared_at ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *riskRecordRepository) ListInspections(ctx context.Context, code, origin string) ([]model.InspectionRecord, error) {
	var recs []model.InspectionRecord
	err := GetDB(ctx, r.db).
		Where("hs_code = ? AND origin_country = ?", code, origin).
		Order("recorded_at ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *riskRecordRepository) AggregateInspections(ctx context.Context, minShipments int) ([]InspectionAggregate, error) {
	var rows []InspectionAggregate
	err := GetDB(ctx, r.db).Table("inspection_records").
		Select("hs_code, origin_country, " +
			"COUNT(*) AS total_count, " +
			"SUM(CASE WHEN inspected THEN 1 ELSE 0 END) AS inspected_count, " +
			"SUM(CASE WHEN inspection_type = 'PHYSICAL' THEN 1 ELSE 0 END) AS physical_count").
		Group("hs_code, origin_country").
		Having("COUNT(*) >= ?", minShipments).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
