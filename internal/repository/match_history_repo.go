package repository

import (
	"context"
	"errors"
	"time"

	"backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MatchHistoryRepository interface {
	// Lookup returns the confirmed record for (productName, material),
	// or nil when the pair has never been approved.
	Lookup(ctx context.Context, productName, material string) (*model.MatchHistoryRecord, error)
	// Increment bumps the usage counter for (productName, material) and
	// records the confirmed code as a single atomic upsert, so concurrent
	// approvals never lose updates.
	Increment(ctx context.Context, productName, material, code string) error
}

type matchHistoryRepository struct {
	db *gorm.DB
}

func NewMatchHistoryRepository(db *gorm.DB) MatchHistoryRepository {
	return &matchHistoryRepository{db: db}
}

func (r *matchHistoryRepository) Lookup(ctx context.Context, productName, material string) (*model.MatchHistoryRecord, error) {
	var rec model.MatchHistoryRecord
	err := GetDB(ctx, r.db).
		Where("product_name = ? AND material = ?", productName, material).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // never confirmed — not an error
		}
		return nil, err
	}
	return &rec, nil
}

func (r *matchHistoryRepository) Increment(ctx context.Context, productName, material, code string) error {
	now := time.Now()
	rec := model.MatchHistoryRecord{
		ProductName: productName,
		Material:    material,
		HsCode:      code,
		UsageCount:  1,
		LastUsedAt:  now,
	}
	return GetDB(ctx, r.db).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "product_name"}, {Name: "material"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"hs_code":      code,
			"usage_count":  gorm.Expr("match_history_records.usage_count + 1"),
			"last_used_at": now,
			"updated_at":   now,
		}),
	}).Create(&rec).Error
}
