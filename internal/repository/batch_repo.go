package repository

import (
	"context"

	"backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BatchRepository interface {
	Create(ctx context.Context, batch *model.ImportBatch) error
	FindByIDWithItems(ctx context.Context, id uuid.UUID) (*model.ImportBatch, error)
	List(ctx context.Context, page, limit int) ([]model.ImportBatch, int64, error)
	UpdateBatch(ctx context.Context, batch *model.ImportBatch) error
	FindItemByID(ctx context.Context, id uuid.UUID) (*model.CargoItem, error)
	UpdateItem(ctx context.Context, item *model.CargoItem) error
}

type batchRepository struct {
	db *gorm.DB
}

func NewBatchRepository(db *gorm.DB) BatchRepository {
	return &batchRepository{db: db}
}

func (r *batchRepository) Create(ctx context.Context, batch *model.ImportBatch) error {
	return GetDB(ctx, r.db).Create(batch).Error
}

func (r *batchRepository) FindByIDWithItems(ctx context.Context, id uuid.UUID) (*model.ImportBatch, error) {
	var batch model.ImportBatch
	if err := GetDB(ctx, r.db).Preload("Items").First(&batch, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &batch, nil
}

func (r *batchRepository) List(ctx context.Context, page, limit int) ([]model.ImportBatch, int64, error) {
	var batches []model.ImportBatch
	var total int64

	db := GetDB(ctx, r.db)
	if err := db.Model(&model.ImportBatch{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&batches).Error; err != nil {
		return nil, 0, err
	}

	return batches, total, nil
}

func (r *batchRepository) UpdateBatch(ctx context.Context, batch *model.ImportBatch) error {
	return GetDB(ctx, r.db).Omit("Items").Save(batch).Error
}

func (r *batchRepository) FindItemByID(ctx context.Context, id uuid.UUID) (*model.CargoItem, error) {
	var item model.CargoItem
	if err := GetDB(ctx, r.db).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *batchRepository) UpdateItem(ctx context.Context, item *model.CargoItem) error {
	return GetDB(ctx, r.db).Save(item).Error
}
