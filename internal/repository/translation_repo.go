package repository

import (
	"context"
	"errors"

	"backend/internal/model"

	"gorm.io/gorm"
)

type TranslationRepository interface {
	// FindByName returns the translation row for a country name, or nil
	// when no translation is recorded.
	FindByName(ctx context.Context, countryName string) (*model.CountryTranslation, error)
}

type translationRepository struct {
	db *gorm.DB
}

func NewTranslationRepository(db *gorm.DB) TranslationRepository {
	return &translationRepository{db: db}
}

func (r *translationRepository) FindByName(ctx context.Context, countryName string) (*model.CountryTranslation, error) {
	var rec model.CountryTranslation
	err := GetDB(ctx, r.db).Where("country_name = ?", countryName).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}
