package database

import (
	"backend/internal/model"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection initializes a new connection pool using GORM
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Auto-migrate core models
	err = db.AutoMigrate(
		&model.TariffRate{},
		&model.ImportBatch{},
		&model.CargoItem{},
		&model.MatchHistoryRecord{},
		&model.DeclarationValueRecord{},
		&model.InspectionRecord{},
		&model.CountryTranslation{},
		&model.AuditLog{},
	)
	if err != nil {
		logrus.WithError(err).Warn("failed to auto-migrate models")
	}

	return db, nil
}
