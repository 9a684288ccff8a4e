package repository

import (
	"gorm.io/gorm"

	"github.com/customeros/unsublink/interfaces"
	"github.com/customeros/unsublink/internal/models"
)

type Repositories struct {
	ExtractionRecordRepository interfaces.ExtractionRecordRepository
}

func InitRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		ExtractionRecordRepository: NewExtractionRecordRepository(db),
	}
}

func MigrateDB(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.ExtractionRecord{},
	)
}
