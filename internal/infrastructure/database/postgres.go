package database

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/citizengeo/sites/internal/infrastructure/database/models"
)

func NewPostgres(dsn string) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             300 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,                   // Enable color
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger,
	})
	return db, err
}

func MigratePostgres(db *gorm.DB) error {
	if err := db.Exec("CREATE SCHEMA IF NOT EXISTS " + models.Schema).Error; err != nil {
		return err
	}
	return db.AutoMigrate(
		&models.SiteType{},
		&models.Site{},
		&models.Visit{},
		&models.VisitAttribute{},
		&models.CorAttributeVisit{},
		&models.ObservationOnSite{},
		&models.AttributeCategory{},
		&models.AttributeDefinition{},
	)
}
