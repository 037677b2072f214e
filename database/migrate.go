package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Abdullah149081/career-connect-backend/internal/config"
	"github.com/Abdullah149081/career-connect-backend/internal/logger"
	"github.com/Abdullah149081/career-connect-backend/internal/models"
)

var gormDB *gorm.DB

// ConnectGorm opens the GORM connection using the configured DSN.
// TranslateError is on so unique violations surface as
// gorm.ErrDuplicatedKey across drivers.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate migrates every model and creates the indexes gorm tags
// cannot express.
func AutoMigrate(db *gorm.DB) error {
	// uuid_generate_v4 comes from uuid-ossp.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to create uuid-ossp extension: %w", err)
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.JobCategory{},
		&models.JobListing{},
		&models.JobApplication{},
		&models.Resume{},
		&models.EmployerReview{},
		&models.Notification{},
	)
	if err != nil {
		return fmt.Errorf("AutoMigrate failed: %w", err)
	}

	// Partial unique index: at most one primary resume per user. This
	// is the authority behind the clear-then-set transaction in
	// ResumeService.
	err = db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_resumes_one_primary
		ON resumes (user_id) WHERE is_primary`).Error
	if err != nil {
		return fmt.Errorf("failed to create primary resume index: %w", err)
	}

	logger.Info("AutoMigrate completed")
	return nil
}
