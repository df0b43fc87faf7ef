package infra

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jmpanasiti/rda-platform-api/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx and migrates the
// schema. TranslateError is required: the repositories distinguish constraint
// violations from other failures through gorm's translated error values.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates all tables. Shared with the sqlite-backed tests.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Organization{},
		&model.Branch{},
		&model.Vehicle{},
		&model.Request{},
		&model.Sinister{},
		&model.Budget{},
		&model.PurchaseOrder{},
		&model.WorkOrder{},
		&model.Notification{},
		&model.DriverLicense{},
	)
}
