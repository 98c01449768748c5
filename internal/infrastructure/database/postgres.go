package database

import (
	"fmt"
	"log"

	"github.com/mainakibe/printdesk-api/internal/config"
	"github.com/mainakibe/printdesk-api/internal/domain/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Catalog
		&entity.Category{},
		&entity.Product{},

		// Stock ledgers
		&entity.DepotStock{},
		&entity.LogisticsPlanEntry{},

		// Orders and payments
		&entity.Order{},
		&entity.OrderItem{},
		&entity.PartialPayment{},

		// Side ledgers
		&entity.ManualNeed{},
		&entity.UnpaidWriting{},
		&entity.ShopNote{},

		// System
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// SeedDefaultData inserts the baseline rows the app expects: the special
// "Unpaid" category and the two scratch note keys.
func SeedDefaultData(db *gorm.DB) error {
	categories := []entity.Category{
		{Name: "Unpaid", Slug: entity.UnpaidCategorySlug},
		{Name: "Urgent", Slug: "urgent"},
		{Name: "Regular", Slug: "regular"},
	}
	for _, c := range categories {
		var existing entity.Category
		err := db.Where("slug = ?", c.Slug).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&c).Error; err != nil {
				return fmt.Errorf("failed to seed category %s: %w", c.Slug, err)
			}
		} else if err != nil {
			return err
		}
	}

	for _, key := range []string{entity.NoteKeyGeneral, entity.NoteKeyNeedsPriority} {
		var note entity.ShopNote
		err := db.Where("key = ?", key).First(&note).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&entity.ShopNote{Key: key}).Error; err != nil {
				return fmt.Errorf("failed to seed note %s: %w", key, err)
			}
		} else if err != nil {
			return err
		}
	}

	return nil
}
