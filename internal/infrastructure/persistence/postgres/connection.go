// Package postgres provides PostgreSQL database connection and management
package postgres

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nutriplan/v2/internal/infrastructure/config"
	gormModels "github.com/nutriplan/v2/internal/infrastructure/persistence/gorm"
)

// SetupDatabase creates and configures a PostgreSQL connection with GORM
func SetupDatabase(cfg *config.Config, logLevel logger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access sql connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if cfg.Database.AutoMigrate {
		err = db.AutoMigrate(
			&gormModels.FoodModel{},
			&gormModels.RecipeModel{},
			&gormModels.NutritionPlanModel{},
		)
		if err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	return db, nil
}
