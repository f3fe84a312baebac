// Package repositories provides the data access layer for wallets and the
// transaction log.
package repositories

import (
	"fmt"
	"time"

	"carteras/internal/config"
	apperrors "carteras/internal/errors"
	"carteras/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the Postgres connection and configures the pool from the
// environment.
func Connect() (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		config.GetEnv("DB_HOST", "localhost"),
		config.GetEnv("DB_USER", "postgres"),
		config.GetEnv("DB_PASSWORD", "postgres"),
		config.GetEnv("DB_NAME", "carteras"),
		config.GetEnv("DB_PORT", "5432"),
		config.GetEnv("DB_SSLMODE", "disable"),
	)

	level := logger.Warn
	if !config.IsProduction() {
		level = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrConnection, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrConnection, err)
	}

	sqlDB.SetMaxIdleConns(config.GetIntEnv("DB_MAX_IDLE_CONNS", 10))
	sqlDB.SetMaxOpenConns(config.GetIntEnv("DB_MAX_OPEN_CONNS", 100))
	sqlDB.SetConnMaxLifetime(config.GetDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour))
	sqlDB.SetConnMaxIdleTime(config.GetDurationEnv("DB_CONN_MAX_IDLE_TIME", 30*time.Minute))

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrConnection, err)
	}

	logrus.Info("connected to postgres")
	return db, nil
}

// Migrate applies the ledger schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Wallet{},
		&models.Transaction{},
	)
}
