package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"learnloop-backend/internal/config"
)

var gormDB *gorm.DB

// InitDBFromConfig opens the postgres connection described by the config and
// applies the pool settings. Fatal on failure: the process is useless without
// its store.
func InitDBFromConfig(cfg *config.APIConfig) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		cfg.DB.Host, cfg.DB.Username, cfg.DB.Password, cfg.DB.Name, cfg.DB.Port, cfg.DB.SSLMode,
	)

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		log.Fatalf("failed to access underlying sql.DB: %v", err)
	}
	if cfg.DB.Pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.DB.Pool.MaxOpenConns)
	}
	if cfg.DB.Pool.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.DB.Pool.MaxIdleConns)
	}
	if cfg.DB.Pool.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.DB.Pool.ConnMaxLifetime) * time.Minute)
	}

	gormDB = conn
}

// GetDB returns the process-wide connection opened by InitDBFromConfig.
func GetDB() *gorm.DB {
	return gormDB
}
