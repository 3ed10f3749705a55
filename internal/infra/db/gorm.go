package db

import (
	"fmt"

	"storefront/internal/config"
	"storefront/internal/domain/model"
	"storefront/internal/infra/kv"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens the database named by cfg.DBDriver and returns *gorm.DB.
func Connect(cfg config.Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{TranslateError: true}
	if cfg.IsProd() {
		gcfg.Logger = gormlogger.Default.LogMode(gormlogger.Warn)
	}

	switch cfg.DBDriver {
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.SQLitePath), gcfg)
	default:
		// DATABASE_URL wins over the POSTGRES_* parts
		if cfg.DatabaseURL != "" {
			return gorm.Open(postgres.Open(cfg.DatabaseURL), gcfg)
		}
		return gorm.Open(postgres.Open(PostgresDSN(cfg)), gcfg)
	}
}

func PostgresDSN(cfg config.Config) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresUser, cfg.PostgresPassword, cfg.PostgresDB, cfg.PostgresSSLMode,
	)
}

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Product{},
		&model.BlogPost{},
		&kv.Entry{},
	)
}
