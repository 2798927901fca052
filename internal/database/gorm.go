package database

import (
	"fmt"

	"visacrony-gateway/internal/config"
	"visacrony-gateway/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitGorm opens the ledger database named by cfg.DBDriver and migrates it.
// DB_DRIVER=none returns a nil *gorm.DB and no error.
func InitGorm(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "none":
		logrus.Info("[DATABASE] ledger disabled")
		return nil, nil
	case "postgres":
		dialector = postgres.Open(cfg.DatabaseURL)
	case "sqlite", "":
		dialector = sqlite.Open(cfg.DBPath)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := Open(dialector, logLevel(cfg.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.DBDriver, err)
	}
	logrus.Infof("[DATABASE] connected to %s", cfg.DBDriver)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	logrus.Info("[DATABASE] migration completed")
	return db, nil
}

// Open connects through any gorm dialector; tests pass an in-memory sqlite.
func Open(dialector gorm.Dialector, level logger.LogLevel) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

func logLevel(level string) logger.LogLevel {
	if level == "debug" || level == "trace" {
		return logger.Info
	}
	return logger.Warn
}
