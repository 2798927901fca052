// Command migrate_data copies the ledger from the local sqlite file into
// PostgreSQL. Run cmd/sync_sequences afterwards.
package main

import (
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"visacrony-gateway/internal/config"
	"visacrony-gateway/internal/database"
	"visacrony-gateway/internal/models"
)

func main() {
	cfg := config.LoadConfig()

	// 1. Connect to SQLite (Source)
	sqliteDB, err := database.Open(sqlite.Open(cfg.DBPath), logger.Warn)
	if err != nil {
		logrus.Fatalf("[MIGRATE] failed to connect to SQLite: %v", err)
	}
	logrus.Infof("[MIGRATE] connected to SQLite at %s", cfg.DBPath)

	// 2. Connect to PostgreSQL (Destination)
	cfg.DBDriver = "postgres"
	if cfg.DatabaseURL == "" {
		logrus.Fatal("[MIGRATE] DATABASE_URL is required")
	}
	pgDB, err := database.InitGorm(cfg)
	if err != nil {
		logrus.Fatalf("[MIGRATE] failed to connect to PostgreSQL: %v", err)
	}

	logrus.Info("[MIGRATE] starting data migration")

	// Migrate in dependency order: deliveries reference submissions.
	var messages []models.Message
	migrateTable(sqliteDB, pgDB, "messages", &messages)

	var submissions []models.Submission
	migrateTable(sqliteDB, pgDB, "submissions", &submissions)

	var deliveries []models.Delivery
	migrateTable(sqliteDB, pgDB, "deliveries", &deliveries)

	logrus.Info("[MIGRATE] migration completed")
}

// migrateTable reads every row into dest, a pointer to a slice, and inserts
// them in batches keeping their IDs.
func migrateTable(src, dst *gorm.DB, table string, dest interface{}) {
	log := logrus.WithField("table", table)
	log.Info("[MIGRATE] migrating table")

	res := src.Find(dest)
	if res.Error != nil {
		log.WithError(res.Error).Error("[MIGRATE] error reading from SQLite")
		return
	}
	if res.RowsAffected == 0 {
		log.Info("[MIGRATE] nothing to copy")
		return
	}

	err := dst.Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).CreateInBatches(dest, 500).Error
	})
	if err != nil {
		log.WithError(err).Error("[MIGRATE] error writing to PostgreSQL")
		return
	}
	log.WithField("rows", res.RowsAffected).Info("[MIGRATE] table migrated")
}
