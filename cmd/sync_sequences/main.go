// Command sync_sequences moves each PostgreSQL id sequence past the highest
// id after rows were copied in with explicit ids.
package main

import (
	"github.com/sirupsen/logrus"

	"visacrony-gateway/internal/config"
	"visacrony-gateway/internal/database"
)

var tables = []string{
	"messages",
	"submissions",
	"deliveries",
}

func main() {
	cfg := config.LoadConfig()
	if cfg.DBDriver != "postgres" {
		logrus.Fatalf("[SEQUENCES] DB_DRIVER must be postgres, got %q", cfg.DBDriver)
	}
	db, err := database.InitGorm(cfg)
	if err != nil {
		logrus.Fatalf("[SEQUENCES] %v", err)
	}

	logrus.Info("[SEQUENCES] syncing PostgreSQL sequences")

	for _, table := range tables {
		query := "SELECT setval(pg_get_serial_sequence('" + table + "', 'id'), coalesce(max(id), 0) + 1, false) FROM " + table
		if err := db.Exec(query).Error; err != nil {
			logrus.WithError(err).Errorf("[SEQUENCES] error syncing sequence for %s", table)
		} else {
			logrus.Infof("[SEQUENCES] synced sequence for %s", table)
		}
	}

	logrus.Info("[SEQUENCES] done")
}
