package bootstrap

import (
	"fmt"

	"ai-journal-be/internal/config"
	"ai-journal-be/pkg/database"

	"gorm.io/gorm"
)

// OpenDatabase connects using DB_DRIVER. The sqlite mode is for local runs
// without postgres; it has no native vector search.
func OpenDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := database.GormConfig{Driver: cfg.Driver}

	switch cfg.Driver {
	case database.DriverSQLite:
		gormCfg.Path = cfg.SQLitePath
	default:
		if cfg.Connection == "" {
			return nil, fmt.Errorf("DB_CONNECTION_STRING is not set")
		}
		gormCfg.DSN = cfg.Connection
	}

	return database.NewGormDB(gormCfg)
}
