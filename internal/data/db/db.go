package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/aulanova/aulanova-backend/internal/pkg/envutil"
	"github.com/aulanova/aulanova-backend/internal/pkg/logger"
)

// Open connects to the tabular store. Postgres is selected when DATABASE_URL
// is set; otherwise the embedded sqlite file is used, which is how the
// activity dataset ships.
func Open(log *logger.Logger) (*gorm.DB, error) {
	cfg := &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	}

	if dsn := envutil.String("DATABASE_URL", ""); dsn != "" {
		log.Info("Connecting to Postgres...")
		gdb, err := gorm.Open(postgres.Open(dsn), cfg)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := gdb.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
			return nil, fmt.Errorf("enable uuid-ossp extension: %w", err)
		}
		return gdb, nil
	}

	path := envutil.String("SQLITE_PATH", "activitats.db")
	log.Info("Opening sqlite store...", "path", path)
	gdb, err := gorm.Open(sqlite.Open(path), cfg)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	return gdb, nil
}
