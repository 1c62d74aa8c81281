package db

import (
	"gorm.io/gorm"

	"github.com/aulanova/aulanova-backend/internal/domain"
)

func AutoMigrateAll(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		// Identity
		&domain.User{},
		&domain.Profile{},

		// Catalog (read-only for the pipeline)
		&domain.ContentItem{},
		&domain.Category{},
	)
}
