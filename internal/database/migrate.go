package database

import (
	"gorm.io/gorm"

	"github.com/mealpicker/backend/internal/model"
)

// Migrate brings the schema up to date. The schema is a single table, so
// GORM auto-migration covers both Postgres and the SQLite test databases.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Dish{})
}
