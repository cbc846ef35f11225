package database

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate applies the schema for the given desired-state models.
// Unlike the external systems it reconciles, this service owns its own
// schema, so plain AutoMigrate is sufficient.
func Migrate(db *gorm.DB, models ...any) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
