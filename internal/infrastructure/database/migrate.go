package database

import (
	"fmt"

	"gorm.io/gorm"

	"lifenav-server/navigator-api/internal/infrastructure/database/entities"
)

// Migrate applies the schema for all navigator tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entities.Conversation{},
		&entities.Message{},
		&entities.Goal{},
		&entities.Decision{},
		&entities.MetricsSnapshot{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
