package database

import (
	"fmt"

	"github.com/Sarankumarr01/Budget-Planner-main/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.UserSettings{},
		&models.Category{},
		&models.Transaction{},
		&models.RecurringTransaction{},
		&models.Budget{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
