package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Budget is the planned amount for one (category, month, year) key.
// Uniqueness per owner is enforced by the upsert path, not the schema.
type Budget struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	UserID        string    `gorm:"size:36;not null;index:idx_budget_key" json:"user_id"`
	Category      string    `gorm:"size:64;not null;index:idx_budget_key" json:"category"`
	Month         int       `gorm:"index:idx_budget_key" json:"month"` // 1-12
	Year          int       `gorm:"index:idx_budget_key" json:"year"`
	PlannedAmount float64   `json:"planned_amount"`
	CreatedAt     time.Time `json:"created_at"`
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
