package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction represents a single dated money movement. The date is kept as
// the raw YYYY-MM-DD string the client sent; rows whose date does not parse
// are still listed but skipped by the analytics bucketing.
type Transaction struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	UserID      string    `gorm:"index;size:36;not null" json:"user_id"`
	Date        string    `gorm:"size:10" json:"date"`
	Amount      float64   `json:"amount"`
	Description string    `gorm:"size:255" json:"description"`
	Category    string    `gorm:"size:64" json:"category"`
	Type        string    `gorm:"size:16;index;not null" json:"type"` // income / expense
	IsRecurring bool      `json:"is_recurring"`
	RecurringID *string   `gorm:"size:36;index" json:"recurring_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
