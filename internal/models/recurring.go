package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecurringTransaction is a template that materializes at most one
// transaction per calendar month on the configured day.
type RecurringTransaction struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	UserID      string    `gorm:"index;size:36;not null" json:"user_id"`
	Amount      float64   `json:"amount"`
	Description string    `gorm:"size:255" json:"description"`
	Category    string    `gorm:"size:64" json:"category"`
	Type        string    `gorm:"size:16;not null" json:"type"` // income / expense
	DayOfMonth  int       `json:"day_of_month"`                 // 1-31, not checked against month length
	IsActive    bool      `json:"is_active"`
	StartDate   string    `gorm:"size:10" json:"start_date"`
	EndDate     *string   `gorm:"size:10" json:"end_date"`
	CreatedAt   time.Time `json:"created_at"`
}

func (r *RecurringTransaction) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
