package models

// DefaultCurrency is the currency symbol assigned to new accounts.
const DefaultCurrency = "₹"

// UserSettings holds per-user preferences, one row per user.
type UserSettings struct {
	UserID   string `gorm:"primaryKey;size:36" json:"user_id"`
	Currency string `gorm:"size:8;not null" json:"currency"`
}
