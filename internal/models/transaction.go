package models

import "time"

// Transaction is a single movement of money on a member's account.
type Transaction struct {
	Base
	UserID      uint      `gorm:"not null;index:idx_transactions_user_date,priority:1" json:"-"`
	Type        string    `gorm:"size:64;not null" json:"type"`
	Amount      float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	Date        time.Time `gorm:"not null;index:idx_transactions_user_date,priority:2" json:"date"`
	Status      string    `gorm:"size:32" json:"status,omitempty"`
	Description string    `gorm:"size:255" json:"description"`
}
