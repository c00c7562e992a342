package models

import "time"

// Base contains common columns for all tables
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// All lists every model, in dependency order, for auto-migration.
func All() []interface{} {
	return []interface{}{
		&Member{},
		&Transaction{},
		&Loan{},
		&Investment{},
		&AuditLog{},
	}
}
