package models

import "time"

// LoanStatus values.
const (
	LoanStatusActive = "active"
	LoanStatusPaid   = "paid"
)

// Loan represents money a member has borrowed.
type Loan struct {
	Base
	UserID         uint       `gorm:"not null;index" json:"-"`
	Type           string     `gorm:"size:64;not null" json:"type"`
	Principal      float64    `gorm:"type:decimal(15,2);not null" json:"principal"`
	Remaining      float64    `gorm:"type:decimal(15,2);not null" json:"remaining"`
	MonthlyPayment float64    `gorm:"type:decimal(15,2);not null;default:0" json:"monthlyPayment"`
	DueDate        *time.Time `gorm:"type:date" json:"dueDate"`
	Status         string     `gorm:"size:32;not null;default:active;index" json:"status"`
}
